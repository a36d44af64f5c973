package cmd

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/etnz/cardfolio/config"
)

// Environment variables passed to extensions. They are also read by the
// config, so that an extension built on this module sees the same settings.
const (
	EnvConfig   = config.EnvConfig
	EnvBackend  = "POK_BACKEND"
	EnvPath     = "POK_PATH"
	EnvKey      = "POK_KEY"
	EnvCurrency = "POK_CURRENCY"
	EnvVerbose  = "POK_VERBOSE"
)

// RunExtension attempts to find and execute an external pok-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "pok-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass the global flags that are set as environment variables.
	cmd.Env = os.Environ()
	setenv := func(name, value string) {
		if value != "" {
			cmd.Env = append(cmd.Env, name+"="+value)
		}
	}
	setenv(EnvConfig, *configFile)
	setenv(EnvBackend, *backend)
	setenv(EnvPath, *storePath)
	setenv(EnvKey, *storeKey)
	setenv(EnvCurrency, *currency)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1 // Indicate that an attempt was made, but it failed
	}

	return true, 0
}
