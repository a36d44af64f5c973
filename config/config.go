// Package config loads the settings of pok from a file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/spf13/viper"
)

// EnvConfig is the environment variable naming the config file.
const EnvConfig = "POK_CONFIG"

type Config struct {
	// Backend is the storage backend: file, sqlite or memory.
	Backend string
	// Path is the storage folder (file) or database file (sqlite).
	Path string
	// Key is the storage key of the collection.
	Key      string
	Currency string

	ChartWidth  int
	ChartHeight int

	// Listen is the address of 'pok serve'.
	Listen string
	// Model is the Gemini model of 'pok assist'.
	Model string
}

// Load reads the config file at path, or the one named by POK_CONFIG, or
// pok.yaml in the current folder. Environment variables prefixed with POK_
// override the file. A missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("backend", "file")
	v.SetDefault("path", "")
	v.SetDefault("key", "pok_collection")
	v.SetDefault("currency", "EUR")
	v.SetDefault("chart_width", 600)
	v.SetDefault("chart_height", 240)
	v.SetDefault("listen", "127.0.0.1:8080")
	v.SetDefault("model", "gemini-2.5-pro")

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pok")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
		log.Printf("no config file found, using defaults + env vars: %v", err)
	}

	v.SetEnvPrefix("POK")
	v.AutomaticEnv()

	c := &Config{
		Backend:     v.GetString("backend"),
		Path:        v.GetString("path"),
		Key:         v.GetString("key"),
		Currency:    v.GetString("currency"),
		ChartWidth:  v.GetInt("chart_width"),
		ChartHeight: v.GetInt("chart_height"),
		Listen:      v.GetString("listen"),
		Model:       v.GetString("model"),
	}
	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return nil, fmt.Errorf("invalid chart size %dx%d", c.ChartWidth, c.ChartHeight)
	}
	return c, nil
}
