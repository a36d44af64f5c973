package docs

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fenced code block kinds executed by TestCodeBlocks.
//
// A "bash setup" starts a new scenario in an empty folder, "bash run" records
// its output for the next "console check", and "bash check" must succeed.
const (
	bashSetup    = "bash setup"
	bashRun      = "bash run"
	bashCheck    = "bash check"
	consoleCheck = "console check"
)

// TestTopics checks that the index and the topic files agree.
func TestTopics(t *testing.T) {
	_, listed := Summaries()
	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("index lists %q: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestSummaries(t *testing.T) {
	summaries, order := Summaries()
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if len(order) != len(all) {
		t.Errorf("Summaries() lists %d topics want %d", len(order), len(all))
	}
	for _, topic := range all {
		if summaries[topic] == "" {
			t.Errorf("topic %q has no summary", topic)
		}
	}
}

func TestGetTopicAll(t *testing.T) {
	got, err := GetTopic("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, heading := range []string{"# Adding cards", "# Simulated values"} {
		if !strings.Contains(got, heading) {
			t.Errorf("GetTopic(*) misses %q", heading)
		}
	}
	if _, err := GetTopic("nope"); err == nil {
		t.Errorf("GetTopic(nope) expected an error")
	}
}

// TestCodeBlocks runs the examples of every topic and of the README against
// a freshly built pok.
func TestCodeBlocks(t *testing.T) {
	if testing.Short() {
		t.Skip("builds pok")
	}
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	var pok string
	for _, file := range files {
		blocks := readBlocks(t, file)
		if len(blocks) == 0 {
			continue
		}
		if pok == "" {
			pok = buildPok(t)
		}
		t.Run(file, func(t *testing.T) {
			s := scenario{env: append(os.Environ(),
				"PATH="+filepath.Dir(pok)+string(os.PathListSeparator)+os.Getenv("PATH"),
				// the collection is saved in the scenario folder.
				"POK_BACKEND=file", "POK_PATH=", "POK_CONFIG=",
			)}
			for _, b := range blocks {
				s.run(t, b)
			}
		})
	}
}

// block is a fenced code block of a markdown file.
type block struct {
	kind    string
	content string
	file    string
	line    int
}

func (b block) String() string { return fmt.Sprintf("%s:%d: %s", b.file, b.line, b.kind) }

// buildPok compiles pok in a temporary folder and returns its path.
func buildPok(t *testing.T) string {
	t.Helper()
	out := filepath.Join(t.TempDir(), "pok")
	if b, err := exec.Command("go", "build", "-o", out, "../pok/").CombinedOutput(); err != nil {
		t.Fatalf("cannot build pok: %v\n%s", err, b)
	}
	return out
}

// readBlocks returns the executable blocks of a markdown file.
func readBlocks(t *testing.T, file string) []block {
	t.Helper()
	src, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("cannot read %s: %v", file, err)
	}

	var blocks []block
	root := goldmark.DefaultParser().Parse(text.NewReader(src))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		kind := string(fcb.Info.Segment.Value(src))
		switch kind {
		case bashSetup, bashRun, bashCheck, consoleCheck:
		default:
			return ast.WalkContinue, nil
		}
		var content bytes.Buffer
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			content.Write(line.Value(src))
		}
		blocks = append(blocks, block{
			kind:    kind,
			content: content.String(),
			file:    file,
			line:    bytes.Count(src[:fcb.Info.Segment.Start], []byte{'\n'}) + 1,
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// scenario runs blocks in sequence within the same folder.
type scenario struct {
	env    []string
	dir    string
	output string
}

func (s *scenario) run(t *testing.T, b block) {
	t.Helper()
	if b.kind == consoleCheck {
		want := strings.TrimSpace(b.content)
		got := strings.TrimSpace(s.output)
		if got != want {
			t.Errorf("%s: output mismatch\ngot:  %q\nwant: %q", b, got, want)
		}
		return
	}
	if b.kind == bashSetup || s.dir == "" {
		s.dir = t.TempDir()
	}

	cmd := exec.Command("bash", "-c", "set -e; "+b.content)
	cmd.Dir = s.dir
	cmd.Env = s.env
	out, err := cmd.CombinedOutput()
	if b.kind == bashRun {
		s.output = string(out)
	}
	if err == nil {
		return
	}
	if b.kind == bashCheck {
		t.Errorf("%s failed: %v\n%s", b, err, out)
		return
	}
	t.Fatalf("%s failed: %v\n%s", b, err, out)
}
