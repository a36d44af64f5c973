package renderer

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/cardfolio"
)

var fixGoldens = flag.Bool("fix-goldens", false, "if true, update failing golden .md files with the received output")

func TestFixGoldensIsOff(t *testing.T) {
	if *fixGoldens {
		t.Fatal("-fix-goldens is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

// loadCollection reads testdata/collection.json.
func loadCollection(t *testing.T) *cardfolio.Collection {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", "collection.json"))
	if err != nil {
		t.Fatalf("failed to open collection: %v", err)
	}
	defer f.Close()
	c, err := cardfolio.DecodeCollection(f)
	if err != nil {
		t.Fatalf("failed to decode collection: %v", err)
	}
	return c
}

// checkGolden compares got with the content of testdata/<golden>.
func checkGolden(t *testing.T, golden, got string) {
	t.Helper()
	path := filepath.Join("testdata", golden)
	want, err := os.ReadFile(path)
	if err != nil && !(os.IsNotExist(err) && *fixGoldens) {
		t.Fatalf("failed to read golden file %q: %v", path, err)
	}
	if got == string(want) {
		return
	}
	if *fixGoldens {
		if err := os.WriteFile(path, []byte(got), 0644); err != nil {
			t.Fatalf("failed to write updated golden file %q: %v", path, err)
		}
		t.Logf("updated golden file %s", path)
		return
	}
	t.Errorf("output mismatch for %s:\n--- want\n+++ got\n%s", golden, createDiff(string(want), got))
}

func TestRenderCollection(t *testing.T) {
	c := loadCollection(t)
	checkGolden(t, "collection.md", RenderCollection(NewCollection(c, "EUR")))
	checkGolden(t, "empty.md", RenderCollection(NewCollection(cardfolio.NewCollection(), "EUR")))
}

func TestRenderEntry(t *testing.T) {
	c := loadCollection(t)
	for e := range c.All() {
		t.Run(e.ID(), func(t *testing.T) {
			checkGolden(t, "entry_"+e.ID()+".md", RenderEntry(NewEntry(e, "EUR")))
		})
	}
}

func TestCell(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Pikachu", "Pikachu"},
		{"a|b", `a\|b`},
		{"  Base\nSet  ", "Base Set"},
	}
	for _, tt := range tests {
		if got := cell(tt.in); got != tt.want {
			t.Errorf("cell(%q) = %q want %q", tt.in, got, tt.want)
		}
	}
}

func TestHTML(t *testing.T) {
	got, err := HTML("# Cards\n\n| Name | Value |\n|:---|---:|\n| Pikachu | €20.00 |\n\n<script>alert(1)</script>\n")
	if err != nil {
		t.Fatalf("HTML() failed: %v", err)
	}
	for _, want := range []string{"<h1", "<table>", "Pikachu</td>"} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML() = %q, missing %q", got, want)
		}
	}
	if strings.Contains(got, "<script") {
		t.Errorf("HTML() = %q, script was not removed", got)
	}
}

func TestPage(t *testing.T) {
	got, err := Page("Cards & co", "hello")
	if err != nil {
		t.Fatalf("Page() failed: %v", err)
	}
	if !strings.Contains(got, "<title>Cards &amp; co</title>") || !strings.Contains(got, "<p>hello</p>") {
		t.Errorf("Page() = %q", got)
	}
}

func createDiff(want, got string) string {
	// A simple diff-like representation for clearer test failures.
	return fmt.Sprintf("-%s\n+%s", strings.ReplaceAll(want, "\n", "\n-"), strings.ReplaceAll(got, "\n", "\n+"))
}
