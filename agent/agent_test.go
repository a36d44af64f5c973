package agent

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/etnz/cardfolio"
	"google.golang.org/genai"
)

type staticSource struct{ c *cardfolio.Collection }

func (s staticSource) Collection() *cardfolio.Collection { return s.c }

type fixedRand struct{}

func (fixedRand) Float64() float64 { return 0.5 }

func newSource(t *testing.T, names ...string) staticSource {
	t.Helper()
	c := cardfolio.NewCollection()
	for _, name := range names {
		e, err := cardfolio.NewEntry(cardfolio.Card{Name: name, Expansion: "Base Set"}, fixedRand{}, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("NewEntry() failed: %v", err)
		}
		c.Add(e)
	}
	return staticSource{c}
}

func call(lib Library, name string, args map[string]any) *genai.FunctionResponse {
	return lib(context.Background(), &genai.FunctionCall{ID: "1", Name: name, Args: args})
}

func TestCollectorLibrary(t *testing.T) {
	src := newSource(t, "Pikachu", "Charizard")
	collector := NewCollector(DefaultModel, "EUR", src)

	tests := []struct {
		name     string
		function string
		args     map[string]any
		output   string // substring of the output
		err      string // substring of the error
	}{
		{name: "list", function: "ListCards", output: "| Pikachu | Base Set | IT | Near Mint | €20.00 |"},
		{name: "history by name", function: "CardHistory", args: map[string]any{"card": "pikachu"}, output: "## History"},
		{name: "history latest", function: "CardHistory", args: map[string]any{"card": "latest"}, output: "# Charizard"},
		{name: "unknown card", function: "CardHistory", args: map[string]any{"card": "Mewtwo"}, err: "not found"},
		{name: "missing argument", function: "CardHistory", err: `missing argument "card"`},
		{name: "bad argument", function: "CardHistory", args: map[string]any{"card": 12.0}, err: "not a string"},
		{name: "unknown function", function: "Trade", err: "unknown function Trade"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(collector.Library, tt.function, tt.args)
			if resp.ID != "1" || resp.Name != tt.function {
				t.Errorf("response id, name = %q, %q want %q, %q", resp.ID, resp.Name, "1", tt.function)
			}
			if tt.err != "" {
				got, _ := resp.Response["error"].(string)
				if !strings.Contains(got, tt.err) {
					t.Errorf("error = %q want it to contain %q", got, tt.err)
				}
				return
			}
			got, _ := resp.Response["output"].(string)
			if !strings.Contains(got, tt.output) {
				t.Errorf("output = %q want it to contain %q", got, tt.output)
			}
		})
	}
}

func TestFacilitatorKnowsExperts(t *testing.T) {
	collector := NewCollector(DefaultModel, "EUR", newSource(t))
	a := New(&strings.Builder{}, strings.NewReader(""), "some-model", collector)

	if a.Facilitator.ModelName != "some-model" {
		t.Errorf("facilitator model = %q want %q", a.Facilitator.ModelName, "some-model")
	}
	decls := a.Facilitator.Config.Tools[0].FunctionDeclarations
	if len(decls) != 1 || decls[0].Name != "Collector" {
		t.Fatalf("facilitator tools = %v want [Collector]", decls)
	}
	if decls[0].Parameters.Required[0] != "question" {
		t.Errorf("expert declaration requires %v want [question]", decls[0].Parameters.Required)
	}
}

func TestAskNotStarted(t *testing.T) {
	e := NewCollector(DefaultModel, "EUR", newSource(t))
	if _, err := e.Ask(context.Background(), &genai.Part{Text: "hello"}); err == nil {
		t.Errorf("Ask() on an expert not started expected an error")
	}
}

func TestRunQuitsBeforeStarting(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		questions []string
	}{
		{name: "bye", input: "\nbye\n"},
		{name: "end of input", input: ""},
		{name: "queued quit", questions: []string{"  ", "Exit"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			a := New(&out, strings.NewReader(tt.input), DefaultModel)
			// a nil client would fail if any chat was opened.
			if err := a.Run(context.Background(), nil, tt.questions...); err != nil {
				t.Fatalf("Run() failed: %v", err)
			}
			if !strings.HasPrefix(out.String(), "Welcome to pok assist.") {
				t.Errorf("Run() output = %q want a welcome message", out.String())
			}
		})
	}
}

func TestText(t *testing.T) {
	c := &genai.Content{Parts: []*genai.Part{{Text: "Pikachu is "}, {Text: "worth €20.00"}}}
	if got, want := text(c), "Pikachu is worth €20.00"; got != want {
		t.Errorf("text() = %q want %q", got, want)
	}
}
