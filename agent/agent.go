package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"google.golang.org/genai"
)

// quitWords end a session.
var quitWords = []string{"bye", "exit", "quit"}

// Agent is an interactive session between the user and a facilitator that
// delegates questions to experts.
type Agent struct {
	out         io.Writer
	in          *bufio.Scanner
	Facilitator *Expert
	Experts     []*Expert
	// Render formats the markdown answers before printing them. Default: as is.
	Render func(markdown string) string
}

// New returns an agent that reads questions from r and writes answers to w.
func New(w io.Writer, r io.Reader, model string, experts ...*Expert) *Agent {
	return &Agent{
		out:         w,
		in:          bufio.NewScanner(r),
		Experts:     experts,
		Facilitator: newFacilitator(model, experts...),
		Render:      func(md string) string { return md },
	}
}

// Start opens the chats of the facilitator and of every expert.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range append(slices.Clone(a.Experts), a.Facilitator) {
		if err := e.Start(ctx, client); err != nil {
			return fmt.Errorf("cannot start %s: %w", e.Name, err)
		}
	}
	return nil
}

// next returns the next question: queued ones first, then lines read from
// the input. It returns false at the end of the input.
func (a *Agent) next(queued *[]string) (string, bool) {
	for len(*queued) > 0 {
		q := strings.TrimSpace((*queued)[0])
		*queued = (*queued)[1:]
		if q != "" {
			fmt.Fprintln(a.out, q)
			return q, true
		}
	}
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

// Run reads questions until the input ends or the user says bye. Chats are
// opened on the first question.
func (a *Agent) Run(ctx context.Context, client *genai.Client, questions ...string) error {
	fmt.Fprintln(a.out, "Welcome to pok assist. Type 'bye' to exit.")
	for {
		fmt.Fprint(a.out, "assist> ")
		q, ok := a.next(&questions)
		if !ok {
			fmt.Fprintln(a.out)
			return a.in.Err()
		}
		switch {
		case q == "":
			continue
		case slices.Contains(quitWords, strings.ToLower(q)):
			return nil
		}

		if a.Facilitator.chat == nil {
			if err := a.Start(ctx, client); err != nil {
				return err
			}
		}
		answer, err := a.Facilitator.Ask(ctx, &genai.Part{Text: q})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, a.Render(text(answer)))
	}
}

// text concatenates the text parts of c.
func text(c *genai.Content) string {
	var b strings.Builder
	for _, p := range c.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
