// Package agent implements the interactive rebalancing assistant.
//
// The assistant is a team of Gemini chats: a facilitator talks with the user
// and delegates questions to experts, that may call local functions to read
// the user's allocation.
package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader
	log         zerolog.Logger
	Facilitator *Expert
	Experts     []*Expert

	// Print writes an answer, as markdown. It defaults to a plain print.
	Print func(w io.Writer, markdown string)
}

// New creates a new Agent, writing to w and reading the user's input from r.
func New(w io.Writer, r io.Reader, log zerolog.Logger, model string, experts ...*Expert) *Agent {
	return &Agent{
		w:           w,
		r:           bufio.NewReader(r),
		log:         log.With().Str("component", "agent").Logger(),
		Experts:     experts,
		Facilitator: newFacilitator(model, experts...),
		Print:       func(w io.Writer, md string) { fmt.Fprintln(w, md) },
	}
}

// Start creates the Gemini chats of all the experts.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return fmt.Errorf("starting expert %s: %w", e.Name, err)
		}
	}
	if err := a.Facilitator.Start(ctx, client); err != nil {
		return fmt.Errorf("starting facilitator: %w", err)
	}
	return nil
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent. The prompts are
// asked first, as if typed by the user.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to afc rebalancing assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if errors.Is(err, io.EOF) {
				return nil // Clean exit on Ctrl+D
			}
			if err != nil {
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "bye" {
			return nil
		}
		if input == "" {
			continue
		}

		a.log.Debug().Str("question", input).Msg("asking facilitator")
		content, err := a.Facilitator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		a.Print(a.w, textOf(content))
	}
}

// textOf concatenates the text parts of a content.
func textOf(c *genai.Content) string {
	var b strings.Builder
	for _, p := range c.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
