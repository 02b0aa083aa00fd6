// Package prompt implements the interactive console boundary: choosing
// input files and naming outputs.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrCancelled indicates the user dismissed a prompt without an answer.
var ErrCancelled = errors.New("prompt: cancelled")

// Console asks questions on Out and reads one line per answer from In.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole returns a console reading answers from in and writing
// questions to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Ask writes question and returns the trimmed answer. An empty answer or a
// closed input yields ErrCancelled.
func (c *Console) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(c.out, question); err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("prompt: %w", err)
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return "", ErrCancelled
	}
	return answer, nil
}

// PickPath asks for the spectrum file to process.
func (c *Console) PickPath(ctx context.Context) (string, error) {
	return c.Ask(ctx, "Choose a file: ")
}

// Name asks how the result for source should be named.
func (c *Console) Name(ctx context.Context, source string) (string, error) {
	return c.Ask(ctx, fmt.Sprintf("How should %s be renamed? ", source))
}
