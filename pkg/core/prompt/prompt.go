// Package prompt handles reading operator input from the console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrCancelled is returned when the input stream ends before a valid
// entry was read (e.g. Ctrl-D). It is the only way out of the
// selection loop other than a valid choice.
var ErrCancelled = errors.New("prompt: input cancelled")

// Prompter reads operator input line by line and writes prompts to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine prints label and returns the next input line, trimmed.
func (p *Prompter) ReadLine(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("%w: %v", ErrCancelled, err)
	}
	return strings.TrimSpace(line), nil
}

// ChooseResult prompts for a 1-based entry in [1, resultCount] and
// returns the corresponding 0-based index. Non-integer or out-of-range
// input prints "Invalid Entry." and re-prompts.
func (p *Prompter) ChooseResult(resultCount int) (int, error) {
	for {
		entry, err := p.ReadLine("Enter title number: ")
		if err != nil {
			return 0, err
		}
		selection, err := strconv.Atoi(entry)
		if err != nil || selection < 1 || selection > resultCount {
			fmt.Fprintln(p.out, "Invalid Entry.")
			continue
		}
		return selection - 1, nil
	}
}
