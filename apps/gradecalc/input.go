package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// lineReader prompts for and reads one line of user input.
type lineReader interface {
	ReadLine(prompt string) (string, error)
}

// scanReader reads lines from any io.Reader (pipes, files, tests).
type scanReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newScanReader(in io.Reader, out io.Writer) *scanReader {
	return &scanReader{scanner: bufio.NewScanner(in), out: out}
}

func (r *scanReader) ReadLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.scanner.Text()), nil
}

// termReader reads lines from a raw-mode terminal, with line editing and history.
type termReader struct {
	t *term.Terminal
}

func (r *termReader) ReadLine(prompt string) (string, error) {
	r.t.SetPrompt(prompt)
	line, err := r.t.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
