package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Selector lets the user pick one of several numbered options. choice is
// 1-based; ok is false when the input was empty, malformed or cancelled, in
// which case callers take option 1.
type Selector interface {
	Choose(title, prompt string, options []string) (choice int, ok bool)
}

// NoSelection never asks and always accepts the default
type NoSelection struct{}

// Choose implements Selector
func (NoSelection) Choose(string, string, []string) (int, bool) {
	return 0, false
}

// LineSelector prints numbered options and reads the answer as a line of text.
// Suitable for plain terminals and pipes.
type LineSelector struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineSelector reads answers from in and writes options to out
func NewLineSelector(in io.Reader, out io.Writer) *LineSelector {
	return &LineSelector{in: buffered(in), out: out}
}

// Choose implements Selector
func (s *LineSelector) Choose(title, prompt string, options []string) (int, bool) {
	fmt.Fprintf(s.out, "\n%s\n\n", title)
	for i, opt := range options {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, opt)
	}
	fmt.Fprintf(s.out, "\n%s", prompt)

	line, err := readLine(s.in)
	if err != nil {
		return 0, false
	}
	return parseChoice(line)
}

// parseChoice turns user input into a 1-based choice. Range checks are left
// to the caller.
func parseChoice(input string) (int, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, false
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, false
	}
	return n, true
}

// readLine reads one line, accepting a final line without a newline
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
