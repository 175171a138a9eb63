package ui

import (
	"bufio"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is an interactive terminal
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Mode selects how the user is asked
type Mode int

const (
	ModeAuto Mode = iota // TUI on a terminal, plain lines otherwise
	ModeLine             // Always plain lines
	ModeNone             // Never ask
)

// Console hands out selectors and prompters that share one input stream
type Console struct {
	mode   Mode
	in     *os.File
	out    *os.File
	reader *bufio.Reader
}

// NewConsole resolves ModeAuto against the given streams
func NewConsole(mode Mode, in, out *os.File) *Console {
	if mode == ModeAuto && !(IsTerminal(in) && IsTerminal(out)) {
		mode = ModeLine
	}
	return &Console{mode: mode, in: in, out: out, reader: bufio.NewReader(in)}
}

// Mode returns the effective mode
func (c *Console) Mode() Mode {
	return c.mode
}

// Selector returns the selector for the console's mode
func (c *Console) Selector() Selector {
	switch c.mode {
	case ModeNone:
		return NoSelection{}
	case ModeAuto:
		return NewListSelector(c.in, c.out)
	default:
		return NewLineSelector(c.reader, c.out)
	}
}

// Prompter returns the prompter for the console's mode. ModeNone yields a
// prompter that never reads.
func (c *Console) Prompter() Prompter {
	switch c.mode {
	case ModeNone:
		return silentPrompter{}
	case ModeAuto:
		return NewTextPrompter(c.in, c.out)
	default:
		return NewLinePrompter(c.reader, c.out)
	}
}

type silentPrompter struct{}

func (silentPrompter) Prompt(string) string { return "" }

// buffered reuses r when it is already a *bufio.Reader
func buffered(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}
