package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Prompter asks the user for one line of free text. An empty string means
// nothing was entered (blank line, end of input or interrupt).
type Prompter interface {
	Prompt(prompt string) string
}

// LinePrompter reads the answer as a line of text
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter reads answers from in and writes prompts to out
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: buffered(in), out: out}
}

// Prompt implements Prompter
func (p *LinePrompter) Prompt(prompt string) string {
	fmt.Fprint(p.out, prompt)
	line, err := readLine(p.in)
	if err != nil {
		fmt.Fprintln(p.out)
		return ""
	}
	return strings.TrimSpace(line)
}

// promptModel is the bubbletea model behind TextPrompter
type promptModel struct {
	input     textinput.Model
	submitted bool
	done      bool
}

func newPromptModel(prompt string) promptModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "e.g. Los Angeles, CA or 서울"
	ti.CharLimit = 100
	ti.Width = 40
	ti.Focus()
	return promptModel{input: ti}
}

// Init implements tea.Model
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.submitted, m.done = true, true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC, tea.KeyCtrlD:
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m promptModel) View() string {
	if m.done {
		return ""
	}
	return m.input.View() + "\n"
}

// Value returns the entered text, or "" when the prompt was cancelled
func (m promptModel) Value() string {
	if !m.submitted {
		return ""
	}
	return strings.TrimSpace(m.input.Value())
}

// TextPrompter asks with an editable bubbletea text input
type TextPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTextPrompter runs the input on the given terminal streams
func NewTextPrompter(in io.Reader, out io.Writer) *TextPrompter {
	return &TextPrompter{in: in, out: out}
}

// Prompt implements Prompter
func (p *TextPrompter) Prompt(prompt string) string {
	final, err := tea.NewProgram(newPromptModel(prompt),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	).Run()
	if err != nil {
		return ""
	}
	m, ok := final.(promptModel)
	if !ok {
		return ""
	}
	return m.Value()
}
