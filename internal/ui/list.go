package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	listWidth     = 72
	listMaxHeight = 14
)

// optionItem wraps one numbered option for use in a list
type optionItem struct {
	number int
	label  string
}

// FilterValue implements list.Item
func (o optionItem) FilterValue() string {
	return o.label
}

// Title implements list.DefaultItem
func (o optionItem) Title() string {
	return fmt.Sprintf("%d. %s", o.number, o.label)
}

// Description implements list.DefaultItem
func (o optionItem) Description() string {
	return ""
}

// selectModel is the bubbletea model behind ListSelector
type selectModel struct {
	list   list.Model
	prompt string
	count  int
	choice int
	ok     bool
	done   bool
}

func newSelectModel(title, prompt string, options []string) selectModel {
	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = optionItem{number: i + 1, label: opt}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	height := len(options) + 4
	if height > listMaxHeight {
		height = listMaxHeight
	}

	l := list.New(items, delegate, listWidth, height)
	l.Title = title
	l.Styles.Title = titleStyle
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return selectModel{list: l, prompt: prompt, count: len(options)}
}

// Init implements tea.Model
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			return m.finish(m.list.Index()+1, true)
		case tea.KeyEsc, tea.KeyCtrlC:
			return m.finish(0, false)
		case tea.KeyRunes:
			// Digits pick an option directly
			if len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '9' {
				n := int(msg.Runes[0] - '0')
				if n <= m.count {
					return m.finish(n, true)
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) finish(choice int, ok bool) (tea.Model, tea.Cmd) {
	m.choice, m.ok, m.done = choice, ok, true
	return m, tea.Quit
}

// View implements tea.Model
func (m selectModel) View() string {
	if m.done {
		return ""
	}
	return m.list.View() + "\n" + promptStyle.Render(m.prompt)
}

// ListSelector shows options as an arrow-key navigable list
type ListSelector struct {
	in  io.Reader
	out io.Writer
}

// NewListSelector runs the list on the given terminal streams
func NewListSelector(in io.Reader, out io.Writer) *ListSelector {
	return &ListSelector{in: in, out: out}
}

// Choose implements Selector
func (s *ListSelector) Choose(title, prompt string, options []string) (int, bool) {
	if len(options) == 0 {
		return 0, false
	}

	p := tea.NewProgram(newSelectModel(title, prompt, options),
		tea.WithInput(s.in),
		tea.WithOutput(s.out),
	)
	final, err := p.Run()
	if err != nil {
		return 0, false
	}

	m, ok := final.(selectModel)
	if !ok || !m.ok {
		return 0, false
	}
	fmt.Fprintln(s.out, successStyle.Render(fmt.Sprintf("Selected: %s", options[m.choice-1])))
	return m.choice, true
}
