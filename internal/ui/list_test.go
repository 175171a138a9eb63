package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func springfields() selectModel {
	return newSelectModel("Multiple Springfields found:", "Press Enter to choose the best match (1)",
		[]string{"Springfield, Illinois", "Springfield, Missouri", "Springfield, Massachusetts"})
}

func press(m selectModel, msg tea.KeyMsg) (selectModel, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(selectModel), cmd
}

func TestSelectModel_EnterTakesHighlighted(t *testing.T) {
	m, cmd := press(springfields(), tea.KeyMsg{Type: tea.KeyEnter})

	if !m.done || !m.ok || m.choice != 1 {
		t.Errorf("after Enter: done=%v ok=%v choice=%d, want true true 1", m.done, m.ok, m.choice)
	}
	if cmd == nil {
		t.Error("Expected Enter to return quit command")
	}
}

func TestSelectModel_ArrowThenEnter(t *testing.T) {
	m, _ := press(springfields(), tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.choice != 2 || !m.ok {
		t.Errorf("after Down+Enter: choice=%d ok=%v, want 2 true", m.choice, m.ok)
	}
}

func TestSelectModel_DigitPicksDirectly(t *testing.T) {
	m, cmd := press(springfields(), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})

	if m.choice != 3 || !m.ok || !m.done {
		t.Errorf("after '3': choice=%d ok=%v done=%v", m.choice, m.ok, m.done)
	}
	if cmd == nil {
		t.Error("Expected digit to return quit command")
	}
}

func TestSelectModel_DigitOutOfRangeIgnored(t *testing.T) {
	m, _ := press(springfields(), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'9'}})

	if m.done {
		t.Error("out-of-range digit should not finish the selection")
	}
}

func TestSelectModel_EscCancels(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m, cmd := press(springfields(), tea.KeyMsg{Type: key})

		if !m.done || m.ok {
			t.Errorf("after %v: done=%v ok=%v, want true false", key, m.done, m.ok)
		}
		if cmd == nil {
			t.Errorf("Expected %v to return quit command", key)
		}
	}
}

func TestSelectModel_View(t *testing.T) {
	m := springfields()
	view := m.View()

	for _, want := range []string{"Multiple Springfields found:", "1. Springfield, Illinois", "Press Enter to choose the best match (1)"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.View() != "" {
		t.Errorf("View() after selection = %q, want empty", m.View())
	}
}

func TestListSelector_NoOptions(t *testing.T) {
	s := NewListSelector(strings.NewReader(""), &strings.Builder{})
	if got, ok := s.Choose("t", "p", nil); got != 0 || ok {
		t.Errorf("Choose(nil) = (%d, %v), want (0, false)", got, ok)
	}
}
