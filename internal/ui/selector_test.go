package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestLineSelector_Choose(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{"number", "2\n", 2, true},
		{"padded number", "  3  \n", 3, true},
		{"no trailing newline", "1", 1, true},
		{"empty line", "\n", 0, false},
		{"end of input", "", 0, false},
		{"not a number", "two\n", 0, false},
		{"out of range is returned as typed", "7\n", 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			s := NewLineSelector(strings.NewReader(tt.input), &out)

			got, ok := s.Choose("Multiple locations found for 'Springfield':", "Pick: ", []string{"A", "B", "C"})
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Choose() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLineSelector_PrintsNumberedOptions(t *testing.T) {
	var out bytes.Buffer
	s := NewLineSelector(strings.NewReader("\n"), &out)
	s.Choose("Multiple Springfields found:", "Select: ", []string{"Springfield, Illinois", "Springfield, Missouri"})

	want := "\nMultiple Springfields found:\n\n1. Springfield, Illinois\n2. Springfield, Missouri\n\nSelect: "
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestLineSelector_SharesStreamWithPrompter(t *testing.T) {
	in := buffered(strings.NewReader("Springfield\n3\n"))
	var out bytes.Buffer

	p := NewLinePrompter(in, &out)
	s := NewLineSelector(in, &out)

	if got := p.Prompt("Enter location: "); got != "Springfield" {
		t.Fatalf("Prompt() = %q", got)
	}
	if got, ok := s.Choose("t", "p", []string{"a", "b", "c"}); got != 3 || !ok {
		t.Errorf("Choose() = (%d, %v), want (3, true)", got, ok)
	}
}

func TestNoSelection(t *testing.T) {
	if got, ok := (NoSelection{}).Choose("t", "p", []string{"a", "b"}); got != 0 || ok {
		t.Errorf("NoSelection.Choose() = (%d, %v), want (0, false)", got, ok)
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"1", 1, true},
		{" 2 ", 2, true},
		{"", 0, false},
		{"   ", 0, false},
		{"1.5", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseChoice(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parseChoice(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}
