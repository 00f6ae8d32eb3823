package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/raneesh-edsmartly/socratic/internal/ui/theme"
)

// OptionList is an answer selector for a multiple-choice question.
// It remembers the chosen option but never reveals correctness; grading
// happens elsewhere, after the whole quiz is finished.
type OptionList struct {
	Options []string
	Cursor  int
	Chosen  int // -1 until an option is picked
}

// NewOptionList creates a selector over the given options. chosen may be
// -1 (nothing picked yet) or a previously picked index.
func NewOptionList(options []string, chosen int) OptionList {
	cursor := 0
	if chosen >= 0 && chosen < len(options) {
		cursor = chosen
	}
	return OptionList{
		Options: options,
		Cursor:  cursor,
		Chosen:  chosen,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "enter", " ":
		o.Chosen = o.Cursor
	}

	return o, nil
}

// View renders the option list.
func (o OptionList) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F"}

	var s string
	for i, opt := range o.Options {
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}

		marker := "( )"
		if i == o.Chosen {
			marker = "(●)"
		}

		prefix := "  "
		if i == o.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == o.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Accent).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
