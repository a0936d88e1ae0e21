package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillquest/internal/ui/theme"
)

// OptionList is the answer selector for a quiz question: a cursor moves
// over the options, and one option may be marked as the recorded choice.
// Unlike a reveal-style chooser it never shows which option is correct —
// scoring happens only at the end of the quiz.
type OptionList struct {
	Options []string
	Cursor  int
	// Chosen is the index of the recorded answer, or -1 when the
	// question is unanswered.
	Chosen int
}

// NewOptionList creates an option list. chosen carries a previously
// recorded answer so a revisited question is never blank; pass "" for an
// unanswered question.
func NewOptionList(options []string, chosen string) OptionList {
	l := OptionList{
		Options: options,
		Chosen:  -1,
	}
	for i, o := range options {
		if chosen != "" && o == chosen {
			l.Cursor = i
			l.Chosen = i
			break
		}
	}
	return l
}

// Init returns nil.
func (l OptionList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and choosing. Choosing an option that is
// already chosen leaves the list unchanged.
func (l OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if l.Cursor > 0 {
			l.Cursor--
		}
	case "down", "j":
		if l.Cursor < len(l.Options)-1 {
			l.Cursor++
		}
	case "enter", " ", "space":
		l.Chosen = l.Cursor
	}

	return l, nil
}

// Choose marks the option at index as the recorded answer.
func (l *OptionList) Choose(index int) {
	if index >= 0 && index < len(l.Options) {
		l.Cursor = index
		l.Chosen = index
	}
}

// ChosenOption returns the recorded answer text, or "" if none.
func (l OptionList) ChosenOption() string {
	if l.Chosen < 0 || l.Chosen >= len(l.Options) {
		return ""
	}
	return l.Options[l.Chosen]
}

// View renders the option list.
func (l OptionList) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F", "G", "H"}

	var s string
	for i, opt := range l.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(labels) {
			label = labels[i]
		}

		prefix := "  "
		if i == l.Cursor {
			prefix = "▸ "
		}

		marker := "( )"
		if i == l.Chosen {
			marker = "(●)"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case i == l.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == l.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
