package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/skillquest/internal/quiz"
	"github.com/abhisek/skillquest/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch {
	case s.blockMsg != "":
		return renderCentered(width, height, lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(width-8).
			Align(lipgloss.Center).
			Render(s.blockMsg))

	case s.errMsg != "":
		return renderCentered(width, height, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(s.errMsg))

	case s.session == nil:
		return renderCentered(width, height, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Loading quiz..."))

	case s.session.Phase() == sess.PhaseScored:
		return s.renderScored(width, height)

	default:
		return s.renderQuestion(width, height)
	}
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	q := s.session.Question()

	var b strings.Builder

	counter := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", s.session.Index()+1, s.session.Len()))
	b.WriteString(counter)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))

	if s.hintMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.hintMsg))
	}

	return b.String()
}

func (s *QuizScreen) renderScored(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Your Score: %d / %d", s.session.Score(), s.session.Len())))
	b.WriteString("\n\n")

	if s.submitErr != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.submitErr))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Loading your learning journey... This may take a moment."))
	}

	return renderCentered(width, height, b.String())
}

func renderCentered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
