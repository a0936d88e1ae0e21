package profile

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillquest/internal/router"
	"github.com/abhisek/skillquest/internal/screen"
	"github.com/abhisek/skillquest/internal/store"
	"github.com/abhisek/skillquest/internal/ui/layout"
	"github.com/abhisek/skillquest/internal/ui/theme"
)

type attemptsLoadedMsg struct {
	Attempts []store.Attempt
	Err      error
}

// ProfileScreen shows the local identity and this device's quiz attempt
// history. The history is local-only: the service keeps just the latest
// score per skill.
type ProfileScreen struct {
	st       *store.Store
	username string

	attempts []store.Attempt
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a profile screen. st may be nil, in which case only the
// username is shown.
func New(st *store.Store, username string) *ProfileScreen {
	return &ProfileScreen{st: st, username: username}
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProfileScreen) Init() tea.Cmd {
	if s.st == nil {
		s.loaded = true
		return nil
	}
	return func() tea.Msg {
		attempts, err := s.st.RecentAttempts(context.Background(), 20)
		return attemptsLoadedMsg{Attempts: attempts, Err: err}
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "q" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Text).Render("Username: ") +
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(s.username))
	b.WriteString("\n\n")

	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Recent attempts"))
	b.WriteString("\n\n")

	switch {
	case !s.loaded:
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading..."))
	case s.errMsg != "":
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	case len(s.attempts) == 0:
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("No attempts yet on this device."))
	default:
		for _, a := range s.attempts {
			date := a.TakenAt.Format("Jan 02, 2006")
			line := fmt.Sprintf("  %-12s  %-40s  %d/%d", date, a.Skill, a.Score, a.Total)
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
			if !a.Submitted {
				b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Error).Render("(upload failed)"))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
