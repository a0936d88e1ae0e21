package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillquest/internal/journey"
	"github.com/abhisek/skillquest/internal/progress"
	"github.com/abhisek/skillquest/internal/router"
	"github.com/abhisek/skillquest/internal/screen"
	journeyscreen "github.com/abhisek/skillquest/internal/screens/journey"
	"github.com/abhisek/skillquest/internal/ui/components"
	"github.com/abhisek/skillquest/internal/ui/layout"
	"github.com/abhisek/skillquest/internal/ui/theme"
)

type recordsLoadedMsg struct {
	Records []progress.Record
	Err     error
}

// Service combines the aggregator's read surface with the journey surface
// needed for the "continue learning" navigation.
type Service interface {
	progress.Service
	journey.Service
}

// DashboardScreen lists every skill the user has engaged with: score,
// journey level, and progress percentage. Read-only except for navigating
// into a skill's journey.
type DashboardScreen struct {
	svc      Service
	username string

	records  []progress.Record
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a dashboard screen for the user.
func New(svc Service, username string) *DashboardScreen {
	return &DashboardScreen{svc: svc, username: username}
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Continue learning"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DashboardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := progress.Fetch(context.Background(), s.svc, s.username)
		return recordsLoadedMsg{Records: records, Err: err}
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = "Failed to fetch user data."
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.records) {
				tracker := journey.NewTracker(s.svc, s.username, s.records[s.selected].Skill)
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: journeyscreen.New(tracker)}
				}
			}
		}
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading dashboard...")
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\n" + s.errMsg)
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No skills found. Take a quiz to get started!")
	}

	var b strings.Builder
	b.WriteString("\n")

	barWidth := width / 2
	if barWidth > 50 {
		barWidth = 50
	}

	for i, r := range s.records {
		nameStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		prefix := "    "
		if i == s.selected {
			prefix = "  ▸ "
			nameStyle = nameStyle.Foreground(theme.Primary)
		}

		b.WriteString(prefix + nameStyle.Render(r.Skill))
		b.WriteString("\n")

		detail := fmt.Sprintf("Score: %d", r.Score)
		if r.Level != "" {
			detail += "   Level: " + r.Level
		}
		b.WriteString("      " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail))
		b.WriteString("\n")

		bar := components.NewProgressBar(
			"",
			r.Progress,
			"Progress: "+progress.FormatPercent(r.Progress),
			barWidth,
		)
		b.WriteString("      " + bar.View())
		b.WriteString("\n\n")
	}

	return b.String()
}
