package journey

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillquest/internal/api"
	"github.com/abhisek/skillquest/internal/journey"
	"github.com/abhisek/skillquest/internal/router"
	"github.com/abhisek/skillquest/internal/screen"
	"github.com/abhisek/skillquest/internal/ui/layout"
	"github.com/abhisek/skillquest/internal/ui/theme"
)

// journeyLoadedMsg is sent when the journey fetch resolves.
type journeyLoadedMsg struct {
	Err error
	Seq int
}

// toggleDoneMsg is sent when a chapter completion toggle resolves. On
// success the tracker has already applied the flip; on failure it hasn't.
type toggleDoneMsg struct {
	Index int
	Err   error
	Seq   int
}

// JourneyScreen renders the chapter list for one (user, skill) pair and
// applies completion toggles through the tracker.
type JourneyScreen struct {
	tracker *journey.Tracker

	chapters []api.Chapter
	level    string
	loaded   bool
	errMsg   string
	// toggleErr is transient: shown until the next successful action.
	toggleErr string

	cursor       int
	cursorLine   int
	scrollOffset int
	expanded     map[int]bool
	inFlight     map[int]bool

	seq int
}

var _ screen.Screen = (*JourneyScreen)(nil)
var _ screen.KeyHintProvider = (*JourneyScreen)(nil)

// New creates a journey screen backed by the given tracker.
func New(tracker *journey.Tracker) *JourneyScreen {
	return &JourneyScreen{
		tracker:  tracker,
		expanded: make(map[int]bool),
		inFlight: make(map[int]bool),
	}
}

func (s *JourneyScreen) Title() string {
	return "Learning Journey: " + s.tracker.Skill()
}

func (s *JourneyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "Space", Description: "Toggle complete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *JourneyScreen) Init() tea.Cmd {
	s.seq++
	seq := s.seq
	return func() tea.Msg {
		err := s.tracker.Load(context.Background())
		return journeyLoadedMsg{Err: err, Seq: seq}
	}
}

func (s *JourneyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case journeyLoadedMsg:
		if msg.Seq != s.seq {
			return s, nil
		}
		if msg.Err != nil {
			if api.IsEmpty(msg.Err) {
				s.errMsg = "Learning journey not found for this skill."
			} else {
				s.errMsg = "Failed to fetch learning journey."
			}
			s.loaded = true
			return s, nil
		}
		s.chapters = s.tracker.Chapters()
		s.level = s.tracker.Level()
		s.loaded = true
		return s, nil

	case toggleDoneMsg:
		if msg.Seq != s.seq {
			return s, nil
		}
		delete(s.inFlight, msg.Index)
		if msg.Err != nil {
			s.toggleErr = "Failed to update progress."
			return s, nil
		}
		s.toggleErr = ""
		s.chapters = s.tracker.Chapters()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *JourneyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.chapters)-1 {
			s.cursor++
		}
	case "enter":
		if len(s.chapters) > 0 {
			s.expanded[s.cursor] = !s.expanded[s.cursor]
		}
	case " ", "space":
		return s, s.toggleCurrent()
	}
	return s, nil
}

// toggleCurrent flips the highlighted chapter's completion flag. The flip
// is only reflected locally once the service acknowledges it; meanwhile
// further toggles of the same chapter are ignored rather than queued.
func (s *JourneyScreen) toggleCurrent() tea.Cmd {
	if s.cursor >= len(s.chapters) || s.inFlight[s.cursor] {
		return nil
	}

	index := s.cursor
	newValue := !s.chapters[index].Completed
	s.inFlight[index] = true
	seq := s.seq

	return func() tea.Msg {
		err := s.tracker.ToggleCompletion(context.Background(), index, newValue)
		return toggleDoneMsg{Index: index, Err: err, Seq: seq}
	}
}

func (s *JourneyScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading learning journey...")
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\n" + s.errMsg)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Your Learning Journey: %s (%s)", s.level, s.tracker.Skill())))
	b.WriteString("\n")
	if s.toggleErr != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.toggleErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	lines := s.renderChapterLines(width)
	headerLines := 3
	visible := height - headerLines
	if visible < 1 {
		visible = 1
	}
	s.adjustScroll(lines, visible)

	end := s.scrollOffset + visible
	if end > len(lines) {
		end = len(lines)
	}
	b.WriteString(strings.Join(lines[s.scrollOffset:end], "\n"))

	return b.String()
}

// renderChapterLines renders every chapter as one or more lines and
// records where the cursor's line landed for scrolling.
func (s *JourneyScreen) renderChapterLines(width int) []string {
	var lines []string
	s.cursorLine = 0

	for i, ch := range s.chapters {
		marker := "[ ]"
		markerStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if ch.Completed {
			marker = "[✓]"
			markerStyle = lipgloss.NewStyle().Foreground(theme.Success)
		}

		title := fmt.Sprintf("Chapter %d: %s", ch.Number, ch.Title)
		titleStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		prefix := "  "
		if i == s.cursor {
			prefix = "▸ "
			titleStyle = titleStyle.Foreground(theme.Primary)
			s.cursorLine = len(lines)
		}
		if s.inFlight[i] {
			title += " …"
		}

		lines = append(lines, prefix+markerStyle.Render(marker)+" "+titleStyle.Render(title))

		if s.expanded[i] {
			dim := lipgloss.NewStyle().Foreground(theme.TextDim).Width(width - 8)
			lines = append(lines, "      "+dim.Render(ch.Description))
			if len(ch.Topics) > 0 {
				lines = append(lines, "      "+dim.Render("Topics: "+strings.Join(ch.Topics, ", ")))
			}
			for _, r := range ch.Resources {
				lines = append(lines, "      "+lipgloss.NewStyle().Foreground(theme.Secondary).Underline(true).Render(r))
			}
			if ch.Summary != "" {
				lines = append(lines, "      "+dim.Render("Summary: "+ch.Summary))
			}
			lines = append(lines, "")
		}
	}

	return lines
}

// adjustScroll keeps the cursor's line inside the visible window.
func (s *JourneyScreen) adjustScroll(lines []string, visible int) {
	if s.cursorLine < s.scrollOffset {
		s.scrollOffset = s.cursorLine
	}
	if s.cursorLine >= s.scrollOffset+visible {
		s.scrollOffset = s.cursorLine - visible + 1
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
	if s.scrollOffset >= len(lines) {
		s.scrollOffset = 0
	}
}
