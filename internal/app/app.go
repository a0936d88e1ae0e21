package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillquest/internal/router"
	"github.com/abhisek/skillquest/internal/screen"
	"github.com/abhisek/skillquest/internal/screens/home"
	"github.com/abhisek/skillquest/internal/screens/welcome"
	"github.com/abhisek/skillquest/internal/store"
	"github.com/abhisek/skillquest/internal/ui/layout"
)

// Service is the full remote surface the screens need.
type Service interface {
	home.Service
	welcome.UsernameChecker
}

// Options configures the root model.
type Options struct {
	Service  Service
	Store    *store.Store
	Username string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	opts     Options
	username string
	width    int
	height   int
}

// newAppModel creates the root model. First run (no stored username)
// starts on the welcome prompt; otherwise home.
func newAppModel(opts Options) AppModel {
	m := AppModel{opts: opts, username: opts.Username}

	if opts.Username == "" {
		m.router = router.New(welcome.New(opts.Service, opts.Store, func(username string) screen.Screen {
			return home.New(opts.Service, opts.Store, username)
		}))
	} else {
		m.router = router.New(home.New(opts.Service, opts.Store, opts.Username))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.ReplaceScreenMsg:
		// The only replace transition is welcome -> home; record the
		// freshly chosen username so the header shows it.
		if h, ok := msg.Screen.(*home.HomeScreen); ok {
			m.username = h.Username()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.username, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
		if m.router.Depth() > 1 {
			footerHints = append(footerHints, layout.KeyHint{Key: "Esc", Description: "Back"})
		}
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
