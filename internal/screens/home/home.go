package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillquest/internal/catalog"
	"github.com/abhisek/skillquest/internal/router"
	"github.com/abhisek/skillquest/internal/screen"
	"github.com/abhisek/skillquest/internal/screens/dashboard"
	"github.com/abhisek/skillquest/internal/screens/profile"
	quizscreen "github.com/abhisek/skillquest/internal/screens/quiz"
	"github.com/abhisek/skillquest/internal/screens/skills"
	"github.com/abhisek/skillquest/internal/store"
	"github.com/abhisek/skillquest/internal/ui/components"
	"github.com/abhisek/skillquest/internal/ui/theme"
)

// Service is the full remote surface the home screen's children need.
type Service interface {
	quizscreen.Service
	dashboard.Service
}

// HomeScreen is the entry screen: the skill catalog by category, plus
// dashboard and profile.
type HomeScreen struct {
	menu     components.Menu
	username string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(svc Service, st *store.Store, username string) *HomeScreen {
	var items []components.MenuItem

	for _, cat := range catalog.Categories() {
		cat := cat
		items = append(items, components.MenuItem{
			Label: strings.ToUpper(cat.Name),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: skills.New(svc, st, username, cat.Name),
					}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{
			Label: "DASHBOARD",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: dashboard.New(svc, username)}
				}
			},
		},
		components.MenuItem{
			Label: "PROFILE",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: profile.New(st, username)}
				}
			},
		},
		components.MenuItem{
			Label: "EXIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)

	return &HomeScreen{menu: components.NewMenu(items), username: username}
}

// Username reports the handle this screen was built for.
func (h *HomeScreen) Username() string {
	return h.username
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	banner := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Align(lipgloss.Center).
		Render("What do you yearn to learn?")

	content := banner + "\n\n" + h.menu.View()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
