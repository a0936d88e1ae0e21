package skills

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillquest/internal/catalog"
	"github.com/abhisek/skillquest/internal/router"
	"github.com/abhisek/skillquest/internal/screen"
	quizscreen "github.com/abhisek/skillquest/internal/screens/quiz"
	"github.com/abhisek/skillquest/internal/store"
	"github.com/abhisek/skillquest/internal/ui/components"
	"github.com/abhisek/skillquest/internal/ui/layout"
)

// SkillsScreen lists the skills of one catalog category; choosing one
// starts that skill's quiz.
type SkillsScreen struct {
	category string
	menu     components.Menu
}

var _ screen.Screen = (*SkillsScreen)(nil)
var _ screen.KeyHintProvider = (*SkillsScreen)(nil)

// New creates a skills screen for the named category.
func New(svc quizscreen.Service, st *store.Store, username, category string) *SkillsScreen {
	var items []components.MenuItem
	for _, skill := range catalog.Skills(category) {
		skill := skill
		items = append(items, components.MenuItem{
			Label: skill,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quizscreen.New(svc, st, username, skill),
					}
				}
			},
		})
	}

	return &SkillsScreen{
		category: category,
		menu:     components.NewMenu(items),
	}
}

func (s *SkillsScreen) Title() string {
	return s.category
}

func (s *SkillsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Take quiz"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SkillsScreen) Init() tea.Cmd {
	return nil
}

func (s *SkillsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SkillsScreen) View(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.menu.View())
}
