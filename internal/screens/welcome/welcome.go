package welcome

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillquest/internal/router"
	"github.com/abhisek/skillquest/internal/screen"
	"github.com/abhisek/skillquest/internal/store"
	"github.com/abhisek/skillquest/internal/ui/components"
	"github.com/abhisek/skillquest/internal/ui/layout"
	"github.com/abhisek/skillquest/internal/ui/theme"
)

// UsernameChecker is the remote uniqueness check for new handles.
type UsernameChecker interface {
	CheckUsername(ctx context.Context, username string) (bool, error)
}

// usernameCheckedMsg carries the result of the uniqueness check and the
// local save.
type usernameCheckedMsg struct {
	Username string
	Exists   bool
	Err      error
}

// WelcomeScreen is the one-time first-run prompt: pick a username, verify
// it is unused server-side, persist it locally, then hand off to home.
// Once a username exists on disk this screen is never shown again.
type WelcomeScreen struct {
	checker     UsernameChecker
	st          *store.Store
	homeFactory func(username string) screen.Screen

	input    components.TextInput
	errMsg   string
	checking bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates the welcome screen. homeFactory builds the screen shown
// after the username is established.
func New(checker UsernameChecker, st *store.Store, homeFactory func(username string) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		checker:     checker,
		st:          st,
		homeFactory: homeFactory,
		input:       components.NewTextInput("Enter your username...", 32),
	}
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case usernameCheckedMsg:
		w.checking = false
		switch {
		case msg.Err != nil:
			w.errMsg = "Error checking username."
		case msg.Exists:
			w.errMsg = "Username already exists. Please choose another."
		default:
			home := w.homeFactory(msg.Username)
			return w, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: home}
			}
		}
		return w, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return w, w.submit()
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

// submit validates the handle client-side, then checks server-side
// uniqueness and persists it.
func (w *WelcomeScreen) submit() tea.Cmd {
	if w.checking {
		return nil
	}

	username := strings.TrimSpace(w.input.Value())
	if username == "" {
		w.errMsg = "Username cannot be empty."
		return nil
	}

	w.checking = true
	w.errMsg = ""

	return func() tea.Msg {
		ctx := context.Background()
		exists, err := w.checker.CheckUsername(ctx, username)
		if err != nil || exists {
			return usernameCheckedMsg{Username: username, Exists: exists, Err: err}
		}
		if w.st != nil {
			if err := w.st.SaveUsername(ctx, username); err != nil {
				return usernameCheckedMsg{Username: username, Err: err}
			}
		}
		return usernameCheckedMsg{Username: username}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Welcome to SkillQuest"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Render("Enter your username"))
	b.WriteString("\n\n")
	b.WriteString(w.input.View())
	b.WriteString("\n")

	if w.checking {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render("Checking..."))
	} else if w.errMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(w.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
