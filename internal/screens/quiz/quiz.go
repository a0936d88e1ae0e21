package quiz

import (
	"context"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillquest/internal/journey"
	sess "github.com/abhisek/skillquest/internal/quiz"
	"github.com/abhisek/skillquest/internal/router"
	"github.com/abhisek/skillquest/internal/screen"
	journeyscreen "github.com/abhisek/skillquest/internal/screens/journey"
	"github.com/abhisek/skillquest/internal/store"
	"github.com/abhisek/skillquest/internal/ui/components"
	"github.com/abhisek/skillquest/internal/ui/layout"
)

// Service is everything the quiz screen needs from the remote service:
// the attempt surface plus the journey surface handed to the follow-up
// screen.
type Service interface {
	sess.Service
	journey.Service
}

// QuizScreen drives one quiz attempt: eligibility gate, question
// stepping, scoring, and the handoff to the learning journey.
type QuizScreen struct {
	svc      Service
	st       *store.Store
	username string
	skill    string

	session  *sess.Session
	options  components.OptionList
	blockMsg string
	errMsg   string
	hintMsg  string

	submitErr string

	// seq tags in-flight requests; responses from an abandoned load are
	// dropped so navigating away never resurrects stale state.
	seq int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen for (username, skill). st may be nil; the
// local attempt log is best-effort.
func New(svc Service, st *store.Store, username, skill string) *QuizScreen {
	return &QuizScreen{
		svc:      svc,
		st:       st,
		username: username,
		skill:    skill,
	}
}

func (s *QuizScreen) Title() string {
	return "Quiz: " + s.skill
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.session == nil || s.session.Phase() != sess.PhaseActive {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Highlight"},
		{Key: "Enter", Description: "Select"},
	}
	if s.session.Index() > 0 {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Back"})
	}
	if s.session.IsLast() {
		hints = append(hints, layout.KeyHint{Key: "→", Description: "Submit"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "→", Description: "Next"})
	}
	return hints
}

func (s *QuizScreen) Init() tea.Cmd {
	s.seq++
	return s.loadSession(s.seq)
}

// loadSession runs the gate check and question fetch off the UI loop.
// The gate strictly precedes the fetch; a denial never requests questions.
func (s *QuizScreen) loadSession(seq int) tea.Cmd {
	return func() tea.Msg {
		session, decision, err := sess.LoadSession(context.Background(), s.svc, s.username, s.skill)
		return sessionLoadedMsg{Session: session, Decision: decision, Err: err, Seq: seq}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionLoadedMsg:
		return s.handleLoaded(msg)

	case scoreSubmittedMsg:
		return s.handleSubmitted(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleLoaded(msg sessionLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Seq != s.seq {
		return s, nil
	}

	if msg.Err != nil {
		s.errMsg = "Failed to load quiz: " + msg.Err.Error()
		return s, nil
	}
	if !msg.Decision.Eligible {
		s.blockMsg = msg.Decision.Message
		return s, nil
	}

	s.session = msg.Session
	s.syncOptions()
	return s, nil
}

func (s *QuizScreen) handleSubmitted(msg scoreSubmittedMsg) (screen.Screen, tea.Cmd) {
	if msg.Seq != s.seq {
		return s, nil
	}

	if msg.Err != nil {
		// The computed score stays on screen; submission is one-shot and
		// is not retried.
		s.submitErr = "Failed to submit score."
		return s, nil
	}

	tracker := journey.NewTracker(s.svc, s.username, s.skill)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: journeyscreen.New(tracker)}
	}
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Blocked and error states are terminal for this screen; any
	// navigation happens via esc.
	if s.blockMsg != "" || s.errMsg != "" {
		if key == "esc" || key == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.session == nil {
		return s, nil
	}

	if s.session.Phase() == sess.PhaseScored {
		// Not interactive once scored; the journey handoff happens when
		// submission confirms.
		return s, nil
	}

	switch key {
	case "right", "n":
		return s.advance()
	case "left", "b":
		if s.session.Back() {
			s.hintMsg = ""
			s.syncOptions()
		}
		return s, nil
	case "enter", " ", "space":
		var cmd tea.Cmd
		s.options, cmd = s.options.Update(msg)
		s.recordChoice()
		return s, cmd
	case "up", "down", "k", "j":
		var cmd tea.Cmd
		s.options, cmd = s.options.Update(msg)
		return s, cmd
	}

	// Number keys choose directly.
	if n, err := strconv.Atoi(key); err == nil {
		if n >= 1 && n <= len(s.session.Question().Options) {
			s.options.Choose(n - 1)
			s.recordChoice()
		}
		return s, nil
	}

	return s, nil
}

// advance applies the Next guard: without a recorded answer the session
// rejects the move and the user is prompted to select first. On the last
// question Next finalizes the score and fires the one-shot submission.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	finished, err := s.session.Next()
	if err != nil {
		s.hintMsg = "Please select an option before proceeding."
		return s, nil
	}
	s.hintMsg = ""

	if finished {
		s.seq++
		return s, s.submitScore(s.seq)
	}

	s.syncOptions()
	return s, nil
}

// submitScore uploads the final score and records the attempt locally.
// Issued exactly once, from the transition into the scored phase.
func (s *QuizScreen) submitScore(seq int) tea.Cmd {
	score := s.session.Score()
	total := s.session.Len()
	return func() tea.Msg {
		ctx := context.Background()
		err := s.svc.SubmitScore(ctx, s.username, s.skill, score)

		if s.st != nil {
			// Local history is best-effort; a failed write never blocks
			// the attempt flow.
			_ = s.st.AppendAttempt(ctx, store.Attempt{
				Username:  s.username,
				Skill:     s.skill,
				Score:     score,
				Total:     total,
				Submitted: err == nil,
			})
		}

		return scoreSubmittedMsg{Err: err, Seq: seq}
	}
}

// recordChoice copies the option list's chosen entry into the ledger.
func (s *QuizScreen) recordChoice() {
	if opt := s.options.ChosenOption(); opt != "" {
		if err := s.session.Select(opt); err == nil {
			s.hintMsg = ""
		}
	}
}

// syncOptions rebuilds the option list for the current question,
// restoring any answer already in the ledger.
func (s *QuizScreen) syncOptions() {
	q := s.session.Question()
	s.options = components.NewOptionList(q.Options, s.session.Selected())
}
