package quiz

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillquest/internal/api"
	sess "github.com/abhisek/skillquest/internal/quiz"
	"github.com/abhisek/skillquest/internal/router"
	journeyscreen "github.com/abhisek/skillquest/internal/screens/journey"
)

// mockService implements Service for quiz screen tests.
type mockService struct {
	eligibility    api.Eligibility
	eligibilityErr error
	questions      []api.Question

	questionsCalls int
	submitted      []int
	submitErr      error
}

func (m *mockService) CanTakeQuiz(_ context.Context, _, _ string) (api.Eligibility, error) {
	return m.eligibility, m.eligibilityErr
}

func (m *mockService) Questions(_ context.Context, _ string) ([]api.Question, error) {
	m.questionsCalls++
	return m.questions, nil
}

func (m *mockService) SubmitScore(_ context.Context, _, _ string, score int) error {
	if m.submitErr != nil {
		return m.submitErr
	}
	m.submitted = append(m.submitted, score)
	return nil
}

func (m *mockService) LearningJourney(_ context.Context, _, _ string) (*api.Journey, error) {
	return &api.Journey{Level: "Beginner"}, nil
}

func (m *mockService) UpdateProgress(_ context.Context, _, _ string, _ int, _ bool) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func eligibleService() *mockService {
	return &mockService{
		eligibility: api.Eligibility{CanTake: true},
		questions: []api.Question{
			{Text: "Q1?", Options: []string{"a", "b"}, CorrectAnswer: "a"},
			{Text: "Q2?", Options: []string{"a", "b"}, CorrectAnswer: "b"},
		},
	}
}

// loadScreen runs Init's command synchronously and feeds the result back.
func loadScreen(t *testing.T, svc *mockService) *QuizScreen {
	t.Helper()
	s := New(svc, nil, "alice", "Python")
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init should start the load")
	}
	s.Update(cmd())
	return s
}

func TestLoadActiveSession(t *testing.T) {
	s := loadScreen(t, eligibleService())

	if s.session == nil {
		t.Fatal("session should be loaded")
	}
	if s.session.Phase() != sess.PhaseActive {
		t.Errorf("Phase = %d, want PhaseActive", s.session.Phase())
	}
	if s.blockMsg != "" || s.errMsg != "" {
		t.Errorf("unexpected block %q / error %q", s.blockMsg, s.errMsg)
	}
}

func TestDeniedAttemptShowsMessageVerbatim(t *testing.T) {
	svc := &mockService{
		eligibility: api.Eligibility{
			CanTake: false,
			Message: "You have already taken this quiz. Complete your learning journey to retake it.",
		},
	}
	s := loadScreen(t, svc)

	if s.session != nil {
		t.Fatal("denied attempt must not carry a session")
	}
	if s.blockMsg != "You have already taken this quiz. Complete your learning journey to retake it." {
		t.Errorf("blockMsg = %q, want the service text verbatim", s.blockMsg)
	}
	if svc.questionsCalls != 0 {
		t.Errorf("questions fetched %d times after denial, want 0", svc.questionsCalls)
	}
}

func TestLoadFailureShowsError(t *testing.T) {
	svc := &mockService{eligibilityErr: errors.New("connection refused")}
	s := loadScreen(t, svc)

	if s.errMsg == "" {
		t.Fatal("load failure should set the error message")
	}
	if s.session != nil {
		t.Fatal("failed load must not carry a session")
	}
}

func TestStaleLoadResponseDropped(t *testing.T) {
	s := loadScreen(t, eligibleService())

	// A response tagged with an old sequence number must be ignored.
	s.Update(sessionLoadedMsg{Err: errors.New("stale"), Seq: s.seq - 1})
	if s.errMsg != "" {
		t.Errorf("stale response mutated the screen: %q", s.errMsg)
	}
}

func TestAdvanceWithoutSelectionShowsHint(t *testing.T) {
	s := loadScreen(t, eligibleService())

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})

	if s.hintMsg != "Please select an option before proceeding." {
		t.Errorf("hintMsg = %q", s.hintMsg)
	}
	if s.session.Index() != 0 {
		t.Errorf("Index = %d, rejected advance must not move", s.session.Index())
	}
}

func TestNumberKeySelectsAndHintClears(t *testing.T) {
	s := loadScreen(t, eligibleService())

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.hintMsg == "" {
		t.Fatal("expected hint")
	}

	s.Update(keyPress('1'))
	if s.hintMsg != "" {
		t.Errorf("hint should clear after a selection, got %q", s.hintMsg)
	}
	if s.session.Selected() != "a" {
		t.Errorf("Selected = %q, want %q", s.session.Selected(), "a")
	}
}

func TestFullAttemptSubmitsOnce(t *testing.T) {
	svc := eligibleService()
	s := loadScreen(t, svc)

	s.Update(keyPress('1')) // "a", correct
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(keyPress('2')) // "b", correct
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyRight})

	if s.session.Phase() != sess.PhaseScored {
		t.Fatalf("Phase = %d, want PhaseScored", s.session.Phase())
	}
	if s.session.Score() != 2 {
		t.Errorf("Score = %d, want 2", s.session.Score())
	}
	if cmd == nil {
		t.Fatal("finishing should fire the submission command")
	}

	msg := cmd()
	if len(svc.submitted) != 1 || svc.submitted[0] != 2 {
		t.Errorf("submitted = %v, want [2]", svc.submitted)
	}

	// Confirmation hands off to the learning journey in place.
	_, cmd = s.Update(msg)
	if cmd == nil {
		t.Fatal("confirmed submission should trigger the journey handoff")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := replace.Screen.(*journeyscreen.JourneyScreen); !ok {
		t.Errorf("expected journey screen, got %T", replace.Screen)
	}
}

func TestFailedSubmissionKeepsScoreVisible(t *testing.T) {
	svc := eligibleService()
	svc.submitErr = errors.New("connection reset")
	s := loadScreen(t, svc)

	s.Update(keyPress('1'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(keyPress('1'))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyRight})

	_, replaceCmd := s.Update(cmd())
	if replaceCmd != nil {
		t.Error("failed submission must not hand off to the journey")
	}
	if s.submitErr == "" {
		t.Error("failed submission should surface a message")
	}
	if s.session.Score() != 1 {
		t.Errorf("Score = %d, want 1 still visible", s.session.Score())
	}
}

func TestBackRestoresRecordedAnswer(t *testing.T) {
	s := loadScreen(t, eligibleService())

	s.Update(keyPress('2')) // "b"
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})

	if s.session.Index() != 0 {
		t.Fatalf("Index = %d, want 0", s.session.Index())
	}
	if s.options.ChosenOption() != "b" {
		t.Errorf("restored option = %q, want %q", s.options.ChosenOption(), "b")
	}
}
