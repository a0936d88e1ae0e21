package quiz

import (
	"errors"
	"testing"

	"github.com/abhisek/skillquest/internal/api"
)

func twoQuestions() []api.Question {
	return []api.Question{
		{
			Type:          "multiple_choice",
			Text:          "Which keyword declares a constant?",
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "A",
			Skill:         "Python",
		},
		{
			Type:          "multiple_choice",
			Text:          "Which builtin returns the length of a list?",
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "B",
			Skill:         "Python",
		},
	}
}

func TestNewEmptyQuestions(t *testing.T) {
	s, err := New("Python", nil)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}
	if s != nil {
		t.Fatal("session should be nil on error")
	}
}

func TestNewStartsActive(t *testing.T) {
	s, err := New("Python", twoQuestions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Phase() != PhaseActive {
		t.Errorf("Phase = %d, want PhaseActive", s.Phase())
	}
	if s.Index() != 0 {
		t.Errorf("Index = %d, want 0", s.Index())
	}
	if s.Answered() {
		t.Error("fresh session should have no answer recorded")
	}
}

func TestPerfectRun(t *testing.T) {
	s, _ := New("Python", twoQuestions())

	if err := s.Select("A"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	done, err := s.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if done {
		t.Fatal("Next from first of two questions should not finish")
	}

	if err := s.Select("B"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	done, err = s.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !done {
		t.Fatal("Next from last question should finish")
	}
	if s.Phase() != PhaseScored {
		t.Errorf("Phase = %d, want PhaseScored", s.Phase())
	}
	if s.Score() != 2 {
		t.Errorf("Score = %d, want 2", s.Score())
	}
}

func TestRevisionOverwritesAnswer(t *testing.T) {
	// Answer B, go back, change to A, return forward, answer A again.
	// Final ledger is [A, A]: one correct, one wrong.
	s, _ := New("Python", twoQuestions())

	if err := s.Select("B"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if _, err := s.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !s.Back() {
		t.Fatal("Back from second question should move")
	}
	if s.Selected() != "B" {
		t.Errorf("Selected after Back = %q, want %q", s.Selected(), "B")
	}

	if err := s.Select("A"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if _, err := s.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if err := s.Select("A"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	done, err := s.Next()
	if err != nil || !done {
		t.Fatalf("final Next = (%v, %v), want (true, nil)", done, err)
	}

	if s.Score() != 1 {
		t.Errorf("Score = %d, want 1", s.Score())
	}
}

func TestNextRequiresSelection(t *testing.T) {
	s, _ := New("Python", twoQuestions())

	done, err := s.Next()
	if !errors.Is(err, ErrNoSelection) {
		t.Fatalf("err = %v, want ErrNoSelection", err)
	}
	if done {
		t.Error("rejected Next must not finish the session")
	}
	if s.Index() != 0 {
		t.Errorf("Index = %d, rejected Next must not move the cursor", s.Index())
	}
	if s.Phase() != PhaseActive {
		t.Errorf("Phase = %d, want PhaseActive", s.Phase())
	}
}

func TestSelectRejectsUnknownOption(t *testing.T) {
	s, _ := New("Python", twoQuestions())

	if err := s.Select("Z"); err == nil {
		t.Fatal("Select of an option the question does not offer should error")
	}
	if s.Answered() {
		t.Error("rejected Select must not write the ledger")
	}
}

func TestSelectSameOptionTwice(t *testing.T) {
	s, _ := New("Python", twoQuestions())

	if err := s.Select("C"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := s.Select("C"); err != nil {
		t.Fatalf("re-Select of stored option: %v", err)
	}
	if s.Selected() != "C" {
		t.Errorf("Selected = %q, want %q", s.Selected(), "C")
	}
	if s.Index() != 0 {
		t.Error("Select must never advance the cursor")
	}
}

func TestBackAtFirstQuestion(t *testing.T) {
	s, _ := New("Python", twoQuestions())

	if s.Back() {
		t.Error("Back at the first question should be a no-op")
	}
	if s.Index() != 0 {
		t.Errorf("Index = %d, want 0", s.Index())
	}
}

func TestBackPreservesLaterAnswers(t *testing.T) {
	s, _ := New("Python", twoQuestions())

	_ = s.Select("A")
	_, _ = s.Next()
	_ = s.Select("D")
	if !s.Back() {
		t.Fatal("Back should move")
	}
	_, _ = s.Next()

	if s.Selected() != "D" {
		t.Errorf("answer at second question = %q, want %q preserved", s.Selected(), "D")
	}
}

func TestScoredSessionIsFrozen(t *testing.T) {
	s, _ := New("Python", twoQuestions())
	_ = s.Select("A")
	_, _ = s.Next()
	_ = s.Select("B")
	_, _ = s.Next()

	if err := s.Select("A"); err == nil {
		t.Error("Select after scoring should error")
	}
	if _, err := s.Next(); err == nil {
		t.Error("Next after scoring should error")
	}
	if s.Back() {
		t.Error("Back after scoring should be a no-op")
	}
	if s.Score() != 2 {
		t.Errorf("Score = %d, want unchanged 2", s.Score())
	}
}

func TestScoreSkipsNothing(t *testing.T) {
	// Every position must carry an answer before scoring is reachable,
	// so the score is always over the full question count.
	qs := []api.Question{
		{Text: "q1", Options: []string{"x", "y"}, CorrectAnswer: "x"},
		{Text: "q2", Options: []string{"x", "y"}, CorrectAnswer: "y"},
		{Text: "q3", Options: []string{"x", "y"}, CorrectAnswer: "x"},
	}
	s, _ := New("CSS", qs)

	answers := []string{"x", "x", "y"}
	for i, a := range answers {
		if err := s.Select(a); err != nil {
			t.Fatalf("Select %d: %v", i, err)
		}
		if _, err := s.Next(); err != nil {
			t.Fatalf("Next %d: %v", i, err)
		}
	}

	if s.Score() != 1 {
		t.Errorf("Score = %d, want 1", s.Score())
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
}
