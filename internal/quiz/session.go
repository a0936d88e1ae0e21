package quiz

import (
	"errors"
	"fmt"

	"github.com/abhisek/skillquest/internal/api"
)

// Phase is the lifecycle state of a quiz session.
type Phase int

const (
	PhaseLoading   Phase = iota // Gate check and question fetch in flight
	PhaseBlocked                // Gate denied; session never becomes interactive
	PhaseLoadError              // Gate, fetch, or empty-question failure
	PhaseActive                 // Serving questions
	PhaseScored                 // Terminal; score finalized
)

// ErrNoSelection is returned by Next when the current position has no
// recorded answer. The session is left unchanged.
var ErrNoSelection = errors.New("select an option before proceeding")

// ErrNoQuestions is returned by New for an empty question list: a session
// with an empty ledger must never become active.
var ErrNoQuestions = errors.New("no questions available for this skill")

// unanswered marks a ledger position with no recorded option. Options are
// non-empty display strings, so the empty string is free to use as the
// sentinel.
const unanswered = ""

// Session is the state machine for one quiz attempt. It owns the question
// order, the answer ledger, and the cursor; it performs no I/O. One
// instance exists per attempt and is discarded when the view goes away.
type Session struct {
	skill     string
	questions []api.Question
	ledger    []string
	current   int
	phase     Phase
	score     int
}

// New creates an active session over a non-empty question list. The ledger
// starts all-unanswered with one slot per question and keeps that length
// for the life of the session.
func New(skill string, questions []api.Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{
		skill:     skill,
		questions: questions,
		ledger:    make([]string, len(questions)),
		phase:     PhaseActive,
	}, nil
}

// Skill returns the skill this session belongs to.
func (s *Session) Skill() string { return s.skill }

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Len returns the number of questions.
func (s *Session) Len() int { return len(s.questions) }

// Index returns the zero-based position of the displayed question.
func (s *Session) Index() int { return s.current }

// IsLast reports whether the displayed question is the final one.
func (s *Session) IsLast() bool { return s.current == len(s.questions)-1 }

// Question returns the question at the current position.
func (s *Session) Question() api.Question {
	return s.questions[s.current]
}

// Selected returns the ledger entry for the current position, or "" if the
// position is unanswered. Revisited questions therefore restore whatever
// was chosen before navigating away.
func (s *Session) Selected() string {
	return s.ledger[s.current]
}

// Answered reports whether the current position has a recorded option.
func (s *Session) Answered() bool {
	return s.ledger[s.current] != unanswered
}

// Select records option at the current position without advancing.
// Re-selecting the already stored option is a no-op write. Selecting an
// option the question does not offer is rejected.
func (s *Session) Select(option string) error {
	if s.phase != PhaseActive {
		return fmt.Errorf("cannot select in phase %d", s.phase)
	}
	found := false
	for _, o := range s.questions[s.current].Options {
		if o == option {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("option %q is not offered by this question", option)
	}
	s.ledger[s.current] = option
	return nil
}

// Next advances past the current question. It requires a recorded answer
// at the current position; without one it returns ErrNoSelection and
// changes nothing. From any position but the last it moves the cursor
// forward. From the last position it computes the final score and enters
// PhaseScored, after which the session is no longer interactive.
// The returned bool is true when the session just finished.
func (s *Session) Next() (bool, error) {
	if s.phase != PhaseActive {
		return false, fmt.Errorf("cannot advance in phase %d", s.phase)
	}
	if !s.Answered() {
		return false, ErrNoSelection
	}

	if s.IsLast() {
		s.score = s.computeScore()
		s.phase = PhaseScored
		return true, nil
	}

	s.current++
	return false, nil
}

// Back moves the cursor to the previous question, restoring its stored
// selection (which may be empty). It reports whether a move happened;
// Back at the first question is a no-op.
func (s *Session) Back() bool {
	if s.phase != PhaseActive || s.current == 0 {
		return false
	}
	s.current--
	return true
}

// Score returns the final score. It is only meaningful once the session
// has reached PhaseScored.
func (s *Session) Score() int { return s.score }

// computeScore counts ledger positions that match the question's answer key.
func (s *Session) computeScore() int {
	score := 0
	for i, q := range s.questions {
		if s.ledger[i] == q.CorrectAnswer {
			score++
		}
	}
	return score
}
