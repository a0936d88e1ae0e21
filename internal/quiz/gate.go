package quiz

import (
	"context"

	"github.com/abhisek/skillquest/internal/api"
)

// Service is the remote surface a quiz attempt needs: the eligibility
// gate, the question source, and the score sink.
type Service interface {
	CanTakeQuiz(ctx context.Context, username, skill string) (api.Eligibility, error)
	Questions(ctx context.Context, skill string) ([]api.Question, error)
	SubmitScore(ctx context.Context, username, skill string, score int) error
}

// GateDecision is the outcome of the one-shot eligibility check.
type GateDecision struct {
	Eligible bool
	// Message is the service's user-facing denial text, rendered verbatim
	// when Eligible is false.
	Message string
}

// CheckGate queries the service once for whether the user may attempt the
// skill's quiz now. The check has no side effects and may be repeated by
// reloading the view. A transport failure is returned as an error and is
// distinct from a policy denial.
func CheckGate(ctx context.Context, svc Service, username, skill string) (GateDecision, error) {
	elig, err := svc.CanTakeQuiz(ctx, username, skill)
	if err != nil {
		return GateDecision{}, err
	}
	return GateDecision{Eligible: elig.CanTake, Message: elig.Message}, nil
}

// LoadSession runs the full loading sequence for one attempt: gate check,
// then question fetch, then session construction. The gate strictly
// precedes the fetch; a denial means no questions are ever requested.
// On denial it returns (nil, decision, nil); the caller renders the
// message and stops.
func LoadSession(ctx context.Context, svc Service, username, skill string) (*Session, GateDecision, error) {
	decision, err := CheckGate(ctx, svc, username, skill)
	if err != nil {
		return nil, GateDecision{}, err
	}
	if !decision.Eligible {
		return nil, decision, nil
	}

	questions, err := svc.Questions(ctx, skill)
	if err != nil {
		return nil, decision, err
	}

	session, err := New(skill, questions)
	if err != nil {
		return nil, decision, err
	}
	return session, decision, nil
}
