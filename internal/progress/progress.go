package progress

import (
	"context"
	"fmt"

	"github.com/abhisek/skillquest/internal/api"
)

// Service is the remote surface the aggregator needs.
type Service interface {
	UserData(ctx context.Context, username string) ([]api.SkillRecord, error)
}

// Record is one dashboard row: a skill the user has engaged with, its
// latest quiz score, the derived progress percentage, and the journey
// level. Read-only.
type Record struct {
	Skill    string
	Score    int
	Progress float64
	Level    string
}

// Fetch loads the full set of skill progress records for the user. An
// empty result is valid ("no skills found") and distinct from an error.
func Fetch(ctx context.Context, svc Service, username string) ([]Record, error) {
	skills, err := svc.UserData(ctx, username)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(skills))
	for _, s := range skills {
		r := Record{
			Skill:    s.Skill,
			Score:    s.Score,
			Progress: s.Progress,
		}
		if s.Journey != nil {
			r.Level = s.Journey.Level
		}
		records = append(records, r)
	}
	return records, nil
}

// FormatPercent renders a progress value with two decimal places, e.g.
// "42.50%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}
