package api

// Wire types for the quiz service. These double as the domain types used by
// the quiz, journey, and progress packages; the service's JSON shapes are
// the source of truth for field names.

// Question is a single quiz question. Questions carry no identifier; they
// are addressed by position within a session.
type Question struct {
	Type          string   `json:"type"`
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Skill         string   `json:"skill"`
}

// Eligibility is the result of the pre-quiz gate check.
type Eligibility struct {
	CanTake bool   `json:"can_take"`
	Message string `json:"message"`
}

// Chapter is one step of a learning journey.
type Chapter struct {
	Number      int      `json:"chapter"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
	Resources   []string `json:"resources"`
	Summary     string   `json:"summary"`
	Completed   bool     `json:"completed"`
}

// Journey is the leveled chapter sequence for one (user, skill) pair.
type Journey struct {
	Level    string    `json:"level"`
	Chapters []Chapter `json:"chapters"`
}

// SkillRecord is one entry of the user-data response: a skill the user has
// engaged with, its latest score, derived progress, and the nested journey.
type SkillRecord struct {
	Skill    string   `json:"skill"`
	Score    int      `json:"score"`
	Progress float64  `json:"progress"`
	Journey  *Journey `json:"learning_journey"`
}
