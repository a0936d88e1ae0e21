package journey

import (
	"context"
	"fmt"
	"sync"

	"github.com/abhisek/skillquest/internal/api"
)

// Service is the remote surface the tracker needs.
type Service interface {
	LearningJourney(ctx context.Context, username, skill string) (*api.Journey, error)
	UpdateProgress(ctx context.Context, username, skill string, chapterIndex int, completed bool) error
}

// Tracker manages the learning journey for one (user, skill) pair: it
// loads the chapter list and applies completion toggles, each persisted
// remotely before being reflected locally. The remote store stays the
// source of truth; a toggle the service has not acknowledged is never
// shown as applied.
type Tracker struct {
	svc      Service
	username string
	skill    string

	mu      sync.Mutex
	journey *api.Journey

	// chapterMu serializes toggles per chapter index so that two requests
	// for the same chapter cannot interleave; the later intent wins.
	// Toggles on different chapters may be in flight concurrently.
	chapterMuMu sync.Mutex
	chapterMu   map[int]*sync.Mutex
}

// NewTracker creates a tracker for (username, skill). Call Load before
// reading chapters.
func NewTracker(svc Service, username, skill string) *Tracker {
	return &Tracker{
		svc:       svc,
		username:  username,
		skill:     skill,
		chapterMu: make(map[int]*sync.Mutex),
	}
}

// Skill returns the skill this tracker belongs to.
func (t *Tracker) Skill() string { return t.skill }

// Load fetches the journey fresh from the service. A skill without
// journey data surfaces as *api.ErrEmpty.
func (t *Tracker) Load(ctx context.Context) error {
	j, err := t.svc.LearningJourney(ctx, t.username, t.skill)
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.journey = j
	t.mu.Unlock()
	return nil
}

// Level returns the journey's level, or "" before Load.
func (t *Tracker) Level() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.journey == nil {
		return ""
	}
	return t.journey.Level
}

// Chapters returns a snapshot copy of the chapter sequence.
func (t *Tracker) Chapters() []api.Chapter {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.journey == nil {
		return nil
	}
	out := make([]api.Chapter, len(t.journey.Chapters))
	copy(out, t.journey.Chapters)
	return out
}

// ToggleCompletion sets the completion flag of the chapter at index. The
// new value is sent to the service first; only after a successful
// acknowledgement is the local chapter replaced (other chapters and
// fields untouched). On remote failure local state is left exactly as it
// was and the error is returned for the view to surface.
func (t *Tracker) ToggleCompletion(ctx context.Context, index int, completed bool) error {
	t.mu.Lock()
	if t.journey == nil {
		t.mu.Unlock()
		return fmt.Errorf("journey not loaded")
	}
	if index < 0 || index >= len(t.journey.Chapters) {
		n := len(t.journey.Chapters)
		t.mu.Unlock()
		return fmt.Errorf("chapter index %d out of range [0,%d)", index, n)
	}
	t.mu.Unlock()

	mu := t.lockChapter(index)
	defer mu.Unlock()

	if err := t.svc.UpdateProgress(ctx, t.username, t.skill, index, completed); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	chapters := make([]api.Chapter, len(t.journey.Chapters))
	copy(chapters, t.journey.Chapters)
	chapters[index].Completed = completed
	t.journey = &api.Journey{Level: t.journey.Level, Chapters: chapters}
	return nil
}

func (t *Tracker) lockChapter(index int) *sync.Mutex {
	t.chapterMuMu.Lock()
	mu, ok := t.chapterMu[index]
	if !ok {
		mu = &sync.Mutex{}
		t.chapterMu[index] = mu
	}
	t.chapterMuMu.Unlock()
	mu.Lock()
	return mu
}
