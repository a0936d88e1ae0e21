package journey

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/abhisek/skillquest/internal/api"
)

// mockService implements Service for tracker tests.
type mockService struct {
	mu      sync.Mutex
	journey *api.Journey
	loadErr error

	updateErr error
	updates   []updateCall
}

type updateCall struct {
	index     int
	completed bool
}

func (m *mockService) LearningJourney(_ context.Context, _, _ string) (*api.Journey, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.journey, nil
}

func (m *mockService) UpdateProgress(_ context.Context, _, _ string, index int, completed bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updates = append(m.updates, updateCall{index: index, completed: completed})
	return nil
}

func threeChapters() *api.Journey {
	return &api.Journey{
		Level: "Beginner",
		Chapters: []api.Chapter{
			{Number: 1, Title: "Basics", Topics: []string{"syntax"}, Completed: true},
			{Number: 2, Title: "Control Flow", Completed: false},
			{Number: 3, Title: "Functions", Completed: false},
		},
	}
}

func newLoadedTracker(t *testing.T, svc *mockService) *Tracker {
	t.Helper()
	tr := NewTracker(svc, "alice", "Python")
	if err := tr.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return tr
}

func TestLoad(t *testing.T) {
	svc := &mockService{journey: threeChapters()}
	tr := newLoadedTracker(t, svc)

	if got := tr.Level(); got != "Beginner" {
		t.Errorf("Level = %q, want %q", got, "Beginner")
	}
	chapters := tr.Chapters()
	if len(chapters) != 3 {
		t.Fatalf("Chapters = %d, want 3", len(chapters))
	}
	if !chapters[0].Completed || chapters[1].Completed {
		t.Error("completion flags should mirror the loaded journey")
	}
}

func TestLoadMissingJourney(t *testing.T) {
	svc := &mockService{loadErr: &api.ErrEmpty{Resource: "learning journey"}}
	tr := NewTracker(svc, "alice", "COBOL")

	err := tr.Load(context.Background())
	if !api.IsEmpty(err) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
	if tr.Chapters() != nil {
		t.Error("failed Load should leave no chapters")
	}
}

func TestToggleCompletionApplied(t *testing.T) {
	svc := &mockService{journey: threeChapters()}
	tr := newLoadedTracker(t, svc)

	if err := tr.ToggleCompletion(context.Background(), 1, true); err != nil {
		t.Fatalf("ToggleCompletion: %v", err)
	}

	if len(svc.updates) != 1 {
		t.Fatalf("updates sent = %d, want 1", len(svc.updates))
	}
	if svc.updates[0] != (updateCall{index: 1, completed: true}) {
		t.Errorf("update = %+v, want index 1 completed", svc.updates[0])
	}

	chapters := tr.Chapters()
	if !chapters[1].Completed {
		t.Error("acknowledged toggle should be visible locally")
	}
	if !chapters[0].Completed || chapters[2].Completed {
		t.Error("other chapters must be untouched")
	}
}

func TestToggleCompletionOff(t *testing.T) {
	svc := &mockService{journey: threeChapters()}
	tr := newLoadedTracker(t, svc)

	if err := tr.ToggleCompletion(context.Background(), 0, false); err != nil {
		t.Fatalf("ToggleCompletion: %v", err)
	}
	if tr.Chapters()[0].Completed {
		t.Error("chapter 0 should now be incomplete")
	}
}

func TestToggleCompletionRemoteFailure(t *testing.T) {
	svc := &mockService{
		journey:   threeChapters(),
		updateErr: errors.New("connection reset"),
	}
	tr := newLoadedTracker(t, svc)

	err := tr.ToggleCompletion(context.Background(), 1, true)
	if err == nil {
		t.Fatal("remote failure should surface as an error")
	}
	if tr.Chapters()[1].Completed {
		t.Error("unacknowledged toggle must not be shown as applied")
	}
}

func TestToggleCompletionOutOfRange(t *testing.T) {
	svc := &mockService{journey: threeChapters()}
	tr := newLoadedTracker(t, svc)

	for _, index := range []int{-1, 3, 100} {
		if err := tr.ToggleCompletion(context.Background(), index, true); err == nil {
			t.Errorf("index %d: want error", index)
		}
	}
	if len(svc.updates) != 0 {
		t.Errorf("updates sent = %d for out-of-range indexes, want 0", len(svc.updates))
	}
}

func TestToggleCompletionBeforeLoad(t *testing.T) {
	tr := NewTracker(&mockService{}, "alice", "Python")
	if err := tr.ToggleCompletion(context.Background(), 0, true); err == nil {
		t.Fatal("toggle before Load should error")
	}
}

func TestChapterOrderIndependence(t *testing.T) {
	// Chapters can be completed in any order; completing a later chapter
	// does not require earlier ones.
	svc := &mockService{journey: threeChapters()}
	tr := newLoadedTracker(t, svc)

	if err := tr.ToggleCompletion(context.Background(), 2, true); err != nil {
		t.Fatalf("ToggleCompletion: %v", err)
	}
	chapters := tr.Chapters()
	if !chapters[2].Completed {
		t.Error("chapter 3 should be complete")
	}
	if chapters[1].Completed {
		t.Error("chapter 2 should stay incomplete")
	}
}

func TestConcurrentTogglesDistinctChapters(t *testing.T) {
	svc := &mockService{journey: threeChapters()}
	tr := newLoadedTracker(t, svc)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			_ = tr.ToggleCompletion(context.Background(), index, true)
		}(i)
	}
	wg.Wait()

	for i, ch := range tr.Chapters() {
		if !ch.Completed {
			t.Errorf("chapter %d should be complete", i)
		}
	}
	if len(svc.updates) != 3 {
		t.Errorf("updates sent = %d, want 3", len(svc.updates))
	}
}

func TestChaptersSnapshotIsACopy(t *testing.T) {
	svc := &mockService{journey: threeChapters()}
	tr := newLoadedTracker(t, svc)

	snapshot := tr.Chapters()
	snapshot[0].Completed = false

	if !tr.Chapters()[0].Completed {
		t.Error("mutating a snapshot must not affect the tracker")
	}
}
