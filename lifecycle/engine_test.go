package lifecycle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hirematch/backend/lifecycle"
	"github.com/hirematch/backend/models"
	"github.com/hirematch/backend/storage"
)

// fakeStore is an in-memory ApplicationStore.
type fakeStore struct {
	apps    map[string]*models.Application
	upserts int
}

func newFakeStore(apps ...*models.Application) *fakeStore {
	s := &fakeStore{apps: make(map[string]*models.Application)}
	for _, a := range apps {
		s.apps[a.ID] = a
	}
	return s
}

func (s *fakeStore) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	app, ok := s.apps[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	clone := *app
	return &clone, nil
}

func (s *fakeStore) UpsertApplication(ctx context.Context, app *models.Application) (*models.Application, error) {
	s.upserts++
	clone := *app
	s.apps[app.ID] = &clone
	return app, nil
}

func appliedApp(id string) *models.Application {
	return &models.Application{
		ID:          id,
		JobID:       "job-1",
		CandidateID: "cand-1",
		AppliedAt:   time.Now().UTC(),
		Status:      models.StatusApplied,
	}
}

func TestTransition_Forward(t *testing.T) {
	store := newFakeStore(appliedApp("app-1"))
	engine := lifecycle.NewEngine(store)

	updated, err := engine.Transition(context.Background(), "app-1", models.StatusReviewing, "screening call done")
	if err != nil {
		t.Fatalf("Transition returned unexpected error: %v", err)
	}

	if updated.Status != models.StatusReviewing {
		t.Errorf("Status = %s, want reviewing", updated.Status)
	}
	if updated.Notes != "screening call done" {
		t.Errorf("Notes = %q, want the provided notes", updated.Notes)
	}
	if len(updated.StatusHistory) != 1 {
		t.Fatalf("StatusHistory length = %d, want 1", len(updated.StatusHistory))
	}
	change := updated.StatusHistory[0]
	if change.From != models.StatusApplied || change.To != models.StatusReviewing {
		t.Errorf("history entry = %s -> %s, want applied -> reviewing", change.From, change.To)
	}
	if store.upserts != 1 {
		t.Errorf("upserts = %d, want 1", store.upserts)
	}
}

func TestTransition_SameStatusIsNoOp(t *testing.T) {
	store := newFakeStore(appliedApp("app-1"))
	engine := lifecycle.NewEngine(store)

	updated, err := engine.Transition(context.Background(), "app-1", models.StatusApplied, "")
	if err != nil {
		t.Fatalf("same-status transition should succeed, got: %v", err)
	}
	if updated.Status != models.StatusApplied {
		t.Errorf("Status = %s, want applied", updated.Status)
	}
	if len(updated.StatusHistory) != 0 {
		t.Errorf("no-op must not append history, got %d entries", len(updated.StatusHistory))
	}
	if store.upserts != 0 {
		t.Errorf("no-op must not write, got %d upserts", store.upserts)
	}
}

func TestTransition_OutOfTerminal(t *testing.T) {
	for _, terminal := range []models.ApplicationStatus{models.StatusRejected, models.StatusHired} {
		app := appliedApp("app-1")
		app.Status = terminal
		engine := lifecycle.NewEngine(newFakeStore(app))

		_, err := engine.Transition(context.Background(), "app-1", models.StatusReviewing, "")
		var transitionErr *lifecycle.InvalidTransitionError
		if !errors.As(err, &transitionErr) {
			t.Fatalf("from %s: error = %v, want *lifecycle.InvalidTransitionError", terminal, err)
		}
		if transitionErr.From != terminal || transitionErr.To != models.StatusReviewing {
			t.Errorf("error names %s -> %s, want %s -> reviewing", transitionErr.From, transitionErr.To, terminal)
		}
	}
}

func TestTransition_NotFound(t *testing.T) {
	engine := lifecycle.NewEngine(newFakeStore())

	_, err := engine.Transition(context.Background(), "missing", models.StatusReviewing, "")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("error = %v, want storage.ErrNotFound", err)
	}
}

// Bulk transition is best-effort per item: one invalid application never
// aborts or rolls back its siblings.
func TestTransitionMany_MixedOutcomes(t *testing.T) {
	rejected := appliedApp("app-terminal")
	rejected.Status = models.StatusRejected
	store := newFakeStore(appliedApp("app-ok"), rejected)
	engine := lifecycle.NewEngine(store)

	outcomes := engine.TransitionMany(context.Background(),
		[]string{"app-ok", "app-terminal", "app-missing"}, models.StatusHired)

	if len(outcomes) != 3 {
		t.Fatalf("got %d outcomes, want 3", len(outcomes))
	}

	if !outcomes[0].Fulfilled() {
		t.Errorf("app-ok should be fulfilled, got error: %v", outcomes[0].Err)
	}
	if outcomes[0].Application.Status != models.StatusHired {
		t.Errorf("app-ok status = %s, want hired", outcomes[0].Application.Status)
	}

	var transitionErr *lifecycle.InvalidTransitionError
	if !errors.As(outcomes[1].Err, &transitionErr) {
		t.Errorf("app-terminal error = %v, want *lifecycle.InvalidTransitionError", outcomes[1].Err)
	}

	if !errors.Is(outcomes[2].Err, storage.ErrNotFound) {
		t.Errorf("app-missing error = %v, want storage.ErrNotFound", outcomes[2].Err)
	}

	// The fulfilled item stays applied despite its siblings failing.
	persisted, _ := store.GetApplication(context.Background(), "app-ok")
	if persisted.Status != models.StatusHired {
		t.Errorf("persisted app-ok status = %s, want hired (no rollback)", persisted.Status)
	}
}
