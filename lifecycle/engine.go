package lifecycle

import (
	"context"
	"log"
	"time"

	"github.com/hirematch/backend/models"
)

// ApplicationStore is the persistence surface the engine needs. The storage
// layer owns the implementation.
type ApplicationStore interface {
	GetApplication(ctx context.Context, id string) (*models.Application, error)
	UpsertApplication(ctx context.Context, app *models.Application) (*models.Application, error)
}

// Engine applies lifecycle transitions to applications. Single and bulk
// transitions share the same rule set; bulk is best-effort per item, each
// application its own unit of work.
type Engine struct {
	store ApplicationStore
}

// NewEngine returns a configured Engine.
func NewEngine(store ApplicationStore) *Engine {
	return &Engine{store: store}
}

// Transition moves one application to the requested status. Notes, when
// non-empty, replace the recruiter notes on the application. A transition
// into the current status succeeds without writing anything. Illegal
// transitions fail with *InvalidTransitionError.
func (e *Engine) Transition(ctx context.Context, appID string, requested models.ApplicationStatus, notes string) (*models.Application, error) {
	app, err := e.store.GetApplication(ctx, appID)
	if err != nil {
		return nil, err
	}

	if app.Status == requested {
		// Idempotent re-application of the same status.
		return app, nil
	}

	if !IsTransitionAllowed(app.Status, requested) {
		return nil, &InvalidTransitionError{From: app.Status, To: requested}
	}

	now := time.Now().UTC()
	app.StatusHistory = append(app.StatusHistory, models.StatusChange{
		From: app.Status,
		To:   requested,
		At:   now,
	})
	app.Status = requested
	if notes != "" {
		app.Notes = notes
	}
	app.UpdatedAt = now

	updated, err := e.store.UpsertApplication(ctx, app)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Outcome is the per-application result of a bulk transition.
type Outcome struct {
	ApplicationID string
	Application   *models.Application
	Err           error
}

// Fulfilled reports whether this item's transition succeeded.
func (o Outcome) Fulfilled() bool { return o.Err == nil }

// TransitionMany applies the requested status to each application
// independently and reports a per-item outcome. One invalid application
// never aborts its siblings.
func (e *Engine) TransitionMany(ctx context.Context, appIDs []string, requested models.ApplicationStatus) []Outcome {
	outcomes := make([]Outcome, 0, len(appIDs))
	for _, id := range appIDs {
		app, err := e.Transition(ctx, id, requested, "")
		if err != nil {
			log.Printf("[Lifecycle] transition of %s to %s rejected: %v", id, requested, err)
		}
		outcomes = append(outcomes, Outcome{ApplicationID: id, Application: app, Err: err})
	}
	return outcomes
}
