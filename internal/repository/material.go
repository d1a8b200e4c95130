package repository

import (
	"context"
	"errors"

	"questshare/internal/model"
)

// ErrStatusConflict is returned by UpdateStatus when the material exists but
// is no longer pending. Approved and rejected are terminal states.
var ErrStatusConflict = errors.New("material is not pending")

// ListQuery narrows a material listing. Zero values mean "no restriction";
// Limit <= 0 means unbounded. Results are always ordered newest first
// (created_at DESC, id DESC as tie-breaker).
type ListQuery struct {
	Type       model.MaterialType
	Status     model.MaterialStatus
	UploaderID string
	Limit      int
}

// CountsByStatus tallies materials per moderation status.
type CountsByStatus struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// MaterialRepository defines data access for materials using SQL queries only.
// No business logic here — strictly persistence operations.
type MaterialRepository interface {
	// Create inserts a new material record. ID, CreatedAt, and Status must be
	// set by the caller. Returns the stored material as the database sees it.
	Create(ctx context.Context, m *model.Material) (*model.Material, error)

	// FindByID returns a material by its ID.
	FindByID(ctx context.Context, id string) (*model.Material, error)

	// List returns materials matching the query, newest first.
	List(ctx context.Context, q ListQuery) ([]model.Material, error)

	// UpdateStatus transitions a pending material to the given status.
	// Returns sql.ErrNoRows if the id is unknown and ErrStatusConflict if the
	// material has already left the pending state.
	UpdateStatus(ctx context.Context, id string, status model.MaterialStatus) error

	// CountByStatus tallies materials per status for the admin dashboard.
	CountByStatus(ctx context.Context) (*CountsByStatus, error)
}
