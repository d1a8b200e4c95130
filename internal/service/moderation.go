package service

import (
	"context"
	"database/sql"
	"errors"

	"questshare/internal/model"
	"questshare/internal/repository"
)

// ModerationService transitions materials out of the pending state.
// Every operation is admin-only; the role check happens here, not in the
// repository, and non-admin calls produce no state change.
type ModerationService interface {
	// ListPending returns the moderation queue, newest first.
	ListPending(ctx context.Context, actor *model.Account) ([]model.Material, error)

	// Decide applies a one-way transition to approved or rejected and returns
	// the updated material. Terminal materials yield ErrAlreadyModerated; a
	// concurrent admin decision on the same material resolves the same way
	// for the losing caller.
	Decide(ctx context.Context, actor *model.Account, id string, status model.MaterialStatus) (*model.Material, error)

	// Stats tallies materials per status for the admin dashboard.
	Stats(ctx context.Context, actor *model.Account) (*repository.CountsByStatus, error)
}

type moderationService struct {
	repo repository.MaterialRepository
}

// NewModerationService constructs a new ModerationService.
func NewModerationService(repo repository.MaterialRepository) ModerationService {
	return &moderationService{repo: repo}
}

func (s *moderationService) ListPending(ctx context.Context, actor *model.Account) ([]model.Material, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, repository.ListQuery{Status: model.StatusPending})
}

func (s *moderationService) Decide(ctx context.Context, actor *model.Account, id string, status model.MaterialStatus) (*model.Material, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, &ValidationError{Fields: map[string]string{"id": "id is required"}}
	}
	if !status.Terminal() {
		return nil, &ValidationError{Fields: map[string]string{"status": "status must be approved or rejected"}}
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		case errors.Is(err, repository.ErrStatusConflict):
			return nil, ErrAlreadyModerated
		}
		return nil, err
	}

	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *moderationService) Stats(ctx context.Context, actor *model.Account) (*repository.CountsByStatus, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.CountByStatus(ctx)
}
