// Package settings implements the per-account settings row operations.
package settings

import (
	"context"

	"github.com/dmitrijs2005/justdoit/internal/server/models"
	"github.com/dmitrijs2005/justdoit/internal/server/repositories/settings"
)

type Service struct {
	repo settings.Repository
}

func NewService(repo settings.Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the account's settings row, or common.ErrNotFound when the
// account has none yet.
func (s *Service) Get(ctx context.Context, ownerID string) (*models.Settings, error) {
	return s.repo.GetByOwner(ctx, ownerID)
}

// Create inserts the account's settings row. The owner on the stored row
// always comes from the token subject.
func (s *Service) Create(ctx context.Context, ownerID string, row *models.Settings) (*models.Settings, error) {
	row.OwnerID = ownerID
	return s.repo.Insert(ctx, row)
}

// Update applies a partial update to the account's own row.
func (s *Service) Update(ctx context.Context, ownerID string, id string, patch *models.SettingsPatch) (*models.Settings, error) {
	return s.repo.Update(ctx, ownerID, id, patch)
}
