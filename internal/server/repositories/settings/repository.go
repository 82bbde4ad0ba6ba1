// Package settings provides persistence for the per-account settings row.
package settings

import (
	"context"

	"github.com/dmitrijs2005/justdoit/internal/server/models"
)

type Repository interface {
	GetByOwner(ctx context.Context, ownerID string) (*models.Settings, error)
	Insert(ctx context.Context, settings *models.Settings) (*models.Settings, error)
	Update(ctx context.Context, ownerID string, id string, patch *models.SettingsPatch) (*models.Settings, error)
}
