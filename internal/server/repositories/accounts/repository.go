// Package accounts provides persistence for registered accounts.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/justdoit/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	Update(ctx context.Context, id string, displayName *string, passwordHash *string) (*models.Account, error)
}
