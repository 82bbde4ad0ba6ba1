// Package priorities implements the priority collection operations exposed
// by the data service. Every operation is scoped to the authenticated account.
package priorities

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/justdoit/internal/common"
	"github.com/dmitrijs2005/justdoit/internal/server/models"
	"github.com/dmitrijs2005/justdoit/internal/server/repositories/priorities"
)

type Service struct {
	repo priorities.Repository
}

func NewService(repo priorities.Repository) *Service {
	return &Service{repo: repo}
}

// List returns the account's priorities ordered per the wire order parameter.
func (s *Service) List(ctx context.Context, ownerID string, orderParam string) ([]*models.Priority, error) {
	clause, ok := priorities.OrderClause(orderParam)
	if !ok {
		return nil, common.ErrValidation
	}
	return s.repo.List(ctx, ownerID, clause)
}

// Create inserts a priority for ownerID. The owner on the stored row always
// comes from the token subject, never from the payload.
func (s *Service) Create(ctx context.Context, ownerID string, priority *models.Priority) (*models.Priority, error) {
	if strings.TrimSpace(priority.Name) == "" {
		return nil, common.ErrValidation
	}
	priority.OwnerID = ownerID
	return s.repo.Insert(ctx, priority)
}

// Update applies a partial update to the account's own row.
func (s *Service) Update(ctx context.Context, ownerID string, id string, patch *models.PriorityPatch) (*models.Priority, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, common.ErrValidation
	}
	return s.repo.Update(ctx, ownerID, id, patch)
}

// Delete removes the account's own row.
func (s *Service) Delete(ctx context.Context, ownerID string, id string) error {
	return s.repo.Delete(ctx, ownerID, id)
}
