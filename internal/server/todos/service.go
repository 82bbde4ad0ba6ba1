// Package todos implements the task collection operations exposed by the
// data service. Every operation is scoped to the authenticated account.
package todos

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/justdoit/internal/common"
	"github.com/dmitrijs2005/justdoit/internal/server/models"
	"github.com/dmitrijs2005/justdoit/internal/server/repositories/todos"
)

type Service struct {
	repo todos.Repository
}

func NewService(repo todos.Repository) *Service {
	return &Service{repo: repo}
}

// List returns the account's tasks ordered per the wire order parameter.
func (s *Service) List(ctx context.Context, ownerID string, orderParam string) ([]*models.Todo, error) {
	clause, ok := todos.OrderClause(orderParam)
	if !ok {
		return nil, common.ErrValidation
	}
	return s.repo.List(ctx, ownerID, clause)
}

// Create inserts a task for ownerID. The owner on the stored row always comes
// from the token subject, never from the payload.
func (s *Service) Create(ctx context.Context, ownerID string, todo *models.Todo) (*models.Todo, error) {
	if strings.TrimSpace(todo.Description) == "" {
		return nil, common.ErrValidation
	}
	if todo.Status == "" {
		todo.Status = "active"
	}
	if todo.Status != "active" && todo.Status != "inactive" {
		return nil, common.ErrValidation
	}
	todo.OwnerID = ownerID
	return s.repo.Insert(ctx, todo)
}

// Update applies a partial update to the account's own row.
func (s *Service) Update(ctx context.Context, ownerID string, id string, patch *models.TodoPatch) (*models.Todo, error) {
	if patch.Status != nil && *patch.Status != "active" && *patch.Status != "inactive" {
		return nil, common.ErrValidation
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		return nil, common.ErrValidation
	}
	return s.repo.Update(ctx, ownerID, id, patch)
}

// Delete removes the account's own row.
func (s *Service) Delete(ctx context.Context, ownerID string, id string) error {
	return s.repo.Delete(ctx, ownerID, id)
}
