// Package todos provides persistence for per-account task rows.
package todos

import (
	"context"

	"github.com/dmitrijs2005/justdoit/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, ownerID string, orderClause string) ([]*models.Todo, error)
	Insert(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	Update(ctx context.Context, ownerID string, id string, patch *models.TodoPatch) (*models.Todo, error)
	Delete(ctx context.Context, ownerID string, id string) error
}

// orderClauses maps wire-level order parameters to SQL fragments. Anything
// outside this map is rejected before it reaches a query.
var orderClauses = map[string]string{
	"created_at.desc": "created_at DESC",
	"created_at.asc":  "created_at ASC",
}

// OrderClause resolves a wire order parameter. An empty parameter selects
// newest first.
func OrderClause(param string) (string, bool) {
	if param == "" {
		return orderClauses["created_at.desc"], true
	}
	clause, ok := orderClauses[param]
	return clause, ok
}
