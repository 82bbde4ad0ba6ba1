// Package priorities provides persistence for per-account priority levels.
package priorities

import (
	"context"

	"github.com/dmitrijs2005/justdoit/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, ownerID string, orderClause string) ([]*models.Priority, error)
	Insert(ctx context.Context, priority *models.Priority) (*models.Priority, error)
	Update(ctx context.Context, ownerID string, id string, patch *models.PriorityPatch) (*models.Priority, error)
	Delete(ctx context.Context, ownerID string, id string) error
}

var orderClauses = map[string]string{
	"name.asc":  "name ASC",
	"name.desc": "name DESC",
}

// OrderClause resolves a wire order parameter. An empty parameter selects
// alphabetical order.
func OrderClause(param string) (string, bool) {
	if param == "" {
		return orderClauses["name.asc"], true
	}
	clause, ok := orderClauses[param]
	return clause, ok
}
