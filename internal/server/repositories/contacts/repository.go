// Package contacts provides persistence for the shared contact directory.
package contacts

import (
	"context"

	"github.com/dmitrijs2005/justdoit/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, orderClause string) ([]*models.Contact, error)
	GetByEmail(ctx context.Context, email string) (*models.Contact, error)
	Insert(ctx context.Context, contact *models.Contact) (*models.Contact, error)
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
