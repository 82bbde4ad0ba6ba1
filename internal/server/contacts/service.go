// Package contacts implements the shared contact directory operations. The
// directory is global: rows are readable and writable by any authenticated
// account, with email uniqueness enforced by storage.
package contacts

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/justdoit/internal/common"
	"github.com/dmitrijs2005/justdoit/internal/server/models"
	"github.com/dmitrijs2005/justdoit/internal/server/repositories/contacts"
)

type Service struct {
	repo contacts.Repository
}

func NewService(repo contacts.Repository) *Service {
	return &Service{repo: repo}
}

// List returns all contacts ordered per the wire order parameter.
func (s *Service) List(ctx context.Context, orderParam string) ([]*models.Contact, error) {
	clause, ok := contacts.OrderClause(orderParam)
	if !ok {
		return nil, common.ErrValidation
	}
	return s.repo.List(ctx, clause)
}

// FindByEmail returns the contact with the given email, or common.ErrNotFound.
func (s *Service) FindByEmail(ctx context.Context, email string) (*models.Contact, error) {
	return s.repo.GetByEmail(ctx, email)
}

// Create inserts a contact. A duplicate email yields common.ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	if strings.TrimSpace(contact.Name) == "" || strings.TrimSpace(contact.Email) == "" {
		return nil, common.ErrValidation
	}
	return s.repo.Insert(ctx, contact)
}
