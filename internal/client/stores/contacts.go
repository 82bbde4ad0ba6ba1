package stores

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/justdoit/internal/client/models"
	"github.com/dmitrijs2005/justdoit/internal/client/remote"
	"github.com/dmitrijs2005/justdoit/internal/common"
)

// ContactStore caches the global contact list, sorted by name ascending.
// Contacts are the one collection not scoped to the signed-in account, but a
// session is still required to touch them.
type ContactStore struct {
	base
	client   remote.Client
	contacts []models.Contact
}

func NewContactStore(client remote.Client, sessions SessionSource, notifier Notifier) *ContactStore {
	return &ContactStore{base: newBase(sessions, notifier), client: client}
}

// Contacts returns a copy of the cached list in server order (name
// ascending).
func (s *ContactStore) Contacts() []models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.contacts)
}

// FetchAll replaces the cache with the full contact list.
func (s *ContactStore) FetchAll(ctx context.Context) (err error) {
	s.begin()
	defer func() { s.finish(err, "", "could not load contacts") }()

	if _, err = s.requireAccount(); err != nil {
		return err
	}

	contacts, err := s.client.ListContacts(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.contacts = contacts
	s.mu.Unlock()
	return nil
}

// Add creates a contact after checking that no contact with the same email
// exists yet. The duplicate check is a read against the collection, not a
// server constraint, mirroring how the dashboard always behaved.
func (s *ContactStore) Add(ctx context.Context, input models.ContactInput) (err error) {
	s.begin()
	defer func() { s.finish(err, "contact created", "could not create contact") }()

	if _, err = s.requireAccount(); err != nil {
		return err
	}
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	if input.Email == "" {
		return fmt.Errorf("%w: email is required", common.ErrValidation)
	}

	if _, findErr := s.client.FindContactByEmail(ctx, input.Email); findErr == nil {
		return common.ErrDuplicateContact
	} else if !errors.Is(findErr, common.ErrNotFound) {
		return findErr
	}

	err = s.mutate(ctx, mutation{
		EntityID: uuid.NewString(),
		Call: func(ctx context.Context) (func(), error) {
			created, err := s.client.InsertContact(ctx, input)
			if err != nil {
				return nil, err
			}
			return func() {
				s.contacts = append([]models.Contact{*created}, s.contacts...)
			}, nil
		},
	})
	return err
}
