package stores

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/justdoit/internal/client/models"
	"github.com/dmitrijs2005/justdoit/internal/client/remote"
	"github.com/dmitrijs2005/justdoit/internal/common"
)

// PriorityStore caches the signed-in account's priority levels, sorted by
// name ascending.
type PriorityStore struct {
	base
	client     remote.Client
	priorities []models.Priority
}

func NewPriorityStore(client remote.Client, sessions SessionSource, notifier Notifier) *PriorityStore {
	return &PriorityStore{base: newBase(sessions, notifier), client: client}
}

// Priorities returns a copy of the cached list in server order (name
// ascending).
func (s *PriorityStore) Priorities() []models.Priority {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.priorities)
}

// FetchAll replaces the cache with the account's priorities.
func (s *PriorityStore) FetchAll(ctx context.Context) (err error) {
	s.begin()
	defer func() { s.finish(err, "", "could not load priorities") }()

	acc, err := s.requireAccount()
	if err != nil {
		return err
	}

	priorities, err := s.client.ListPriorities(ctx, acc.ID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.priorities = priorities
	s.mu.Unlock()
	return nil
}

// Add creates a priority and prepends the confirmed row.
func (s *PriorityStore) Add(ctx context.Context, input models.PriorityInput) (err error) {
	s.begin()
	defer func() { s.finish(err, "priority created", "could not create priority") }()

	acc, err := s.requireAccount()
	if err != nil {
		return err
	}
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", common.ErrValidation)
	}

	err = s.mutate(ctx, mutation{
		EntityID: uuid.NewString(),
		Call: func(ctx context.Context) (func(), error) {
			created, err := s.client.InsertPriority(ctx, acc.ID, input)
			if err != nil {
				return nil, err
			}
			return func() {
				s.priorities = append([]models.Priority{*created}, s.priorities...)
			}, nil
		},
	})
	return err
}

// Update patches a priority optimistically and reconciles with the confirmed
// row.
func (s *PriorityStore) Update(ctx context.Context, id string, patch models.PriorityPatch) (err error) {
	s.begin()
	defer func() { s.finish(err, "priority updated", "could not update priority") }()

	acc, err := s.requireAccount()
	if err != nil {
		return err
	}

	var snapshot []models.Priority
	err = s.mutate(ctx, mutation{
		EntityID: id,
		Apply: func() {
			snapshot = slices.Clone(s.priorities)
			for i, p := range s.priorities {
				if p.ID == id {
					s.priorities[i] = patch.ApplyTo(p)
				}
			}
		},
		Call: func(ctx context.Context) (func(), error) {
			updated, err := s.client.UpdatePriority(ctx, acc.ID, id, patch)
			if err != nil {
				return nil, err
			}
			return func() {
				for i, p := range s.priorities {
					if p.ID == id {
						s.priorities[i] = *updated
					}
				}
			}, nil
		},
		Rollback: func() { s.priorities = snapshot },
	})
	return err
}

// Delete removes a priority optimistically.
func (s *PriorityStore) Delete(ctx context.Context, id string) (err error) {
	s.begin()
	defer func() { s.finish(err, "priority deleted", "could not delete priority") }()

	acc, err := s.requireAccount()
	if err != nil {
		return err
	}

	var snapshot []models.Priority
	err = s.mutate(ctx, mutation{
		EntityID: id,
		Apply: func() {
			snapshot = slices.Clone(s.priorities)
			s.priorities = slices.DeleteFunc(slices.Clone(s.priorities), func(p models.Priority) bool {
				return p.ID == id
			})
		},
		Call: func(ctx context.Context) (func(), error) {
			return nil, s.client.DeletePriority(ctx, acc.ID, id)
		},
		Rollback: func() { s.priorities = snapshot },
	})
	return err
}
