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

// TodoStore caches the signed-in account's todos, newest first.
type TodoStore struct {
	base
	client remote.Client
	todos  []models.Todo
}

func NewTodoStore(client remote.Client, sessions SessionSource, notifier Notifier) *TodoStore {
	return &TodoStore{base: newBase(sessions, notifier), client: client}
}

// Todos returns a copy of the cached list in server order (created_at
// descending); the UI renders it as-is.
func (s *TodoStore) Todos() []models.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.todos)
}

// FetchAll replaces the cache with the account's todos, ordered by the
// service (created_at descending).
func (s *TodoStore) FetchAll(ctx context.Context) (err error) {
	s.begin()
	defer func() { s.finish(err, "", "could not load todos") }()

	acc, err := s.requireAccount()
	if err != nil {
		return err
	}

	todos, err := s.client.ListTodos(ctx, acc.ID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.todos = todos
	s.mu.Unlock()
	return nil
}

// Add creates a todo and prepends the confirmed row, where the next fetch
// would place it. Status defaults to active.
func (s *TodoStore) Add(ctx context.Context, input models.TodoInput) (err error) {
	s.begin()
	defer func() { s.finish(err, "todo created", "could not create todo") }()

	acc, err := s.requireAccount()
	if err != nil {
		return err
	}
	if input.Description == "" {
		return fmt.Errorf("%w: description is required", common.ErrValidation)
	}
	if input.Status == "" {
		input.Status = models.TodoStatusActive
	}

	err = s.mutate(ctx, mutation{
		EntityID: uuid.NewString(),
		Call: func(ctx context.Context) (func(), error) {
			created, err := s.client.InsertTodo(ctx, acc.ID, input)
			if err != nil {
				return nil, err
			}
			return func() { s.todos = append([]models.Todo{*created}, s.todos...) }, nil
		},
	})
	return err
}

// Update patches a todo optimistically and reconciles with the confirmed row.
func (s *TodoStore) Update(ctx context.Context, id string, patch models.TodoPatch) (err error) {
	s.begin()
	defer func() { s.finish(err, "todo updated", "could not update todo") }()

	acc, err := s.requireAccount()
	if err != nil {
		return err
	}

	var snapshot []models.Todo
	err = s.mutate(ctx, mutation{
		EntityID: id,
		Apply: func() {
			snapshot = slices.Clone(s.todos)
			for i, t := range s.todos {
				if t.ID == id {
					s.todos[i] = patch.ApplyTo(t)
				}
			}
		},
		Call: func(ctx context.Context) (func(), error) {
			updated, err := s.client.UpdateTodo(ctx, acc.ID, id, patch)
			if err != nil {
				return nil, err
			}
			return func() {
				for i, t := range s.todos {
					if t.ID == id {
						s.todos[i] = *updated
					}
				}
			}, nil
		},
		Rollback: func() { s.todos = snapshot },
	})
	return err
}

// Delete removes a todo optimistically.
func (s *TodoStore) Delete(ctx context.Context, id string) (err error) {
	s.begin()
	defer func() { s.finish(err, "todo deleted", "could not delete todo") }()

	acc, err := s.requireAccount()
	if err != nil {
		return err
	}

	var snapshot []models.Todo
	err = s.mutate(ctx, mutation{
		EntityID: id,
		Apply: func() {
			snapshot = slices.Clone(s.todos)
			s.todos = slices.DeleteFunc(slices.Clone(s.todos), func(t models.Todo) bool {
				return t.ID == id
			})
		},
		Call: func(ctx context.Context) (func(), error) {
			return nil, s.client.DeleteTodo(ctx, acc.ID, id)
		},
		Rollback: func() { s.todos = snapshot },
	})
	return err
}

// Toggle flips a todo between active and inactive.
func (s *TodoStore) Toggle(ctx context.Context, id string) error {
	s.mu.Lock()
	var current *models.Todo
	for i := range s.todos {
		if s.todos[i].ID == id {
			current = &s.todos[i]
			break
		}
	}
	if current == nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: todo %s", common.ErrNotFound, id)
	}
	next := models.TodoStatusActive
	if current.Status == models.TodoStatusActive {
		next = models.TodoStatusInactive
	}
	s.mu.Unlock()

	return s.Update(ctx, id, models.TodoPatch{Status: &next})
}
