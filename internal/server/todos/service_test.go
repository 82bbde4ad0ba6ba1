package todos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/justdoit/internal/common"
	"github.com/dmitrijs2005/justdoit/internal/server/models"
)

type fakeRepo struct {
	listOwner   string
	listClause  string
	inserted    *models.Todo
	updated     *models.TodoPatch
	deletedID   string
	deleteOwner string
}

func (r *fakeRepo) List(ctx context.Context, ownerID string, orderClause string) ([]*models.Todo, error) {
	r.listOwner = ownerID
	r.listClause = orderClause
	return []*models.Todo{}, nil
}

func (r *fakeRepo) Insert(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	r.inserted = todo
	todo.ID = "t-1"
	return todo, nil
}

func (r *fakeRepo) Update(ctx context.Context, ownerID string, id string, patch *models.TodoPatch) (*models.Todo, error) {
	r.updated = patch
	return &models.Todo{ID: id, OwnerID: ownerID}, nil
}

func (r *fakeRepo) Delete(ctx context.Context, ownerID string, id string) error {
	r.deleteOwner = ownerID
	r.deletedID = id
	return nil
}

func TestList_DefaultOrder(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.List(context.Background(), "acc-1", "")
	require.NoError(t, err)
	require.Equal(t, "acc-1", repo.listOwner)
	require.Equal(t, "created_at DESC", repo.listClause)
}

func TestList_RejectsUnknownOrder(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.List(context.Background(), "acc-1", "description.asc")
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestCreate_ForcesOwnerAndDefaultStatus(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	todo, err := svc.Create(context.Background(), "acc-1", &models.Todo{
		Description: "buy milk",
		OwnerID:     "acc-other",
	})
	require.NoError(t, err)
	require.Equal(t, "acc-1", todo.OwnerID)
	require.Equal(t, "active", todo.Status)
}

func TestCreate_RequiresDescription(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Create(context.Background(), "acc-1", &models.Todo{Description: "   "})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestCreate_RejectsUnknownStatus(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Create(context.Background(), "acc-1", &models.Todo{
		Description: "buy milk", Status: "done",
	})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestUpdate_RejectsInvalidPatch(t *testing.T) {
	svc := NewService(&fakeRepo{})

	bad := "done"
	_, err := svc.Update(context.Background(), "acc-1", "t-1", &models.TodoPatch{Status: &bad})
	require.ErrorIs(t, err, common.ErrValidation)

	empty := ""
	_, err = svc.Update(context.Background(), "acc-1", "t-1", &models.TodoPatch{Description: &empty})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestDelete_ScopedToOwner(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	require.NoError(t, svc.Delete(context.Background(), "acc-1", "t-9"))
	require.Equal(t, "acc-1", repo.deleteOwner)
	require.Equal(t, "t-9", repo.deletedID)
}
