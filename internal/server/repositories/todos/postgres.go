package todos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/justdoit/internal/common"
	"github.com/dmitrijs2005/justdoit/internal/dbx"
	"github.com/dmitrijs2005/justdoit/internal/server/models"
)

// PostgresRepository implements task storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const todoColumns = "id, description, deadline, priority, receiver, status, owner_id, created_at"

func (r *PostgresRepository) List(ctx context.Context, ownerID string, orderClause string) ([]*models.Todo, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM todos WHERE owner_id = $1 ORDER BY %s`, todoColumns, orderClause)

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Todo{}
	for rows.Next() {
		item := &models.Todo{}
		if err := rows.Scan(&item.ID, &item.Description, &item.Deadline, &item.Priority,
			&item.Receiver, &item.Status, &item.OwnerID, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	query := `
		INSERT INTO todos (description, deadline, priority, receiver, status, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		todo.Description, todo.Deadline, todo.Priority, todo.Receiver, todo.Status, todo.OwnerID).
		Scan(&todo.ID, &todo.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return todo, nil
}

// Update patches the row with COALESCE, so nil patch fields keep the stored
// value. Clearing a nullable column back to NULL is not expressible through
// this patch; see models.TodoPatch.
func (r *PostgresRepository) Update(ctx context.Context, ownerID string, id string, patch *models.TodoPatch) (*models.Todo, error) {
	query := fmt.Sprintf(`
		UPDATE todos
		SET description = COALESCE($3, description),
			deadline = COALESCE($4, deadline),
			priority = COALESCE($5, priority),
			receiver = COALESCE($6, receiver),
			status = COALESCE($7, status)
		WHERE owner_id = $1 AND id = $2
		RETURNING %s`, todoColumns)

	item := &models.Todo{}
	err := r.db.QueryRowContext(ctx, query, ownerID, id,
		patch.Description, patch.Deadline, patch.Priority, patch.Receiver, patch.Status).
		Scan(&item.ID, &item.Description, &item.Deadline, &item.Priority,
			&item.Receiver, &item.Status, &item.OwnerID, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID string, id string) error {
	query := `DELETE FROM todos WHERE owner_id = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, ownerID, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
