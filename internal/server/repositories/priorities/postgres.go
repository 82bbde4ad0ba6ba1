package priorities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/justdoit/internal/common"
	"github.com/dmitrijs2005/justdoit/internal/dbx"
	"github.com/dmitrijs2005/justdoit/internal/server/models"
)

// PostgresRepository implements priority storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const priorityColumns = "id, name, email_notification, sms_notification, whatsapp_notification, owner_id, created_at"

func (r *PostgresRepository) List(ctx context.Context, ownerID string, orderClause string) ([]*models.Priority, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM priorities WHERE owner_id = $1 ORDER BY %s`, priorityColumns, orderClause)

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Priority{}
	for rows.Next() {
		item := &models.Priority{}
		if err := rows.Scan(&item.ID, &item.Name, &item.EmailNotification, &item.SMSNotification,
			&item.WhatsAppNotification, &item.OwnerID, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, priority *models.Priority) (*models.Priority, error) {
	query := `
		INSERT INTO priorities (name, email_notification, sms_notification, whatsapp_notification, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		priority.Name, priority.EmailNotification, priority.SMSNotification,
		priority.WhatsAppNotification, priority.OwnerID).
		Scan(&priority.ID, &priority.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return priority, nil
}

func (r *PostgresRepository) Update(ctx context.Context, ownerID string, id string, patch *models.PriorityPatch) (*models.Priority, error) {
	query := fmt.Sprintf(`
		UPDATE priorities
		SET name = COALESCE($3, name),
			email_notification = COALESCE($4, email_notification),
			sms_notification = COALESCE($5, sms_notification),
			whatsapp_notification = COALESCE($6, whatsapp_notification)
		WHERE owner_id = $1 AND id = $2
		RETURNING %s`, priorityColumns)

	item := &models.Priority{}
	err := r.db.QueryRowContext(ctx, query, ownerID, id,
		patch.Name, patch.EmailNotification, patch.SMSNotification, patch.WhatsAppNotification).
		Scan(&item.ID, &item.Name, &item.EmailNotification, &item.SMSNotification,
			&item.WhatsAppNotification, &item.OwnerID, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID string, id string) error {
	query := `DELETE FROM priorities WHERE owner_id = $1 AND id = $2`

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
