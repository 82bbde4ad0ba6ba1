package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/justdoit/internal/common"
	"github.com/dmitrijs2005/justdoit/internal/dbx"
	"github.com/dmitrijs2005/justdoit/internal/server/models"
)

// PostgresRepository implements settings storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const settingsColumns = "id, owner_id, sender_email, email_template, created_at, updated_at"

func (r *PostgresRepository) GetByOwner(ctx context.Context, ownerID string) (*models.Settings, error) {
	query := fmt.Sprintf(`SELECT %s FROM settings WHERE owner_id = $1`, settingsColumns)
	return r.scanOne(r.db.QueryRowContext(ctx, query, ownerID))
}

func (r *PostgresRepository) Insert(ctx context.Context, settings *models.Settings) (*models.Settings, error) {
	query := `
		INSERT INTO settings (owner_id, sender_email, email_template)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		settings.OwnerID, settings.SenderEmail, settings.EmailTemplate).
		Scan(&settings.ID, &settings.CreatedAt, &settings.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return settings, nil
}

func (r *PostgresRepository) Update(ctx context.Context, ownerID string, id string, patch *models.SettingsPatch) (*models.Settings, error) {
	query := fmt.Sprintf(`
		UPDATE settings
		SET sender_email = COALESCE($3, sender_email),
			email_template = COALESCE($4, email_template),
			updated_at = now()
		WHERE owner_id = $1 AND id = $2
		RETURNING %s`, settingsColumns)

	return r.scanOne(r.db.QueryRowContext(ctx, query, ownerID, id,
		patch.SenderEmail, patch.EmailTemplate))
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.Settings, error) {
	item := &models.Settings{}
	err := row.Scan(&item.ID, &item.OwnerID, &item.SenderEmail, &item.EmailTemplate,
		&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}
