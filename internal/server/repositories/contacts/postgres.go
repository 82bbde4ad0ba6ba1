package contacts

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

// PostgresRepository implements contact storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const contactColumns = "id, name, email, phone, created_at"

func (r *PostgresRepository) List(ctx context.Context, orderClause string) ([]*models.Contact, error) {
	query := fmt.Sprintf(`SELECT %s FROM contacts ORDER BY %s`, contactColumns, orderClause)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Contact{}
	for rows.Next() {
		item := &models.Contact{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Email, &item.Phone, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Contact, error) {
	query := fmt.Sprintf(`SELECT %s FROM contacts WHERE email = $1`, contactColumns)

	item := &models.Contact{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&item.ID, &item.Name, &item.Email, &item.Phone, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	query := `
		INSERT INTO contacts (name, email, phone)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, contact.Name, contact.Email, contact.Phone).
		Scan(&contact.ID, &contact.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return contact, nil
}
