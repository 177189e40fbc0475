package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	query :=
		`SELECT id, name, email, password_hash, profile_image, created_at FROM accounts
		 WHERE email = $1
		 `

	a := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.ProfileImage, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

// InsertIfAbsent relies on the unique constraint on email: a conflicting
// insert returns no row and is reported as common.ErrUniquenessViolation.
func (r *PostgresRepository) InsertIfAbsent(ctx context.Context, account *models.Account) (*models.Account, error) {
	query :=
		`INSERT INTO accounts (name, email, password_hash, profile_image)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING id, created_at
		 `

	created := *account
	err := r.db.QueryRowContext(ctx, query,
		account.Name, account.Email, account.PasswordHash, account.ProfileImage).
		Scan(&created.ID, &created.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrUniquenessViolation
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrUniquenessViolation
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &created, nil
}
