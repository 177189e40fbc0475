// Package accounts is the credential store: lookup by email and
// insert-if-absent for registered accounts.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Repository persists accounts.
//
// FindByEmail returns common.ErrorNotFound when no account has the email.
// InsertIfAbsent assigns ID and CreatedAt and returns
// common.ErrUniquenessViolation when the email is already taken, which is
// how concurrent registrations for the same email are resolved.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	InsertIfAbsent(ctx context.Context, account *models.Account) (*models.Account, error)
}
