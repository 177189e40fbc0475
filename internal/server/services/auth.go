// Package services contains server-side business logic. This file implements
// AuthService, which registers accounts and logs them in by issuing signed
// bearer tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/avatar"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// PasswordHasher is satisfied by auth.PasswordHasher.
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, hash string) (bool, error)
}

// TokenSigner is satisfied by auth.TokenCodec.
type TokenSigner interface {
	NewClaims(account *models.Account) models.TokenClaims
	Sign(claims models.TokenClaims) (string, error)
}

// AuthService provides the credential lifecycle:
// - Register: validate, dedupe by email, hash the password, store the account
// - Login: look the account up, verify the password, sign a token
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	signer      TokenSigner
	avatar      avatar.Func
	logger      logging.Logger

	decoyMu   sync.Mutex
	decoyHash string
}

type Option func(*AuthService)

// WithAvatar replaces the gravatar profile image derivation.
func WithAvatar(f avatar.Func) Option {
	return func(s *AuthService) {
		s.avatar = f
	}
}

// WithLogger sets the logger for failures that do not surface to callers.
func WithLogger(l logging.Logger) Option {
	return func(s *AuthService) {
		s.logger = l.With("module", "auth_service")
	}
}

// NewAuthService wires the service. db may be nil for stores that do not
// need a connection (the in-memory one).
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, h PasswordHasher, signer TokenSigner, opts ...Option) *AuthService {
	s := &AuthService{
		db:          db,
		repomanager: m,
		hasher:      h,
		signer:      signer,
		avatar:      avatar.Gravatar,
		logger:      logging.Nop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates an account for email. It fails with a *ValidationError
// for bad input, common.ErrDuplicateEmail when the email is taken (also when
// a concurrent registration wins the insert) and common.ErrStoreUnavailable
// when the store cannot be reached.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.Account, error) {
	if err := validateRegistration(name, email, password); err != nil {
		return nil, err
	}

	repo := s.accounts()

	_, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrDuplicateEmail
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, storeError(err)
	}

	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return nil, err
	}

	account, err := repo.InsertIfAbsent(ctx, &models.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		ProfileImage: s.avatar(email),
	})
	if err != nil {
		if errors.Is(err, common.ErrUniquenessViolation) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, storeError(err)
	}

	return account, nil
}

// Login verifies the credentials and returns a signed token without the
// bearer prefix. Unknown email and wrong password both yield
// common.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if err := validateLogin(email, password); err != nil {
		return "", err
	}

	account, err := s.accounts().FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// burn the same hashing time as a real check
			_, _ = s.hasher.Verify(ctx, password, s.decoy(ctx))
			return "", common.ErrInvalidCredentials
		}
		return "", storeError(err)
	}

	ok, err := s.hasher.Verify(ctx, password, account.PasswordHash)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", common.ErrInvalidCredentials
	}

	return s.signer.Sign(s.signer.NewClaims(account))
}

func (s *AuthService) accounts() accounts.Repository {
	var h dbx.DBTX
	if s.db != nil {
		h = s.db
	}
	return s.repomanager.Accounts(h)
}

// decoy returns a hash of a random password at the configured cost, made
// on first use and reused for unknown emails. A failed attempt is logged and
// retried on the next call.
func (s *AuthService) decoy(ctx context.Context) string {
	s.decoyMu.Lock()
	defer s.decoyMu.Unlock()

	if s.decoyHash == "" {
		hash, err := s.hasher.Hash(context.WithoutCancel(ctx), uuid.NewString())
		if err != nil {
			s.logger.Error(ctx, "building decoy hash", "error", err)
			return ""
		}
		s.decoyHash = hash
	}
	return s.decoyHash
}

// storeError keeps context errors as they are and marks everything else as
// a store outage.
func storeError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", common.ErrStoreUnavailable, err)
}
