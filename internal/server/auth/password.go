package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and verifies passwords with bcrypt. Every hash gets
// its own random salt, embedded in the returned encoding.
type PasswordHasher struct {
	cost int
	pool *WorkerPool
}

// NewPasswordHasher returns a hasher using the given bcrypt cost. A nil pool
// means a single worker.
func NewPasswordHasher(cost int, pool *WorkerPool) *PasswordHasher {
	if pool == nil {
		pool = NewWorkerPool(1)
	}
	return &PasswordHasher{cost: cost, pool: pool}
}

// Hash returns the bcrypt encoding of plaintext.
func (h *PasswordHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("%w: empty password", common.ErrorValidation)
	}

	var (
		hash    []byte
		hashErr error
	)
	if err := h.pool.Do(ctx, func() {
		hash, hashErr = bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	}); err != nil {
		return "", err
	}

	if hashErr != nil {
		if errors.Is(hashErr, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: %v", common.ErrorValidation, hashErr)
		}
		return "", fmt.Errorf("%w: hashing password: %v", common.ErrorInternal, hashErr)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash. A malformed hash is simply
// a mismatch. The error is non-nil only when ctx ends while waiting for a
// worker.
func (h *PasswordHasher) Verify(ctx context.Context, plaintext, hash string) (bool, error) {
	var cmpErr error
	if err := h.pool.Do(ctx, func() {
		cmpErr = bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	}); err != nil {
		return false, err
	}
	return cmpErr == nil, nil
}
