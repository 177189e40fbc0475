package auth

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// TokenVerifier is the part of TokenCodec the authenticator needs.
type TokenVerifier interface {
	Verify(token string) (models.TokenClaims, error)
}

// TokenAuthenticator turns an Authorization value into a caller identity.
// It never touches the credential store: a token stays good until it
// expires, even if the account is gone.
type TokenAuthenticator struct {
	verifier TokenVerifier
}

func NewTokenAuthenticator(v TokenVerifier) *TokenAuthenticator {
	return &TokenAuthenticator{verifier: v}
}

// Authenticate expects "Bearer <token>". Anything else, or a token that
// fails verification, is common.ErrUnauthenticated.
func (a *TokenAuthenticator) Authenticate(header string) (models.CallerIdentity, error) {
	token, ok := strings.CutPrefix(header, common.BearerScheme)
	if !ok || token == "" {
		return models.CallerIdentity{}, common.ErrUnauthenticated
	}

	claims, err := a.verifier.Verify(token)
	if err != nil {
		return models.CallerIdentity{}, common.ErrUnauthenticated
	}

	return claims.Identity(), nil
}

// BearerToken prefixes a signed token with the transport scheme.
func BearerToken(signed string) string {
	return common.BearerScheme + signed
}

type ctxKey string

const identityKey ctxKey = "identity"

// WithIdentity stores the authenticated caller in ctx.
func WithIdentity(ctx context.Context, id models.CallerIdentity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the caller stored by WithIdentity.
func IdentityFromContext(ctx context.Context) (models.CallerIdentity, bool) {
	id, ok := ctx.Value(identityKey).(models.CallerIdentity)
	return id, ok
}
