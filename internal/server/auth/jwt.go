package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload. The field set is fixed so nothing but these
// values can end up inside a token.
type Claims struct {
	jwt.RegisteredClaims
	Name         string `json:"name"`
	ProfileImage string `json:"avatar"`
}

// TokenCodec signs TokenClaims into HS256 JWTs and verifies them back.
type TokenCodec struct {
	secret []byte
	now    func() time.Time
}

type CodecOption func(*TokenCodec)

// WithClock replaces time.Now, e.g. with a fake clock in tests.
func WithClock(now func() time.Time) CodecOption {
	return func(c *TokenCodec) {
		c.now = now
	}
}

func NewTokenCodec(secret []byte, opts ...CodecOption) (*TokenCodec, error) {
	if len(secret) == 0 {
		return nil, errors.New("token secret must not be empty")
	}
	c := &TokenCodec{
		secret: append([]byte(nil), secret...),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Now is the codec clock, truncated to token resolution.
func (c *TokenCodec) Now() time.Time {
	return c.now().UTC().Truncate(time.Second)
}

// NewClaims describes account in claims issued now.
func (c *TokenCodec) NewClaims(account *models.Account) models.TokenClaims {
	issued := c.Now()
	return models.TokenClaims{
		SubjectID:    account.ID,
		Name:         account.Name,
		ProfileImage: account.ProfileImage,
		IssuedAt:     issued,
		ExpiresAt:    issued.Add(common.TokenTTL),
	}
}

// Sign returns the compact token for claims, without the bearer prefix.
// ExpiresAt is recomputed from IssuedAt (now, when zero) so the lifetime
// is always TokenTTL.
func (c *TokenCodec) Sign(claims models.TokenClaims) (string, error) {
	issued := claims.IssuedAt.UTC().Truncate(time.Second)
	if claims.IssuedAt.IsZero() {
		issued = c.Now()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.SubjectID,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(common.TokenTTL)),
		},
		Name:         claims.Name,
		ProfileImage: claims.ProfileImage,
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("%w: signing token: %v", common.ErrorInternal, err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry and returns the claims.
// The token is accepted up to and including ExpiresAt. Every failure
// yields common.ErrInvalidToken, whichever check failed.
func (c *TokenCodec) Verify(tokenString string) (models.TokenClaims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		// the library accepts only while now < exp; the exact check is below
		jwt.WithLeeway(time.Second),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithStrictDecoding(),
	)
	if err != nil || !token.Valid {
		return models.TokenClaims{}, common.ErrInvalidToken
	}

	if claims.Subject == "" || claims.IssuedAt == nil {
		return models.TokenClaims{}, common.ErrInvalidToken
	}
	issued := claims.IssuedAt.Time.UTC()
	expires := claims.ExpiresAt.Time.UTC()
	if !expires.Equal(issued.Add(common.TokenTTL)) {
		return models.TokenClaims{}, common.ErrInvalidToken
	}
	// still good at exactly ExpiresAt
	if c.now().After(expires) {
		return models.TokenClaims{}, common.ErrInvalidToken
	}

	return models.TokenClaims{
		SubjectID:    claims.Subject,
		Name:         claims.Name,
		ProfileImage: claims.ProfileImage,
		IssuedAt:     issued,
		ExpiresAt:    expires,
	}, nil
}
