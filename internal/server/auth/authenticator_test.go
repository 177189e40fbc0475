package auth

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	calls  int
	claims models.TokenClaims
	err    error
}

func (s *stubVerifier) Verify(string) (models.TokenClaims, error) {
	s.calls++
	return s.claims, s.err
}

func TestAuthenticate_ValidToken(t *testing.T) {
	c, _ := newTestCodec(t, "k")
	tok, err := c.Sign(c.NewClaims(ann))
	require.NoError(t, err)

	id, err := NewTokenAuthenticator(c).Authenticate(BearerToken(tok))
	require.NoError(t, err)
	assert.Equal(t, models.CallerIdentity{ID: "u-1", Name: "Ann", ProfileImage: ann.ProfileImage}, id)
}

func TestAuthenticate_HeaderShape(t *testing.T) {
	v := &stubVerifier{}
	a := NewTokenAuthenticator(v)

	for _, h := range []string{"", "Bearer ", "bearer abc", "Token abc", "Bearerabc", "abc"} {
		_, err := a.Authenticate(h)
		require.ErrorIs(t, err, common.ErrUnauthenticated, "header %q", h)
	}
	assert.Zero(t, v.calls, "verifier must not run without a bearer token")
}

func TestAuthenticate_VerifierFailure(t *testing.T) {
	a := NewTokenAuthenticator(&stubVerifier{err: common.ErrInvalidToken})

	_, err := a.Authenticate("Bearer abc")
	require.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	c, clock := newTestCodec(t, "k")
	tok, err := c.Sign(c.NewClaims(ann))
	require.NoError(t, err)

	clock.Advance(3601 * time.Second)
	_, err = NewTokenAuthenticator(c).Authenticate(BearerToken(tok))
	require.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestIdentityContext(t *testing.T) {
	_, ok := IdentityFromContext(context.Background())
	assert.False(t, ok)

	want := models.CallerIdentity{ID: "u-1", Name: "Ann"}
	got, ok := IdentityFromContext(WithIdentity(context.Background(), want))
	require.True(t, ok)
	assert.Equal(t, want, got)
}
