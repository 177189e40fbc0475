package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/rpc"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---- fakes ----

type fakeAuth struct {
	regResp *models.Account
	regErr  error

	token    string
	loginErr error
}

func (f *fakeAuth) Register(context.Context, string, string, string) (*models.Account, error) {
	return f.regResp, f.regErr
}

func (f *fakeAuth) Login(context.Context, string, string) (string, error) {
	return f.token, f.loginErr
}

type fakeAuthenticator struct {
	id  models.CallerIdentity
	err error

	seen string
}

func (f *fakeAuthenticator) Authenticate(header string) (models.CallerIdentity, error) {
	f.seen = header
	return f.id, f.err
}

func newServer(a authService, authn authenticator) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, a, authn)
}

// ---- tests ----

func TestPing_OK(t *testing.T) {
	s := newServer(&fakeAuth{}, &fakeAuthenticator{})
	resp, err := s.Ping(context.Background(), &rpc.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
}

func TestRegister_OK(t *testing.T) {
	created := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	s := newServer(&fakeAuth{regResp: &models.Account{
		ID: "42", Name: "Ann", Email: "ann@x.com", PasswordHash: "$2a$10$x", ProfileImage: "img", CreatedAt: created,
	}}, &fakeAuthenticator{})

	resp, err := s.Register(context.Background(), &rpc.RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, &rpc.Account{ID: "42", Name: "Ann", Email: "ann@x.com", Avatar: "img", Date: created}, resp)
}

func TestRegister_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   codes.Code
		wantFields map[string]string
	}{
		{
			name:       "validation",
			err:        &services.ValidationError{Fields: map[string]string{"name": "Name field is required"}},
			wantCode:   codes.InvalidArgument,
			wantFields: map[string]string{"name": "Name field is required"},
		},
		{
			name:       "duplicate",
			err:        common.ErrDuplicateEmail,
			wantCode:   codes.AlreadyExists,
			wantFields: map[string]string{"email": "Email already exists"},
		},
		{
			name:     "store",
			err:      fmt.Errorf("%w: %w", common.ErrStoreUnavailable, errors.New("dial tcp: refused")),
			wantCode: codes.Unavailable,
		},
		{
			name:     "deadline",
			err:      context.DeadlineExceeded,
			wantCode: codes.DeadlineExceeded,
		},
		{
			name:     "internal",
			err:      fmt.Errorf("%w: bcrypt", common.ErrorInternal),
			wantCode: codes.Internal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(&fakeAuth{regErr: tt.err}, &fakeAuthenticator{})
			_, err := s.Register(context.Background(), &rpc.RegisterRequest{})
			assert.Equal(t, tt.wantCode, status.Code(err))
			assert.Equal(t, tt.wantFields, rpc.FieldViolations(err))
		})
	}
}

func TestRegister_GenericMessageHidesCause(t *testing.T) {
	s := newServer(&fakeAuth{regErr: fmt.Errorf("%w: %w", common.ErrStoreUnavailable, errors.New("password=hunter2"))}, &fakeAuthenticator{})
	_, err := s.Register(context.Background(), &rpc.RegisterRequest{})
	assert.NotContains(t, status.Convert(err).Message(), "hunter2")
}

func TestLogin_OK(t *testing.T) {
	s := newServer(&fakeAuth{token: "abc.def.ghi"}, &fakeAuthenticator{})
	resp, err := s.Login(context.Background(), &rpc.LoginRequest{Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, &rpc.LoginResponse{Success: true, Token: "Bearer abc.def.ghi"}, resp)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	s := newServer(&fakeAuth{loginErr: common.ErrInvalidCredentials}, &fakeAuthenticator{})
	_, err := s.Login(context.Background(), &rpc.LoginRequest{Email: "ann@x.com", Password: "wrong"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestCurrent_UsesIdentityFromContext(t *testing.T) {
	s := newServer(&fakeAuth{}, &fakeAuthenticator{})
	ctx := auth.WithIdentity(context.Background(), models.CallerIdentity{ID: "u-1", Name: "Ann", ProfileImage: "img"})

	resp, err := s.Current(ctx, &rpc.CurrentRequest{})
	require.NoError(t, err)
	assert.Equal(t, &rpc.Identity{ID: "u-1", Name: "Ann", Avatar: "img"}, resp)
}

func TestCurrent_NoIdentity(t *testing.T) {
	s := newServer(&fakeAuth{}, &fakeAuthenticator{})
	_, err := s.Current(context.Background(), &rpc.CurrentRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
