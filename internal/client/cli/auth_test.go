package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	regName, regEmail, regPass string
	regResp                    *rpc.Account
	regErr                     error

	loginEmail, loginPass string
	loginErr              error

	current    *rpc.Identity
	currentErr error

	pingErr error

	logoutCalled bool
	closed       bool
	hadDeadline  bool
}

func (f *fakeAPI) Register(ctx context.Context, name, email, password string) (*rpc.Account, error) {
	_, f.hadDeadline = ctx.Deadline()
	f.regName, f.regEmail, f.regPass = name, email, password
	return f.regResp, f.regErr
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) error {
	_, f.hadDeadline = ctx.Deadline()
	f.loginEmail, f.loginPass = email, password
	return f.loginErr
}

func (f *fakeAPI) Current(context.Context) (*rpc.Identity, error) { return f.current, f.currentErr }
func (f *fakeAPI) Ping(context.Context) error                    { return f.pingErr }
func (f *fakeAPI) Logout()                                       { f.logoutCalled = true }
func (f *fakeAPI) Close() error                                  { f.closed = true; return nil }

// stubPassword replaces the terminal prompt; it returns the buffer handed
// to the command so tests can check it was wiped.
func stubPassword(t *testing.T, pw string) *[]byte {
	t.Helper()
	orig := promptPassword
	var handed []byte
	promptPassword = func(_ io.Writer) ([]byte, error) {
		handed = []byte(pw)
		return handed, nil
	}
	t.Cleanup(func() { promptPassword = orig })
	return &handed
}

func newTestApp(api AuthAPI, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return newApp(api, time.Second, strings.NewReader(input), &out), &out
}

func TestRegister_Success(t *testing.T) {
	f := &fakeAPI{regResp: &rpc.Account{ID: "u-1", Email: "ann@x.com"}}
	a, out := newTestApp(f, "Ann\nann@x.com\n")
	handed := stubPassword(t, "secret1")

	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, "Ann", f.regName)
	assert.Equal(t, "ann@x.com", f.regEmail)
	assert.Equal(t, "secret1", f.regPass)
	assert.True(t, f.hadDeadline)
	assert.Equal(t, make([]byte, 7), *handed)
	assert.Contains(t, out.String(), "Registered ann@x.com (id u-1)")
}

func TestRegister_FieldError(t *testing.T) {
	f := &fakeAPI{regErr: &client.FieldError{Fields: map[string]string{"email": "Email already exists"}}}
	a, _ := newTestApp(f, "Ann\nann@x.com\n")
	stubPassword(t, "secret1")

	err := a.Register(context.Background())
	var fe *client.FieldError
	require.ErrorAs(t, err, &fe)
}

func TestLogin_Success(t *testing.T) {
	f := &fakeAPI{}
	a, _ := newTestApp(f, "ann@x.com\n")
	handed := stubPassword(t, "secret1")

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "ann@x.com", f.loginEmail)
	assert.Equal(t, "secret1", f.loginPass)
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(ann@x.com)", a.getStatus())
	assert.Equal(t, make([]byte, 7), *handed)
}

func TestLogin_Failure(t *testing.T) {
	f := &fakeAPI{loginErr: client.ErrUnauthorized}
	a, _ := newTestApp(f, "ann@x.com\n")
	stubPassword(t, "wrong1")

	require.ErrorIs(t, a.Login(context.Background()), client.ErrUnauthorized)
	assert.False(t, a.isLoggedIn())
}

func TestWhoAmI(t *testing.T) {
	f := &fakeAPI{current: &rpc.Identity{ID: "u-1", Name: "Ann", Avatar: "img"}}
	a, out := newTestApp(f, "")

	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "name:   Ann")

	f.currentErr = client.ErrNotLoggedIn
	require.ErrorIs(t, a.WhoAmI(context.Background()), client.ErrNotLoggedIn)
}

func TestPingAndLogout(t *testing.T) {
	f := &fakeAPI{}
	a, out := newTestApp(f, "")
	a.userName = "ann@x.com"

	require.NoError(t, a.Ping(context.Background()))
	assert.Contains(t, out.String(), "OK")

	f.pingErr = errors.New("down")
	require.Error(t, a.Ping(context.Background()))

	a.Logout()
	assert.True(t, f.logoutCalled)
	assert.False(t, a.isLoggedIn())
}
