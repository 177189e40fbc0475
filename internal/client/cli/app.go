// Package cli is the interactive gophauth client: a small REPL with
// register, login, whoami, ping and logout commands.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/rpc"
)

// AuthAPI is the part of client.GRPCClient the commands use.
type AuthAPI interface {
	Register(ctx context.Context, name, email, password string) (*rpc.Account, error)
	Login(ctx context.Context, email, password string) error
	Current(ctx context.Context) (*rpc.Identity, error)
	Ping(ctx context.Context) error
	Logout()
	Close() error
}

type App struct {
	api      AuthAPI
	timeout  time.Duration
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return newApp(apiClient, c.RequestTimeout, os.Stdin, os.Stdout), nil
}

func newApp(api AuthAPI, timeout time.Duration, in io.Reader, out io.Writer) *App {
	return &App{api: api, timeout: timeout, reader: bufio.NewReader(in), out: out}
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

// withTimeout bounds a single server call.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}
