// Package rest serves the account API over HTTP with fiber:
//
//	POST /api/users/register
//	POST /api/users/login
//	GET  /api/users/current   (Authorization: Bearer <token>)
package rest

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/gofiber/fiber/v2"
)

type authService interface {
	Register(ctx context.Context, name, email, password string) (*models.Account, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type authenticator interface {
	Authenticate(header string) (models.CallerIdentity, error)
}

type HTTPServer struct {
	address         string
	auth            authService
	authenticator   authenticator
	logger          logging.Logger
	shutdownTimeout time.Duration
	app             *fiber.App
}

func NewHTTPServer(a string, l logging.Logger, svc authService, authn authenticator, shutdownTimeout time.Duration) *HTTPServer {
	s := &HTTPServer{
		address:         a,
		logger:          l.With("module", "http_server"),
		auth:            svc,
		authenticator:   authn,
		shutdownTimeout: shutdownTimeout,
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})
	s.routes()

	return s
}

func (s *HTTPServer) routes() {
	users := s.app.Group("/api/users")
	users.Post("/register", s.register)
	users.Post("/login", s.login)
	users.Get("/current", s.requireAuth, s.current)
}

// Run serves until ctx is cancelled, then shuts down within shutdownTimeout.
func (s *HTTPServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		stopCtx := context.WithoutCancel(ctx)
		s.logger.Info(stopCtx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(stopCtx, s.shutdownTimeout)
		defer cancel()
		if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
			s.logger.Error(stopCtx, "HTTP shutdown", "error", err)
		}
		_ = listen.Close()
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := s.app.Listener(listen); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// errorHandler answers errors that escaped a handler (unknown routes,
// oversized bodies) with a JSON message.
func (s *HTTPServer) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		msg = e.Message
	} else {
		s.logger.Error(c.UserContext(), "unhandled error", "path", c.Path(), "error", err)
	}
	return c.Status(code).JSON(fiber.Map{"message": msg})
}
