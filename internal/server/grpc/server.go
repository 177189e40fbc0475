package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/rpc"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"google.golang.org/grpc"
)

type authService interface {
	Register(ctx context.Context, name, email, password string) (*models.Account, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type authenticator interface {
	Authenticate(header string) (models.CallerIdentity, error)
}

type GRPCServer struct {
	address       string
	auth          authService
	authenticator authenticator
	logger        logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, svc authService, authn authenticator) *GRPCServer {
	return &GRPCServer{
		address:       a,
		logger:        l.With("module", "grpc_server"),
		auth:          svc,
		authenticator: authn,
	}
}

// newServer builds a grpc.Server with the service and interceptors registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	rpc.RegisterAuthServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(context.WithoutCancel(ctx), "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	// Serve reports ErrServerStopped when the stop above wins the race
	if err := srv.Serve(listen); err != nil && ctx.Err() == nil {
		return err
	}

	return nil
}
