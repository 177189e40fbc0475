// Package client talks to the gophauth server over gRPC and keeps the
// bearer token of the current session.
package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      rpc.AuthServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AuthorizationHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the session token, when there is one.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = rpc.NewAuthServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(t string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = t
}

func (s *GRPCClient) Register(ctx context.Context, name, email, password string) (*rpc.Account, error) {
	resp, err := s.client.Register(ctx, &rpc.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

// Login keeps the returned bearer token for later calls.
func (s *GRPCClient) Login(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, &rpc.LoginRequest{Email: email, Password: password})
	if err != nil {
		return s.mapError(err)
	}
	s.setToken(resp.Token)
	return nil
}

// Current asks the server who the session token belongs to.
func (s *GRPCClient) Current(ctx context.Context) (*rpc.Identity, error) {
	if s.token() == "" {
		return nil, ErrNotLoggedIn
	}
	resp, err := s.client.Current(ctx, &rpc.CurrentRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Logout() {
	s.setToken("")
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &rpc.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if fields := rpc.FieldViolations(err); fields != nil {
		return &FieldError{Fields: fields}
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
