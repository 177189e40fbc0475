package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/rpc"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *rpc.RegisterRequest) (*rpc.Account, error) {

	account, err := s.auth.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "id", account.ID)

	return &rpc.Account{
		ID:     account.ID,
		Name:   account.Name,
		Email:  account.Email,
		Avatar: account.ProfileImage,
		Date:   account.CreatedAt,
	}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *rpc.LoginRequest) (*rpc.LoginResponse, error) {

	token, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &rpc.LoginResponse{Success: true, Token: auth.BearerToken(token)}, nil
}

// Current echoes the identity the interceptor put into ctx.
func (s *GRPCServer) Current(ctx context.Context, _ *rpc.CurrentRequest) (*rpc.Identity, error) {

	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	return &rpc.Identity{ID: id.ID, Name: id.Name, Avatar: id.ProfileImage}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *rpc.PingRequest) (*rpc.PingResponse, error) {
	return &rpc.PingResponse{Status: "OK"}, nil
}
