package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const (
	ServiceName = "gophauth.AuthService"

	RegisterFullMethod = "/" + ServiceName + "/Register"
	LoginFullMethod    = "/" + ServiceName + "/Login"
	CurrentFullMethod  = "/" + ServiceName + "/Current"
	PingFullMethod     = "/" + ServiceName + "/Ping"
)

// AuthServiceServer is implemented by the gRPC transport of the server.
type AuthServiceServer interface {
	Register(context.Context, *RegisterRequest) (*Account, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Current(context.Context, *CurrentRequest) (*Identity, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
}

// ServiceDesc describes AuthService for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: registerHandler},
		{MethodName: "Login", Handler: loginHandler},
		{MethodName: "Current", Handler: currentHandler},
		{MethodName: "Ping", Handler: pingHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "auth.proto",
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// unary decodes the request into a fresh Req and runs call, through the
// interceptor chain when there is one.
func unary[Req any, Resp any](
	fullMethod string,
	call func(AuthServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AuthServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AuthServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var (
	registerHandler = unary(RegisterFullMethod, AuthServiceServer.Register)
	loginHandler    = unary(LoginFullMethod, AuthServiceServer.Login)
	currentHandler  = unary(CurrentFullMethod, AuthServiceServer.Current)
	pingHandler     = unary(PingFullMethod, AuthServiceServer.Ping)
)

// AuthServiceClient is the client side of AuthService.
type AuthServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*Account, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	Current(ctx context.Context, in *CurrentRequest, opts ...grpc.CallOption) (*Identity, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
}

type authServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*Account, error) {
	return invoke[Account](ctx, c.cc, RegisterFullMethod, in, opts)
}

func (c *authServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, LoginFullMethod, in, opts)
}

func (c *authServiceClient) Current(ctx context.Context, in *CurrentRequest, opts ...grpc.CallOption) (*Identity, error) {
	return invoke[Identity](ctx, c.cc, CurrentFullMethod, in, opts)
}

func (c *authServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, PingFullMethod, in, opts)
}
