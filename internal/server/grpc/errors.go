package grpc

import (
	"context"
	"errors"
	"sort"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps a service error to a gRPC status. Field problems travel as
// errdetails.BadRequest; outages and internal failures are logged and
// reported with a generic message.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return withFields(codes.InvalidArgument, "invalid input", services.FieldErrors(err))
	case errors.Is(err, common.ErrDuplicateEmail):
		return withFields(codes.AlreadyExists, "email already exists", services.FieldErrors(err))
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid email or password")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	case errors.Is(err, common.ErrStoreUnavailable):
		s.logger.Error(ctx, "store unavailable", "error", err)
		return status.Error(codes.Unavailable, "service unavailable")
	}

	s.logger.Error(ctx, "internal error", "error", err)
	return status.Error(codes.Internal, "internal error")
}

func withFields(code codes.Code, msg string, fields map[string]string) error {
	st := status.New(code, msg)
	if len(fields) == 0 {
		return st.Err()
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	br := &errdetails.BadRequest{}
	for _, k := range keys {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       k,
			Description: fields[k],
		})
	}

	detailed, err := st.WithDetails(br)
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
