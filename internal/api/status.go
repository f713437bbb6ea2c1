package api

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ToStatus converts a service error into a gRPC status error.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(Code(err), err.Error())
}

// Code picks the gRPC code for a service error.
func Code(err error) codes.Code {
	switch {
	case errors.Is(err, common.ErrValidation):
		return codes.InvalidArgument
	case errors.Is(err, common.ErrDuplicateUsername):
		return codes.AlreadyExists
	case errors.Is(err, common.ErrInvalidCredentials), errors.Is(err, common.ErrInvalidToken):
		return codes.Unauthenticated
	case errors.Is(err, common.ErrorUnauthorized):
		return codes.PermissionDenied
	case errors.Is(err, common.ErrTaskNotFound), errors.Is(err, common.ErrUnknownUser), errors.Is(err, common.ErrorNotFound):
		return codes.NotFound
	case errors.Is(err, common.ErrVersionConflict):
		return codes.Aborted
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}

// FromStatus turns a gRPC error back into an error wrapping the matching
// sentinel, keeping the server's message.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	var sentinel error
	msg := st.Message()
	switch st.Code() {
	case codes.InvalidArgument:
		sentinel = common.ErrValidation
	case codes.AlreadyExists:
		sentinel = common.ErrDuplicateUsername
	case codes.Unauthenticated:
		sentinel = common.ErrInvalidCredentials
		if strings.HasPrefix(msg, common.ErrInvalidToken.Error()) {
			sentinel = common.ErrInvalidToken
		}
	case codes.PermissionDenied:
		sentinel = common.ErrorUnauthorized
	case codes.NotFound:
		sentinel = common.ErrTaskNotFound
		if strings.HasPrefix(msg, common.ErrUnknownUser.Error()) {
			sentinel = common.ErrUnknownUser
		}
	case codes.Aborted:
		sentinel = common.ErrVersionConflict
	case codes.Canceled:
		return context.Canceled
	case codes.DeadlineExceeded:
		return context.DeadlineExceeded
	case codes.Unavailable:
		sentinel = common.ErrUnavailable
	default:
		sentinel = common.ErrorInternal
	}

	if msg == sentinel.Error() || strings.HasPrefix(msg, sentinel.Error()+":") {
		return fmt.Errorf("%w%s", sentinel, strings.TrimPrefix(msg, sentinel.Error()))
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}
