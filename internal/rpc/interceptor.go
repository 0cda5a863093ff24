package rpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/ccpadmin/internal/core"
)

// AuthInterceptor sets the Authorization header on every request, replacing any previous value.
func AuthInterceptor(provider CredentialProvider) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			credential, err := provider.Credential(ctx)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("%w: %w", ErrCredential, err))
			}

			req.Header().Set(core.HeaderAuthorization, credential)

			return next(ctx, req)
		}
	}
}

func RequestIDInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Header().Get(core.HeaderRequestID) == "" {
				req.Header().Set(core.HeaderRequestID, uuid.NewString())
			}

			return next(ctx, req)
		}
	}
}

func LoggingInterceptor(logger logrus.FieldLogger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()

			resp, err := next(ctx, req)

			fields := logrus.Fields{
				"procedure": req.Spec().Procedure,
				"duration":  time.Since(start),
			}

			if requestID := req.Header().Get(core.HeaderRequestID); requestID != "" {
				fields["requestID"] = requestID
			}

			if err != nil {
				logger.WithFields(fields).WithField("code", codeOf(err).String()).WithError(err).Warn("Call failed.")

				return resp, err
			}

			logger.WithFields(fields).Debug("Call succeeded.")

			return resp, nil
		}
	}
}

// codeOf is connect.CodeOf that does not report plain context errors as unknown.
func codeOf(err error) connect.Code {
	switch {
	case errors.Is(err, context.Canceled):
		return connect.CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return connect.CodeDeadlineExceeded
	}

	return connect.CodeOf(err)
}
