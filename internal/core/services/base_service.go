package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/SscSPs/securities_vault/internal/core/domain"
	portssvc "github.com/SscSPs/securities_vault/internal/core/ports/services"
	"github.com/SscSPs/securities_vault/internal/middleware"
	"github.com/SscSPs/securities_vault/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Access  portssvc.AccessReaderSvc
	Metrics *metrics.Metrics

	custody *Custody
}

// ServiceOption is a functional option shared by the service constructors
type ServiceOption func(*BaseService)

// WithMetrics records operation outcomes on m.
func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *BaseService) {
		s.Metrics = m
	}
}

// WithCustody joins a vault to a custody account shared with other vaults.
// Services other than vaults ignore it.
func WithCustody(c *Custody) ServiceOption {
	return func(s *BaseService) {
		s.custody = c
	}
}

func newBaseService(access portssvc.AccessReaderSvc, opts []ServiceOption) BaseService {
	base := BaseService{Access: access}
	for _, opt := range opts {
		opt(&base)
	}
	return base
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a rejected operation with its reason
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()), slog.String("reason", apperrors.Kind(err)))
	args = append(args, keyvals...)
	logger.Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeCaller checks that caller holds role. Without an access registry
// every privileged call is denied.
func (s *BaseService) AuthorizeCaller(ctx context.Context, caller domain.Address, role domain.Role) error {
	if s.Access == nil {
		return fmt.Errorf("%w: no access registry configured", apperrors.ErrUnauthorized)
	}
	if caller.IsZero() || !s.Access.HasRole(role, caller) {
		return fmt.Errorf("%w: %s does not hold %s", apperrors.ErrUnauthorized, caller, role)
	}
	return nil
}

// finish logs and counts the outcome of an operation and returns err unchanged.
// Expected rejections are logged at warn level, infrastructure failures at error level.
func (s *BaseService) finish(ctx context.Context, operation string, start time.Time, err error, keyvals ...any) error {
	s.Metrics.ObserveOperation(operation, apperrors.Kind(err), start)
	if err == nil {
		return nil
	}
	switch apperrors.Kind(err) {
	case "gateway", "internal":
		s.LogError(ctx, err, operation+" failed", keyvals...)
	default:
		s.LogWarn(ctx, err, operation+" rejected", keyvals...)
	}
	return err
}

func decPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
