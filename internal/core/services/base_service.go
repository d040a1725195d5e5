package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
	"github.com/SscSPs/content_platform_app/internal/core/domain"
	portssvc "github.com/SscSPs/content_platform_app/internal/core/ports/services"
	"github.com/SscSPs/content_platform_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Authority portssvc.PermissionAuthoritySvc
	// Clock overrides time.Now, mainly for tests.
	Clock func() time.Time
}

// Now returns the current UTC time from Clock or the wall clock.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// AuthorizeUser resolves the acting user inside tenantID and checks that it
// holds perm. Without an authority every request is denied.
func (s *BaseService) AuthorizeUser(ctx context.Context, tenantID, userID string, perm domain.Permission) (*domain.User, error) {
	if s.Authority == nil {
		s.LogWarn(ctx, "No permission authority configured, denying access",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID),
			slog.String("permission", string(perm)))
		return nil, apperrors.NewForbiddenError("authorization unavailable")
	}
	actor, err := s.Authority.ResolveActor(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	if err := actor.Authorize(tenantID, perm); err != nil {
		s.LogDebug(ctx, "Permission denied",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID),
			slog.String("permission", string(perm)))
		return nil, err
	}
	return actor, nil
}

// ResolveActor loads the acting user as a member of tenantID without
// checking a specific permission.
func (s *BaseService) ResolveActor(ctx context.Context, tenantID, userID string) (*domain.User, error) {
	if s.Authority == nil {
		return nil, apperrors.NewForbiddenError("authorization unavailable")
	}
	return s.Authority.ResolveActor(ctx, tenantID, userID)
}
