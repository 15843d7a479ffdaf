package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
)

// Promote grants the admin role to username. This is a maintenance
// operation: the caller is trusted.
func (s *Service) Promote(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.NewValidationError("username", "required")
	}

	if err := s.users.SetRole(ctx, username, domain.UserRoleAdmin); err != nil {
		return fmt.Errorf("auth.Promote: %w", err)
	}

	s.log.InfoContext(ctx, "user promoted to admin", slog.String("username", username))
	return nil
}
