package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
)

// Register creates a new user with username + password authentication.
// A taken username or email is reported as a field-level validation error.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Username = strings.TrimSpace(input.Username)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Report taken username/email per field
	if err := s.checkAvailable(ctx, input.Username, input.Email); err != nil {
		return nil, err
	}

	// Step 3: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Step 4: Create user and its first refresh token together.
	// Uniqueness races are still caught by DB constraints.
	var result *AuthResult

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		user, err := s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			Username:     input.Username,
			Email:        input.Email,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			PasswordHash: string(hash),
			Role:         domain.UserRoleUser,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		result, err = s.issueTokens(txCtx, user)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", result.User.ID.String()))

	return result, nil
}

func (s *Service) checkAvailable(ctx context.Context, username, email string) error {
	var errs []domain.FieldError

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		errs = append(errs, domain.FieldError{Field: "username", Message: "a user with that username already exists"})
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("auth.Register check username: %w", err)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "this email is already in use"})
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("auth.Register check email: %w", err)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
