package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	internalauth "github.com/BradenHooton/planwell/internal/auth"
	"github.com/BradenHooton/planwell/internal/models"
	pkgauth "github.com/BradenHooton/planwell/pkg/auth"
)

// UserRepository defines the credential store operations the auth flow needs
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) (*models.User, error)
	Delete(ctx context.Context, id string) (*models.User, error)
}

// AuthService handles registration, login, password management and
// account deletion
type AuthService struct {
	repo     UserRepository
	tm       *internalauth.TokenManager
	otps     *internalauth.OTPRegistry
	attempts *internalauth.AttemptTracker
	logger   *slog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(repo UserRepository, tm *internalauth.TokenManager, otps *internalauth.OTPRegistry, attempts *internalauth.AttemptTracker, logger *slog.Logger) *AuthService {
	return &AuthService{
		repo:     repo,
		tm:       tm,
		otps:     otps,
		attempts: attempts,
		logger:   logger,
	}
}

// normalizeEmail canonicalizes an address the way Register stores it,
// so every lookup and comparison sees the same form regardless of how
// the caller typed it.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserResponse represents a user in the HTTP response
type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// AuthResponse represents the response from auth operations
type AuthResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
	Token   string        `json:"token"`
}

// Register creates the user record and issues a session token.
// Verification of a previously requested code happens in the separate
// verify-otp step and is not re-checked here; any leftover code for the
// email is discarded so it cannot outlive the account.
func (s *AuthService) Register(ctx context.Context, firstName, lastName, email, password string) (*AuthResponse, error) {
	email = normalizeEmail(email)

	hash, err := pkgauth.HashPassword(password)
	if err != nil {
		s.logger.Error("failed to hash password", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	user, err := s.repo.Create(ctx, &models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, models.ErrConflict
		}
		s.logger.Error("failed to create user", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.otps.Clear(email)

	token, err := s.tm.Issue(user.ID, user.Email)
	if err != nil {
		s.logger.Error("failed to issue session token", slog.String("user_id", user.ID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("user registered", slog.String("user_id", user.ID))

	return &AuthResponse{
		Message: "User registered successfully",
		User:    userModelToResponse(user),
		Token:   token,
	}, nil
}

// Login authenticates a user and issues a session token. A missing user
// and a wrong password both surface as ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = normalizeEmail(email)

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Info("login failed: invalid credentials")
			return nil, models.ErrUnauthorized
		}
		s.logger.Error("failed to get user by email", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	if err := pkgauth.ComparePassword(user.PasswordHash, password); err != nil {
		s.logger.Info("login failed: invalid credentials")
		return nil, models.ErrUnauthorized
	}

	token, err := s.tm.Issue(user.ID, user.Email)
	if err != nil {
		s.logger.Error("failed to issue session token", slog.String("user_id", user.ID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("user logged in", slog.String("user_id", user.ID))

	return &AuthResponse{
		Message: "User logged in successfully",
		User:    userModelToResponse(user),
		Token:   token,
	}, nil
}

// CheckPassword reports whether the submitted password matches the
// stored hash for the email. Returns ErrNotFound for an unknown email
// and ErrPasswordMismatch on a wrong password.
func (s *AuthService) CheckPassword(ctx context.Context, email, password string) error {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrNotFound
		}
		s.logger.Error("failed to get user by email", slog.Any("error", err))
		return models.ErrInternalServer
	}

	if err := pkgauth.ComparePassword(user.PasswordHash, password); err != nil {
		return models.ErrPasswordMismatch
	}

	return nil
}

// UpdatePassword re-hashes and overwrites the stored password.
func (s *AuthService) UpdatePassword(ctx context.Context, email, newPassword string) (*UserResponse, error) {
	hash, err := pkgauth.HashPassword(newPassword)
	if err != nil {
		s.logger.Error("failed to hash password", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	user, err := s.repo.UpdatePassword(ctx, normalizeEmail(email), hash)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		s.logger.Error("failed to update password", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("password updated", slog.String("user_id", user.ID))
	return userModelToResponse(user), nil
}

// DeleteAccount removes the user after a full re-authentication: the
// caller must resubmit their email and current password. Each mismatch
// counts against the attempt tracker; the third consecutive failure
// returns ErrTooManyAttempts and clears the counter, so the next
// attempt starts fresh. Success clears the counter and deletes the row.
func (s *AuthService) DeleteAccount(ctx context.Context, userID, email, password string) (*UserResponse, error) {
	email = normalizeEmail(email)

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			if s.attempts.Fail(userID) {
				return nil, models.ErrTooManyAttempts
			}
			return nil, models.ErrNotFound
		}
		s.logger.Error("failed to get user by id", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	if user.Email != email {
		if s.attempts.Fail(userID) {
			return nil, models.ErrTooManyAttempts
		}
		return nil, models.ErrEmailMismatch
	}

	if err := pkgauth.ComparePassword(user.PasswordHash, password); err != nil {
		if s.attempts.Fail(userID) {
			return nil, models.ErrTooManyAttempts
		}
		return nil, models.ErrPasswordMismatch
	}

	s.attempts.Reset(userID)

	deleted, err := s.repo.Delete(ctx, userID)
	if err != nil {
		s.logger.Error("failed to delete user", slog.String("user_id", userID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("user deleted", slog.String("user_id", userID))
	return userModelToResponse(deleted), nil
}

func userModelToResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}
