package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/BradenHooton/planwell/internal/auth"
	"github.com/BradenHooton/planwell/internal/models"
)

// OTPService orchestrates the registration verification flow: generate
// a code, store it, deliver it, and later consume it.
type OTPService struct {
	registry *auth.OTPRegistry
	userRepo UserRepository
	email    EmailSender
	logger   *slog.Logger
}

// NewOTPService creates a new OTPService
func NewOTPService(registry *auth.OTPRegistry, userRepo UserRepository, email EmailSender, logger *slog.Logger) *OTPService {
	return &OTPService{
		registry: registry,
		userRepo: userRepo,
		email:    email,
		logger:   logger,
	}
}

// RequestOTP generates and stores a verification code for an
// unregistered email, then dispatches it. The entry stays stored even
// when delivery fails, so a code that did arrive late (or was read from
// another device) can still be verified.
func (s *OTPService) RequestOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return models.ErrConflict
	}
	if !errors.Is(err, models.ErrNotFound) {
		s.logger.Error("failed to check for existing user", slog.Any("error", err))
		return models.ErrInternalServer
	}

	code, err := auth.GenerateCode()
	if err != nil {
		s.logger.Error("failed to generate verification code", slog.Any("error", err))
		return models.ErrInternalServer
	}

	expiresAt := s.registry.Store(email, code)

	if err := s.email.SendOTPEmail(ctx, email, code, expiresAt); err != nil {
		s.logger.Error("failed to deliver verification code", slog.Any("error", err))
		return fmt.Errorf("%w: %w", models.ErrEmailDelivery, err)
	}

	s.logger.Info("verification code requested")
	return nil
}

// VerifyOTP checks the submitted code against the registry. A match
// consumes the entry; it cannot be verified twice.
func (s *OTPService) VerifyOTP(email, submitted string) error {
	if err := s.registry.Verify(normalizeEmail(email), submitted); err != nil {
		s.logger.Info("verification code rejected", slog.Any("reason", err))
		return err
	}

	s.logger.Info("verification code accepted")
	return nil
}
