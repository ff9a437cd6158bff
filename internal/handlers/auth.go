package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BradenHooton/planwell/internal/models"
	"github.com/BradenHooton/planwell/internal/services"
	pkghttp "github.com/BradenHooton/planwell/pkg/http"
)

// AuthServiceInterface defines the interface for auth business logic
type AuthServiceInterface interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (*services.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*services.AuthResponse, error)
	CheckPassword(ctx context.Context, email, password string) error
	UpdatePassword(ctx context.Context, email, newPassword string) (*services.UserResponse, error)
}

// OTPServiceInterface defines the interface for the registration
// verification flow
type OTPServiceInterface interface {
	RequestOTP(ctx context.Context, email string) error
	VerifyOTP(email, submitted string) error
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	service    AuthServiceInterface
	otpService OTPServiceInterface
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service AuthServiceInterface, otpService OTPServiceInterface) *AuthHandler {
	return &AuthHandler{
		service:    service,
		otpService: otpService,
	}
}

// Request DTOs

// SendOTPRequest represents the request body for requesting a verification code
type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPRequest represents the request body for submitting a verification code
type VerifyOTPRequest struct {
	Email    string `json:"email" validate:"required,email"`
	OTPValue string `json:"otpValue" validate:"required,len=6,numeric"`
}

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PasswordRequest represents the request body for password check and update
type PasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SendOTP handles POST /auth/register-send-otp
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req SendOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	if err := h.otpService.RequestOTP(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, models.ErrConflict):
			pkghttp.WriteConflict(w, "User already exists")
		case errors.Is(err, models.ErrEmailDelivery):
			pkghttp.WriteInternalError(w, "Failed to send email")
		default:
			pkghttp.WriteInternalError(w, "Internal server error")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]string{"message": "OTP sent successfully"})
}

// VerifyOTP handles POST /auth/verify-otp
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	if err := h.otpService.VerifyOTP(req.Email, req.OTPValue); err != nil {
		switch {
		case errors.Is(err, models.ErrOTPNotFound):
			pkghttp.WriteNotFound(w, "No verification code requested for this email")
		case errors.Is(err, models.ErrOTPExpired):
			pkghttp.WriteBadRequest(w, "Verification code expired")
		case errors.Is(err, models.ErrOTPInvalid):
			pkghttp.WriteBadRequest(w, "Invalid OTP")
		default:
			pkghttp.WriteInternalError(w, "Internal server error")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]string{"message": "OTP verified successfully"})
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, "All fields are required")
		return
	}

	resp, err := h.service.Register(r.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrConflict):
			pkghttp.WriteConflict(w, "Email is already registered")
		default:
			pkghttp.WriteInternalError(w, "Error registering user")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusCreated, resp)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, "All fields are required")
		return
	}

	resp, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUnauthorized):
			pkghttp.WriteUnauthorized(w, "Invalid email or password")
		default:
			pkghttp.WriteInternalError(w, "Error logging in user")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, resp)
}

// CheckPassword handles POST /auth/password-check
func (h *AuthHandler) CheckPassword(w http.ResponseWriter, r *http.Request) {
	var req PasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, "All fields are required")
		return
	}

	if err := h.service.CheckPassword(r.Context(), req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, models.ErrPasswordMismatch):
			pkghttp.WriteBadRequest(w, "Password does not match")
		case errors.Is(err, models.ErrNotFound):
			pkghttp.WriteNotFound(w, "User not found")
		default:
			pkghttp.WriteInternalError(w, "Error checking password")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]string{"message": "Password matches"})
}

// UpdatePassword handles PUT /auth/password-update
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req PasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, "All fields are required")
		return
	}

	user, err := h.service.UpdatePassword(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			pkghttp.WriteNotFound(w, "User not found")
		default:
			pkghttp.WriteInternalError(w, "Error updating password")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Password updated successfully",
		"user":    user,
	})
}
