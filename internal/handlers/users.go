package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BradenHooton/planwell/internal/auth"
	"github.com/BradenHooton/planwell/internal/models"
	"github.com/BradenHooton/planwell/internal/services"
	pkghttp "github.com/BradenHooton/planwell/pkg/http"
)

// AccountServiceInterface defines the destructive account operations
type AccountServiceInterface interface {
	DeleteAccount(ctx context.Context, userID, email, password string) (*services.UserResponse, error)
}

// UserHandler handles user account HTTP requests
type UserHandler struct {
	service AccountServiceInterface
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service AccountServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// DeleteAccountRequest represents the re-authentication body for account deletion
type DeleteAccountRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// DeleteAccount handles DELETE /api/users. The caller must resubmit
// their email and current password; the target user id comes from the
// session token, never from the body.
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUserFromContext(r)
	if claims == nil {
		pkghttp.WriteUnauthorized(w, "Unauthorized")
		return
	}

	var req DeleteAccountRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, "All fields are required")
		return
	}

	user, err := h.service.DeleteAccount(r.Context(), claims.UserID, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrTooManyAttempts):
			pkghttp.WriteTooManyRequests(w, "Too many failed attempts")
		case errors.Is(err, models.ErrNotFound):
			pkghttp.WriteNotFound(w, "User not found")
		case errors.Is(err, models.ErrEmailMismatch):
			pkghttp.WriteBadRequest(w, "Email does not match")
		case errors.Is(err, models.ErrPasswordMismatch):
			pkghttp.WriteUnauthorized(w, "Password does not match")
		default:
			pkghttp.WriteInternalError(w, "Error deleting user")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "User deleted successfully",
		"user":    user,
	})
}
