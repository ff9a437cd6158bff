package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BradenHooton/planwell/internal/models"
	"github.com/BradenHooton/planwell/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendOTP_Success(t *testing.T) {
	var requested string
	otps := &MockOTPService{
		RequestOTPFunc: func(ctx context.Context, email string) error {
			requested = email
			return nil
		},
	}
	handler := NewAuthHandler(&MockAuthService{}, otps)

	req := jsonRequest(t, "POST", "/auth/register-send-otp", SendOTPRequest{Email: "ada@x.com"})
	recorder := httptest.NewRecorder()

	handler.SendOTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ada@x.com", requested)
	assert.Equal(t, "OTP sent successfully", decodeMessage(t, recorder))
}

func TestSendOTP_ExistingUser(t *testing.T) {
	otps := &MockOTPService{
		RequestOTPFunc: func(ctx context.Context, email string) error {
			return models.ErrConflict
		},
	}
	handler := NewAuthHandler(&MockAuthService{}, otps)

	req := jsonRequest(t, "POST", "/auth/register-send-otp", SendOTPRequest{Email: "taken@x.com"})
	recorder := httptest.NewRecorder()

	handler.SendOTP(recorder, req)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, "User already exists", decodeMessage(t, recorder))
}

func TestSendOTP_DeliveryFailure(t *testing.T) {
	otps := &MockOTPService{
		RequestOTPFunc: func(ctx context.Context, email string) error {
			return models.ErrEmailDelivery
		},
	}
	handler := NewAuthHandler(&MockAuthService{}, otps)

	req := jsonRequest(t, "POST", "/auth/register-send-otp", SendOTPRequest{Email: "a@x.com"})
	recorder := httptest.NewRecorder()

	handler.SendOTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "Failed to send email", decodeMessage(t, recorder))
}

func TestSendOTP_InvalidEmail(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{}, &MockOTPService{})

	req := jsonRequest(t, "POST", "/auth/register-send-otp", SendOTPRequest{Email: "not-an-email"})
	recorder := httptest.NewRecorder()

	handler.SendOTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestVerifyOTP_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{"verified", nil, http.StatusOK, "OTP verified successfully"},
		{"no code requested", models.ErrOTPNotFound, http.StatusNotFound, "No verification code requested for this email"},
		{"expired", models.ErrOTPExpired, http.StatusBadRequest, "Verification code expired"},
		{"wrong code", models.ErrOTPInvalid, http.StatusBadRequest, "Invalid OTP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			otps := &MockOTPService{
				VerifyOTPFunc: func(email, submitted string) error {
					return tt.serviceErr
				},
			}
			handler := NewAuthHandler(&MockAuthService{}, otps)

			req := jsonRequest(t, "POST", "/auth/verify-otp", VerifyOTPRequest{Email: "a@x.com", OTPValue: "123456"})
			recorder := httptest.NewRecorder()

			handler.VerifyOTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, recorder))
		})
	}
}

func TestVerifyOTP_RejectsMalformedCode(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{}, &MockOTPService{
		VerifyOTPFunc: func(email, submitted string) error {
			t.Error("service must not be called for a malformed code")
			return nil
		},
	})

	for _, code := range []string{"", "12345", "1234567", "abcdef"} {
		req := jsonRequest(t, "POST", "/auth/verify-otp", VerifyOTPRequest{Email: "a@x.com", OTPValue: code})
		recorder := httptest.NewRecorder()

		handler.VerifyOTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code, "code %q", code)
	}
}

func TestRegister_Success(t *testing.T) {
	svc := &MockAuthService{
		RegisterFunc: func(ctx context.Context, firstName, lastName, email, password string) (*services.AuthResponse, error) {
			return &services.AuthResponse{
				Message: "User registered successfully",
				User:    &services.UserResponse{ID: "user-1", FirstName: firstName, LastName: lastName, Email: email},
				Token:   "signed-token",
			}, nil
		},
	}
	handler := NewAuthHandler(svc, &MockOTPService{})

	req := jsonRequest(t, "POST", "/auth/register", RegisterRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com", Password: "hunter2pass",
	})
	recorder := httptest.NewRecorder()

	handler.Register(recorder, req)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "signed-token")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := &MockAuthService{
		RegisterFunc: func(ctx context.Context, firstName, lastName, email, password string) (*services.AuthResponse, error) {
			return nil, models.ErrConflict
		},
	}
	handler := NewAuthHandler(svc, &MockOTPService{})

	req := jsonRequest(t, "POST", "/auth/register", RegisterRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com", Password: "hunter2pass",
	})
	recorder := httptest.NewRecorder()

	handler.Register(recorder, req)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, "Email is already registered", decodeMessage(t, recorder))
}

func TestRegister_MissingFields(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{}, &MockOTPService{})

	req := jsonRequest(t, "POST", "/auth/register", RegisterRequest{Email: "ada@x.com"})
	recorder := httptest.NewRecorder()

	handler.Register(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "All fields are required", decodeMessage(t, recorder))
}

func TestLogin_Success(t *testing.T) {
	svc := &MockAuthService{
		LoginFunc: func(ctx context.Context, email, password string) (*services.AuthResponse, error) {
			return &services.AuthResponse{
				Message: "Login successful",
				User:    &services.UserResponse{ID: "user-1", Email: email},
				Token:   "signed-token",
			}, nil
		},
	}
	handler := NewAuthHandler(svc, &MockOTPService{})

	req := jsonRequest(t, "POST", "/auth/login", LoginRequest{Email: "ada@x.com", Password: "hunter2pass"})
	recorder := httptest.NewRecorder()

	handler.Login(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "signed-token")
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := &MockAuthService{
		LoginFunc: func(ctx context.Context, email, password string) (*services.AuthResponse, error) {
			return nil, models.ErrUnauthorized
		},
	}
	handler := NewAuthHandler(svc, &MockOTPService{})

	req := jsonRequest(t, "POST", "/auth/login", LoginRequest{Email: "ada@x.com", Password: "wrong"})
	recorder := httptest.NewRecorder()

	handler.Login(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Invalid email or password", decodeMessage(t, recorder))
}

func TestLogin_InvalidBody(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{}, &MockOTPService{})

	req := httptest.NewRequest("POST", "/auth/login", nil)
	recorder := httptest.NewRecorder()

	handler.Login(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCheckPassword_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{"matches", nil, http.StatusOK, "Password matches"},
		{"mismatch", models.ErrPasswordMismatch, http.StatusBadRequest, "Password does not match"},
		{"unknown user", models.ErrNotFound, http.StatusNotFound, "User not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockAuthService{
				CheckPasswordFunc: func(ctx context.Context, email, password string) error {
					return tt.serviceErr
				},
			}
			handler := NewAuthHandler(svc, &MockOTPService{})

			req := jsonRequest(t, "POST", "/auth/password-check", PasswordRequest{Email: "a@x.com", Password: "pw"})
			recorder := httptest.NewRecorder()

			handler.CheckPassword(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, recorder))
		})
	}
}

func TestUpdatePassword_Success(t *testing.T) {
	svc := &MockAuthService{
		UpdatePasswordFunc: func(ctx context.Context, email, newPassword string) (*services.UserResponse, error) {
			return &services.UserResponse{ID: "user-1", Email: email}, nil
		},
	}
	handler := NewAuthHandler(svc, &MockOTPService{})

	req := jsonRequest(t, "POST", "/auth/password-update", PasswordRequest{Email: "a@x.com", Password: "newpassword"})
	recorder := httptest.NewRecorder()

	handler.UpdatePassword(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Password updated successfully", decodeMessage(t, recorder))
}

func TestUpdatePassword_UnknownUser(t *testing.T) {
	svc := &MockAuthService{
		UpdatePasswordFunc: func(ctx context.Context, email, newPassword string) (*services.UserResponse, error) {
			return nil, models.ErrNotFound
		},
	}
	handler := NewAuthHandler(svc, &MockOTPService{})

	req := jsonRequest(t, "POST", "/auth/password-update", PasswordRequest{Email: "a@x.com", Password: "newpassword"})
	recorder := httptest.NewRecorder()

	handler.UpdatePassword(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
