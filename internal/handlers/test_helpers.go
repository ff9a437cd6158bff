package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BradenHooton/planwell/internal/models"
	"github.com/BradenHooton/planwell/internal/repositories"
	"github.com/BradenHooton/planwell/internal/services"
)

// MockAuthService implements AuthServiceInterface for testing
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, firstName, lastName, email, password string) (*services.AuthResponse, error)
	LoginFunc          func(ctx context.Context, email, password string) (*services.AuthResponse, error)
	CheckPasswordFunc  func(ctx context.Context, email, password string) error
	UpdatePasswordFunc func(ctx context.Context, email, newPassword string) (*services.UserResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, firstName, lastName, email, password string) (*services.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, firstName, lastName, email, password)
	}
	return nil, models.ErrInternalServer
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*services.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, models.ErrInternalServer
}

func (m *MockAuthService) CheckPassword(ctx context.Context, email, password string) error {
	if m.CheckPasswordFunc != nil {
		return m.CheckPasswordFunc(ctx, email, password)
	}
	return models.ErrInternalServer
}

func (m *MockAuthService) UpdatePassword(ctx context.Context, email, newPassword string) (*services.UserResponse, error) {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, email, newPassword)
	}
	return nil, models.ErrInternalServer
}

// MockOTPService implements OTPServiceInterface for testing
type MockOTPService struct {
	RequestOTPFunc func(ctx context.Context, email string) error
	VerifyOTPFunc  func(email, submitted string) error
}

func (m *MockOTPService) RequestOTP(ctx context.Context, email string) error {
	if m.RequestOTPFunc != nil {
		return m.RequestOTPFunc(ctx, email)
	}
	return nil
}

func (m *MockOTPService) VerifyOTP(email, submitted string) error {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(email, submitted)
	}
	return nil
}

// MockAccountService implements AccountServiceInterface for testing
type MockAccountService struct {
	DeleteAccountFunc func(ctx context.Context, userID, email, password string) (*services.UserResponse, error)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, userID, email, password string) (*services.UserResponse, error) {
	if m.DeleteAccountFunc != nil {
		return m.DeleteAccountFunc(ctx, userID, email, password)
	}
	return nil, models.ErrInternalServer
}

// MockTodoRepo implements TodoRepositoryInterface for testing
type MockTodoRepo struct {
	ListByUserFunc func(ctx context.Context, userID string) ([]*models.Todo, error)
	CreateFunc     func(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	DeleteFunc     func(ctx context.Context, id string) (*models.Todo, error)
}

func (m *MockTodoRepo) ListByUser(ctx context.Context, userID string) ([]*models.Todo, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, models.ErrInternalServer
}

func (m *MockTodoRepo) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, todo)
	}
	return nil, models.ErrInternalServer
}

func (m *MockTodoRepo) Delete(ctx context.Context, id string) (*models.Todo, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil, models.ErrInternalServer
}

// MockJobRepo implements JobRepositoryInterface for testing
type MockJobRepo struct {
	ListByUserFunc func(ctx context.Context, userID string) ([]*models.Job, error)
	CreateFunc     func(ctx context.Context, job *models.Job) (*models.Job, error)
	UpdateFunc     func(ctx context.Context, id string, update *repositories.JobUpdate) (*models.Job, error)
	DeleteFunc     func(ctx context.Context, id string) (*models.Job, error)
}

func (m *MockJobRepo) ListByUser(ctx context.Context, userID string) ([]*models.Job, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, models.ErrInternalServer
}

func (m *MockJobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, job)
	}
	return nil, models.ErrInternalServer
}

func (m *MockJobRepo) Update(ctx context.Context, id string, update *repositories.JobUpdate) (*models.Job, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, models.ErrInternalServer
}

func (m *MockJobRepo) Delete(ctx context.Context, id string) (*models.Job, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil, models.ErrInternalServer
}

// MockEventRepo implements EventRepositoryInterface for testing
type MockEventRepo struct {
	ListByUserFunc func(ctx context.Context, userID string) ([]*models.Event, error)
	CreateFunc     func(ctx context.Context, event *models.Event) (*models.Event, error)
}

func (m *MockEventRepo) ListByUser(ctx context.Context, userID string) ([]*models.Event, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, models.ErrInternalServer
}

func (m *MockEventRepo) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, event)
	}
	return nil, models.ErrInternalServer
}

// MockArchiveRepo implements ArchiveRepositoryInterface for testing
type MockArchiveRepo struct {
	ListByUserFunc  func(ctx context.Context, userID string) ([]*models.ArchivedTodo, error)
	ArchiveTodoFunc func(ctx context.Context, todoID string) error
	DeleteFunc      func(ctx context.Context, id string) (*models.ArchivedTodo, error)
}

func (m *MockArchiveRepo) ListByUser(ctx context.Context, userID string) ([]*models.ArchivedTodo, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, models.ErrInternalServer
}

func (m *MockArchiveRepo) ArchiveTodo(ctx context.Context, todoID string) error {
	if m.ArchiveTodoFunc != nil {
		return m.ArchiveTodoFunc(ctx, todoID)
	}
	return models.ErrInternalServer
}

func (m *MockArchiveRepo) Delete(ctx context.Context, id string) (*models.ArchivedTodo, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil, models.ErrInternalServer
}

// jsonRequest builds a request carrying the given body as JSON
func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// decodeMessage extracts the "message" field from a JSON response body
func decodeMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]interface{}
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	msg, _ := body["message"].(string)
	return msg
}
