package services

import (
	"context"
	"sync"
	"time"

	"github.com/BradenHooton/planwell/internal/models"
)

// MockUserRepository implements UserRepository for testing
type MockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *models.User) (*models.User, error)
	GetByIDFunc        func(ctx context.Context, id string) (*models.User, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*models.User, error)
	UpdatePasswordFunc func(ctx context.Context, email, passwordHash string) (*models.User, error)
	DeleteFunc         func(ctx context.Context, id string) (*models.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil, models.ErrInternalServer
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) (*models.User, error) {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, email, passwordHash)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) (*models.User, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil, models.ErrNotFound
}

// SentCode is one captured verification code delivery
type SentCode struct {
	To        string
	Code      string
	ExpiresAt time.Time
}

// MockEmailSender captures sent codes for test assertions
type MockEmailSender struct {
	mu        sync.Mutex
	SentCodes []SentCode
	FailWith  error
}

func (m *MockEmailSender) SendOTPEmail(ctx context.Context, email, code string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return m.FailWith
	}

	m.SentCodes = append(m.SentCodes, SentCode{To: email, Code: code, ExpiresAt: expiresAt})
	return nil
}

// LastCode returns the most recent delivered code, or nil
func (m *MockEmailSender) LastCode() *SentCode {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.SentCodes) == 0 {
		return nil
	}
	return &m.SentCodes[len(m.SentCodes)-1]
}
