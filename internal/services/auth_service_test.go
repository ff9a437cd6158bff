package services

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	internalauth "github.com/BradenHooton/planwell/internal/auth"
	"github.com/BradenHooton/planwell/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryUserRepo is a stateful in-memory credential store used by the
// round-trip tests.
type memoryUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by id
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*models.User)}
}

func (r *memoryUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, models.ErrConflict
		}
	}

	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.ID] = &stored
	return user, nil
}

func (r *memoryUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, models.ErrNotFound
}

func (r *memoryUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *memoryUserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			u.PasswordHash = passwordHash
			u.UpdatedAt = time.Now()
			copied := *u
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *memoryUserRepo) Delete(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.users[id]; ok {
		delete(r.users, id)
		copied := *u
		return &copied, nil
	}
	return nil, models.ErrNotFound
}

func newTestAuthService(repo UserRepository) *AuthService {
	tm := internalauth.NewTokenManager("test-secret-32-characters-long!!", 24*time.Hour)
	registry := internalauth.NewOTPRegistry(10 * time.Minute)
	tracker := internalauth.NewAttemptTracker(3)
	return NewAuthService(repo, tm, registry, tracker, slog.Default())
}

func TestAuthService_RegisterLoginRoundTrip(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	registered, err := svc.Register(context.Background(), "Ada", "Lovelace", "ada@x.com", "hunter2pass")
	require.NoError(t, err)
	require.NotNil(t, registered.User)
	assert.NotEmpty(t, registered.User.ID)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "ada@x.com", registered.User.Email)

	loggedIn, err := svc.Login(context.Background(), "ada@x.com", "hunter2pass")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
	assert.NotEmpty(t, loggedIn.Token)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), "Ada", "Lovelace", "ada@x.com", "hunter2pass")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Grace", "Hopper", "ada@x.com", "different")
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), "Ada", "Lovelace", "ada@x.com", "hunter2pass")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "ada@x.com", "wrong")
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(newMemoryUserRepo())

	_, err := svc.Login(context.Background(), "ghost@x.com", "whatever")
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestAuthService_UpdatePasswordInvalidatesOld(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), "Ada", "Lovelace", "ada@x.com", "oldpassword")
	require.NoError(t, err)

	_, err = svc.UpdatePassword(context.Background(), "ada@x.com", "newpassword")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "ada@x.com", "oldpassword")
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	_, err = svc.Login(context.Background(), "ada@x.com", "newpassword")
	assert.NoError(t, err)
}

func TestAuthService_UpdatePasswordUnknownEmail(t *testing.T) {
	svc := newTestAuthService(newMemoryUserRepo())

	_, err := svc.UpdatePassword(context.Background(), "ghost@x.com", "newpassword")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAuthService_CheckPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), "Ada", "Lovelace", "ada@x.com", "hunter2pass")
	require.NoError(t, err)

	assert.NoError(t, svc.CheckPassword(context.Background(), "ada@x.com", "hunter2pass"))
	assert.ErrorIs(t, svc.CheckPassword(context.Background(), "ada@x.com", "nope"), models.ErrPasswordMismatch)
	assert.ErrorIs(t, svc.CheckPassword(context.Background(), "ghost@x.com", "nope"), models.ErrNotFound)
}

func TestAuthService_DeleteAccountSuccess(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	registered, err := svc.Register(context.Background(), "Ada", "Lovelace", "ada@x.com", "hunter2pass")
	require.NoError(t, err)

	deleted, err := svc.DeleteAccount(context.Background(), registered.User.ID, "ada@x.com", "hunter2pass")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, deleted.ID)

	_, err = repo.GetByID(context.Background(), registered.User.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAuthService_DeleteAccountLockout(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	registered, err := svc.Register(context.Background(), "Ada", "Lovelace", "ada@x.com", "hunter2pass")
	require.NoError(t, err)
	userID := registered.User.ID

	_, err = svc.DeleteAccount(context.Background(), userID, "ada@x.com", "wrong")
	assert.ErrorIs(t, err, models.ErrPasswordMismatch)

	_, err = svc.DeleteAccount(context.Background(), userID, "wrong@x.com", "hunter2pass")
	assert.ErrorIs(t, err, models.ErrEmailMismatch)

	// Third consecutive failure locks out and clears the counter
	_, err = svc.DeleteAccount(context.Background(), userID, "ada@x.com", "wrong")
	assert.ErrorIs(t, err, models.ErrTooManyAttempts)

	// The window restarted: two failures then a success still works
	_, err = svc.DeleteAccount(context.Background(), userID, "ada@x.com", "wrong")
	assert.ErrorIs(t, err, models.ErrPasswordMismatch)

	_, err = svc.DeleteAccount(context.Background(), userID, "ada@x.com", "hunter2pass")
	assert.NoError(t, err)
}

func TestAuthService_MixedCaseEmailAcceptedEverywhere(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	registered, err := svc.Register(context.Background(), "Ada", "Lovelace", "Ada@X.com ", "hunter2pass")
	require.NoError(t, err)
	assert.Equal(t, "ada@x.com", registered.User.Email, "stored form is lowercased and trimmed")

	// Every flow must accept the address as the user typed it at signup
	_, err = svc.Login(context.Background(), "Ada@X.com", "hunter2pass")
	assert.NoError(t, err)

	assert.NoError(t, svc.CheckPassword(context.Background(), "Ada@X.com", "hunter2pass"))

	_, err = svc.UpdatePassword(context.Background(), "Ada@X.com", "newpassword")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "ada@x.com", "newpassword")
	require.NoError(t, err)

	// A mixed-case email on deletion is not a mismatch and must not
	// count toward the lockout
	_, err = svc.DeleteAccount(context.Background(), registered.User.ID, "Ada@X.com", "newpassword")
	assert.NoError(t, err)
}

func TestAuthService_DeleteAccountSuccessClearsCounter(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	registered, err := svc.Register(context.Background(), "Ada", "Lovelace", "ada@x.com", "hunter2pass")
	require.NoError(t, err)
	userID := registered.User.ID

	_, err = svc.DeleteAccount(context.Background(), userID, "ada@x.com", "wrong")
	assert.ErrorIs(t, err, models.ErrPasswordMismatch)

	_, err = svc.DeleteAccount(context.Background(), userID, "ada@x.com", "hunter2pass")
	assert.NoError(t, err)
}
