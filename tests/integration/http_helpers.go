package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/BradenHooton/planwell/internal/auth"
	"github.com/BradenHooton/planwell/internal/config"
	"github.com/BradenHooton/planwell/internal/database"
	"github.com/BradenHooton/planwell/internal/handlers"
	"github.com/BradenHooton/planwell/internal/middleware"
	"github.com/BradenHooton/planwell/internal/routes"
	"github.com/BradenHooton/planwell/internal/services"
)

// TestServer wraps httptest.Server with the database and all dependencies
type TestServer struct {
	Server      *httptest.Server
	DB          *database.DB
	EmailSender *services.MockEmailSender
	Config      *config.Config
}

// TestServerOptions tunes the parts of the stack a test needs to vary
type TestServerOptions struct {
	LoginRateLimit  int
	LoginRateWindow time.Duration
}

// NewTestServer initializes a complete HTTP server with a real database
// and a captured email sender.
func NewTestServer(db *database.DB, opts TestServerOptions) *TestServer {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if opts.LoginRateLimit == 0 {
		// High enough that ordinary test traffic never trips it
		opts.LoginRateLimit = 1000
	}
	if opts.LoginRateWindow == 0 {
		opts.LoginRateWindow = 1 * time.Minute
	}

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:         "test-secret-32-characters-long-for-testing",
			TokenExpiry:       24 * time.Hour,
			OTPExpiry:         10 * time.Minute,
			LoginRateLimit:    opts.LoginRateLimit,
			LoginRateWindow:   opts.LoginRateWindow,
			MaxDeleteAttempts: 3,
		},
		Server: config.ServerConfig{
			Port: "0",
			Env:  "test",
		},
	}

	userRepo, todoRepo, jobRepo, eventRepo, archiveRepo := InitializeRepositories(db)

	mockEmail := &services.MockEmailSender{}

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	otpRegistry := auth.NewOTPRegistry(cfg.Auth.OTPExpiry)
	attemptTracker := auth.NewAttemptTracker(cfg.Auth.MaxDeleteAttempts)

	authService := services.NewAuthService(userRepo, tokenManager, otpRegistry, attemptTracker, logger)
	otpService := services.NewOTPService(otpRegistry, userRepo, mockEmail, logger)

	authHandler := handlers.NewAuthHandler(authService, otpService)
	userHandler := handlers.NewUserHandler(authService)
	todoHandler := handlers.NewTodoHandler(todoRepo)
	jobHandler := handlers.NewJobHandler(jobRepo)
	eventHandler := handlers.NewEventHandler(eventRepo)
	archiveHandler := handlers.NewArchiveHandler(archiveRepo)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	routes.RegisterRoutes(r,
		authHandler, userHandler, todoHandler, jobHandler, eventHandler, archiveHandler,
		tokenManager,
		middleware.RateLimitConfig{Requests: cfg.Auth.LoginRateLimit, Window: cfg.Auth.LoginRateWindow},
	)

	server := httptest.NewServer(r)

	return &TestServer{
		Server:      server,
		DB:          db,
		EmailSender: mockEmail,
		Config:      cfg,
	}
}

// Close shuts down the test server
func (ts *TestServer) Close() {
	if ts.Server != nil {
		ts.Server.Close()
	}
}

// Request makes an HTTP request to the test server
func (ts *TestServer) Request(method, path string, body interface{}, headers map[string]string) (*http.Response, error) {
	url := ts.Server.URL + path

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	return http.DefaultClient.Do(req)
}

// RequestWithAuth makes an authenticated HTTP request with a session token
func (ts *TestServer) RequestWithAuth(method, path, token string, body interface{}) (*http.Response, error) {
	headers := map[string]string{
		"Authorization": "Bearer " + token,
	}
	return ts.Request(method, path, body, headers)
}

// ParseJSONResponse parses a JSON response body into the target struct
func ParseJSONResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(target)
}

// ExtractToken extracts the session token from an auth response
func ExtractToken(resp *http.Response) (string, error) {
	var authResp map[string]interface{}
	if err := ParseJSONResponse(resp, &authResp); err != nil {
		return "", err
	}

	token, _ := authResp["token"].(string)
	return token, nil
}

// GetErrorMessage extracts the error message from an error response
func GetErrorMessage(resp *http.Response) (string, error) {
	defer resp.Body.Close()
	var errResp map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		return "", err
	}
	if msg, ok := errResp["message"].(string); ok {
		return msg, nil
	}
	return "", nil
}
