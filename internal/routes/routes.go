package routes

import (
	"github.com/BradenHooton/planwell/internal/auth"
	"github.com/BradenHooton/planwell/internal/handlers"
	"github.com/BradenHooton/planwell/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(
	router chi.Router,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	todoHandler *handlers.TodoHandler,
	jobHandler *handlers.JobHandler,
	eventHandler *handlers.EventHandler,
	archiveHandler *handlers.ArchiveHandler,
	tokenManager *auth.TokenManager,
	loginLimit middleware.RateLimitConfig,
) {
	// Public routes - registration flow needs no token
	router.Post("/auth/register-send-otp", authHandler.SendOTP)
	router.Post("/auth/verify-otp", authHandler.VerifyOTP)
	router.Post("/auth/register", authHandler.Register)

	// Login is the only rate-limited endpoint
	router.With(middleware.RateLimitByIP(loginLimit)).Post("/auth/login", authHandler.Login)

	// Protected routes - session token required
	router.Group(func(r chi.Router) {
		r.Use(auth.Middleware(tokenManager))

		r.Post("/auth/password-check", authHandler.CheckPassword)
		r.Put("/auth/password-update", authHandler.UpdatePassword)

		r.Delete("/api/users", userHandler.DeleteAccount)

		r.Get("/api/todos", todoHandler.List)
		r.Post("/api/todos", todoHandler.Create)
		r.Delete("/api/todos/{id}", todoHandler.Delete)

		r.Get("/api/jobs", jobHandler.List)
		r.Post("/api/jobs", jobHandler.Create)
		r.Patch("/api/jobs/{id}", jobHandler.Update)
		r.Delete("/api/jobs/{id}", jobHandler.Delete)

		r.Get("/api/events", eventHandler.List)
		r.Post("/api/events", eventHandler.Create)

		r.Get("/api/archive/todos", archiveHandler.List)
		r.Post("/api/archive/todos/{id}", archiveHandler.Archive)
		r.Delete("/api/archive/todos/{id}", archiveHandler.Delete)
	})
}
