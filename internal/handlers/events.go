package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/BradenHooton/planwell/internal/models"
	pkghttp "github.com/BradenHooton/planwell/pkg/http"
)

// EventRepositoryInterface defines the storage operations the event routes need
type EventRepositoryInterface interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Event, error)
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
}

// EventHandler handles event HTTP requests
type EventHandler struct {
	repo EventRepositoryInterface
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(repo EventRepositoryInterface) *EventHandler {
	return &EventHandler{repo: repo}
}

// CreateEventRequest represents the request body for creating an event
type CreateEventRequest struct {
	Name        string    `json:"event_name" validate:"required"`
	Description string    `json:"event_description" validate:"required"`
	Date        time.Time `json:"event_date" validate:"required"`
	UserID      string    `json:"user_id" validate:"required"`
}

// List handles GET /api/events
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		pkghttp.WriteBadRequest(w, "user_id is required")
		return
	}

	events, err := h.repo.ListByUser(r.Context(), userID)
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, events)
}

// Create handles POST /api/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, "All fields are required")
		return
	}

	event, err := h.repo.Create(r.Context(), &models.Event{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		UserID:      req.UserID,
	})
	if err != nil {
		pkghttp.WriteInternalError(w, "Error inserting event")
		return
	}

	pkghttp.WriteJSON(w, http.StatusCreated, event)
}
