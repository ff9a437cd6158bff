package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/BradenHooton/planwell/internal/models"
	pkghttp "github.com/BradenHooton/planwell/pkg/http"
	"github.com/go-chi/chi/v5"
)

// TodoRepositoryInterface defines the storage operations the todo routes need
type TodoRepositoryInterface interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Todo, error)
	Create(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	Delete(ctx context.Context, id string) (*models.Todo, error)
}

// TodoHandler handles todo HTTP requests
type TodoHandler struct {
	repo TodoRepositoryInterface
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(repo TodoRepositoryInterface) *TodoHandler {
	return &TodoHandler{repo: repo}
}

// CreateTodoRequest represents the request body for creating a todo
type CreateTodoRequest struct {
	Title       string    `json:"todo_title" validate:"required"`
	DueTime     time.Time `json:"todo_duetime" validate:"required"`
	Priority    string    `json:"todo_priority" validate:"required"`
	Status      string    `json:"todo_status" validate:"required"`
	Category    string    `json:"todo_category" validate:"required"`
	IsImportant *bool     `json:"is_important" validate:"required"`
	UserID      string    `json:"user_id" validate:"required"`
}

// List handles GET /api/todos
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		pkghttp.WriteBadRequest(w, "user_id is required")
		return
	}

	todos, err := h.repo.ListByUser(r.Context(), userID)
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, todos)
}

// Create handles POST /api/todos
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTodoRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, "All fields are required")
		return
	}

	todo, err := h.repo.Create(r.Context(), &models.Todo{
		Title:       req.Title,
		DueTime:     req.DueTime,
		Priority:    req.Priority,
		Status:      req.Status,
		Category:    req.Category,
		IsImportant: *req.IsImportant,
		UserID:      req.UserID,
	})
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusCreated, todo)
}

// Delete handles DELETE /api/todos/{id}
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	todoID := chi.URLParam(r, "id")

	todo, err := h.repo.Delete(r.Context(), todoID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			pkghttp.WriteNotFound(w, "Todo not found")
			return
		}
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, todo)
}
