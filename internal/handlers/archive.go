package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/BradenHooton/planwell/internal/models"
	pkghttp "github.com/BradenHooton/planwell/pkg/http"
	"github.com/go-chi/chi/v5"
)

// ArchiveRepositoryInterface defines the storage operations the archive routes need
type ArchiveRepositoryInterface interface {
	ListByUser(ctx context.Context, userID string) ([]*models.ArchivedTodo, error)
	ArchiveTodo(ctx context.Context, todoID string) error
	Delete(ctx context.Context, id string) (*models.ArchivedTodo, error)
}

// ArchiveHandler handles archived todo HTTP requests
type ArchiveHandler struct {
	repo ArchiveRepositoryInterface
}

// NewArchiveHandler creates a new ArchiveHandler
func NewArchiveHandler(repo ArchiveRepositoryInterface) *ArchiveHandler {
	return &ArchiveHandler{repo: repo}
}

// List handles GET /api/archive/todos
func (h *ArchiveHandler) List(w http.ResponseWriter, r *http.Request) {
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

// Archive handles POST /api/archive/todos/{id}: the todo moves from the
// active table into the archive.
func (h *ArchiveHandler) Archive(w http.ResponseWriter, r *http.Request) {
	todoID := chi.URLParam(r, "id")

	if err := h.repo.ArchiveTodo(r.Context(), todoID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			pkghttp.WriteNotFound(w, "Todo not found")
			return
		}
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]string{"message": "Todo archived successfully"})
}

// Delete handles DELETE /api/archive/todos/{id}
func (h *ArchiveHandler) Delete(w http.ResponseWriter, r *http.Request) {
	todoID := chi.URLParam(r, "id")

	todo, err := h.repo.Delete(r.Context(), todoID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			pkghttp.WriteNotFound(w, "Archived todo not found")
			return
		}
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, todo)
}
