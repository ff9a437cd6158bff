package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/BradenHooton/planwell/internal/models"
	"github.com/BradenHooton/planwell/internal/repositories"
	pkghttp "github.com/BradenHooton/planwell/pkg/http"
	"github.com/go-chi/chi/v5"
)

// JobRepositoryInterface defines the storage operations the job routes need
type JobRepositoryInterface interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Job, error)
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	Update(ctx context.Context, id string, update *repositories.JobUpdate) (*models.Job, error)
	Delete(ctx context.Context, id string) (*models.Job, error)
}

// JobHandler handles job application HTTP requests
type JobHandler struct {
	repo JobRepositoryInterface
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(repo JobRepositoryInterface) *JobHandler {
	return &JobHandler{repo: repo}
}

// CreateJobRequest represents the request body for creating a job
type CreateJobRequest struct {
	Title      string    `json:"job_title" validate:"required"`
	Company    string    `json:"company" validate:"required"`
	AppliedAt  time.Time `json:"applied_at" validate:"required"`
	Status     string    `json:"job_status" validate:"required"`
	Type       string    `json:"job_type" validate:"required"`
	WebsiteURL string    `json:"website_url" validate:"required"`
	UserID     string    `json:"user_id" validate:"required"`
}

// List handles GET /api/jobs
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		pkghttp.WriteBadRequest(w, "user_id is required")
		return
	}

	jobs, err := h.repo.ListByUser(r.Context(), userID)
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, jobs)
}

// Create handles POST /api/jobs
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateJobRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, "All fields are required")
		return
	}

	job, err := h.repo.Create(r.Context(), &models.Job{
		Title:      req.Title,
		Company:    req.Company,
		AppliedAt:  req.AppliedAt,
		Status:     req.Status,
		Type:       req.Type,
		WebsiteURL: req.WebsiteURL,
		UserID:     req.UserID,
	})
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusCreated, job)
}

// Update handles PATCH /api/jobs/{id}
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")

	var update repositories.JobUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if update.IsEmpty() {
		pkghttp.WriteBadRequest(w, "No fields provided")
		return
	}

	job, err := h.repo.Update(r.Context(), jobID, &update)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			pkghttp.WriteNotFound(w, "Job not found")
			return
		}
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, job)
}

// Delete handles DELETE /api/jobs/{id}
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")

	job, err := h.repo.Delete(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			pkghttp.WriteNotFound(w, "Job not found")
			return
		}
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, job)
}
