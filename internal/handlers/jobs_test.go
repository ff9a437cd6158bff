package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BradenHooton/planwell/internal/models"
	"github.com/BradenHooton/planwell/internal/repositories"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobList_RequiresUserID(t *testing.T) {
	handler := NewJobHandler(&MockJobRepo{})

	req := httptest.NewRequest("GET", "/api/jobs", nil)
	recorder := httptest.NewRecorder()

	handler.List(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestJobCreate_Success(t *testing.T) {
	var created *models.Job
	repo := &MockJobRepo{
		CreateFunc: func(ctx context.Context, job *models.Job) (*models.Job, error) {
			created = job
			job.ID = "job-1"
			return job, nil
		},
	}
	handler := NewJobHandler(repo)

	req := jsonRequest(t, "POST", "/api/jobs", CreateJobRequest{
		Title:      "Backend Engineer",
		Company:    "Acme",
		AppliedAt:  time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
		Status:     "applied",
		Type:       "full-time",
		WebsiteURL: "https://acme.example/careers",
		UserID:     "user-1",
	})
	recorder := httptest.NewRecorder()

	handler.Create(recorder, req)

	require.Equal(t, http.StatusCreated, recorder.Code)
	require.NotNil(t, created)
	assert.Equal(t, "Backend Engineer", created.Title)
	assert.Equal(t, "Acme", created.Company)
}

func TestJobCreate_MissingFields(t *testing.T) {
	handler := NewJobHandler(&MockJobRepo{})

	req := jsonRequest(t, "POST", "/api/jobs", CreateJobRequest{Title: "Backend Engineer"})
	recorder := httptest.NewRecorder()

	handler.Create(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "All fields are required", decodeMessage(t, recorder))
}

func TestJobUpdate_PartialFields(t *testing.T) {
	var gotUpdate *repositories.JobUpdate
	repo := &MockJobRepo{
		UpdateFunc: func(ctx context.Context, id string, update *repositories.JobUpdate) (*models.Job, error) {
			gotUpdate = update
			return &models.Job{ID: id, Title: "Backend Engineer", Status: *update.Status}, nil
		},
	}

	router := chi.NewRouter()
	router.Patch("/api/jobs/{id}", NewJobHandler(repo).Update)

	req := jsonRequest(t, "PATCH", "/api/jobs/job-1", map[string]string{"job_status": "interviewing"})
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, gotUpdate)
	require.NotNil(t, gotUpdate.Status)
	assert.Equal(t, "interviewing", *gotUpdate.Status)
	assert.Nil(t, gotUpdate.Title, "absent fields must stay nil")
	assert.Nil(t, gotUpdate.Company)
}

func TestJobUpdate_EmptyBody(t *testing.T) {
	repo := &MockJobRepo{
		UpdateFunc: func(ctx context.Context, id string, update *repositories.JobUpdate) (*models.Job, error) {
			t.Error("repo must not be called for an empty update")
			return nil, nil
		},
	}

	router := chi.NewRouter()
	router.Patch("/api/jobs/{id}", NewJobHandler(repo).Update)

	req := jsonRequest(t, "PATCH", "/api/jobs/job-1", map[string]string{})
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "No fields provided", decodeMessage(t, recorder))
}

func TestJobUpdate_NotFound(t *testing.T) {
	repo := &MockJobRepo{
		UpdateFunc: func(ctx context.Context, id string, update *repositories.JobUpdate) (*models.Job, error) {
			return nil, models.ErrNotFound
		},
	}

	router := chi.NewRouter()
	router.Patch("/api/jobs/{id}", NewJobHandler(repo).Update)

	req := jsonRequest(t, "PATCH", "/api/jobs/missing", map[string]string{"job_status": "rejected"})
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Job not found", decodeMessage(t, recorder))
}

func TestJobDelete_NotFound(t *testing.T) {
	repo := &MockJobRepo{
		DeleteFunc: func(ctx context.Context, id string) (*models.Job, error) {
			return nil, models.ErrNotFound
		},
	}

	router := chi.NewRouter()
	router.Delete("/api/jobs/{id}", NewJobHandler(repo).Delete)

	req := httptest.NewRequest("DELETE", "/api/jobs/missing", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
