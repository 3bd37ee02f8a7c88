package handler

import (
	"errors"
	"net/http"

	"github.com/jobportal-dev/job-board/backend/internal/domain"
)

func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.repository.ListJobs()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "jobs fetched", jobs)
}

func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)
	h.successResponse(w, r, "job fetched", job)
}

func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title            string   `json:"title" validate:"required"`
		Company          string   `json:"company" validate:"required"`
		Location         string   `json:"location" validate:"required"`
		Type             string   `json:"type" validate:"required,oneof=Full-time Part-time Contract Internship"`
		Salary           string   `json:"salary" validate:"required"`
		Description      string   `json:"description" validate:"required"`
		Requirements     []string `json:"requirements"`
		Responsibilities []string `json:"responsibilities"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	sub := r.Context().Value(SubCtxKey).(string)

	job := &domain.Job{
		Title:            req.Title,
		Company:          req.Company,
		Location:         req.Location,
		Type:             domain.JobType(req.Type),
		Salary:           req.Salary,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		PostedBy:         sub,
	}

	if err := h.repository.CreateJob(job); err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.errorResponse(w, r, validationErr.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "job posted", job)
}

func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	// Only the poster or an admin may edit a job.
	if myInfo.Role != domain.RoleAdmin && job.PostedBy != myInfo.ID {
		h.errorResponse(w, r, "insufficient permissions")
		return
	}

	var req domain.JobUpdate
	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if req.Status != nil && *req.Status != domain.JobStatusOpen && *req.Status != domain.JobStatusClosed {
		h.errorResponse(w, r, "invalid job status")
		return
	}

	if err := h.repository.UpdateJob(job.ID, req); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	updated, err := h.repository.GetJob(job.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "job updated", updated)
}

func (h *Handler) ListJobApplications(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	if myInfo.Role != domain.RoleAdmin && job.PostedBy != myInfo.ID {
		h.errorResponse(w, r, "insufficient permissions")
		return
	}

	apps, err := h.repository.ListApplicationsByJob(job.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "applications fetched", apps)
}
