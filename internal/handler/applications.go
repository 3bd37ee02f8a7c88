package handler

import (
	"errors"
	"net/http"

	"github.com/jobportal-dev/job-board/backend/internal/domain"
)

// ListApplications is role-scoped: candidates see their own applications,
// recruiters see applications to their postings, admins see everything.
func (h *Handler) ListApplications(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	switch myInfo.Role {
	case domain.RoleCandidate:
		apps, err := h.repository.ListApplicationsByCandidate(myInfo.ID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		h.successResponse(w, r, "applications fetched", apps)
	case domain.RoleRecruiter:
		jobs, err := h.repository.ListJobs()
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		apps, err := h.repository.ListApplications()
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		mine := map[string]bool{}
		for _, job := range jobs {
			if job.PostedBy == myInfo.ID {
				mine[job.ID] = true
			}
		}

		matched := []domain.Application{}
		for _, app := range apps {
			if mine[app.JobID] {
				matched = append(matched, app)
			}
		}
		h.successResponse(w, r, "applications fetched", matched)
	default:
		apps, err := h.repository.ListApplications()
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		h.successResponse(w, r, "applications fetched", apps)
	}
}

func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		JobID       string `json:"jobId" validate:"required"`
		CoverLetter string `json:"coverLetter" validate:"required"`
		ResumeURL   string `json:"resumeUrl"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	app := &domain.Application{
		JobID:          req.JobID,
		CandidateID:    myInfo.ID,
		CandidateName:  myInfo.Name,
		CandidateEmail: myInfo.Email,
		ResumeURL:      req.ResumeURL,
		CoverLetter:    req.CoverLetter,
	}

	if err := h.repository.CreateApplication(app); err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrDuplicateApplication):
			h.errorResponse(w, r, "you have already applied to this job")
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, "job not found")
		case errors.As(err, &validationErr):
			h.errorResponse(w, r, validationErr.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "application submitted", app)
}

func (h *Handler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	application := r.Context().Value(ApplicationCtx).(*domain.Application)
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Status string `json:"status" validate:"required,oneof=pending reviewing shortlisted accepted rejected"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// Recruiters may only triage applications to their own postings.
	if myInfo.Role != domain.RoleAdmin {
		job, err := h.repository.GetJob(application.JobID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		if job == nil || job.PostedBy != myInfo.ID {
			h.errorResponse(w, r, "insufficient permissions")
			return
		}
	}

	updated, err := h.repository.UpdateApplicationStatus(application.ID, domain.ApplicationStatus(req.Status))
	if err != nil {
		var transitionErr *domain.IllegalTransitionError
		switch {
		case errors.As(err, &transitionErr):
			h.errorResponse(w, r, transitionErr.Error())
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, "application not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "application status updated", updated)
}
