package repository

import (
	"log/slog"
	"strings"
	"time"

	"github.com/jobportal-dev/job-board/backend/internal/domain"
	"github.com/jobportal-dev/job-board/backend/internal/store"
	"github.com/jobportal-dev/job-board/backend/internal/utils"
)

func validateApplication(app *domain.Application) error {
	switch {
	case strings.TrimSpace(app.JobID) == "":
		return domain.Required("jobId")
	case strings.TrimSpace(app.CandidateID) == "":
		return domain.Required("candidateId")
	case strings.TrimSpace(app.CandidateName) == "":
		return domain.Required("candidateName")
	case strings.TrimSpace(app.CandidateEmail) == "":
		return domain.Required("candidateEmail")
	case strings.TrimSpace(app.CoverLetter) == "":
		return domain.Required("coverLetter")
	}
	return nil
}

// ListApplications returns every application in insertion order.
func (r *Repository) ListApplications() ([]domain.Application, error) {
	ctx, cancel := r.opCtx()
	defer cancel()

	return store.ReadCollection[domain.Application](ctx, r.store, store.KeyApplications)
}

func (r *Repository) ListApplicationsByCandidate(candidateID string) ([]domain.Application, error) {
	apps, err := r.ListApplications()
	if err != nil {
		return nil, err
	}

	matched := []domain.Application{}
	for _, app := range apps {
		if app.CandidateID == candidateID {
			matched = append(matched, app)
		}
	}

	return matched, nil
}

func (r *Repository) ListApplicationsByJob(jobID string) ([]domain.Application, error) {
	apps, err := r.ListApplications()
	if err != nil {
		return nil, err
	}

	matched := []domain.Application{}
	for _, app := range apps {
		if app.JobID == jobID {
			matched = append(matched, app)
		}
	}

	return matched, nil
}

func (r *Repository) GetApplication(id string) (*domain.Application, error) {
	apps, err := r.ListApplications()
	if err != nil {
		return nil, err
	}

	for i := range apps {
		if apps[i].ID == id {
			return &apps[i], nil
		}
	}

	return nil, nil
}

// HasApplied reports whether the candidate already has an application for
// the job. This pre-check is the full extent of duplicate prevention.
func (r *Repository) HasApplied(jobID, candidateID string) (bool, error) {
	apps, err := r.ListApplications()
	if err != nil {
		return false, err
	}

	for _, app := range apps {
		if app.JobID == jobID && app.CandidateID == candidateID {
			return true, nil
		}
	}

	return false, nil
}

// CreateApplication appends the application and bumps the job's applicant
// count in one atomic multi-collection write, then notifies the job's
// poster. Rejects duplicates per (jobId, candidateId) and applications to
// unknown jobs.
func (r *Repository) CreateApplication(app *domain.Application) error {
	if err := validateApplication(app); err != nil {
		return err
	}

	job, err := r.GetJob(app.JobID)
	if err != nil {
		return err
	}
	if job == nil {
		return domain.ErrNotFound
	}

	applied, err := r.HasApplied(app.JobID, app.CandidateID)
	if err != nil {
		return err
	}
	if applied {
		return domain.ErrDuplicateApplication
	}

	apps, err := r.ListApplications()
	if err != nil {
		return err
	}
	jobs, err := r.ListJobs()
	if err != nil {
		return err
	}

	app.ID = utils.NewID()
	app.Status = domain.ApplicationStatusPending
	app.AppliedDate = time.Now()

	// Applications append; only jobs prepend.
	apps = append(apps, *app)
	for i := range jobs {
		if jobs[i].ID == app.JobID {
			jobs[i].ApplicantCount++
			break
		}
	}

	ctx, cancel := r.opCtx()
	defer cancel()

	err = store.WriteCollections(ctx, r.store, map[string]any{
		store.KeyApplications: apps,
		store.KeyJobs:         jobs,
	})
	if err != nil {
		return err
	}

	// The application and count are committed; a dispatch failure must not
	// turn a successful apply into an error for the candidate.
	recruiter, err := r.GetUserByID(job.PostedBy)
	if err != nil || recruiter == nil {
		// The poster may have never been a real account (seeded catalog).
		if err != nil {
			slog.Error("unable to look up job poster for notification", "jobId", job.ID, "error", err)
		}
		return nil
	}

	if err := r.engine.ApplicationReceived(ctx, recruiter, app, job); err != nil {
		slog.Error("unable to notify recruiter of new application", "applicationId", app.ID, "error", err)
	}
	return nil
}

// UpdateApplicationStatus moves the application through the transition
// table, persists, and notifies the candidate. Notification dispatch is a
// postcondition of this operation, not a call-site duty.
func (r *Repository) UpdateApplicationStatus(id string, newStatus domain.ApplicationStatus) (*domain.Application, error) {
	if !domain.ValidApplicationStatus(newStatus) {
		return nil, &domain.ValidationError{Field: "status", Reason: "unknown status"}
	}

	apps, err := r.ListApplications()
	if err != nil {
		return nil, err
	}

	for i := range apps {
		if apps[i].ID != id {
			continue
		}

		if !domain.CanTransition(apps[i].Status, newStatus) {
			return nil, &domain.IllegalTransitionError{From: apps[i].Status, To: newStatus}
		}
		apps[i].Status = newStatus

		ctx, cancel := r.opCtx()
		defer cancel()

		if err := store.WriteCollection(ctx, r.store, store.KeyApplications, apps); err != nil {
			return nil, err
		}

		// The status is committed; dispatch failures are logged, not
		// surfaced.
		job, err := r.GetJob(apps[i].JobID)
		if err != nil || job == nil {
			if err != nil {
				slog.Error("unable to look up job for status notification", "applicationId", id, "error", err)
			}
			return &apps[i], nil
		}

		if err := r.engine.ApplicationStatusChanged(ctx, &apps[i], job); err != nil {
			slog.Error("unable to notify candidate of status change", "applicationId", id, "error", err)
		}

		return &apps[i], nil
	}

	return nil, domain.ErrNotFound
}
