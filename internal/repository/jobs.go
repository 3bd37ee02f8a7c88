package repository

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jobportal-dev/job-board/backend/internal/domain"
	"github.com/jobportal-dev/job-board/backend/internal/seed"
	"github.com/jobportal-dev/job-board/backend/internal/store"
	"github.com/jobportal-dev/job-board/backend/internal/utils"
)

func validateJob(job *domain.Job) error {
	switch {
	case strings.TrimSpace(job.Title) == "":
		return domain.Required("title")
	case strings.TrimSpace(job.Company) == "":
		return domain.Required("company")
	case strings.TrimSpace(job.Location) == "":
		return domain.Required("location")
	case strings.TrimSpace(job.Description) == "":
		return domain.Required("description")
	}
	return nil
}

// ListJobs returns the full catalog in storage order, newest first since
// creates prepend. The store is lazily seeded with the demo catalog on
// first access.
func (r *Repository) ListJobs() ([]domain.Job, error) {
	ctx, cancel := r.opCtx()
	defer cancel()

	if err := store.InitializeDefaults(ctx, r.store, seed.DemoJobs()); err != nil {
		return nil, err
	}

	return store.ReadCollection[domain.Job](ctx, r.store, store.KeyJobs)
}

// GetJob scans the catalog by id. An absent id yields (nil, nil); callers
// render a "job not found" state rather than treat it as fatal.
func (r *Repository) GetJob(id string) (*domain.Job, error) {
	jobs, err := r.ListJobs()
	if err != nil {
		return nil, err
	}

	for i := range jobs {
		if jobs[i].ID == id {
			return &jobs[i], nil
		}
	}

	return nil, nil
}

// CreateJob validates, assigns id/status/postedDate, prepends the job to the
// catalog and notifies every candidate account about the new posting.
func (r *Repository) CreateJob(job *domain.Job) error {
	if err := validateJob(job); err != nil {
		return err
	}

	jobs, err := r.ListJobs()
	if err != nil {
		return err
	}

	job.ID = utils.NewID()
	job.Status = domain.JobStatusOpen
	job.ApplicantCount = 0
	job.PostedDate = time.Now()
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Responsibilities == nil {
		job.Responsibilities = []string{}
	}

	ctx, cancel := r.opCtx()
	defer cancel()

	jobs = append([]domain.Job{*job}, jobs...)
	if err := store.WriteCollection(ctx, r.store, store.KeyJobs, jobs); err != nil {
		return err
	}

	r.notifyCandidatesOfNewJob(ctx, job)
	return nil
}

// notifyCandidatesOfNewJob fans the new-job event out to every candidate
// account in the directory. The posting is already committed, so dispatch
// failures are logged and do not fail the create.
func (r *Repository) notifyCandidatesOfNewJob(ctx context.Context, job *domain.Job) {
	candidates, err := r.ListUsersByRole(domain.RoleCandidate)
	if err != nil {
		slog.Error("unable to list candidates for new-job notification", "jobId", job.ID, "error", err)
		return
	}

	for i := range candidates {
		if err := r.engine.NewJobPosted(ctx, &candidates[i], job); err != nil {
			slog.Error("unable to notify candidate of new job", "jobId", job.ID, "userId", candidates[i].ID, "error", err)
		}
	}
}

// UpdateJob merges the non-nil fields of updates into the stored record.
// Silent no-op when the id is absent.
func (r *Repository) UpdateJob(id string, updates domain.JobUpdate) error {
	jobs, err := r.ListJobs()
	if err != nil {
		return err
	}

	for i := range jobs {
		if jobs[i].ID != id {
			continue
		}

		if updates.Title != nil {
			jobs[i].Title = *updates.Title
		}
		if updates.Company != nil {
			jobs[i].Company = *updates.Company
		}
		if updates.Location != nil {
			jobs[i].Location = *updates.Location
		}
		if updates.Type != nil {
			jobs[i].Type = *updates.Type
		}
		if updates.Salary != nil {
			jobs[i].Salary = *updates.Salary
		}
		if updates.Description != nil {
			jobs[i].Description = *updates.Description
		}
		if updates.Requirements != nil {
			jobs[i].Requirements = *updates.Requirements
		}
		if updates.Responsibilities != nil {
			jobs[i].Responsibilities = *updates.Responsibilities
		}
		if updates.Status != nil {
			jobs[i].Status = *updates.Status
		}

		ctx, cancel := r.opCtx()
		defer cancel()

		return store.WriteCollection(ctx, r.store, store.KeyJobs, jobs)
	}

	return nil
}

// IncrementApplicantCount bumps the counter by one. Silent no-op when the
// job is absent. CreateApplication does not go through here; it folds the
// bump into its own atomic write.
func (r *Repository) IncrementApplicantCount(jobID string) error {
	jobs, err := r.ListJobs()
	if err != nil {
		return err
	}

	for i := range jobs {
		if jobs[i].ID == jobID {
			jobs[i].ApplicantCount++

			ctx, cancel := r.opCtx()
			defer cancel()

			return store.WriteCollection(ctx, r.store, store.KeyJobs, jobs)
		}
	}

	return nil
}
