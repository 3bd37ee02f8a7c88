package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobportal-dev/job-board/backend/internal/domain"
)

func TestListJobsSeedsDemoCatalog(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	jobs, err := repo.ListJobs()
	require.NoError(t, err)
	require.Len(t, jobs, 6)
	assert.Equal(t, "Senior Frontend Developer", jobs[0].Title)

	// Listing again must not reseed.
	again, err := repo.ListJobs()
	require.NoError(t, err)
	assert.Equal(t, jobs, again)
}

func TestGetJobSoftNotFound(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	job, err := repo.GetJob("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, job)
}

func TestCreateJob(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	job := &domain.Job{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		Type:        domain.JobTypeFullTime,
		Salary:      "$100,000",
		Description: "Build the platform.",
		PostedBy:    "2",
	}
	require.NoError(t, repo.CreateJob(job))

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, domain.JobStatusOpen, job.Status)
	assert.Equal(t, 0, job.ApplicantCount)
	assert.False(t, job.PostedDate.IsZero())

	// New jobs are prepended, so the fresh posting leads the list.
	jobs, err := repo.ListJobs()
	require.NoError(t, err)
	require.Len(t, jobs, 7)
	assert.Equal(t, job.ID, jobs[0].ID)
	assert.Equal(t, "Backend Engineer", jobs[0].Title)
}

func TestCreateJobNotifiesCandidates(t *testing.T) {
	repo, engine, rec := newTestRepository(t)

	job := &domain.Job{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		Type:        domain.JobTypeFullTime,
		Salary:      "$100,000",
		Description: "Build the platform.",
		PostedBy:    "2",
	}
	require.NoError(t, repo.CreateJob(job))

	// The built-in directory holds exactly one candidate account.
	mails := rec.byType(domain.MailTypeNewJob)
	require.Len(t, mails, 1)
	assert.Equal(t, "john@email.com", mails[0].To)

	owned, err := engine.ListByUser(context.Background(), "3")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, domain.NotificationTypeNewJob, owned[0].Type)
}

func TestCreateJobValidation(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	job := &domain.Job{
		Title:    "",
		Company:  "Acme",
		Location: "Remote",
	}
	err := repo.CreateJob(job)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "title", validationErr.Field)

	// Nothing was persisted.
	jobs, listErr := repo.ListJobs()
	require.NoError(t, listErr)
	assert.Len(t, jobs, 6)
}

func TestUpdateJobMergesPartialFields(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	title := "Staff Frontend Developer"
	status := domain.JobStatusClosed
	require.NoError(t, repo.UpdateJob("1", domain.JobUpdate{Title: &title, Status: &status}))

	job, err := repo.GetJob("1")
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, "Staff Frontend Developer", job.Title)
	assert.Equal(t, domain.JobStatusClosed, job.Status)
	// Untouched fields survive the merge.
	assert.Equal(t, "TechCorp", job.Company)
}

func TestUpdateJobUnknownIDIsNoOp(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	title := "Ghost"
	require.NoError(t, repo.UpdateJob("missing", domain.JobUpdate{Title: &title}))

	jobs, err := repo.ListJobs()
	require.NoError(t, err)
	assert.Len(t, jobs, 6)
}

func TestIncrementApplicantCount(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	before, err := repo.GetJob("1")
	require.NoError(t, err)

	require.NoError(t, repo.IncrementApplicantCount("1"))

	after, err := repo.GetJob("1")
	require.NoError(t, err)
	assert.Equal(t, before.ApplicantCount+1, after.ApplicantCount)

	// Unknown job id is a silent no-op.
	require.NoError(t, repo.IncrementApplicantCount("missing"))
}
