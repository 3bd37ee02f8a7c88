package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobportal-dev/job-board/backend/internal/domain"
)

func newApplication(jobID string) *domain.Application {
	return &domain.Application{
		JobID:          jobID,
		CandidateID:    "3",
		CandidateName:  "John Doe",
		CandidateEmail: "john@email.com",
		CoverLetter:    "Hi",
	}
}

func TestCreateApplication(t *testing.T) {
	repo, engine, rec := newTestRepository(t)

	before, err := repo.GetJob("1")
	require.NoError(t, err)

	app := newApplication("1")
	require.NoError(t, repo.CreateApplication(app))

	assert.NotEmpty(t, app.ID)
	assert.Equal(t, domain.ApplicationStatusPending, app.Status)
	assert.False(t, app.AppliedDate.IsZero())

	applied, err := repo.HasApplied("1", "3")
	require.NoError(t, err)
	assert.True(t, applied)

	after, err := repo.GetJob("1")
	require.NoError(t, err)
	assert.Equal(t, before.ApplicantCount+1, after.ApplicantCount)

	// The poster (built-in recruiter, id 2) got exactly one in-app
	// notification and one email.
	owned, err := engine.ListByUser(context.Background(), "2")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, domain.NotificationTypeApplication, owned[0].Type)
	assert.Contains(t, owned[0].Message, "John Doe")

	mails := rec.byType(domain.MailTypeApplicationReceived)
	require.Len(t, mails, 1)
	assert.Equal(t, "recruiter@techcorp.com", mails[0].To)
}

func TestCreateApplicationDuplicateRejected(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	require.NoError(t, repo.CreateApplication(newApplication("1")))

	err := repo.CreateApplication(newApplication("1"))
	assert.ErrorIs(t, err, domain.ErrDuplicateApplication)

	// Exactly one record for the (job, candidate) pair.
	apps, err := repo.ListApplicationsByJob("1")
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	// The counter was bumped only once.
	job, err := repo.GetJob("1")
	require.NoError(t, err)
	assert.Equal(t, 25, job.ApplicantCount)
}

func TestCreateApplicationUnknownJob(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	err := repo.CreateApplication(newApplication("missing"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	apps, listErr := repo.ListApplications()
	require.NoError(t, listErr)
	assert.Empty(t, apps)
}

func TestCreateApplicationValidation(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	app := newApplication("1")
	app.CoverLetter = "  "
	err := repo.CreateApplication(app)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "coverLetter", validationErr.Field)
}

func TestCreateApplicationSurvivesDispatchFailure(t *testing.T) {
	repo := newFailingDispatchRepository(t)

	// The apply is committed before dispatch; a failing mailer must not
	// surface as an error for the candidate.
	app := newApplication("1")
	require.NoError(t, repo.CreateApplication(app))

	applied, err := repo.HasApplied("1", "3")
	require.NoError(t, err)
	assert.True(t, applied)

	job, err := repo.GetJob("1")
	require.NoError(t, err)
	assert.Equal(t, 25, job.ApplicantCount)

	updated, err := repo.UpdateApplicationStatus(app.ID, domain.ApplicationStatusReviewing)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusReviewing, updated.Status)
}

func TestApplicantCountConsistency(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	// Different candidates applying to the same job keep the counter in
	// sync with the number of applications referencing it.
	base, err := repo.GetJob("2")
	require.NoError(t, err)

	for i, candidate := range []struct{ id, name, email string }{
		{"c-a", "Ann Lee", "ann@email.com"},
		{"c-b", "Bob Ray", "bob@email.com"},
		{"c-c", "Cat Yu", "cat@email.com"},
	} {
		app := &domain.Application{
			JobID:          "2",
			CandidateID:    candidate.id,
			CandidateName:  candidate.name,
			CandidateEmail: candidate.email,
			CoverLetter:    "Hello",
		}
		require.NoError(t, repo.CreateApplication(app))

		job, err := repo.GetJob("2")
		require.NoError(t, err)
		assert.Equal(t, base.ApplicantCount+i+1, job.ApplicantCount)
	}

	apps, err := repo.ListApplicationsByJob("2")
	require.NoError(t, err)
	assert.Len(t, apps, 3)
}

func TestListApplicationsByCandidate(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	require.NoError(t, repo.CreateApplication(newApplication("1")))
	require.NoError(t, repo.CreateApplication(newApplication("2")))

	other := &domain.Application{
		JobID:          "1",
		CandidateID:    "someone-else",
		CandidateName:  "Ann Lee",
		CandidateEmail: "ann@email.com",
		CoverLetter:    "Hello",
	}
	require.NoError(t, repo.CreateApplication(other))

	apps, err := repo.ListApplicationsByCandidate("3")
	require.NoError(t, err)
	require.Len(t, apps, 2)
	// Applications append, so insertion order is preserved.
	assert.Equal(t, "1", apps[0].JobID)
	assert.Equal(t, "2", apps[1].JobID)
}

func TestUpdateApplicationStatus(t *testing.T) {
	repo, engine, rec := newTestRepository(t)

	app := newApplication("1")
	require.NoError(t, repo.CreateApplication(app))

	updated, err := repo.UpdateApplicationStatus(app.ID, domain.ApplicationStatusShortlisted)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusShortlisted, updated.Status)

	apps, err := repo.ListApplicationsByCandidate("3")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, domain.ApplicationStatusShortlisted, apps[0].Status)

	// Exactly one status_change notification for the candidate, with the
	// shortlisted wording, and one matching email dispatch.
	owned, err := engine.ListByUser(context.Background(), "3")
	require.NoError(t, err)

	statusChanges := []domain.Notification{}
	for _, n := range owned {
		if n.Type == domain.NotificationTypeStatusChange {
			statusChanges = append(statusChanges, n)
		}
	}
	require.Len(t, statusChanges, 1)
	assert.Contains(t, statusChanges[0].Message, "shortlisted")

	mails := rec.byType(domain.MailTypeStatusChange)
	require.Len(t, mails, 1)
	assert.Equal(t, "john@email.com", mails[0].To)
	assert.Contains(t, mails[0].Body, "shortlisted")
}

func TestUpdateApplicationStatusIllegalTransition(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	app := newApplication("1")
	require.NoError(t, repo.CreateApplication(app))

	_, err := repo.UpdateApplicationStatus(app.ID, domain.ApplicationStatusAccepted)
	require.NoError(t, err)

	// accepted is terminal.
	_, err = repo.UpdateApplicationStatus(app.ID, domain.ApplicationStatusReviewing)
	var transitionErr *domain.IllegalTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, domain.ApplicationStatusAccepted, transitionErr.From)
	assert.Equal(t, domain.ApplicationStatusReviewing, transitionErr.To)

	apps, listErr := repo.ListApplicationsByCandidate("3")
	require.NoError(t, listErr)
	assert.Equal(t, domain.ApplicationStatusAccepted, apps[0].Status)
}

func TestUpdateApplicationStatusUnknownID(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	_, err := repo.UpdateApplicationStatus("missing", domain.ApplicationStatusReviewing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateApplicationStatusUnknownStatus(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	_, err := repo.UpdateApplicationStatus("whatever", domain.ApplicationStatus("archived"))
	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
