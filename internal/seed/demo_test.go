package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobportal-dev/job-board/backend/internal/domain"
)

func TestDemoJobsCatalog(t *testing.T) {
	jobs := DemoJobs()
	require.Len(t, jobs, 6)

	for _, job := range jobs {
		assert.False(t, job.PostedDate.IsZero(), "job %s has a zero posted date", job.ID)
		assert.Equal(t, domain.JobStatusOpen, job.Status)
		assert.Equal(t, "2", job.PostedBy)
	}

	assert.Equal(t, "Senior Frontend Developer", jobs[0].Title)
	assert.Equal(t, 24, jobs[0].ApplicantCount)
}

func TestMustDayPanicsOnTypo(t *testing.T) {
	assert.Panics(t, func() { mustDay("2026-13-99") })
}

func TestDemoUsers(t *testing.T) {
	users := DemoUsers("hash")
	require.Len(t, users, 3)

	assert.Equal(t, domain.RoleAdmin, users[0].Role)
	assert.Equal(t, domain.RoleRecruiter, users[1].Role)
	assert.Equal(t, domain.RoleCandidate, users[2].Role)
	for _, u := range users {
		assert.Equal(t, "hash", u.PasswordHash)
	}
}
