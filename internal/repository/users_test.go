package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobportal-dev/job-board/backend/internal/domain"
)

func TestListUsersMergesTiers(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	users, err := repo.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 3)
	// Built-ins come first, in seed order.
	assert.Equal(t, "admin@jobportal.com", users[0].Email)
	assert.Equal(t, "recruiter@techcorp.com", users[1].Email)
	assert.Equal(t, "john@email.com", users[2].Email)

	signup := &domain.User{
		Email: "new@email.com",
		Name:  "New Person",
		Role:  domain.RoleCandidate,
	}
	require.NoError(t, repo.CreateUser(signup))

	users, err = repo.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 4)
	assert.Equal(t, "new@email.com", users[3].Email)
}

func TestListUsersByRole(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	candidates, err := repo.ListUsersByRole(domain.RoleCandidate)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "3", candidates[0].ID)
}

func TestGetUserByEmailFindsBuiltin(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	user, err := repo.GetUserByEmail("Recruiter@TechCorp.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "2", user.ID)
	assert.Equal(t, domain.RoleRecruiter, user.Role)

	missing, err := repo.GetUserByEmail("nobody@email.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreateUser(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	user := &domain.User{
		Email:        "ann@email.com",
		Name:         "Ann Lee",
		Role:         domain.RoleCandidate,
		PasswordHash: "hash",
	}
	require.NoError(t, repo.CreateUser(user))
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	found, err := repo.GetUserByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Ann Lee", found.Name)
}

func TestCreateUserEmailTaken(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	// Built-in emails are taken too, case-insensitively.
	err := repo.CreateUser(&domain.User{
		Email: "ADMIN@jobportal.com",
		Name:  "Impostor",
		Role:  domain.RoleCandidate,
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	require.NoError(t, repo.CreateUser(&domain.User{
		Email: "ann@email.com",
		Name:  "Ann Lee",
		Role:  domain.RoleCandidate,
	}))
	err = repo.CreateUser(&domain.User{
		Email: "ann@email.com",
		Name:  "Ann Again",
		Role:  domain.RoleCandidate,
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUpdateProfile(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	user := &domain.User{
		Email: "ann@email.com",
		Name:  "Ann Lee",
		Role:  domain.RoleCandidate,
	}
	require.NoError(t, repo.CreateUser(user))

	updated, err := repo.UpdateProfile(user.ID, "Ann Li", "555-0101", "Acme")
	require.NoError(t, err)
	assert.Equal(t, "Ann Li", updated.Name)
	assert.Equal(t, "555-0101", updated.Phone)
	assert.Equal(t, "Acme", updated.Company)

	// Blank name keeps the old one.
	updated, err = repo.UpdateProfile(user.ID, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Ann Li", updated.Name)
	assert.Empty(t, updated.Phone)
}

func TestUpdateProfileBuiltinRejected(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	_, err := repo.UpdateProfile("1", "New Name", "", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
