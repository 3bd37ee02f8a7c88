package repository

import (
	"strings"
	"time"

	"github.com/jobportal-dev/job-board/backend/internal/domain"
	"github.com/jobportal-dev/job-board/backend/internal/store"
	"github.com/jobportal-dev/job-board/backend/internal/utils"
)

// The user directory is two-tier: a fixed built-in seed list (the demo
// accounts, never persisted) plus a mutable append-only overlay in the
// store. Queries merge both tiers, built-ins first; signup writes only the
// overlay. Built-in accounts are immutable.

func (r *Repository) persistedUsers() ([]domain.User, error) {
	ctx, cancel := r.opCtx()
	defer cancel()

	return store.ReadCollection[domain.User](ctx, r.store, store.KeyUsers)
}

// ListUsers returns both tiers merged, built-ins first.
func (r *Repository) ListUsers() ([]domain.User, error) {
	persisted, err := r.persistedUsers()
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(r.builtin)+len(persisted))
	users = append(users, r.builtin...)
	users = append(users, persisted...)
	return users, nil
}

func (r *Repository) ListUsersByRole(role domain.Role) ([]domain.User, error) {
	users, err := r.ListUsers()
	if err != nil {
		return nil, err
	}

	matched := []domain.User{}
	for _, u := range users {
		if u.Role == role {
			matched = append(matched, u)
		}
	}

	return matched, nil
}

// GetUserByID scans both tiers. Returns (nil, nil) when absent.
func (r *Repository) GetUserByID(id string) (*domain.User, error) {
	users, err := r.ListUsers()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}

	return nil, nil
}

func (r *Repository) GetUserByEmail(email string) (*domain.User, error) {
	users, err := r.ListUsers()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}

	return nil, nil
}

// CreateUser appends a new account to the overlay. Email must be unique
// across both tiers.
func (r *Repository) CreateUser(user *domain.User) error {
	switch {
	case strings.TrimSpace(user.Email) == "":
		return domain.Required("email")
	case strings.TrimSpace(user.Name) == "":
		return domain.Required("name")
	}

	existing, err := r.GetUserByEmail(user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrEmailTaken
	}

	persisted, err := r.persistedUsers()
	if err != nil {
		return err
	}

	user.ID = utils.NewID()
	user.CreatedAt = time.Now()
	persisted = append(persisted, *user)

	ctx, cancel := r.opCtx()
	defer cancel()

	return store.WriteCollection(ctx, r.store, store.KeyUsers, persisted)
}

// UpdateProfile mutates the only editable fields: name, phone, company.
// Built-in accounts live outside the overlay and cannot be edited; an
// unknown or built-in id fails with ErrNotFound.
func (r *Repository) UpdateProfile(id, name, phone, company string) (*domain.User, error) {
	persisted, err := r.persistedUsers()
	if err != nil {
		return nil, err
	}

	for i := range persisted {
		if persisted[i].ID != id {
			continue
		}

		if strings.TrimSpace(name) != "" {
			persisted[i].Name = name
		}
		persisted[i].Phone = phone
		persisted[i].Company = company

		ctx, cancel := r.opCtx()
		defer cancel()

		if err := store.WriteCollection(ctx, r.store, store.KeyUsers, persisted); err != nil {
			return nil, err
		}

		return &persisted[i], nil
	}

	return nil, domain.ErrNotFound
}
