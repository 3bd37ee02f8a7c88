package store

import (
	"context"
	"errors"

	"github.com/jobportal-dev/job-board/backend/internal/domain"
)

// InitializeDefaults seeds the jobs collection with the built-in catalog and
// the applications collection with an empty list, each only when its key is
// absent. Safe to call on every store access.
func InitializeDefaults(ctx context.Context, s Store, catalog []domain.Job) error {
	if _, err := s.Get(ctx, KeyJobs); err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			return err
		}
		if err := WriteCollection(ctx, s, KeyJobs, catalog); err != nil {
			return err
		}
	}

	if _, err := s.Get(ctx, KeyApplications); err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			return err
		}
		if err := WriteCollection(ctx, s, KeyApplications, []domain.Application{}); err != nil {
			return err
		}
	}

	return nil
}

// ResetToDefaults discards the jobs and applications collections and reseeds
// them. This is the recovery path after ErrCorrupted; it is never invoked
// automatically.
func ResetToDefaults(ctx context.Context, s Store, catalog []domain.Job) error {
	if err := s.Del(ctx, KeyJobs); err != nil {
		return err
	}
	if err := s.Del(ctx, KeyApplications); err != nil {
		return err
	}

	return InitializeDefaults(ctx, s, catalog)
}
