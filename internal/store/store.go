package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Keys of the persisted collections. Every collection is a JSON-encoded
// sequence stored as a single value under its key.
const (
	KeyJobs          = "jobs"
	KeyApplications  = "applications"
	KeyUsers         = "users"
	KeyNotifications = "notifications"
)

var (
	ErrKeyNotFound = errors.New("store: key not found")
	// ErrCorrupted wraps a collection value that can no longer be decoded.
	// Callers decide whether to surface the error or reset to defaults.
	ErrCorrupted = errors.New("store: corrupted collection")
)

// Store is the durable key-value substrate shared by all repositories.
// Mutations follow read-entire-collection, mutate in memory, write-entire-
// collection. That is only correct while a single process writes to the
// substrate; nothing here coordinates concurrent writers.
type Store interface {
	// Get returns the raw value under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the value under key.
	Set(ctx context.Context, key string, value []byte) error
	// SetMulti overwrites several keys in one atomic step, so a crash can
	// never land between two related collection writes.
	SetMulti(ctx context.Context, values map[string][]byte) error
	// Del removes key. Deleting an absent key is not an error.
	Del(ctx context.Context, key string) error
}

// ReadCollection decodes the full collection under key. An absent key yields
// an empty slice; an undecodable value fails with an error wrapping
// ErrCorrupted.
func ReadCollection[T any](ctx context.Context, s Store, key string) ([]T, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []T{}, nil
		}
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupted, key, err)
	}

	return items, nil
}

// WriteCollection serializes items and overwrites the collection under key
// in a single write call.
func WriteCollection[T any](ctx context.Context, s Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	return s.Set(ctx, key, raw)
}

// WriteCollections overwrites several collections atomically. Used where one
// logical operation touches more than one collection, e.g. appending an
// application and bumping the job's applicant count.
func WriteCollections(ctx context.Context, s Store, collections map[string]any) error {
	values := make(map[string][]byte, len(collections))
	for key, items := range collections {
		raw, err := json.Marshal(items)
		if err != nil {
			return err
		}
		values[key] = raw
	}

	return s.SetMulti(ctx, values)
}
