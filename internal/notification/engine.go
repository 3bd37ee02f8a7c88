package notification

import (
	"context"
	"time"

	"github.com/jobportal-dev/job-board/backend/internal/domain"
	"github.com/jobportal-dev/job-board/backend/internal/mailer"
	"github.com/jobportal-dev/job-board/backend/internal/store"
	"github.com/jobportal-dev/job-board/backend/internal/utils"
)

// Engine owns the notifications collection and the email dispatch side
// effect. Repositories call it as a postcondition of their mutations, so no
// call site can forget to notify.
type Engine struct {
	store  store.Store
	mailer mailer.Mailer
}

func NewEngine(s store.Store, m mailer.Mailer) *Engine {
	return &Engine{
		store:  s,
		mailer: m,
	}
}

// Record persists one in-app notification, newest first.
func (e *Engine) Record(ctx context.Context, userID string, typ domain.NotificationType, message string) (*domain.Notification, error) {
	notifications, err := store.ReadCollection[domain.Notification](ctx, e.store, store.KeyNotifications)
	if err != nil {
		return nil, err
	}

	n := domain.Notification{
		ID:        utils.NewID(),
		UserID:    userID,
		Type:      typ,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now(),
	}

	notifications = append([]domain.Notification{n}, notifications...)
	if err := store.WriteCollection(ctx, e.store, store.KeyNotifications, notifications); err != nil {
		return nil, err
	}

	return &n, nil
}

func (e *Engine) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	notifications, err := store.ReadCollection[domain.Notification](ctx, e.store, store.KeyNotifications)
	if err != nil {
		return nil, err
	}

	owned := []domain.Notification{}
	for _, n := range notifications {
		if n.UserID == userID {
			owned = append(owned, n)
		}
	}

	return owned, nil
}

func (e *Engine) UnreadCount(ctx context.Context, userID string) (int, error) {
	notifications, err := store.ReadCollection[domain.Notification](ctx, e.store, store.KeyNotifications)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}

	return count, nil
}

// MarkAllReadForUser flips every notification owned by userID to read in one
// persist call. Triggered when the user opens their notification panel.
func (e *Engine) MarkAllReadForUser(ctx context.Context, userID string) error {
	notifications, err := store.ReadCollection[domain.Notification](ctx, e.store, store.KeyNotifications)
	if err != nil {
		return err
	}

	for i := range notifications {
		if notifications[i].UserID == userID {
			notifications[i].Read = true
		}
	}

	return store.WriteCollection(ctx, e.store, store.KeyNotifications, notifications)
}

// MarkRead flips one of userID's notifications to read. An id owned by a
// different user is treated the same as an absent id: a no-op.
func (e *Engine) MarkRead(ctx context.Context, userID, id string) error {
	notifications, err := store.ReadCollection[domain.Notification](ctx, e.store, store.KeyNotifications)
	if err != nil {
		return err
	}

	for i := range notifications {
		if notifications[i].ID == id && notifications[i].UserID == userID {
			notifications[i].Read = true
			return store.WriteCollection(ctx, e.store, store.KeyNotifications, notifications)
		}
	}

	return nil
}
