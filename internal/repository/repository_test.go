package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jobportal-dev/job-board/backend/internal/config"
	"github.com/jobportal-dev/job-board/backend/internal/domain"
	"github.com/jobportal-dev/job-board/backend/internal/notification"
	"github.com/jobportal-dev/job-board/backend/internal/seed"
	"github.com/jobportal-dev/job-board/backend/internal/store"
)

type recorderMailer struct {
	sent []domain.MailMessage
}

func (m *recorderMailer) Send(_ context.Context, msg domain.MailMessage) error {
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recorderMailer) byType(typ string) []domain.MailMessage {
	matched := []domain.MailMessage{}
	for _, msg := range m.sent {
		if msg.Type == typ {
			matched = append(matched, msg)
		}
	}
	return matched
}

type failingMailer struct{}

func (failingMailer) Send(context.Context, domain.MailMessage) error {
	return errors.New("broker unavailable")
}

// newTestRepository wires a repository over the in-memory substrate with the
// built-in demo accounts and a mail recorder.
func newTestRepository(t *testing.T) (*Repository, *notification.Engine, *recorderMailer) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Store.OperationTimeout = 10

	st := store.NewMemory()
	rec := &recorderMailer{}
	engine := notification.NewEngine(st, rec)
	repo := NewRepository(cfg, st, engine, seed.DemoUsers("not-a-real-hash"))

	return repo, engine, rec
}

// newFailingDispatchRepository wires a repository whose mailer always errors.
func newFailingDispatchRepository(t *testing.T) *Repository {
	t.Helper()

	cfg := &config.Config{}
	cfg.Store.OperationTimeout = 10

	st := store.NewMemory()
	engine := notification.NewEngine(st, failingMailer{})
	return NewRepository(cfg, st, engine, seed.DemoUsers("not-a-real-hash"))
}
