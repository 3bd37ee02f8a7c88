package mailer

import (
	"context"
	"log/slog"

	"github.com/jobportal-dev/job-board/backend/internal/domain"
)

// Log is the simulated dispatcher: it writes a structured record to the
// diagnostic log instead of sending anything, and always succeeds.
type Log struct{}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Send(_ context.Context, msg domain.MailMessage) error {
	slog.Info("email notification sent",
		"to", msg.To,
		"subject", msg.Subject,
		"message", msg.Body,
	)
	return nil
}
