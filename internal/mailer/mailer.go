package mailer

import (
	"context"

	"github.com/jobportal-dev/job-board/backend/internal/domain"
)

// QueueName is the durable queue shared with cmd/mail.
const QueueName = "email_queue"

// Mailer dispatches one email. Implementations decide whether that means a
// real transport or just an observability record.
type Mailer interface {
	Send(ctx context.Context, msg domain.MailMessage) error
}
