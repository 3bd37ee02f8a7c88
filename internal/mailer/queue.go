package mailer

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jobportal-dev/job-board/backend/internal/domain"
)

// Queue publishes mail messages to RabbitMQ for the mail worker to deliver
// over SMTP.
type Queue struct {
	ch             *amqp.Channel
	publishTimeout time.Duration
}

func NewQueue(ch *amqp.Channel, publishTimeout time.Duration) *Queue {
	return &Queue{
		ch:             ch,
		publishTimeout: publishTimeout,
	}
}

// DeclareQueue ensures the durable email queue exists on the channel.
func DeclareQueue(ch *amqp.Channel) error {
	_, err := ch.QueueDeclare(
		QueueName,
		true,  // durable
		false, // do not auto-delete when the worker is down
		false,
		false,
		nil,
	)
	return err
}

func (q *Queue) Send(ctx context.Context, msg domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, q.publishTimeout)
	defer cancel()

	return q.ch.PublishWithContext(
		ctx,
		"",
		QueueName,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
