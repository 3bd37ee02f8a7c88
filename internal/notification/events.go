package notification

import (
	"context"
	"fmt"

	"github.com/jobportal-dev/job-board/backend/internal/domain"
)

// statusMessages maps an application status to the email body sent to the
// candidate. Any status outside the table falls back to a generic update.
var statusMessages = map[domain.ApplicationStatus]string{
	domain.ApplicationStatusReviewing:   "Your application for %s at %s is now being reviewed.",
	domain.ApplicationStatusShortlisted: "Great news! You've been shortlisted for %s at %s.",
	domain.ApplicationStatusAccepted:    "Congratulations! Your application for %s at %s has been accepted.",
	domain.ApplicationStatusRejected:    "Thank you for your interest in %s at %s. Unfortunately, we've decided to move forward with other candidates.",
}

// ApplicationReceived emails the recruiter who posted the job and records an
// in-app notification for them.
func (e *Engine) ApplicationReceived(ctx context.Context, recruiter *domain.User, app *domain.Application, job *domain.Job) error {
	msg := domain.MailMessage{
		Type:    domain.MailTypeApplicationReceived,
		To:      recruiter.Email,
		Subject: fmt.Sprintf("New Application for %s", job.Title),
		Body:    fmt.Sprintf("%s has applied for the position of %s. Please review the application in your dashboard.", app.CandidateName, job.Title),
		Data: domain.ApplicationReceivedMailData{
			CandidateName: app.CandidateName,
			JobTitle:      job.Title,
		},
	}
	if err := e.mailer.Send(ctx, msg); err != nil {
		return err
	}

	_, err := e.Record(ctx, recruiter.ID, domain.NotificationTypeApplication,
		fmt.Sprintf("%s applied for %s", app.CandidateName, job.Title))
	return err
}

// ApplicationStatusChanged emails the candidate and records an in-app
// notification for them. The message is selected by the application's new
// status.
func (e *Engine) ApplicationStatusChanged(ctx context.Context, app *domain.Application, job *domain.Job) error {
	message := fmt.Sprintf("Your application status has been updated to: %s", app.Status)
	if tmpl, ok := statusMessages[app.Status]; ok {
		message = fmt.Sprintf(tmpl, job.Title, job.Company)
	}

	msg := domain.MailMessage{
		Type:    domain.MailTypeStatusChange,
		To:      app.CandidateEmail,
		Subject: fmt.Sprintf("Application Update: %s", job.Title),
		Body:    message,
		Data: domain.StatusChangeMailData{
			JobTitle: job.Title,
			Company:  job.Company,
			Status:   string(app.Status),
			Message:  message,
		},
	}
	if err := e.mailer.Send(ctx, msg); err != nil {
		return err
	}

	_, err := e.Record(ctx, app.CandidateID, domain.NotificationTypeStatusChange,
		fmt.Sprintf("Application status updated for %s: %s", job.Title, app.Status))
	return err
}

// NewJobPosted emails one candidate about a freshly posted job and records an
// in-app notification for them.
func (e *Engine) NewJobPosted(ctx context.Context, candidate *domain.User, job *domain.Job) error {
	msg := domain.MailMessage{
		Type:    domain.MailTypeNewJob,
		To:      candidate.Email,
		Subject: fmt.Sprintf("New Job Posted: %s", job.Title),
		Body:    fmt.Sprintf("A new position matching your interests has been posted: %s at %s. Check it out on our platform!", job.Title, job.Company),
		Data: domain.NewJobMailData{
			JobTitle: job.Title,
			Company:  job.Company,
		},
	}
	if err := e.mailer.Send(ctx, msg); err != nil {
		return err
	}

	_, err := e.Record(ctx, candidate.ID, domain.NotificationTypeNewJob,
		fmt.Sprintf("New job posted: %s at %s", job.Title, job.Company))
	return err
}
