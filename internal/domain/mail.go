package domain

const (
	MailTypeApplicationReceived = "application_received"
	MailTypeStatusChange        = "status_change"
	MailTypeNewJob              = "new_job"
)

// MailMessage is the payload published to the email queue. Subject and Body
// are the plain-text rendering used by the simulated dispatcher; the mail
// worker re-renders Data through an HTML template.
type MailMessage struct {
	Type    string `json:"type"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Data    any    `json:"data"`
}

type ApplicationReceivedMailData struct {
	CandidateName string `json:"candidateName"`
	JobTitle      string `json:"jobTitle"`
}

type StatusChangeMailData struct {
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

type NewJobMailData struct {
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
}
