package domain

import (
	"time"
)

type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewing   ApplicationStatus = "reviewing"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

type Application struct {
	ID             string            `json:"id"`
	JobID          string            `json:"jobId"`
	CandidateID    string            `json:"candidateId"`
	CandidateName  string            `json:"candidateName"`
	CandidateEmail string            `json:"candidateEmail"`
	ResumeURL      string            `json:"resumeUrl,omitempty"`
	CoverLetter    string            `json:"coverLetter"`
	Status         ApplicationStatus `json:"status"`
	AppliedDate    time.Time         `json:"appliedDate"`
}

// allowedTransitions enumerates the legal status moves. accepted and
// rejected have no outgoing edges, so they are terminal.
var allowedTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusPending: {
		ApplicationStatusReviewing,
		ApplicationStatusShortlisted,
		ApplicationStatusAccepted,
		ApplicationStatusRejected,
	},
	ApplicationStatusReviewing: {
		ApplicationStatusShortlisted,
		ApplicationStatusAccepted,
		ApplicationStatusRejected,
	},
	ApplicationStatusShortlisted: {
		ApplicationStatusReviewing,
		ApplicationStatusAccepted,
		ApplicationStatusRejected,
	},
}

func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewing, ApplicationStatusShortlisted,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

func CanTransition(from, to ApplicationStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
