package domain

import (
	"time"
)

type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
)

type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

type Job struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	Location         string    `json:"location"`
	Type             JobType   `json:"type"`
	Salary           string    `json:"salary"`
	Description      string    `json:"description"`
	Requirements     []string  `json:"requirements"`
	Responsibilities []string  `json:"responsibilities"`
	PostedBy         string    `json:"postedBy"`
	PostedDate       time.Time `json:"postedDate"`
	Status           JobStatus `json:"status"`
	ApplicantCount   int       `json:"applicantCount"`
}

// JobUpdate carries a partial update; nil fields are left untouched.
type JobUpdate struct {
	Title            *string    `json:"title"`
	Company          *string    `json:"company"`
	Location         *string    `json:"location"`
	Type             *JobType   `json:"type"`
	Salary           *string    `json:"salary"`
	Description      *string    `json:"description"`
	Requirements     *[]string  `json:"requirements"`
	Responsibilities *[]string  `json:"responsibilities"`
	Status           *JobStatus `json:"status"`
}
