package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    ApplicationStatus
		to      ApplicationStatus
		allowed bool
	}{
		{ApplicationStatusPending, ApplicationStatusReviewing, true},
		{ApplicationStatusPending, ApplicationStatusShortlisted, true},
		{ApplicationStatusPending, ApplicationStatusAccepted, true},
		{ApplicationStatusPending, ApplicationStatusRejected, true},
		{ApplicationStatusPending, ApplicationStatusPending, false},
		{ApplicationStatusReviewing, ApplicationStatusShortlisted, true},
		{ApplicationStatusReviewing, ApplicationStatusAccepted, true},
		{ApplicationStatusReviewing, ApplicationStatusPending, false},
		{ApplicationStatusShortlisted, ApplicationStatusReviewing, true},
		{ApplicationStatusShortlisted, ApplicationStatusRejected, true},
		// accepted and rejected are terminal
		{ApplicationStatusAccepted, ApplicationStatusReviewing, false},
		{ApplicationStatusAccepted, ApplicationStatusRejected, false},
		{ApplicationStatusRejected, ApplicationStatusPending, false},
		{ApplicationStatusRejected, ApplicationStatusAccepted, false},
	}

	for _, c := range cases {
		assert.Equalf(t, c.allowed, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestValidApplicationStatus(t *testing.T) {
	assert.True(t, ValidApplicationStatus(ApplicationStatusPending))
	assert.True(t, ValidApplicationStatus(ApplicationStatusAccepted))
	assert.False(t, ValidApplicationStatus(ApplicationStatus("archived")))
	assert.False(t, ValidApplicationStatus(ApplicationStatus("")))
}
