package domain

import (
	"time"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleRecruiter Role = "recruiter"
	RoleCandidate Role = "candidate"
)

type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    Role   `json:"role"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
	// PasswordHash is persisted together with the record, so it carries a
	// real json tag. Handlers must blank it before writing a user into a
	// response.
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
