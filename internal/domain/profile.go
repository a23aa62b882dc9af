package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a team member as known to the identity provider.
type Profile struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	CreatedAt time.Time
}

// DisplayName falls back to the email when no full name is set.
func (p Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Email
}
