package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssigneeEveryone is the sentinel assignee meaning the whole team.
const AssigneeEveryone = "Everyone"

// Request is a unit of client-requested work tracked through a status lifecycle.
type Request struct {
	ID            uuid.UUID
	RequestNumber string
	Title         string
	RequestType   RequestType
	Status        RequestStatus
	DueDate       *time.Time
	AssignedTo    *string
	ClientID      *uuid.UUID
	Details       string
	Links         []Link
	ImageURLs     []string
	CreatedBy     uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AssigneeID returns the assigned profile id, or false when the request is
// unassigned or assigned to everyone.
func (r *Request) AssigneeID() (uuid.UUID, bool) {
	if r.AssignedTo == nil || *r.AssignedTo == AssigneeEveryone {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(*r.AssignedTo)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// Link is a named URL embedded in a request or a client.
type Link struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Comments  string    `json:"comments,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment is an immutable note attached to a request.
// AuthorName is a snapshot taken when the comment was written.
type Comment struct {
	ID         uuid.UUID
	RequestID  uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string
	Text       string
	CreatedAt  time.Time
}

// RequestFilter narrows a request listing.
type RequestFilter struct {
	Statuses   []RequestStatus
	Search     string
	ClientID   *uuid.UUID
	AssignedTo *string
	Limit      int
	Offset     int
}

// CloneLinks copies links with fresh ids so the clone owns its own records.
func CloneLinks(links []Link, now time.Time) []Link {
	out := make([]Link, len(links))
	for i, l := range links {
		out[i] = Link{
			ID:        uuid.New(),
			Name:      l.Name,
			URL:       l.URL,
			Comments:  l.Comments,
			CreatedAt: now,
		}
	}
	return out
}
