package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	UserName   string
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

// ActivityFilter selects a page of the activity log.
type ActivityFilter struct {
	EntityType *EntityType
	EntityID   *uuid.UUID
	Limit      int
	Offset     int
}
