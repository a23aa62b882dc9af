package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TimeCostEntry records hours a person spent on a request on a given day.
// UserName is a snapshot of the profile name at insert time; RequestID may
// dangle once the request is deleted.
type TimeCostEntry struct {
	ID        uuid.UUID
	RequestID uuid.UUID
	UserID    uuid.UUID
	UserName  string
	Date      time.Time
	Hours     decimal.Decimal
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
