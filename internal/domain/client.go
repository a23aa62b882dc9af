package domain

import (
	"time"

	"github.com/google/uuid"
)

// NoClientLabel is shown in reports for requests without a client.
const NoClientLabel = "No Client"

// Client is a customer organisation that requests work.
type Client struct {
	ID          uuid.UUID
	Company     string
	ContactName string
	Email       string
	Phone       string
	Address     string
	Website     string
	Notes       string
	Links       []Link
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
