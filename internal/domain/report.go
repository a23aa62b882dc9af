package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GroupKind selects the grouping filter of a report.
type GroupKind string

const (
	GroupAll    GroupKind = "all"
	GroupUser   GroupKind = "user"
	GroupClient GroupKind = "client"
)

// GroupFilter restricts a report to one team member, one client, or nothing.
type GroupFilter struct {
	Kind GroupKind
	ID   uuid.UUID
}

// AllGroups is the no-op group filter.
func AllGroups() GroupFilter { return GroupFilter{Kind: GroupAll} }

// ForUser restricts a report to entries logged by userID.
func ForUser(userID uuid.UUID) GroupFilter { return GroupFilter{Kind: GroupUser, ID: userID} }

// ForClient restricts a report to entries on requests of clientID.
func ForClient(clientID uuid.UUID) GroupFilter { return GroupFilter{Kind: GroupClient, ID: clientID} }

// ReportRow is one ledger entry joined with its request and client.
type ReportRow struct {
	EntryID       uuid.UUID
	RequestID     uuid.UUID
	RequestNumber string
	RequestTitle  string
	UserID        uuid.UUID
	TeamMember    string
	ClientID      *uuid.UUID
	Client        string
	HoursSpent    decimal.Decimal
	Date          time.Time
	Notes         string
}

// AggregatedRow sums the hours of one user on one request.
// Notes holds the most recent non-empty note for the pair.
type AggregatedRow struct {
	RequestID     uuid.UUID
	RequestNumber string
	RequestTitle  string
	UserID        uuid.UUID
	TeamMember    string
	ClientID      *uuid.UUID
	Client        string
	HoursSpent    decimal.Decimal
	EntryCount    int
	Notes         string
}

// Report is the result of a report build. Exactly one of Rows and
// Aggregated is populated, depending on Mode.
type Report struct {
	Range      DateRange
	Group      GroupFilter
	Mode       ReportMode
	Rows       []ReportRow
	Aggregated []AggregatedRow
	TotalHours decimal.Decimal
}
