package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

const (
	// HoursPrecision is the number of decimal places stored for hours.
	HoursPrecision = 2

	MaxNotesLength = 2000
)

// MaxHours is the largest value the hours column can hold.
var MaxHours = decimal.RequireFromString("99999999.99")

// AddEntryInput holds the parameters for logging time on a request.
// Hours is the decimal text as received; JSON numbers are passed through
// in their literal form so no float rounding happens on the way in.
type AddEntryInput struct {
	RequestID uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
	Hours     string
	Notes     string
}

// Validate checks all fields and collects all errors.
func (i AddEntryInput) Validate() error {
	errs := validation.Errors{
		"request_id": requiredID(i.RequestID),
		"user_id":    requiredID(i.UserID),
		"notes": validation.Validate(i.Notes,
			validation.RuneLength(0, MaxNotesLength).Error(fmt.Sprintf("max %d characters", MaxNotesLength)),
		),
	}
	if i.Date.IsZero() {
		errs["date"] = errors.New("required")
	}
	if _, err := ParseHours(i.Hours); err != nil {
		errs["hours"] = err
	}
	return domain.FromRules(errs.Filter())
}

// ParseHours parses a positive decimal number of hours with at most two
// decimal places. NaN, infinities and anything non-numeric are rejected.
func ParseHours(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, errors.New("required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errors.New("must be a number")
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, errors.New("must be greater than 0")
	}
	if !d.Equal(d.Round(HoursPrecision)) {
		return decimal.Decimal{}, fmt.Errorf("at most %d decimal places", HoursPrecision)
	}
	if d.GreaterThan(MaxHours) {
		return decimal.Decimal{}, fmt.Errorf("must be at most %s", MaxHours)
	}
	return d, nil
}

func requiredID(id uuid.UUID) error {
	if id == uuid.Nil {
		return errors.New("required")
	}
	return nil
}
