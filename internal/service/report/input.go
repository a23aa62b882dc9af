package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// Input selects what a report covers and how it is shaped.
// Zero Sort, Direction and Mode mean date, desc and entries.
type Input struct {
	Range     domain.DateRange
	Group     Group
	Sort      domain.ReportSortField
	Direction domain.SortDirection
	Mode      domain.ReportMode
}

// Group wraps domain.GroupFilter with the matching rule used by Build.
type Group struct {
	domain.GroupFilter
}

// ParseGroup parses "all", "user:<uuid>" or "client:<uuid>". An empty
// string is "all".
func ParseGroup(s string) (Group, error) {
	if s == "" || s == string(domain.GroupAll) {
		return Group{domain.AllGroups()}, nil
	}
	kind, raw, ok := strings.Cut(s, ":")
	if !ok {
		return Group{}, fmt.Errorf("invalid group %q", s)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return Group{}, fmt.Errorf("invalid group id %q", raw)
	}
	switch domain.GroupKind(kind) {
	case domain.GroupUser:
		return Group{domain.ForUser(id)}, nil
	case domain.GroupClient:
		return Group{domain.ForClient(id)}, nil
	}
	return Group{}, fmt.Errorf("invalid group kind %q", kind)
}

func (g Group) matches(e domain.TimeCostEntry, req *domain.Request) bool {
	switch g.Kind {
	case domain.GroupUser:
		return e.UserID == g.ID
	case domain.GroupClient:
		return req.ClientID != nil && *req.ClientID == g.ID
	}
	return true
}

func (in Input) withDefaults() Input {
	if in.Sort == "" {
		in.Sort = domain.ReportSortDate
	}
	if in.Direction == "" {
		in.Direction = domain.SortDesc
	}
	if in.Mode == "" {
		in.Mode = domain.ReportModeEntries
	}
	if in.Group.Kind == "" {
		in.Group = Group{domain.AllGroups()}
	}
	return in
}

// Validate checks all fields and collects all errors.
func (in Input) Validate() error {
	in = in.withDefaults()

	var errs []domain.FieldError
	switch {
	case in.Range.Start.IsZero():
		errs = append(errs, domain.FieldError{Field: "start", Message: "required"})
	case in.Range.End.IsZero():
		errs = append(errs, domain.FieldError{Field: "end", Message: "required"})
	case domain.DateOf(in.Range.Start).After(domain.DateOf(in.Range.End)):
		errs = append(errs, domain.FieldError{Field: "end", Message: "must not be before start"})
	}
	switch in.Group.Kind {
	case domain.GroupAll:
	case domain.GroupUser, domain.GroupClient:
		if in.Group.ID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "group", Message: "id required"})
		}
	default:
		errs = append(errs, domain.FieldError{Field: "group", Message: fmt.Sprintf("unknown group %q", in.Group.Kind)})
	}
	if !in.Sort.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be date or requestNumber"})
	}
	if !in.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "dir", Message: "must be asc or desc"})
	}
	if !in.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be entries or aggregated"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DefaultRange is the range used when a report is requested without one:
// the last days days for team reports and the current month for client
// reports, both relative to today in loc.
func DefaultRange(kind domain.GroupKind, now time.Time, loc *time.Location, days int) domain.DateRange {
	if loc != nil {
		now = now.In(loc)
	}
	if kind == domain.GroupClient {
		return domain.CurrentMonth(now)
	}
	return domain.LastNDays(now, days)
}
