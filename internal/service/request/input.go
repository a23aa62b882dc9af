package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

const (
	MaxTitleLength   = 200
	MaxCommentLength = 5000
	MaxBulkIDs       = 500
)

// LinkInput holds the fields of a new link.
type LinkInput struct {
	Name     string
	URL      string
	Comments string
}

func (l LinkInput) fieldErrors(prefix string) validation.Errors {
	return validation.Errors{
		prefix + "name": validation.Validate(strings.TrimSpace(l.Name), validation.Required.Error("required")),
		prefix + "url":  validation.Validate(strings.TrimSpace(l.URL), validation.Required.Error("required"), domain.URLRule),
	}
}

// Validate checks the link fields.
func (l LinkInput) Validate() error {
	return domain.FromRules(l.fieldErrors("").Filter())
}

func (l LinkInput) toDomain(now time.Time) domain.Link {
	return domain.Link{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(l.Name),
		URL:       strings.TrimSpace(l.URL),
		Comments:  strings.TrimSpace(l.Comments),
		CreatedAt: now,
	}
}

// CreateRequestInput holds the parameters for creating a request.
type CreateRequestInput struct {
	Title       string
	RequestType domain.RequestType
	Status      *domain.RequestStatus // nil = submitted
	DueDate     *time.Time
	AssignedTo  *string
	ClientID    *uuid.UUID
	Details     string
	Links       []LinkInput
	ImageURLs   []string
}

// Validate checks all fields and collects all errors.
func (i CreateRequestInput) Validate() error {
	errs := validation.Errors{
		"title":        titleError(i.Title),
		"request_type": requestTypeError(i.RequestType),
		"assigned_to":  assigneeError(i.AssignedTo),
	}
	if i.Status != nil && !i.Status.IsInitial() {
		errs["status"] = errors.New("must be submitted or draft")
	}
	for idx, l := range i.Links {
		for k, v := range l.fieldErrors(fmt.Sprintf("links[%d].", idx)) {
			errs[k] = v
		}
	}
	return domain.FromRules(errs.Filter())
}

// UpdateRequestInput holds the parameters for updating a request.
// Nil fields are left unchanged.
type UpdateRequestInput struct {
	RequestID    uuid.UUID
	Title        *string
	RequestType  *domain.RequestType
	Status       *domain.RequestStatus
	DueDate      *time.Time
	ClearDueDate bool
	AssignedTo   *string // ptr("") = unassign
	ClientID     *uuid.UUID
	ClearClient  bool
	Details      *string
	ImageURLs    []string
}

// Validate checks all fields and collects all errors.
func (i UpdateRequestInput) Validate() error {
	errs := validation.Errors{
		"request_id":  requiredID(i.RequestID),
		"assigned_to": assigneeError(i.AssignedTo),
	}
	if i.Title != nil {
		errs["title"] = titleError(*i.Title)
	}
	if i.RequestType != nil {
		errs["request_type"] = requestTypeError(*i.RequestType)
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs["status"] = fmt.Errorf("unknown status %q", *i.Status)
	}
	if i.DueDate != nil && i.ClearDueDate {
		errs["due_date"] = errors.New("cannot set and clear in the same update")
	}
	if i.ClientID != nil && i.ClearClient {
		errs["client_id"] = errors.New("cannot set and clear in the same update")
	}
	return domain.FromRules(errs.Filter())
}

// CloneRequestInput holds the parameters for cloning a request.
type CloneRequestInput struct {
	SourceID uuid.UUID
	// HasUnsavedChanges is reported by the caller; cloning with pending
	// edits is rejected.
	HasUnsavedChanges bool
	// ExpectedUpdatedAt, when set, must match the stored updated_at of the
	// source, otherwise the caller is looking at stale state.
	ExpectedUpdatedAt *time.Time
	DueDate           *time.Time
}

// Validate checks all fields and collects all errors.
func (i CloneRequestInput) Validate() error {
	errs := validation.Errors{
		"source_id": requiredID(i.SourceID),
	}
	if i.HasUnsavedChanges {
		errs["request"] = errors.New("save your changes before cloning this request")
	}
	return domain.FromRules(errs.Filter())
}

// BulkStatusInput sets one status on many requests.
type BulkStatusInput struct {
	RequestIDs []uuid.UUID
	Status     domain.RequestStatus
}

// Validate checks all fields and collects all errors.
func (i BulkStatusInput) Validate() error {
	errs := validation.Errors{
		"request_ids": validation.Validate(i.RequestIDs,
			validation.Required.Error("required"),
			validation.Length(1, MaxBulkIDs).Error(fmt.Sprintf("max %d ids", MaxBulkIDs)),
		),
	}
	if !i.Status.IsValid() {
		errs["status"] = fmt.Errorf("unknown status %q", i.Status)
	}
	return domain.FromRules(errs.Filter())
}

// AddCommentInput holds the parameters for commenting on a request.
type AddCommentInput struct {
	RequestID uuid.UUID
	Text      string
}

// Validate checks all fields and collects all errors.
func (i AddCommentInput) Validate() error {
	return domain.FromRules(validation.Errors{
		"request_id": requiredID(i.RequestID),
		"text": validation.Validate(strings.TrimSpace(i.Text),
			validation.Required.Error("required"),
			validation.RuneLength(0, MaxCommentLength).Error(fmt.Sprintf("max %d characters", MaxCommentLength)),
		),
	}.Filter())
}

func requiredID(id uuid.UUID) error {
	if id == uuid.Nil {
		return errors.New("required")
	}
	return nil
}

func titleError(title string) error {
	return validation.Validate(strings.TrimSpace(title),
		validation.Required.Error("required"),
		validation.RuneLength(0, MaxTitleLength).Error(fmt.Sprintf("max %d characters", MaxTitleLength)),
	)
}

func requestTypeError(t domain.RequestType) error {
	if t == "" {
		return errors.New("required")
	}
	if !t.IsValid() {
		return fmt.Errorf("unknown request type %q", t)
	}
	return nil
}

// assigneeError accepts nil, "" (unassigned), "Everyone" or a profile id.
func assigneeError(assignee *string) error {
	if assignee == nil || *assignee == "" || *assignee == domain.AssigneeEveryone {
		return nil
	}
	if _, err := uuid.Parse(*assignee); err != nil {
		return errors.New("must be a user id or Everyone")
	}
	return nil
}

// normalizeAssignee maps "" to nil.
func normalizeAssignee(assignee *string) *string {
	if assignee == nil || *assignee == "" {
		return nil
	}
	v := *assignee
	return &v
}

func dateOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := domain.DateOf(*t)
	return &d
}
