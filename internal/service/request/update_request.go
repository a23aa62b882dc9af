package request

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// UpdateRequest merges the supplied fields into the stored request.
// request_number, created_at and created_by are never changed. Concurrent
// updates are last-write-wins.
func (s *Service) UpdateRequest(ctx context.Context, input UpdateRequestInput) (*domain.Request, error) {
	who, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		updated         domain.Request
		assigneeChanged bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.requests.GetByIDForUpdate(txCtx, input.RequestID)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}

		updated = s.apply(*current, input)
		updated.UpdatedAt = s.now()
		if err := s.requests.Update(txCtx, &updated); err != nil {
			return fmt.Errorf("update request: %w", err)
		}

		changes := diff(*current, updated)
		if len(changes) == 0 {
			return nil
		}
		_, assigneeChanged = changes["assigned_to"]

		if err := s.audit.Log(txCtx, who.record(domain.EntityTypeRequest, updated.ID, domain.AuditActionUpdate, changes)); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "request updated",
		slog.String("user_id", who.id.String()),
		slog.String("request_id", updated.ID.String()),
		slog.String("request_number", updated.RequestNumber),
	)

	if assigneeChanged {
		s.notifyAssignee(ctx, &updated)
	}
	return &updated, nil
}

// apply returns a copy of cur with the input merged in. Immutable fields
// are copied from cur whatever the input holds.
func (s *Service) apply(cur domain.Request, in UpdateRequestInput) domain.Request {
	next := cur
	if in.Title != nil {
		next.Title = strings.TrimSpace(*in.Title)
	}
	if in.RequestType != nil {
		next.RequestType = *in.RequestType
	}
	if in.Status != nil {
		next.Status = *in.Status
	}
	switch {
	case in.ClearDueDate:
		next.DueDate = nil
	case in.DueDate != nil:
		next.DueDate = dateOrNil(in.DueDate)
	}
	if in.AssignedTo != nil {
		next.AssignedTo = normalizeAssignee(in.AssignedTo)
	}
	switch {
	case in.ClearClient:
		next.ClientID = nil
	case in.ClientID != nil:
		id := *in.ClientID
		next.ClientID = &id
	}
	if in.Details != nil {
		next.Details = s.sanitizer.Sanitize(*in.Details)
	}
	if in.ImageURLs != nil {
		next.ImageURLs = slices.Clone(in.ImageURLs)
	}
	return next
}

// diff reports the changed fields as {"old", "new"} pairs.
func diff(old, new domain.Request) map[string]any {
	changes := map[string]any{}
	if old.Title != new.Title {
		changes["title"] = change(old.Title, new.Title)
	}
	if old.RequestType != new.RequestType {
		changes["request_type"] = change(string(old.RequestType), string(new.RequestType))
	}
	if old.Status != new.Status {
		changes["status"] = change(string(old.Status), string(new.Status))
	}
	if o, n := dateString(old.DueDate), dateString(new.DueDate); o != n {
		changes["due_date"] = change(o, n)
	}
	if o, n := stringOrNil(old.AssignedTo), stringOrNil(new.AssignedTo); o != n {
		changes["assigned_to"] = change(o, n)
	}
	if o, n := uuidOrNil(old.ClientID), uuidOrNil(new.ClientID); o != n {
		changes["client_id"] = change(o, n)
	}
	if old.Details != new.Details {
		changes["details"] = map[string]any{"changed": true}
	}
	if !slices.Equal(old.ImageURLs, new.ImageURLs) {
		changes["image_urls"] = change(len(old.ImageURLs), len(new.ImageURLs))
	}
	return changes
}
