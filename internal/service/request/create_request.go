package request

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// CreateRequest allocates a request number and inserts the request in one
// transaction. The status defaults to submitted.
func (s *Service) CreateRequest(ctx context.Context, input CreateRequestInput) (*domain.Request, error) {
	who, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	status := domain.RequestStatusSubmitted
	if input.Status != nil {
		status = *input.Status
	}

	links := make([]domain.Link, len(input.Links))
	for i, l := range input.Links {
		links[i] = l.toDomain(now)
	}
	images := input.ImageURLs
	if images == nil {
		images = []string{}
	}

	req := &domain.Request{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		RequestType: input.RequestType,
		Status:      status,
		DueDate:     dateOrNil(input.DueDate),
		AssignedTo:  normalizeAssignee(input.AssignedTo),
		ClientID:    input.ClientID,
		Details:     s.sanitizer.Sanitize(input.Details),
		Links:       links,
		ImageURLs:   images,
		CreatedBy:   who.id,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		number, err := s.numbers.Next(txCtx)
		if err != nil {
			return fmt.Errorf("allocate request number: %w", err)
		}
		req.RequestNumber = number

		if err := s.requests.Create(txCtx, req); err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		if err := s.audit.Log(txCtx, who.record(domain.EntityTypeRequest, req.ID, domain.AuditActionCreate, map[string]any{
			"request_number": map[string]any{"new": req.RequestNumber},
			"title":          map[string]any{"new": req.Title},
			"status":         map[string]any{"new": string(req.Status)},
		})); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "request created",
		slog.String("user_id", who.id.String()),
		slog.String("request_id", req.ID.String()),
		slog.String("request_number", req.RequestNumber),
	)

	s.notifyAssignee(ctx, req)
	return req, nil
}
