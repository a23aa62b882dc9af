package request

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// CloneRequest closes out the source request as completed and creates a
// follow-up request with the same brief and a fresh number. Both
// writes happen in one transaction.
func (s *Service) CloneRequest(ctx context.Context, input CloneRequestInput) (*domain.Request, error) {
	who, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var source, clone domain.Request
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		src, err := s.requests.GetByIDForUpdate(txCtx, input.SourceID)
		if err != nil {
			return fmt.Errorf("get source request: %w", err)
		}
		if input.ExpectedUpdatedAt != nil && !input.ExpectedUpdatedAt.Equal(src.UpdatedAt) {
			return domain.NewValidationError("request", "request changed since it was loaded; reload before cloning")
		}

		now := s.now()
		previousStatus := src.Status
		source = *src
		source.Status = domain.RequestStatusCompleted
		source.UpdatedAt = now
		if err := s.requests.Update(txCtx, &source); err != nil {
			return fmt.Errorf("complete source request: %w", err)
		}

		number, err := s.numbers.Next(txCtx)
		if err != nil {
			return fmt.Errorf("allocate request number: %w", err)
		}

		clone = domain.Request{
			ID:            uuid.New(),
			RequestNumber: number,
			Title:         source.Title,
			RequestType:   source.RequestType,
			Status:        domain.RequestStatusSubmitted,
			DueDate:       dateOrNil(input.DueDate),
			ClientID:      source.ClientID,
			Details:       source.Details,
			Links:         domain.CloneLinks(source.Links, now),
			ImageURLs:     []string{},
			CreatedBy:     who.id,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.requests.Create(txCtx, &clone); err != nil {
			return fmt.Errorf("create cloned request: %w", err)
		}

		if previousStatus != source.Status {
			if err := s.audit.Log(txCtx, who.record(domain.EntityTypeRequest, source.ID, domain.AuditActionUpdate, map[string]any{
				"status": change(string(previousStatus), string(source.Status)),
			})); err != nil {
				return fmt.Errorf("audit log: %w", err)
			}
		}
		if err := s.audit.Log(txCtx, who.record(domain.EntityTypeRequest, clone.ID, domain.AuditActionClone, map[string]any{
			"source_id":      source.ID.String(),
			"source_number":  source.RequestNumber,
			"request_number": map[string]any{"new": clone.RequestNumber},
		})); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "request cloned",
		slog.String("user_id", who.id.String()),
		slog.String("source_number", source.RequestNumber),
		slog.String("request_id", clone.ID.String()),
		slog.String("request_number", clone.RequestNumber),
	)

	return &clone, nil
}
