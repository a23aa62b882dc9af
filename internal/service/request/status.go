package request

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// UpdateStatuses sets one status on every listed request as a single
// batched write. Either all requests change or none do.
func (s *Service) UpdateStatuses(ctx context.Context, input BulkStatusInput) (int, error) {
	who, err := actorFromCtx(ctx)
	if err != nil {
		return 0, err
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	ids := dedupe(input.RequestIDs)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requests.SetStatuses(txCtx, ids, input.Status, s.now()); err != nil {
			return fmt.Errorf("set statuses: %w", err)
		}
		for _, id := range ids {
			if err := s.audit.Log(txCtx, who.record(domain.EntityTypeRequest, id, domain.AuditActionUpdate, map[string]any{
				"status": map[string]any{"new": string(input.Status)},
			})); err != nil {
				return fmt.Errorf("audit log: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "request statuses updated",
		slog.String("user_id", who.id.String()),
		slog.String("status", string(input.Status)),
		slog.Int("count", len(ids)),
	)
	return len(ids), nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
