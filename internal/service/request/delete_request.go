package request

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// DeleteRequest removes a request with its links and comments. Ledger
// entries that reference it are kept and drop out of reports.
func (s *Service) DeleteRequest(ctx context.Context, requestID uuid.UUID) error {
	who, err := actorFromCtx(ctx)
	if err != nil {
		return err
	}

	var number string
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		req, err := s.requests.GetByIDForUpdate(txCtx, requestID)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}
		number = req.RequestNumber

		if err := s.requests.Delete(txCtx, requestID); err != nil {
			return fmt.Errorf("delete request: %w", err)
		}

		if err := s.audit.Log(txCtx, who.record(domain.EntityTypeRequest, requestID, domain.AuditActionDelete, map[string]any{
			"request_number": map[string]any{"old": req.RequestNumber},
			"title":          map[string]any{"old": req.Title},
			"status":         map[string]any{"old": string(req.Status)},
		})); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "request deleted",
		slog.String("user_id", who.id.String()),
		slog.String("request_id", requestID.String()),
		slog.String("request_number", number),
	)
	return nil
}
