package request

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// AddLink appends a link to a request.
func (s *Service) AddLink(ctx context.Context, requestID uuid.UUID, input LinkInput) (*domain.Link, error) {
	who, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var link domain.Link
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		req, err := s.requests.GetByIDForUpdate(txCtx, requestID)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}

		now := s.now()
		link = input.toDomain(now)
		req.Links = append(slices.Clone(req.Links), link)
		req.UpdatedAt = now
		if err := s.requests.Update(txCtx, req); err != nil {
			return fmt.Errorf("update request: %w", err)
		}

		if err := s.audit.Log(txCtx, who.record(domain.EntityTypeLink, link.ID, domain.AuditActionCreate, map[string]any{
			"request_id": requestID.String(),
			"name":       map[string]any{"new": link.Name},
			"url":        map[string]any{"new": link.URL},
		})); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "request link added",
		slog.String("request_id", requestID.String()),
		slog.String("link_id", link.ID.String()),
	)
	return &link, nil
}

// DeleteLink removes a link from a request.
func (s *Service) DeleteLink(ctx context.Context, requestID, linkID uuid.UUID) error {
	who, err := actorFromCtx(ctx)
	if err != nil {
		return err
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		req, err := s.requests.GetByIDForUpdate(txCtx, requestID)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}

		idx := slices.IndexFunc(req.Links, func(l domain.Link) bool { return l.ID == linkID })
		if idx < 0 {
			return fmt.Errorf("link %s: %w", linkID, domain.ErrNotFound)
		}
		removed := req.Links[idx]
		req.Links = slices.Delete(slices.Clone(req.Links), idx, idx+1)
		req.UpdatedAt = s.now()
		if err := s.requests.Update(txCtx, req); err != nil {
			return fmt.Errorf("update request: %w", err)
		}

		return s.audit.Log(txCtx, who.record(domain.EntityTypeLink, linkID, domain.AuditActionDelete, map[string]any{
			"request_id": requestID.String(),
			"name":       map[string]any{"old": removed.Name},
			"url":        map[string]any{"old": removed.URL},
		}))
	})
}
