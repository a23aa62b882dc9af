package request

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// AddComment attaches a comment to a request. The author name is copied
// from the author's profile at this moment and never refreshed.
func (s *Service) AddComment(ctx context.Context, input AddCommentInput) (*domain.Comment, error) {
	who, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	authorName := who.name
	p, err := s.profiles.GetByID(ctx, who.id)
	switch {
	case err == nil:
		authorName = p.DisplayName()
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("get author profile: %w", err)
	}

	c := domain.Comment{
		ID:         uuid.New(),
		RequestID:  input.RequestID,
		AuthorID:   who.id,
		AuthorName: authorName,
		Text:       strings.TrimSpace(input.Text),
		CreatedAt:  s.now(),
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.comments.Create(txCtx, c); err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
		if err := s.audit.Log(txCtx, who.record(domain.EntityTypeComment, c.ID, domain.AuditActionCreate, map[string]any{
			"request_id": c.RequestID.String(),
		})); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("request_id", c.RequestID.String()),
		slog.String("comment_id", c.ID.String()),
	)
	return &c, nil
}

// ListComments returns the comments of a request, oldest first.
func (s *Service) ListComments(ctx context.Context, requestID uuid.UUID) ([]domain.Comment, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}
	if _, err := s.requests.GetByID(ctx, requestID); err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	return s.comments.ListByRequest(ctx, requestID)
}

// DeleteComment removes a comment from a request.
func (s *Service) DeleteComment(ctx context.Context, requestID, commentID uuid.UUID) error {
	who, err := actorFromCtx(ctx)
	if err != nil {
		return err
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.comments.GetByID(txCtx, requestID, commentID)
		if err != nil {
			return fmt.Errorf("get comment: %w", err)
		}
		if err := s.comments.Delete(txCtx, requestID, commentID); err != nil {
			return fmt.Errorf("delete comment: %w", err)
		}
		return s.audit.Log(txCtx, who.record(domain.EntityTypeComment, commentID, domain.AuditActionDelete, map[string]any{
			"request_id": requestID.String(),
			"author_id":  c.AuthorID.String(),
		}))
	})
}
