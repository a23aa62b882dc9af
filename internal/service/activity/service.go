// Package activity serves the paginated activity log.
package activity

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/pkg/ctxutil"
)

// PageSize is the number of records per activity page.
const PageSize = 100

type auditReader interface {
	List(ctx context.Context, f domain.ActivityFilter) ([]domain.AuditRecord, error)
	Count(ctx context.Context, f domain.ActivityFilter) (int, error)
}

// Service reads the activity log.
type Service struct {
	records auditReader
	log     *slog.Logger
}

// NewService creates a new activity service.
func NewService(log *slog.Logger, records auditReader) *Service {
	return &Service{
		records: records,
		log:     log.With("service", "activity"),
	}
}

// ListInput selects one page of activity. Page is 1-based; 0 means 1.
type ListInput struct {
	Page       int
	EntityType *domain.EntityType
}

// Page is one page of activity, newest first.
type Page struct {
	Records    []domain.AuditRecord
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// List returns one page of the activity log together with the total count.
func (s *Service) List(ctx context.Context, in ListInput) (*Page, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if in.Page < 0 {
		return nil, domain.NewValidationError("page", "must be >= 1")
	}
	if in.EntityType != nil && !in.EntityType.IsValid() {
		return nil, domain.NewValidationError("entity_type", fmt.Sprintf("unknown entity type %q", *in.EntityType))
	}
	page := max(in.Page, 1)

	filter := domain.ActivityFilter{
		EntityType: in.EntityType,
		Limit:      PageSize,
		Offset:     (page - 1) * PageSize,
	}

	var (
		records []domain.AuditRecord
		total   int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.records.List(gctx, filter)
		if err != nil {
			return fmt.Errorf("list activity: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.records.Count(gctx, filter)
		if err != nil {
			return fmt.Errorf("count activity: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if records == nil {
		records = []domain.AuditRecord{}
	}
	return &Page{
		Records:    records,
		Page:       page,
		PageSize:   PageSize,
		Total:      total,
		TotalPages: (total + PageSize - 1) / PageSize,
	}, nil
}
