// Package report builds time reports from the ledger.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/worktrack-backend/internal/config"
	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/pkg/ctxutil"
)

type entrySource interface {
	ListInRange(ctx context.Context, rng domain.DateRange, userID *uuid.UUID) ([]domain.TimeCostEntry, error)
}

type requestSource interface {
	ListForReport(ctx context.Context) ([]domain.Request, error)
}

type clientSource interface {
	List(ctx context.Context, search string) ([]domain.Client, error)
}

// Service loads report data and hands it to Build.
type Service struct {
	entries  entrySource
	requests requestSource
	clients  clientSource
	cfg      config.ReportConfig
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new report service.
func NewService(
	log *slog.Logger,
	entries entrySource,
	requests requestSource,
	clients clientSource,
	cfg config.ReportConfig,
) *Service {
	return &Service{
		entries:  entries,
		requests: requests,
		clients:  clients,
		cfg:      cfg,
		now:      time.Now,
		log:      log.With("service", "report"),
	}
}

// DefaultRange returns the range applied when the caller supplies none.
func (s *Service) DefaultRange(kind domain.GroupKind) domain.DateRange {
	return DefaultRange(kind, s.now(), s.cfg.Location, s.cfg.TeamDefaultDays)
}

// BuildReport loads entries in range, requests and clients concurrently and
// builds the report.
func (s *Service) BuildReport(ctx context.Context, in Input) (*domain.Report, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in = in.withDefaults()

	var userID *uuid.UUID
	if in.Group.Kind == domain.GroupUser {
		id := in.Group.ID
		userID = &id
	}

	var (
		entries  []domain.TimeCostEntry
		requests []domain.Request
		clients  []domain.Client
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.entries.ListInRange(gctx, in.Range, userID)
		if err != nil {
			return fmt.Errorf("list entries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		requests, err = s.requests.ListForReport(gctx)
		if err != nil {
			return fmt.Errorf("list requests: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		clients, err = s.clients.List(gctx, "")
		if err != nil {
			return fmt.Errorf("list clients: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := Build(entries, requests, clients, in)

	s.log.DebugContext(ctx, "report built",
		slog.String("start", in.Range.Start.Format(domain.DateLayout)),
		slog.String("end", in.Range.End.Format(domain.DateLayout)),
		slog.String("group", string(in.Group.Kind)),
		slog.Int("entries", len(entries)),
		slog.String("total_hours", report.TotalHours.String()),
	)
	return report, nil
}
