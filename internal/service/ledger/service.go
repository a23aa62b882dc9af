// Package ledger records hours spent on requests.
package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

type entryRepo interface {
	Create(ctx context.Context, e *domain.TimeCostEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeCostEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SumByRequest(ctx context.Context, requestID uuid.UUID) (decimal.Decimal, error)
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.TimeCostEntry, error)
}

type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the time-cost ledger.
type Service struct {
	entries  entryRepo
	profiles profileRepo
	audit    auditLogger
	tx       txManager
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new ledger service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	profiles profileRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		entries:  entries,
		profiles: profiles,
		audit:    audit,
		tx:       tx,
		now:      func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		log:      log.With("service", "ledger"),
	}
}
