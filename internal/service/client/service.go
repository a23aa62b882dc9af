// Package client manages the customer organisations requests are made for.
package client

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

type clientRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, search string) ([]domain.Client, error)
	Create(ctx context.Context, c *domain.Client) error
	Update(ctx context.Context, c *domain.Client) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements client business logic.
type Service struct {
	clients clientRepo
	audit   auditLogger
	tx      txManager
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a new client service.
func NewService(log *slog.Logger, clients clientRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		clients: clients,
		audit:   audit,
		tx:      tx,
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		log:     log.With("service", "client"),
	}
}
