package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/pkg/ctxutil"
)

// AddEntry records hours for a user on a request. The user's display name
// is copied onto the entry and is not refreshed by later profile changes.
// The request is not checked for existence.
func (s *Service) AddEntry(ctx context.Context, input AddEntryInput) (*domain.TimeCostEntry, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	hours, _ := ParseHours(input.Hours)

	profile, err := s.profiles.GetByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("user_id", "unknown user")
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	now := s.now()
	entry := &domain.TimeCostEntry{
		ID:        uuid.New(),
		RequestID: input.RequestID,
		UserID:    input.UserID,
		UserName:  profile.DisplayName(),
		Date:      domain.DateOf(input.Date),
		Hours:     hours,
		Notes:     strings.TrimSpace(input.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.entries.Create(txCtx, entry); err != nil {
			return fmt.Errorf("create entry: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actorID,
			UserName:   ctxutil.UserNameFromCtx(ctx),
			EntityType: domain.EntityTypeCostTracker,
			EntityID:   &entry.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"request_id": entry.RequestID.String(),
				"user_id":    entry.UserID.String(),
				"date":       entry.Date.Format(domain.DateLayout),
				"hours":      map[string]any{"new": entry.Hours.String()},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "time entry added",
		slog.String("entry_id", entry.ID.String()),
		slog.String("request_id", entry.RequestID.String()),
		slog.String("hours", entry.Hours.String()),
	)
	return entry, nil
}

// DeleteEntry removes an entry permanently.
func (s *Service) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		entry, err := s.entries.GetByID(txCtx, entryID)
		if err != nil {
			return fmt.Errorf("get entry: %w", err)
		}

		if err := s.entries.Delete(txCtx, entryID); err != nil {
			return fmt.Errorf("delete entry: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actorID,
			UserName:   ctxutil.UserNameFromCtx(ctx),
			EntityType: domain.EntityTypeCostTracker,
			EntityID:   &entryID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"request_id": entry.RequestID.String(),
				"hours":      map[string]any{"old": entry.Hours.String()},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "time entry deleted", slog.String("entry_id", entryID.String()))
	return nil
}

// TotalFor returns the exact sum of hours logged on a request, zero when
// there are none.
func (s *Service) TotalFor(ctx context.Context, requestID uuid.UUID) (decimal.Decimal, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return decimal.Zero, domain.ErrUnauthorized
	}

	total, err := s.entries.SumByRequest(ctx, requestID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum entries: %w", err)
	}
	return total, nil
}

// ListForRequest returns the entries of a request, newest date first.
func (s *Service) ListForRequest(ctx context.Context, requestID uuid.UUID) ([]domain.TimeCostEntry, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.entries.ListByRequest(ctx, requestID)
}
