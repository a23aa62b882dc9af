package client

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/pkg/ctxutil"
)

func actorFromCtx(ctx context.Context) (uuid.UUID, string, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return id, ctxutil.UserNameFromCtx(ctx), nil
}

// CreateClient creates a client. The phone number is stored in its
// NNN-NNN-NNNN form.
func (s *Service) CreateClient(ctx context.Context, input CreateClientInput) (*domain.Client, error) {
	userID, userName, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	links := make([]domain.Link, len(input.Links))
	for i, l := range input.Links {
		links[i] = l.toDomain(now)
	}

	c := &domain.Client{
		ID:          uuid.New(),
		Company:     strings.TrimSpace(input.Company),
		ContactName: strings.TrimSpace(input.ContactName),
		Email:       strings.TrimSpace(input.Email),
		Phone:       domain.FormatPhone(input.Phone),
		Address:     strings.TrimSpace(input.Address),
		Website:     strings.TrimSpace(input.Website),
		Notes:       strings.TrimSpace(input.Notes),
		Links:       links,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.clients.Create(txCtx, c); err != nil {
			return fmt.Errorf("create client: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			UserName:   userName,
			EntityType: domain.EntityTypeClient,
			EntityID:   &c.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"company": map[string]any{"new": c.Company},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "client created",
		slog.String("user_id", userID.String()),
		slog.String("client_id", c.ID.String()),
	)
	return c, nil
}

// UpdateClient applies the supplied fields to a client.
func (s *Service) UpdateClient(ctx context.Context, input UpdateClientInput) (*domain.Client, error) {
	userID, userName, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated domain.Client
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.clients.GetByID(txCtx, input.ClientID)
		if err != nil {
			return fmt.Errorf("get client: %w", err)
		}

		updated = *current
		changes := map[string]any{}
		set := func(field string, dst *string, src *string, normalize func(string) string) {
			if src == nil {
				return
			}
			v := normalize(*src)
			if v != *dst {
				changes[field] = map[string]any{"old": *dst, "new": v}
				*dst = v
			}
		}
		set("company", &updated.Company, input.Company, strings.TrimSpace)
		set("contact_name", &updated.ContactName, input.ContactName, strings.TrimSpace)
		set("email", &updated.Email, input.Email, strings.TrimSpace)
		set("phone", &updated.Phone, input.Phone, domain.FormatPhone)
		set("address", &updated.Address, input.Address, strings.TrimSpace)
		set("website", &updated.Website, input.Website, strings.TrimSpace)
		set("notes", &updated.Notes, input.Notes, strings.TrimSpace)

		if len(changes) == 0 {
			return nil
		}

		updated.UpdatedAt = s.now()
		if err := s.clients.Update(txCtx, &updated); err != nil {
			return fmt.Errorf("update client: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			UserName:   userName,
			EntityType: domain.EntityTypeClient,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "client updated",
		slog.String("user_id", userID.String()),
		slog.String("client_id", updated.ID.String()),
	)
	return &updated, nil
}

// GetClient returns a client by id.
func (s *Service) GetClient(ctx context.Context, clientID uuid.UUID) (*domain.Client, error) {
	if _, _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}
	return s.clients.GetByID(ctx, clientID)
}

// ListClients returns clients ordered by company name. A non-empty search
// matches company or contact name.
func (s *Service) ListClients(ctx context.Context, search string) ([]domain.Client, error) {
	if _, _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}
	return s.clients.List(ctx, strings.TrimSpace(search))
}

// AddLink appends a link to a client.
func (s *Service) AddLink(ctx context.Context, clientID uuid.UUID, input LinkInput) (*domain.Link, error) {
	userID, userName, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var link domain.Link
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.clients.GetByID(txCtx, clientID)
		if err != nil {
			return fmt.Errorf("get client: %w", err)
		}

		now := s.now()
		link = input.toDomain(now)
		c.Links = append(slices.Clone(c.Links), link)
		c.UpdatedAt = now
		if err := s.clients.Update(txCtx, c); err != nil {
			return fmt.Errorf("update client: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			UserName:   userName,
			EntityType: domain.EntityTypeLink,
			EntityID:   &link.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"client_id": clientID.String(),
				"url":       map[string]any{"new": link.URL},
			},
		})
	})
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// DeleteLink removes a link from a client.
func (s *Service) DeleteLink(ctx context.Context, clientID, linkID uuid.UUID) error {
	userID, userName, err := actorFromCtx(ctx)
	if err != nil {
		return err
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.clients.GetByID(txCtx, clientID)
		if err != nil {
			return fmt.Errorf("get client: %w", err)
		}

		idx := slices.IndexFunc(c.Links, func(l domain.Link) bool { return l.ID == linkID })
		if idx < 0 {
			return fmt.Errorf("link %s: %w", linkID, domain.ErrNotFound)
		}
		removed := c.Links[idx]
		c.Links = slices.Delete(slices.Clone(c.Links), idx, idx+1)
		c.UpdatedAt = s.now()
		if err := s.clients.Update(txCtx, c); err != nil {
			return fmt.Errorf("update client: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			UserName:   userName,
			EntityType: domain.EntityTypeLink,
			EntityID:   &linkID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"client_id": clientID.String(),
				"url":       map[string]any{"old": removed.URL},
			},
		})
	})
}
