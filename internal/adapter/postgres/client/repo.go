// Package client implements the Client repository using PostgreSQL.
// Clients are never deleted; links are embedded as a JSONB array.
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/worktrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

var clientColumns = []string{
	"id", "company", "contact_name", "email", "phone", "address", "website",
	"notes", "links", "created_by", "created_at", "updated_at",
}

// Repo provides client persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new client repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type clientRow struct {
	ID          uuid.UUID     `db:"id"`
	Company     string        `db:"company"`
	ContactName string        `db:"contact_name"`
	Email       string        `db:"email"`
	Phone       string        `db:"phone"`
	Address     string        `db:"address"`
	Website     string        `db:"website"`
	Notes       string        `db:"notes"`
	Links       []domain.Link `db:"links"`
	CreatedBy   uuid.UUID     `db:"created_by"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

func (r clientRow) toDomain() domain.Client {
	c := domain.Client(r)
	if c.Links == nil {
		c.Links = []domain.Link{}
	}
	return c
}

// GetByID returns a client by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	query, args, err := postgres.Builder().Select(clientColumns...).From("clients").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get client query: %w", err)
	}

	var row clientRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			err = pgx.ErrNoRows
		}
		return nil, postgres.MapError(err, "client", id)
	}
	c := row.toDomain()
	return &c, nil
}

// List returns clients ordered by company name, optionally narrowed by a
// case-insensitive search over company and contact name.
func (r *Repo) List(ctx context.Context, search string) ([]domain.Client, error) {
	qb := postgres.Builder().Select(clientColumns...).From("clients")
	if s := strings.TrimSpace(search); s != "" {
		pattern := "%" + strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s) + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"company": pattern},
			squirrel.ILike{"contact_name": pattern},
		})
	}
	query, args, err := qb.OrderBy("lower(company)", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list clients query: %w", err)
	}

	var rows []clientRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(fmt.Errorf("list clients: %w", err), "client", uuid.Nil)
	}

	clients := make([]domain.Client, len(rows))
	for i, row := range rows {
		clients[i] = row.toDomain()
	}
	return clients, nil
}

// Create inserts a new client.
func (r *Repo) Create(ctx context.Context, c *domain.Client) error {
	links := c.Links
	if links == nil {
		links = []domain.Link{}
	}
	query, args, err := postgres.Builder().
		Insert("clients").
		Columns(clientColumns...).
		Values(c.ID, c.Company, c.ContactName, c.Email, c.Phone, c.Address, c.Website,
			c.Notes, links, c.CreatedBy, c.CreatedAt, c.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert client query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "client", c.ID)
	}
	return nil
}

// Update writes every mutable column of c.
func (r *Repo) Update(ctx context.Context, c *domain.Client) error {
	links := c.Links
	if links == nil {
		links = []domain.Link{}
	}
	query, args, err := postgres.Builder().
		Update("clients").
		SetMap(map[string]any{
			"company":      c.Company,
			"contact_name": c.ContactName,
			"email":        c.Email,
			"phone":        c.Phone,
			"address":      c.Address,
			"website":      c.Website,
			"notes":        c.Notes,
			"links":        links,
			"updated_at":   c.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update client query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "client", c.ID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "client", c.ID)
	}
	return nil
}
