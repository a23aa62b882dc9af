// Package profile reads team member profiles. Profiles are owned by the
// identity provider; this service never writes them.
package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/worktrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// Repo provides profile lookups backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new profile repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type profileRow struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	FullName  string    `db:"full_name"`
	CreatedAt time.Time `db:"created_at"`
}

// GetByID returns a profile by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	var row profileRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT id, email, full_name, created_at FROM profiles WHERE id = $1`, id)
	if err != nil {
		if pgxscan.NotFound(err) {
			err = pgx.ErrNoRows
		}
		return nil, postgres.MapError(err, "profile", id)
	}
	p := domain.Profile(row)
	return &p, nil
}

// List returns every profile ordered by display name.
func (r *Repo) List(ctx context.Context) ([]domain.Profile, error) {
	var rows []profileRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT id, email, full_name, created_at FROM profiles ORDER BY lower(COALESCE(NULLIF(full_name, ''), email)), id`)
	if err != nil {
		return nil, postgres.MapError(fmt.Errorf("list profiles: %w", err), "profile", uuid.Nil)
	}

	profiles := make([]domain.Profile, len(rows))
	for i, row := range rows {
		profiles[i] = domain.Profile(row)
	}
	return profiles, nil
}
