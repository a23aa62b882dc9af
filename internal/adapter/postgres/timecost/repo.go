// Package timecost implements the time-cost ledger using PostgreSQL.
// Hours are NUMERIC(10,2); they cross the driver boundary as text so no
// float conversion ever touches them.
package timecost

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/worktrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

var entryColumns = []string{
	"id", "request_id", "user_id", "user_name", "date", "hours::text AS hours",
	"notes", "created_at", "updated_at",
}

// Repo provides ledger persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new time-cost repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type entryRow struct {
	ID        uuid.UUID `db:"id"`
	RequestID uuid.UUID `db:"request_id"`
	UserID    uuid.UUID `db:"user_id"`
	UserName  string    `db:"user_name"`
	Date      time.Time `db:"date"`
	Hours     string    `db:"hours"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r entryRow) toDomain() (domain.TimeCostEntry, error) {
	hours, err := decimal.NewFromString(r.Hours)
	if err != nil {
		return domain.TimeCostEntry{}, fmt.Errorf("entry %s: parse hours %q: %w", r.ID, r.Hours, err)
	}
	return domain.TimeCostEntry{
		ID:        r.ID,
		RequestID: r.RequestID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		Date:      domain.DateOf(r.Date),
		Hours:     hours,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

func toDomainSlice(rows []entryRow) ([]domain.TimeCostEntry, error) {
	entries := make([]domain.TimeCostEntry, len(rows))
	for i, row := range rows {
		e, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}
	return entries, nil
}

const insertSQL = `
INSERT INTO cost_entries (id, request_id, user_id, user_name, date, hours, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8, $9)`

// Create inserts a ledger entry.
func (r *Repo) Create(ctx context.Context, e *domain.TimeCostEntry) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL,
		e.ID, e.RequestID, e.UserID, e.UserName, domain.DateOf(e.Date), e.Hours.String(),
		e.Notes, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "time entry", e.ID)
	}
	return nil
}

// GetByID returns a ledger entry by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeCostEntry, error) {
	query, args, err := postgres.Builder().
		Select(entryColumns...).From("cost_entries").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get time entry query: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			err = pgx.ErrNoRows
		}
		return nil, postgres.MapError(err, "time entry", id)
	}

	e, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Delete removes a ledger entry.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM cost_entries WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "time entry", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "time entry", id)
	}
	return nil
}

const sumByRequestSQL = `
SELECT COALESCE(SUM(hours), 0)::text
  FROM cost_entries
 WHERE request_id = $1`

// SumByRequest returns the exact total of hours logged against requestID.
// A request without entries sums to zero.
func (r *Repo) SumByRequest(ctx context.Context, requestID uuid.UUID) (decimal.Decimal, error) {
	var total string
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sumByRequestSQL, requestID).Scan(&total); err != nil {
		return decimal.Zero, postgres.MapError(fmt.Errorf("sum hours: %w", err), "request", requestID)
	}
	d, err := decimal.NewFromString(total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum hours: parse %q: %w", total, err)
	}
	return d, nil
}

// ListByRequest returns the entries of a request, most recent day first.
func (r *Repo) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.TimeCostEntry, error) {
	query, args, err := postgres.Builder().
		Select(entryColumns...).
		From("cost_entries").
		Where(squirrel.Eq{"request_id": requestID}).
		OrderBy("date DESC", "created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list time entries query: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(fmt.Errorf("list time entries: %w", err), "request", requestID)
	}
	return toDomainSlice(rows)
}

// ListInRange returns every entry whose date lies in rng, bounds included,
// optionally restricted to one user. Entries of deleted requests are
// included; the report layer drops them.
func (r *Repo) ListInRange(ctx context.Context, rng domain.DateRange, userID *uuid.UUID) ([]domain.TimeCostEntry, error) {
	qb := postgres.Builder().
		Select(entryColumns...).
		From("cost_entries").
		Where(squirrel.GtOrEq{"date": domain.DateOf(rng.Start)}).
		Where(squirrel.LtOrEq{"date": domain.DateOf(rng.End)})
	if userID != nil {
		qb = qb.Where(squirrel.Eq{"user_id": *userID})
	}

	query, args, err := qb.OrderBy("date", "created_at", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list time entries in range query: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(fmt.Errorf("list time entries in range: %w", err), "time entry", uuid.Nil)
	}
	return toDomainSlice(rows)
}

const deleteOrphansSQL = `
DELETE FROM cost_entries c
 WHERE c.created_at < $1
   AND NOT EXISTS (SELECT 1 FROM requests r WHERE r.id = c.request_id)`

// DeleteOrphansOlderThan purges entries created before cutoff whose request
// no longer exists. It returns the number of rows removed.
func (r *Repo) DeleteOrphansOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteOrphansSQL, cutoff)
	if err != nil {
		return 0, postgres.MapError(fmt.Errorf("delete orphaned time entries: %w", err), "time entry", uuid.Nil)
	}
	return tag.RowsAffected(), nil
}
