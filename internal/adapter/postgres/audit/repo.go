// Package audit implements the activity log repository using PostgreSQL.
// It provides append-only writes and a paginated newest-first read view.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/worktrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// DefaultPageSize is the activity view page size.
const DefaultPageSize = 100

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new audit repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const insertSQL = `
INSERT INTO activity_logs (id, user_id, user_name, action, entity_type, entity_id, details, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Log appends an audit record. It joins the caller's transaction when ctx
// carries one, so the record commits or rolls back with the mutation.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("audit_record marshal changes: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL,
		record.ID, record.UserID, record.UserName, string(record.Action),
		string(record.EntityType), record.EntityID, changesJSON, record.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "audit_record", record.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

type recordRow struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	UserName   string     `db:"user_name"`
	Action     string     `db:"action"`
	EntityType string     `db:"entity_type"`
	EntityID   *uuid.UUID `db:"entity_id"`
	Details    []byte     `db:"details"`
	CreatedAt  time.Time  `db:"created_at"`
}

// List returns a page of activity, newest first.
func (r *Repo) List(ctx context.Context, f domain.ActivityFilter) ([]domain.AuditRecord, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}

	qb := postgres.Builder().
		Select("id", "user_id", "user_name", "action", "entity_type", "entity_id", "details", "created_at").
		From("activity_logs")
	if f.EntityType != nil {
		qb = qb.Where(squirrel.Eq{"entity_type": string(*f.EntityType)})
	}
	if f.EntityID != nil {
		qb = qb.Where(squirrel.Eq{"entity_id": *f.EntityID})
	}
	query, args, err := qb.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(max(f.Offset, 0))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activity query: %w", err)
	}

	var rows []recordRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(fmt.Errorf("list activity: %w", err), "audit_record", uuid.Nil)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, row := range rows {
		rec, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}

// Count returns the number of records matching the filter, ignoring paging.
func (r *Repo) Count(ctx context.Context, f domain.ActivityFilter) (int, error) {
	qb := postgres.Builder().Select("count(*)").From("activity_logs")
	if f.EntityType != nil {
		qb = qb.Where(squirrel.Eq{"entity_type": string(*f.EntityType)})
	}
	if f.EntityID != nil {
		qb = qb.Where(squirrel.Eq{"entity_id": *f.EntityID})
	}
	query, args, err := qb.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count activity query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(fmt.Errorf("count activity: %w", err), "audit_record", uuid.Nil)
	}
	return n, nil
}

func (row recordRow) toDomain() (domain.AuditRecord, error) {
	record := domain.AuditRecord{
		ID:         row.ID,
		UserID:     row.UserID,
		UserName:   row.UserName,
		EntityType: domain.EntityType(row.EntityType),
		EntityID:   row.EntityID,
		Action:     domain.AuditAction(row.Action),
		CreatedAt:  row.CreatedAt,
	}

	if len(row.Details) > 0 {
		changes := make(map[string]any)
		if err := json.Unmarshal(row.Details, &changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal details: %w", row.ID, err)
		}
		record.Changes = changes
	}
	return record, nil
}
