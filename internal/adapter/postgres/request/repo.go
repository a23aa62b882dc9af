// Package request implements the Request repository using PostgreSQL.
// Links are embedded as a JSONB array; comments live in request_comments and
// are removed by FK cascade when a request is deleted.
package request

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

const (
	defaultLimit = 100
	maxLimit     = 500
)

var requestColumns = []string{
	"id", "request_number", "title", "request_type", "status", "due_date",
	"assigned_to", "client_id", "details", "links", "image_urls",
	"created_by", "created_at", "updated_at",
}

// Repo provides request persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new request repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type requestRow struct {
	ID            uuid.UUID     `db:"id"`
	RequestNumber string        `db:"request_number"`
	Title         string        `db:"title"`
	RequestType   string        `db:"request_type"`
	Status        string        `db:"status"`
	DueDate       *time.Time    `db:"due_date"`
	AssignedTo    *string       `db:"assigned_to"`
	ClientID      *uuid.UUID    `db:"client_id"`
	Details       string        `db:"details"`
	Links         []domain.Link `db:"links"`
	ImageURLs     []string      `db:"image_urls"`
	CreatedBy     uuid.UUID     `db:"created_by"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}

func (r requestRow) toDomain() domain.Request {
	links := r.Links
	if links == nil {
		links = []domain.Link{}
	}
	images := r.ImageURLs
	if images == nil {
		images = []string{}
	}
	return domain.Request{
		ID:            r.ID,
		RequestNumber: r.RequestNumber,
		Title:         r.Title,
		RequestType:   domain.RequestType(r.RequestType),
		Status:        domain.RequestStatus(r.Status),
		DueDate:       r.DueDate,
		AssignedTo:    r.AssignedTo,
		ClientID:      r.ClientID,
		Details:       r.Details,
		Links:         links,
		ImageURLs:     images,
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a request by primary key.
// Returns domain.ErrNotFound if the request does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate is GetByID with a row lock held until the surrounding
// transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, forUpdate bool) (*domain.Request, error) {
	qb := postgres.Builder().Select(requestColumns...).From("requests").Where(squirrel.Eq{"id": id})
	if forUpdate {
		qb = qb.Suffix("FOR UPDATE")
	}
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get request query: %w", err)
	}

	var row requestRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(normalizeNotFound(err), "request", id)
	}

	req := row.toDomain()
	return &req, nil
}

// List returns requests matching the filter, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f domain.RequestFilter) ([]domain.Request, error) {
	qb := postgres.Builder().Select(requestColumns...).From("requests")

	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		qb = qb.Where(squirrel.Eq{"status": statuses})
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"request_number": pattern},
		})
	}
	if f.ClientID != nil {
		qb = qb.Where(squirrel.Eq{"client_id": *f.ClientID})
	}
	if f.AssignedTo != nil {
		qb = qb.Where(squirrel.Eq{"assigned_to": *f.AssignedTo})
	}

	qb = qb.OrderBy("created_at DESC", "id DESC").
		Limit(uint64(clampLimit(f.Limit))).
		Offset(uint64(max(f.Offset, 0)))

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list requests query: %w", err)
	}

	var rows []requestRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(fmt.Errorf("list requests: %w", err), "request", uuid.Nil)
	}

	result := make([]domain.Request, len(rows))
	for i, row := range rows {
		result[i] = row.toDomain()
	}
	return result, nil
}

const listForReportSQL = `
SELECT id, request_number, title, client_id
  FROM requests`

type reportRefRow struct {
	ID            uuid.UUID  `db:"id"`
	RequestNumber string     `db:"request_number"`
	Title         string     `db:"title"`
	ClientID      *uuid.UUID `db:"client_id"`
}

// ListForReport returns every request with only the columns a time report
// joins on: id, number, title and client.
func (r *Repo) ListForReport(ctx context.Context) ([]domain.Request, error) {
	var rows []reportRefRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listForReportSQL); err != nil {
		return nil, postgres.MapError(fmt.Errorf("list requests for report: %w", err), "request", uuid.Nil)
	}

	result := make([]domain.Request, len(rows))
	for i, row := range rows {
		result[i] = domain.Request{
			ID:            row.ID,
			RequestNumber: row.RequestNumber,
			Title:         row.Title,
			ClientID:      row.ClientID,
		}
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new request. A duplicate request number surfaces as
// domain.ErrConcurrencyHazard.
func (r *Repo) Create(ctx context.Context, req *domain.Request) error {
	query, args, err := postgres.Builder().
		Insert("requests").
		Columns(requestColumns...).
		Values(
			req.ID, req.RequestNumber, req.Title, string(req.RequestType), string(req.Status), req.DueDate,
			req.AssignedTo, req.ClientID, req.Details, nonNilLinks(req.Links), nonNilStrings(req.ImageURLs),
			req.CreatedBy, req.CreatedAt, req.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert request query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "request", req.ID)
	}
	return nil
}

// Update writes every mutable column of req. request_number, created_by and
// created_at are never written.
func (r *Repo) Update(ctx context.Context, req *domain.Request) error {
	query, args, err := postgres.Builder().
		Update("requests").
		SetMap(map[string]any{
			"title":        req.Title,
			"request_type": string(req.RequestType),
			"status":       string(req.Status),
			"due_date":     req.DueDate,
			"assigned_to":  req.AssignedTo,
			"client_id":    req.ClientID,
			"details":      req.Details,
			"links":        nonNilLinks(req.Links),
			"image_urls":   nonNilStrings(req.ImageURLs),
			"updated_at":   req.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": req.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update request query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "request", req.ID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "request", req.ID)
	}
	return nil
}

const setStatusSQL = `UPDATE requests SET status = $2, updated_at = $3 WHERE id = $1`

// SetStatuses sets status on every request in ids as one pgx batch.
// If any id does not exist, domain.ErrNotFound is returned; callers run this
// inside a transaction so the batch is all-or-nothing.
func (r *Repo) SetStatuses(ctx context.Context, ids []uuid.UUID, status domain.RequestStatus, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, id := range ids {
		batch.Queue(setStatusSQL, id, string(status), at)
	}

	br := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer br.Close()

	for _, id := range ids {
		tag, err := br.Exec()
		if err != nil {
			return postgres.MapError(err, "request", id)
		}
		if tag.RowsAffected() == 0 {
			return postgres.MapError(pgx.ErrNoRows, "request", id)
		}
	}
	return nil
}

// Delete removes a request. Comments go with it via FK cascade; cost entries
// are left in place.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "request", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "request", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func normalizeNotFound(err error) error {
	if pgxscan.NotFound(err) {
		return pgx.ErrNoRows
	}
	return err
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultLimit
	case limit > maxLimit:
		return maxLimit
	}
	return limit
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func nonNilLinks(l []domain.Link) []domain.Link {
	if l == nil {
		return []domain.Link{}
	}
	return l
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
