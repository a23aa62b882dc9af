// Package comment implements request comment persistence using PostgreSQL.
package comment

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

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new comment repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const (
	insertSQL = `
INSERT INTO request_comments (id, request_id, author_id, author_name, text, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	listByRequestSQL = `
SELECT id, request_id, author_id, author_name, text, created_at
  FROM request_comments
 WHERE request_id = $1
 ORDER BY created_at, id`

	getSQL = `
SELECT id, request_id, author_id, author_name, text, created_at
  FROM request_comments
 WHERE id = $1 AND request_id = $2`

	deleteSQL = `DELETE FROM request_comments WHERE id = $1 AND request_id = $2`
)

type commentRow struct {
	ID         uuid.UUID `db:"id"`
	RequestID  uuid.UUID `db:"request_id"`
	AuthorID   uuid.UUID `db:"author_id"`
	AuthorName string    `db:"author_name"`
	Text       string    `db:"text"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r commentRow) toDomain() domain.Comment {
	return domain.Comment(r)
}

// Create inserts a comment. A missing parent request surfaces as
// domain.ErrNotFound through the FK.
func (r *Repo) Create(ctx context.Context, c domain.Comment) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL,
		c.ID, c.RequestID, c.AuthorID, c.AuthorName, c.Text, c.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "comment", c.ID)
	}
	return nil
}

// ListByRequest returns the comments of a request in creation order.
func (r *Repo) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.Comment, error) {
	var rows []commentRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByRequestSQL, requestID); err != nil {
		return nil, postgres.MapError(fmt.Errorf("list comments: %w", err), "request", requestID)
	}

	comments := make([]domain.Comment, len(rows))
	for i, row := range rows {
		comments[i] = row.toDomain()
	}
	return comments, nil
}

// GetByID returns a comment of the given request.
func (r *Repo) GetByID(ctx context.Context, requestID, commentID uuid.UUID) (*domain.Comment, error) {
	var row commentRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getSQL, commentID, requestID)
	if err != nil {
		if pgxscan.NotFound(err) {
			err = pgx.ErrNoRows
		}
		return nil, postgres.MapError(err, "comment", commentID)
	}
	c := row.toDomain()
	return &c, nil
}

// Delete removes a comment of the given request.
func (r *Repo) Delete(ctx context.Context, requestID, commentID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, commentID, requestID)
	if err != nil {
		return postgres.MapError(err, "comment", commentID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "comment", commentID)
	}
	return nil
}
