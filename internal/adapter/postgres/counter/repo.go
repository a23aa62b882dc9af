// Package counter implements storage for request number allocation: a single
// locked counter row plus a lookup of the highest number already issued.
package counter

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/worktrack-backend/internal/adapter/postgres"
)

// Name of the counter row used for request numbers.
const requestsCounter = "requests"

// ErrNoTransaction is returned when a counter operation runs outside RunInTx.
// Row locks taken outside a transaction are released immediately.
var ErrNoTransaction = errors.New("counter: operation requires a transaction")

const lockSQL = `
SELECT last_value
  FROM request_number_counter
 WHERE name = $1
   FOR UPDATE`

const highestSQL = `
SELECT request_number
  FROM requests
 ORDER BY length(request_number) DESC, request_number DESC
 LIMIT 1`

const storeSQL = `
UPDATE request_number_counter
   SET last_value = $2
 WHERE name = $1`

// Repo provides counter persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new counter repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Lock reads the counter value and holds its row lock until the surrounding
// transaction ends. A missing counter row is an error, never zero.
func (r *Repo) Lock(ctx context.Context) (int64, error) {
	if !postgres.InTx(ctx) {
		return 0, ErrNoTransaction
	}

	var v int64
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, lockSQL, requestsCounter).Scan(&v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("counter %q row missing: %w", requestsCounter, err)
		}
		return 0, postgres.MapError(fmt.Errorf("lock counter: %w", err), "counter", uuid.Nil)
	}
	return v, nil
}

// Highest returns the highest request number in use, ordered numerically.
// ok is false when no request exists.
func (r *Repo) Highest(ctx context.Context) (number string, ok bool, err error) {
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, highestSQL).Scan(&number)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, postgres.MapError(fmt.Errorf("highest request number: %w", err), "counter", uuid.Nil)
	}
	return number, true, nil
}

// Store persists the counter value. Must be called after Lock in the same
// transaction.
func (r *Repo) Store(ctx context.Context, value int64) error {
	if !postgres.InTx(ctx) {
		return ErrNoTransaction
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, storeSQL, requestsCounter, value)
	if err != nil {
		return postgres.MapError(fmt.Errorf("store counter: %w", err), "counter", uuid.Nil)
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("store counter: %d rows affected", tag.RowsAffected())
	}
	return nil
}
