// Package numbering allocates sequential request numbers.
package numbering

import (
	"context"
	"fmt"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

type counterStore interface {
	Lock(ctx context.Context) (int64, error)
	Highest(ctx context.Context) (string, bool, error)
	Store(ctx context.Context, value int64) error
}

// Allocator hands out request numbers. Next must run inside the transaction
// that inserts the request, so the counter lock is held until commit.
type Allocator struct {
	counter counterStore
}

// NewAllocator creates a new Allocator.
func NewAllocator(counter counterStore) *Allocator {
	return &Allocator{counter: counter}
}

// Next returns the next request number: one past the larger of the stored
// counter and the highest number in use. Every read failure is returned;
// there is no default.
func (a *Allocator) Next(ctx context.Context) (string, error) {
	last, err := a.counter.Lock(ctx)
	if err != nil {
		return "", fmt.Errorf("lock request counter: %w", err)
	}

	highest, ok, err := a.counter.Highest(ctx)
	if err != nil {
		return "", fmt.Errorf("read highest request number: %w", err)
	}
	if ok {
		n, err := domain.ParseRequestNumber(highest)
		if err != nil {
			return "", err
		}
		last = max(last, n)
	}

	next := last + 1
	if err := a.counter.Store(ctx, next); err != nil {
		return "", fmt.Errorf("store request counter: %w", err)
	}
	return domain.FormatRequestNumber(next), nil
}
