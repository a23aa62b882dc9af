package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedProfile creates a team member profile.
func SeedProfile(t *testing.T, pool *pgxpool.Pool) domain.Profile {
	t.Helper()

	suffix := uniqueSuffix()
	p := domain.Profile{
		ID:        uuid.New(),
		Email:     "member-" + suffix + "@example.com",
		FullName:  "Member " + suffix,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO profiles (id, email, full_name, created_at) VALUES ($1, $2, $3, $4)`,
		p.ID, p.Email, p.FullName, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}
	return p
}

// SeedClient creates a client owned by createdBy.
func SeedClient(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID) domain.Client {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Client{
		ID:          uuid.New(),
		Company:     "Company " + suffix,
		ContactName: "Contact " + suffix,
		Email:       "contact-" + suffix + "@example.com",
		Phone:       "714-270-8047",
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO clients (id, company, contact_name, email, phone, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Company, c.ContactName, c.Email, c.Phone, c.CreatedBy, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedClient: %v", err)
	}
	return c
}

// SeedRequest inserts a request with a number taken from the shared counter,
// so it never collides with numbers allocated by the code under test.
func SeedRequest(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID, clientID *uuid.UUID) domain.Request {
	t.Helper()
	ctx := context.Background()

	var n int64
	err := pool.QueryRow(ctx,
		`UPDATE request_number_counter
		    SET last_value = GREATEST(last_value, COALESCE((
		        SELECT request_number::bigint FROM requests
		         ORDER BY length(request_number) DESC, request_number DESC LIMIT 1), 0)) + 1
		  WHERE name = 'requests'
		RETURNING last_value`,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: SeedRequest allocate number: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	r := domain.Request{
		ID:            uuid.New(),
		RequestNumber: domain.FormatRequestNumber(n),
		Title:         "Request " + uniqueSuffix(),
		RequestType:   domain.RequestTypeWebDesign,
		Status:        domain.RequestStatusSubmitted,
		ClientID:      clientID,
		Links:         []domain.Link{},
		ImageURLs:     []string{},
		CreatedBy:     createdBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO requests (id, request_number, title, request_type, status, client_id, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		r.ID, r.RequestNumber, r.Title, string(r.RequestType), string(r.Status), r.ClientID, r.CreatedBy, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRequest insert: %v", err)
	}
	return r
}

// SeedCostEntry logs hours by user on requestID for the given day.
func SeedCostEntry(t *testing.T, pool *pgxpool.Pool, requestID uuid.UUID, user domain.Profile, day time.Time, hours string) domain.TimeCostEntry {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	e := domain.TimeCostEntry{
		ID:        uuid.New(),
		RequestID: requestID,
		UserID:    user.ID,
		UserName:  user.DisplayName(),
		Date:      domain.DateOf(day),
		Hours:     decimal.RequireFromString(hours),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO cost_entries (id, request_id, user_id, user_name, date, hours, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8, $9)`,
		e.ID, e.RequestID, e.UserID, e.UserName, e.Date, e.Hours.String(), e.Notes, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCostEntry: %v", err)
	}
	return e
}
