package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"celestial-payments/internal/database"
	"celestial-payments/internal/domain"
)

func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("bookings"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(ctr) })

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.EnsureSchema(ctx, db))
	return db
}

func TestBookingRepoSave(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()

	details := json.RawMessage(`{"name":"Asha Rao","serviceName":"Tarot Reading","slot":"2026-09-03T10:00"}`)
	booking := &domain.Booking{
		ID:          uuid.New(),
		Name:        "Asha Rao",
		ServiceName: "Tarot Reading",
		Details:     details,
		CreatedAt:   time.Now().UTC(),
	}

	r := NewBookingRepo(db)
	require.NoError(t, r.Save(ctx, booking))

	var (
		name, serviceName string
		raw               []byte
	)
	err := db.QueryRowContext(ctx,
		"SELECT customer_name, service_name, details FROM bookings WHERE id = $1", booking.ID,
	).Scan(&name, &serviceName, &raw)
	require.NoError(t, err)

	assert.Equal(t, "Asha Rao", name)
	assert.Equal(t, "Tarot Reading", serviceName)
	assert.JSONEq(t, string(details), string(raw))

	assert.Equal(t, "up", database.Health(ctx, db))
}

func TestLogBookingRepoNeverFails(t *testing.T) {
	r := NewLogBookingRepo(zerolog.Nop())
	err := r.Save(context.Background(), &domain.Booking{
		ID:      uuid.New(),
		Name:    "Asha Rao",
		Details: json.RawMessage(`{}`),
	})
	assert.NoError(t, err)
}
