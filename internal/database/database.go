package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"celestial-payments/internal/config"
)

// Open connects to the booking database described by cfg.
func Open(cfg config.DBConfig) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.Schema,
	)

	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the bookings table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS bookings (
			id UUID PRIMARY KEY,
			customer_name TEXT NOT NULL,
			service_name TEXT NOT NULL,
			details JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`)
	return err
}

// Health pings the database with a short deadline and reports up/down.
func Health(ctx context.Context, db *sql.DB) string {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return "down"
	}
	return "up"
}
