package repo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"celestial-payments/internal/domain"
)

type BookingRepo interface {
	Save(ctx context.Context, booking *domain.Booking) error
}

type bookingRepo struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) BookingRepo {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Save(ctx context.Context, b *domain.Booking) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO bookings (id, customer_name, service_name, details, created_at) VALUES ($1, $2, $3, $4, $5)",
		b.ID, b.Name, b.ServiceName, b.Details, b.CreatedAt,
	)
	return err
}

// logBookingRepo acknowledges bookings without persisting them. Used when
// no booking database is configured.
type logBookingRepo struct {
	log zerolog.Logger
}

func NewLogBookingRepo(log zerolog.Logger) BookingRepo {
	return &logBookingRepo{log: log}
}

func (r *logBookingRepo) Save(ctx context.Context, b *domain.Booking) error {
	r.log.Info().
		Str("name", b.Name).
		Str("service", b.ServiceName).
		RawJSON("details", b.Details).
		Msg("booking received")
	return nil
}
