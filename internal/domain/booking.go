package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Booking is a confirmed slot booking posted back by the frontend after
// checkout. The payload is stored as-is; Name and ServiceName are lifted
// out for querying.
type Booking struct {
	ID          uuid.UUID
	Name        string
	ServiceName string
	Details     json.RawMessage
	CreatedAt   time.Time
}
