package models

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	ID          uuid.UUID `db:"id"`
	Description string    `db:"description"`
	Amount      float64   `db:"amount"`
	Category    string    `db:"category"`
	Date        time.Time `db:"date"`
	TripID      uuid.UUID `db:"trip_id"`
	CreatedAt   time.Time `db:"created_at"`
}
