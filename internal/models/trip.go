package models

import (
	"time"

	"github.com/google/uuid"
)

type Trip struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Destination string    `db:"destination"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	// Budget is the planned spend ceiling. Nil means no planned budget.
	Budget            *float64  `db:"budget"`
	EmergencyFund     float64   `db:"emergency_fund"`
	UsedEmergencyFund float64   `db:"used_emergency_fund"`
	UserID            uuid.UUID `db:"user_id"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// PlannedBudget returns the budget treating "no budget" as zero.
func (t *Trip) PlannedBudget() float64 {
	if t.Budget == nil {
		return 0
	}
	return *t.Budget
}
