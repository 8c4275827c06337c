package models

import (
	"time"

	"github.com/google/uuid"
)

type OperationType string

const (
	OperationEmergencyFundUsage OperationType = "EMERGENCY_FUND_USAGE"
)

// FinancialOperation is the audit record of one emergency-fund draw-down.
// Rows are append-only: never updated or deleted after insertion.
type FinancialOperation struct {
	ID               uuid.UUID     `db:"id"`
	Type             OperationType `db:"type"`
	TripID           uuid.UUID     `db:"trip_id"`
	UserID           uuid.UUID     `db:"user_id"`
	AmountFromTrip   float64       `db:"amount_from_trip"`
	AmountFromGlobal float64       `db:"amount_from_global"`
	TotalAmount      float64       `db:"total_amount"`
	CreatedAt        time.Time     `db:"created_at"`
}
