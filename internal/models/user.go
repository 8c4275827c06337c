package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                  uuid.UUID `db:"id"`
	Name                string    `db:"name"`
	Email               string    `db:"email"`
	Password            string    `db:"password"`
	GlobalEmergencyFund float64   `db:"global_emergency_fund"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}
