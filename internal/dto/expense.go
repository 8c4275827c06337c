package dto

import "tripledger/internal/models"

type CreateExpenseRequest struct {
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	TripID      string  `json:"trip_id" validate:"required,uuid"`
}

type ExpenseResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	TripID      string  `json:"trip_id"`
}

func NewExpenseResponse(e *models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date.Format("2006-01-02"),
		TripID:      e.TripID.String(),
	}
}
