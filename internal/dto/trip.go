package dto

import "tripledger/internal/models"

type CreateTripRequest struct {
	Title         string   `json:"title" validate:"required"`
	Destination   string   `json:"destination" validate:"required"`
	StartDate     string   `json:"start_date" validate:"required"`
	EndDate       string   `json:"end_date" validate:"required"`
	Budget        *float64 `json:"budget,omitempty"`
	EmergencyFund float64  `json:"emergency_fund" validate:"gte=0"`
}

type TripResponse struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Destination       string            `json:"destination"`
	StartDate         string            `json:"start_date"`
	EndDate           string            `json:"end_date"`
	Budget            *float64          `json:"budget"`
	EmergencyFund     float64           `json:"emergency_fund"`
	UsedEmergencyFund float64           `json:"used_emergency_fund"`
	Expenses          []ExpenseResponse `json:"expenses,omitempty"`
}

// TripWithExpenses pairs a trip record with its expenses for list responses.
type TripWithExpenses struct {
	Trip     *models.Trip
	Expenses []models.Expense
}

func NewTripResponse(trip *models.Trip, expenses []models.Expense) TripResponse {
	resp := TripResponse{
		ID:                trip.ID.String(),
		Title:             trip.Title,
		Destination:       trip.Destination,
		StartDate:         trip.StartDate.Format("2006-01-02"),
		EndDate:           trip.EndDate.Format("2006-01-02"),
		Budget:            trip.Budget,
		EmergencyFund:     trip.EmergencyFund,
		UsedEmergencyFund: trip.UsedEmergencyFund,
	}
	for _, e := range expenses {
		resp.Expenses = append(resp.Expenses, NewExpenseResponse(&e))
	}
	return resp
}
