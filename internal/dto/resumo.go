package dto

import (
	"time"

	"tripledger/internal/ledger"
	"tripledger/internal/models"
)

type OperationResponse struct {
	ID               string  `json:"id"`
	Type             string  `json:"type"`
	AmountFromTrip   float64 `json:"amount_from_trip"`
	AmountFromGlobal float64 `json:"amount_from_global"`
	TotalAmount      float64 `json:"total_amount"`
	CreatedAt        string  `json:"created_at"`
}

func NewOperationResponse(op *models.FinancialOperation) OperationResponse {
	return OperationResponse{
		ID:               op.ID.String(),
		Type:             string(op.Type),
		AmountFromTrip:   op.AmountFromTrip,
		AmountFromGlobal: op.AmountFromGlobal,
		TotalAmount:      op.TotalAmount,
		CreatedAt:        op.CreatedAt.Format(time.RFC3339),
	}
}

type ResumoResponse struct {
	TotalSpent          float64             `json:"total_spent"`
	SpendByCategory     map[string]float64  `json:"spend_by_category"`
	Budget              float64             `json:"budget"`
	TripFund            float64             `json:"trip_emergency_fund"`
	GlobalFund          float64             `json:"global_emergency_fund"`
	TotalFundAvailable  float64             `json:"total_fund_available"`
	TotalCeiling        float64             `json:"total_ceiling"`
	RemainingPlanned    float64             `json:"remaining_planned"`
	RemainingTotal      float64             `json:"remaining_total"`
	PercentUsedOfBudget float64             `json:"percent_used_of_budget"`
	OverBudget          bool                `json:"over_budget"`
	OverageAmount       float64             `json:"overage_amount"`
	OverageCoverable    bool                `json:"overage_coverable"`
	AlertLevel          string              `json:"alert_level"`
	Recommendation      string              `json:"recommendation"`
	OperationCount      int                 `json:"operation_count"`
	OperationTotal      float64             `json:"operation_total"`
	Operations          []OperationResponse `json:"operations"`
}

func NewResumoResponse(r *ledger.Resumo) ResumoResponse {
	resp := ResumoResponse{
		TotalSpent:          r.TotalSpent,
		SpendByCategory:     r.SpendByCategory,
		Budget:              r.Budget,
		TripFund:            r.TripFund,
		GlobalFund:          r.GlobalFund,
		TotalFundAvailable:  r.TotalFundAvailable,
		TotalCeiling:        r.TotalCeiling,
		RemainingPlanned:    r.RemainingPlanned,
		RemainingTotal:      r.RemainingTotal,
		PercentUsedOfBudget: r.PercentUsedOfBudget,
		OverBudget:          r.OverBudget,
		OverageAmount:       r.OverageAmount,
		OverageCoverable:    r.OverageCoverable,
		AlertLevel:          string(r.AlertLevel),
		Recommendation:      r.Recommendation,
		OperationCount:      r.OperationCount,
		OperationTotal:      r.OperationTotal,
		Operations:          make([]OperationResponse, 0, len(r.Operations)),
	}
	for i := range r.Operations {
		resp.Operations = append(resp.Operations, NewOperationResponse(&r.Operations[i]))
	}
	return resp
}

type FundUsageResponse struct {
	Status         string             `json:"status"`
	UsedFromTrip   float64            `json:"used_from_trip"`
	UsedFromGlobal float64            `json:"used_from_global"`
	Uncovered      float64            `json:"uncovered,omitempty"`
	Operation      *OperationResponse `json:"operation,omitempty"`
	Message        string             `json:"message"`
}
