package ledger

import (
	"tripledger/internal/models"
)

// AlertLevel classifies how healthy a trip's finances are. The tiers are
// ordered: Critical outranks Warning outranks Safe.
type AlertLevel string

const (
	AlertSafe     AlertLevel = "SAFE"
	AlertWarning  AlertLevel = "WARNING"
	AlertCritical AlertLevel = "CRITICAL"
)

const (
	RecommendationCritical     = "Spending has exceeded even the available emergency coverage. Review the trip immediately."
	RecommendationUseEmergency = "Planned budget exceeded. Drawing on the emergency fund is an option."
	RecommendationNearLimit    = "Spending is nearing the budget limit. Watch the next expenses closely."
	RecommendationUnderControl = "Budget under control."
)

// Resumo is the read-only financial summary of a trip. It is a pure function
// of the snapshot it was built from: the same inputs always produce an
// identical value.
type Resumo struct {
	TotalSpent          float64
	SpendByCategory     map[string]float64
	Budget              float64
	TripFund            float64
	GlobalFund          float64
	TotalFundAvailable  float64
	TotalCeiling        float64
	RemainingPlanned    float64
	RemainingTotal      float64
	PercentUsedOfBudget float64
	OverBudget          bool
	OverageAmount       float64
	OverageCoverable    bool
	AlertLevel          AlertLevel
	Recommendation      string
	OperationCount      int
	OperationTotal      float64
	Operations          []models.FinancialOperation
}

// BuildResumo computes the financial summary for a trip from a consistent
// snapshot: the trip record, its expenses, the owner's global fund balance
// and the trip's prior financial operations (oldest first).
func BuildResumo(trip *models.Trip, expenses []models.Expense, globalFund float64, ops []models.FinancialOperation) *Resumo {
	var totalSpent float64
	byCategory := make(map[string]float64, len(expenses))
	for _, e := range expenses {
		totalSpent += e.Amount
		byCategory[e.Category] += e.Amount
	}
	totalSpent = Round2(totalSpent)
	for cat, amount := range byCategory {
		byCategory[cat] = Round2(amount)
	}

	budget := trip.PlannedBudget()
	tripFund := trip.EmergencyFund
	fundAvailable := Round2(tripFund + globalFund)
	ceiling := Round2(budget + fundAvailable)

	var percentUsed float64
	if budget > 0 {
		percentUsed = Round2(totalSpent / budget * 100)
	}

	overBudget := totalSpent > budget
	overage := Overage(totalSpent, budget)
	coverable := overage <= fundAvailable

	level := AlertSafe
	switch {
	case totalSpent > ceiling:
		level = AlertCritical
	case overBudget:
		level = AlertWarning
	}

	recommendation := RecommendationUnderControl
	switch {
	case totalSpent > ceiling:
		recommendation = RecommendationCritical
	case overBudget && coverable:
		recommendation = RecommendationUseEmergency
	case percentUsed >= 80:
		recommendation = RecommendationNearLimit
	}

	var opTotal float64
	for _, op := range ops {
		opTotal += op.TotalAmount
	}

	return &Resumo{
		TotalSpent:          totalSpent,
		SpendByCategory:     byCategory,
		Budget:              budget,
		TripFund:            tripFund,
		GlobalFund:          globalFund,
		TotalFundAvailable:  fundAvailable,
		TotalCeiling:        ceiling,
		RemainingPlanned:    Round2(budget - totalSpent),
		RemainingTotal:      Round2(ceiling - totalSpent),
		PercentUsedOfBudget: percentUsed,
		OverBudget:          overBudget,
		OverageAmount:       overage,
		OverageCoverable:    coverable,
		AlertLevel:          level,
		Recommendation:      recommendation,
		OperationCount:      len(ops),
		OperationTotal:      Round2(opTotal),
		Operations:          ops,
	}
}
