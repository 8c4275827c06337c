// Package ledger holds the pure financial computations for trip budgets:
// the resumo aggregation and the emergency-fund draw-down planning. Nothing
// in this package touches storage; callers supply a consistent snapshot and
// persist the outcome themselves.
package ledger

import "math"

// Round2 rounds a monetary amount to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Overage returns how far total spending exceeds the planned budget,
// rounded to cents. It is zero when spending is within budget.
func Overage(totalSpent, budget float64) float64 {
	over := Round2(totalSpent - budget)
	if over <= 0 {
		return 0
	}
	return over
}

// DrawPlan describes how an overage would be split across the two reserve
// tiers. Uncovered is the remainder neither tier can absorb.
type DrawPlan struct {
	FromTrip   float64
	FromGlobal float64
	Uncovered  float64
}

// Covered reports whether the plan absorbs the full overage.
func (p DrawPlan) Covered() bool {
	return p.Uncovered == 0
}

// Total returns the combined amount drawn from both tiers.
func (p DrawPlan) Total() float64 {
	return Round2(p.FromTrip + p.FromGlobal)
}

// PlanDraw allocates an overage across the reserves in fixed priority order:
// the trip reserve first, then the user's global reserve for the remainder.
// All amounts are rounded to cents; no balance ever goes negative.
func PlanDraw(overage, tripFund, globalFund float64) DrawPlan {
	overage = Round2(overage)
	if overage <= 0 {
		return DrawPlan{}
	}

	fromTrip := math.Min(tripFund, overage)
	remaining := Round2(overage - fromTrip)

	var fromGlobal float64
	if remaining > 0 {
		fromGlobal = math.Min(globalFund, remaining)
		remaining = Round2(remaining - fromGlobal)
	}

	return DrawPlan{
		FromTrip:   Round2(fromTrip),
		FromGlobal: Round2(fromGlobal),
		Uncovered:  remaining,
	}
}
