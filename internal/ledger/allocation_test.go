package ledger

import "testing"

func TestPlanDrawNothingToCover(t *testing.T) {
	plan := PlanDraw(0, 500, 500)
	if plan.FromTrip != 0 || plan.FromGlobal != 0 || plan.Uncovered != 0 {
		t.Fatalf("expected empty plan, got %+v", plan)
	}
	if !plan.Covered() {
		t.Fatal("empty plan should count as covered")
	}
}

func TestPlanDrawTripFundFirst(t *testing.T) {
	// Trip fund alone covers the overage; global fund stays untouched.
	plan := PlanDraw(50, 60, 100)
	if plan.FromTrip != 50 {
		t.Errorf("FromTrip = %v, want 50", plan.FromTrip)
	}
	if plan.FromGlobal != 0 {
		t.Errorf("FromGlobal = %v, want 0", plan.FromGlobal)
	}
	if !plan.Covered() {
		t.Errorf("plan should be covered, uncovered = %v", plan.Uncovered)
	}
}

func TestPlanDrawSpillsToGlobal(t *testing.T) {
	plan := PlanDraw(50, 30, 100)
	if plan.FromTrip != 30 || plan.FromGlobal != 20 {
		t.Fatalf("got trip=%v global=%v, want 30/20", plan.FromTrip, plan.FromGlobal)
	}
	if plan.Total() != 50 {
		t.Errorf("Total = %v, want 50", plan.Total())
	}
}

func TestPlanDrawInsufficient(t *testing.T) {
	// budget=100, spent=150 -> overage 50; funds 30+10 leave 10 uncovered.
	plan := PlanDraw(50, 30, 10)
	if plan.FromTrip != 30 || plan.FromGlobal != 10 {
		t.Fatalf("got trip=%v global=%v, want 30/10", plan.FromTrip, plan.FromGlobal)
	}
	if plan.Uncovered != 10 {
		t.Errorf("Uncovered = %v, want 10", plan.Uncovered)
	}
	if plan.Covered() {
		t.Error("plan should not be covered")
	}
}

func TestPlanDrawNeverExceedsBalances(t *testing.T) {
	cases := []struct {
		overage, tripFund, globalFund float64
	}{
		{10, 0, 0},
		{100, 33.33, 33.33},
		{0.01, 0, 0},
		{1234.56, 1000, 5000},
		{75.5, 75.5, 0},
	}
	for _, c := range cases {
		plan := PlanDraw(c.overage, c.tripFund, c.globalFund)
		if plan.FromTrip > c.tripFund {
			t.Errorf("PlanDraw(%v, %v, %v): FromTrip %v exceeds trip fund", c.overage, c.tripFund, c.globalFund, plan.FromTrip)
		}
		if plan.FromGlobal > c.globalFund {
			t.Errorf("PlanDraw(%v, %v, %v): FromGlobal %v exceeds global fund", c.overage, c.tripFund, c.globalFund, plan.FromGlobal)
		}
		if total := Round2(plan.FromTrip + plan.FromGlobal + plan.Uncovered); total != Round2(c.overage) {
			t.Errorf("PlanDraw(%v, %v, %v): parts sum to %v", c.overage, c.tripFund, c.globalFund, total)
		}
	}
}

func TestOverage(t *testing.T) {
	cases := []struct {
		spent, budget, want float64
	}{
		{150, 200, 0},
		{200, 200, 0},
		{150, 100, 50},
		{100.006, 100, 0.01},
		{150, 0, 150},
	}
	for _, c := range cases {
		if got := Overage(c.spent, c.budget); got != c.want {
			t.Errorf("Overage(%v, %v) = %v, want %v", c.spent, c.budget, got, c.want)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(10.006); got != 10.01 {
		t.Errorf("Round2(10.006) = %v, want 10.01", got)
	}
	if got := Round2(10.004); got != 10 {
		t.Errorf("Round2(10.004) = %v, want 10", got)
	}
}
