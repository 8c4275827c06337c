package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"tripledger/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func ptr(v float64) *float64 { return &v }

func seedTrip(store *memLedger, budget, tripFund, globalFund float64) (uuid.UUID, uuid.UUID) {
	userID := uuid.New()
	tripID := uuid.New()
	now := time.Now()
	store.addUser(models.User{
		ID:                  userID,
		Name:                "ana",
		Email:               "ana@example.com",
		GlobalEmergencyFund: globalFund,
		CreatedAt:           now,
		UpdatedAt:           now,
	})
	store.addTrip(models.Trip{
		ID:            tripID,
		Title:         "Curitiba em junho",
		Destination:   "Curitiba",
		StartDate:     now,
		EndDate:       now.AddDate(0, 0, 5),
		Budget:        ptr(budget),
		EmergencyFund: tripFund,
		UserID:        userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	return tripID, userID
}

func TestUseEmergencyFundNoOpWithinBudget(t *testing.T) {
	store := newMemLedger()
	tripID, userID := seedTrip(store, 200, 60, 100)
	store.addExpense(tripID, 150, "hospedagem")

	svc := NewEmergencyFundService(store, nil, zap.NewNop())

	res, err := svc.Use(context.Background(), tripID, userID)
	if err != nil {
		t.Fatalf("Use: %v", err)
	}
	if res.Status != FundUsageNoOp {
		t.Fatalf("status = %s, want %s", res.Status, FundUsageNoOp)
	}
	if got := store.tripState(tripID); got.EmergencyFund != 60 || got.UsedEmergencyFund != 0 {
		t.Errorf("trip funds changed on no-op: fund=%v used=%v", got.EmergencyFund, got.UsedEmergencyFund)
	}
	if got := store.userState(userID); got.GlobalEmergencyFund != 100 {
		t.Errorf("global fund changed on no-op: %v", got.GlobalEmergencyFund)
	}
	if ops := store.operations(tripID); len(ops) != 0 {
		t.Errorf("no-op recorded %d operations", len(ops))
	}
}

func TestUseEmergencyFundInsufficientLeavesStateUntouched(t *testing.T) {
	store := newMemLedger()
	tripID, userID := seedTrip(store, 100, 30, 10)
	store.addExpense(tripID, 150, "transporte")

	svc := NewEmergencyFundService(store, nil, zap.NewNop())

	res, err := svc.Use(context.Background(), tripID, userID)
	if err != nil {
		t.Fatalf("Use: %v", err)
	}
	if res.Status != FundUsageInsufficient {
		t.Fatalf("status = %s, want %s", res.Status, FundUsageInsufficient)
	}
	if res.Uncovered != 10 {
		t.Errorf("uncovered = %v, want 10", res.Uncovered)
	}
	if got := store.tripState(tripID); got.EmergencyFund != 30 || got.UsedEmergencyFund != 0 {
		t.Errorf("trip funds changed on insufficient: fund=%v used=%v", got.EmergencyFund, got.UsedEmergencyFund)
	}
	if got := store.userState(userID); got.GlobalEmergencyFund != 10 {
		t.Errorf("global fund changed on insufficient: %v", got.GlobalEmergencyFund)
	}
	if ops := store.operations(tripID); len(ops) != 0 {
		t.Errorf("insufficient recorded %d operations", len(ops))
	}
}

func TestUseEmergencyFundAppliedFromTripOnly(t *testing.T) {
	store := newMemLedger()
	tripID, userID := seedTrip(store, 100, 60, 100)
	store.addExpense(tripID, 90, "hospedagem")
	store.addExpense(tripID, 60, "alimentacao")

	svc := NewEmergencyFundService(store, nil, zap.NewNop())

	res, err := svc.Use(context.Background(), tripID, userID)
	if err != nil {
		t.Fatalf("Use: %v", err)
	}
	if res.Status != FundUsageApplied {
		t.Fatalf("status = %s, want %s", res.Status, FundUsageApplied)
	}
	if res.UsedFromTrip != 50 || res.UsedFromGlobal != 0 {
		t.Errorf("draw = %v/%v, want 50/0", res.UsedFromTrip, res.UsedFromGlobal)
	}

	trip := store.tripState(tripID)
	if trip.EmergencyFund != 10 {
		t.Errorf("trip fund = %v, want 10", trip.EmergencyFund)
	}
	if trip.UsedEmergencyFund != 50 {
		t.Errorf("used fund = %v, want 50", trip.UsedEmergencyFund)
	}
	if got := store.userState(userID); got.GlobalEmergencyFund != 100 {
		t.Errorf("global fund = %v, want 100 untouched", got.GlobalEmergencyFund)
	}

	ops := store.operations(tripID)
	if len(ops) != 1 {
		t.Fatalf("got %d operations, want 1", len(ops))
	}
	op := ops[0]
	if op.Type != models.OperationEmergencyFundUsage {
		t.Errorf("operation type = %s", op.Type)
	}
	if op.TotalAmount != 50 || op.AmountFromTrip != 50 || op.AmountFromGlobal != 0 {
		t.Errorf("operation amounts = %v/%v/%v", op.AmountFromTrip, op.AmountFromGlobal, op.TotalAmount)
	}
	if op.TotalAmount != op.AmountFromTrip+op.AmountFromGlobal {
		t.Errorf("total %v does not equal sum of parts", op.TotalAmount)
	}
}

func TestUseEmergencyFundAppliedAcrossBothTiers(t *testing.T) {
	store := newMemLedger()
	tripID, userID := seedTrip(store, 100, 30, 100)
	store.addExpense(tripID, 150, "passeios")

	svc := NewEmergencyFundService(store, nil, zap.NewNop())

	res, err := svc.Use(context.Background(), tripID, userID)
	if err != nil {
		t.Fatalf("Use: %v", err)
	}
	if res.Status != FundUsageApplied {
		t.Fatalf("status = %s, want %s", res.Status, FundUsageApplied)
	}
	if res.UsedFromTrip != 30 || res.UsedFromGlobal != 20 {
		t.Errorf("draw = %v/%v, want 30/20", res.UsedFromTrip, res.UsedFromGlobal)
	}

	trip := store.tripState(tripID)
	if trip.EmergencyFund != 0 || trip.UsedEmergencyFund != 30 {
		t.Errorf("trip funds = %v/%v, want 0/30", trip.EmergencyFund, trip.UsedEmergencyFund)
	}
	if got := store.userState(userID); got.GlobalEmergencyFund != 80 {
		t.Errorf("global fund = %v, want 80", got.GlobalEmergencyFund)
	}
	if ops := store.operations(tripID); len(ops) != 1 || ops[0].TotalAmount != 50 {
		t.Errorf("operations = %+v, want one with total 50", ops)
	}
}

func TestUseEmergencyFundTripNotFound(t *testing.T) {
	store := newMemLedger()
	tripID, _ := seedTrip(store, 100, 10, 10)

	svc := NewEmergencyFundService(store, nil, zap.NewNop())

	if _, err := svc.Use(context.Background(), uuid.New(), uuid.New()); err != ErrTripNotFound {
		t.Errorf("missing trip: err = %v, want ErrTripNotFound", err)
	}
	// A trip owned by someone else is indistinguishable from a missing one.
	if _, err := svc.Use(context.Background(), tripID, uuid.New()); err != ErrTripNotFound {
		t.Errorf("foreign trip: err = %v, want ErrTripNotFound", err)
	}
}

func TestUseEmergencyFundUsedNeverDecreases(t *testing.T) {
	store := newMemLedger()
	tripID, userID := seedTrip(store, 100, 200, 0)
	store.addExpense(tripID, 130, "hospedagem")

	svc := NewEmergencyFundService(store, nil, zap.NewNop())

	res, err := svc.Use(context.Background(), tripID, userID)
	if err != nil || res.Status != FundUsageApplied {
		t.Fatalf("first draw: res=%+v err=%v", res, err)
	}
	if got := store.tripState(tripID).UsedEmergencyFund; got != 30 {
		t.Fatalf("used after first draw = %v, want 30", got)
	}

	store.addExpense(tripID, 25, "alimentacao")
	res, err = svc.Use(context.Background(), tripID, userID)
	if err != nil || res.Status != FundUsageApplied {
		t.Fatalf("second draw: res=%+v err=%v", res, err)
	}
	if got := store.tripState(tripID).UsedEmergencyFund; got != 55 {
		t.Errorf("used after second draw = %v, want 55", got)
	}
	if got := store.tripState(tripID).EmergencyFund; got != 145 {
		t.Errorf("fund after second draw = %v, want 145", got)
	}
	if ops := store.operations(tripID); len(ops) != 2 {
		t.Errorf("got %d operations, want 2", len(ops))
	}
}

func TestUseEmergencyFundConcurrentCallsSerialize(t *testing.T) {
	store := newMemLedger()
	// Funds cover the overage exactly once; the loser of the race must see
	// the depleted balances and report insufficient funds.
	tripID, userID := seedTrip(store, 100, 50, 0)
	store.addExpense(tripID, 150, "transporte")

	svc := NewEmergencyFundService(store, nil, zap.NewNop())

	results := make([]*FundUsageResult, 2)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.Use(context.Background(), tripID, userID)
		}(i)
	}
	wg.Wait()

	var applied, insufficient int
	for i := 0; i < 2; i++ {
		if errs[i] != nil {
			t.Fatalf("call %d: %v", i, errs[i])
		}
		switch results[i].Status {
		case FundUsageApplied:
			applied++
		case FundUsageInsufficient:
			insufficient++
		}
	}
	if applied != 1 || insufficient != 1 {
		t.Fatalf("applied=%d insufficient=%d, want exactly one of each", applied, insufficient)
	}

	trip := store.tripState(tripID)
	if trip.EmergencyFund != 0 || trip.UsedEmergencyFund != 50 {
		t.Errorf("trip funds = %v/%v, want 0/50", trip.EmergencyFund, trip.UsedEmergencyFund)
	}
	if ops := store.operations(tripID); len(ops) != 1 {
		t.Errorf("got %d operations, want exactly 1", len(ops))
	}
}
