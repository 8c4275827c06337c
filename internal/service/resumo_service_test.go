package service

import (
	"context"
	"reflect"
	"testing"

	"tripledger/internal/ledger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestGetResumoAggregatesByCategory(t *testing.T) {
	store := newMemLedger()
	tripID, userID := seedTrip(store, 500, 100, 200)
	store.addExpense(tripID, 180, "hospedagem")
	store.addExpense(tripID, 70.5, "alimentacao")
	store.addExpense(tripID, 29.5, "alimentacao")

	svc := NewResumoService(store, zap.NewNop())

	res, err := svc.GetResumo(context.Background(), tripID, userID)
	if err != nil {
		t.Fatalf("GetResumo: %v", err)
	}
	if res.TotalSpent != 280 {
		t.Errorf("total spent = %v, want 280", res.TotalSpent)
	}
	if res.SpendByCategory["hospedagem"] != 180 || res.SpendByCategory["alimentacao"] != 100 {
		t.Errorf("spend by category = %v", res.SpendByCategory)
	}
	if res.TotalFundAvailable != 300 || res.TotalCeiling != 800 {
		t.Errorf("fund=%v ceiling=%v, want 300/800", res.TotalFundAvailable, res.TotalCeiling)
	}
	if res.PercentUsedOfBudget != 56 {
		t.Errorf("percent used = %v, want 56", res.PercentUsedOfBudget)
	}
	if res.AlertLevel != ledger.AlertSafe {
		t.Errorf("alert = %s, want %s", res.AlertLevel, ledger.AlertSafe)
	}
}

func TestGetResumoIsIdempotent(t *testing.T) {
	store := newMemLedger()
	tripID, userID := seedTrip(store, 100, 30, 10)
	store.addExpense(tripID, 95, "transporte")

	svc := NewResumoService(store, zap.NewNop())

	first, err := svc.GetResumo(context.Background(), tripID, userID)
	if err != nil {
		t.Fatalf("GetResumo: %v", err)
	}
	second, err := svc.GetResumo(context.Background(), tripID, userID)
	if err != nil {
		t.Fatalf("GetResumo: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated summaries differ:\n%+v\n%+v", first, second)
	}
	if got := store.tripState(tripID); got.EmergencyFund != 30 || got.UsedEmergencyFund != 0 {
		t.Errorf("summary mutated trip funds: %v/%v", got.EmergencyFund, got.UsedEmergencyFund)
	}
}

func TestGetResumoReflectsFundDraws(t *testing.T) {
	store := newMemLedger()
	tripID, userID := seedTrip(store, 100, 60, 40)
	store.addExpense(tripID, 150, "hospedagem")

	emergency := NewEmergencyFundService(store, nil, zap.NewNop())
	resumo := NewResumoService(store, zap.NewNop())

	if res, err := emergency.Use(context.Background(), tripID, userID); err != nil || res.Status != FundUsageApplied {
		t.Fatalf("draw: res=%+v err=%v", res, err)
	}

	got, err := resumo.GetResumo(context.Background(), tripID, userID)
	if err != nil {
		t.Fatalf("GetResumo: %v", err)
	}
	if got.TripFund != 10 || got.GlobalFund != 40 {
		t.Errorf("funds = %v/%v, want 10/40", got.TripFund, got.GlobalFund)
	}
	if got.OperationCount != 1 || got.OperationTotal != 50 {
		t.Errorf("operations = %d total %v, want 1 total 50", got.OperationCount, got.OperationTotal)
	}
	if !got.OverBudget {
		t.Errorf("expected over budget after draw")
	}
	if got.AlertLevel != ledger.AlertWarning {
		t.Errorf("alert = %s, want %s", got.AlertLevel, ledger.AlertWarning)
	}
}

func TestGetResumoTripNotFound(t *testing.T) {
	store := newMemLedger()
	tripID, _ := seedTrip(store, 100, 10, 10)

	svc := NewResumoService(store, zap.NewNop())

	if _, err := svc.GetResumo(context.Background(), uuid.New(), uuid.New()); err != ErrTripNotFound {
		t.Errorf("missing trip: err = %v, want ErrTripNotFound", err)
	}
	if _, err := svc.GetResumo(context.Background(), tripID, uuid.New()); err != ErrTripNotFound {
		t.Errorf("foreign trip: err = %v, want ErrTripNotFound", err)
	}
}
