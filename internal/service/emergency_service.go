package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tripledger/internal/events"
	"tripledger/internal/ledger"
	"tripledger/internal/models"
	"tripledger/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FundUsageStatus string

const (
	FundUsageApplied      FundUsageStatus = "APPLIED"
	FundUsageNoOp         FundUsageStatus = "NO_OP"
	FundUsageInsufficient FundUsageStatus = "INSUFFICIENT_FUNDS"
)

// FundUsageResult is the outcome of an allocation request. NoOp and
// InsufficientFunds are valid business states, not errors; callers branch on
// Status.
type FundUsageResult struct {
	Status         FundUsageStatus
	UsedFromTrip   float64
	UsedFromGlobal float64
	Uncovered      float64
	Operation      *models.FinancialOperation
}

// EmergencyFundService performs the atomic draw-down of emergency reserves
// when a trip's spending exceeds its budget. Each call is one transaction:
// either every balance change and the audit record commit together, or
// nothing is written at all.
type EmergencyFundService struct {
	store    repository.Ledger
	notifier *events.Notifier
	logger   *zap.Logger
}

func NewEmergencyFundService(store repository.Ledger, notifier *events.Notifier, logger *zap.Logger) *EmergencyFundService {
	return &EmergencyFundService{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *EmergencyFundService) Use(ctx context.Context, tripID, userID uuid.UUID) (*FundUsageResult, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// The row lock serializes concurrent allocations on the same trip: the
	// second caller blocks here and then sees the already-reduced balances.
	trip, err := tx.TripForUpdate(ctx, tripID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	expenses, err := tx.ExpensesByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	var totalSpent float64
	for _, e := range expenses {
		totalSpent += e.Amount
	}

	overage := ledger.Overage(ledger.Round2(totalSpent), trip.PlannedBudget())
	if overage == 0 {
		return &FundUsageResult{Status: FundUsageNoOp}, nil
	}

	user, err := tx.UserForUpdate(ctx, trip.UserID)
	if err != nil {
		return nil, err
	}

	plan := ledger.PlanDraw(overage, trip.EmergencyFund, user.GlobalEmergencyFund)
	if !plan.Covered() {
		// All-or-nothing: nothing is written when the overage cannot be
		// fully absorbed.
		return &FundUsageResult{
			Status:         FundUsageInsufficient,
			UsedFromTrip:   plan.FromTrip,
			UsedFromGlobal: plan.FromGlobal,
			Uncovered:      plan.Uncovered,
		}, nil
	}

	now := time.Now()
	trip.EmergencyFund = ledger.Round2(trip.EmergencyFund - plan.FromTrip)
	trip.UsedEmergencyFund = ledger.Round2(trip.UsedEmergencyFund + plan.FromTrip)
	trip.UpdatedAt = now
	user.GlobalEmergencyFund = ledger.Round2(user.GlobalEmergencyFund - plan.FromGlobal)
	user.UpdatedAt = now

	if trip.EmergencyFund < 0 || user.GlobalEmergencyFund < 0 {
		return nil, fmt.Errorf("fund balance would go negative: trip=%v global=%v", trip.EmergencyFund, user.GlobalEmergencyFund)
	}

	if err := tx.UpdateTripFunds(ctx, trip); err != nil {
		return nil, err
	}
	if err := tx.UpdateUserFund(ctx, user); err != nil {
		return nil, err
	}

	op := &models.FinancialOperation{
		ID:               uuid.New(),
		Type:             models.OperationEmergencyFundUsage,
		TripID:           trip.ID,
		UserID:           user.ID,
		AmountFromTrip:   plan.FromTrip,
		AmountFromGlobal: plan.FromGlobal,
		TotalAmount:      plan.Total(),
		CreatedAt:        now,
	}
	if err := tx.InsertOperation(ctx, op); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("Emergency fund draw applied",
		zap.String("trip_id", trip.ID.String()),
		zap.Float64("from_trip", plan.FromTrip),
		zap.Float64("from_global", plan.FromGlobal),
	)

	// Best-effort notification after commit; the database row is the audit
	// of record, so a publish failure only warns.
	if err := s.notifier.PublishFundUsage(ctx, op); err != nil {
		s.logger.Warn("Failed to publish fund usage event", zap.Error(err))
	}

	return &FundUsageResult{
		Status:         FundUsageApplied,
		UsedFromTrip:   plan.FromTrip,
		UsedFromGlobal: plan.FromGlobal,
		Operation:      op,
	}, nil
}
