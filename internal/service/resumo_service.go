package service

import (
	"context"
	"errors"

	"tripledger/internal/ledger"
	"tripledger/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResumoService produces the read-only financial summary of a trip. All
// reads happen inside one snapshot transaction so the summary never mixes
// pre- and post-commit state of a concurrent allocation.
type ResumoService struct {
	store  repository.Ledger
	logger *zap.Logger
}

func NewResumoService(store repository.Ledger, logger *zap.Logger) *ResumoService {
	return &ResumoService{
		store:  store,
		logger: logger,
	}
}

func (s *ResumoService) GetResumo(ctx context.Context, tripID, userID uuid.UUID) (*ledger.Resumo, error) {
	tx, err := s.store.BeginSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	trip, err := tx.Trip(ctx, tripID, userID)
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

	owner, err := tx.User(ctx, trip.UserID)
	if err != nil {
		return nil, err
	}

	ops, err := tx.OperationsByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	return ledger.BuildResumo(trip, expenses, owner.GlobalEmergencyFund, ops), nil
}
