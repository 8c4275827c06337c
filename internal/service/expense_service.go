package service

import (
	"context"
	"errors"
	"time"

	"tripledger/internal/dto"
	"tripledger/internal/models"
	"tripledger/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ExpenseService struct {
	expenseRepo *repository.ExpenseRepository
	tripRepo    *repository.TripRepository
	logger      *zap.Logger
}

func NewExpenseService(expenseRepo *repository.ExpenseRepository, tripRepo *repository.TripRepository, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		tripRepo:    tripRepo,
		logger:      logger,
	}
}

// Create records an expense against a trip owned by the caller. Expenses are
// immutable once created.
func (s *ExpenseService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateExpenseRequest) (*models.Expense, error) {
	if req.Description == "" || req.Category == "" {
		return nil, ErrValidation
	}
	if req.Amount <= 0 {
		return nil, ErrValidation
	}

	tripID, err := uuid.Parse(req.TripID)
	if err != nil {
		return nil, ErrValidation
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, ErrValidation
	}

	// Ownership check: a caller may only book expenses on their own trips.
	if _, err := s.tripRepo.GetByOwner(ctx, tripID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	expense := &models.Expense{
		ID:          uuid.New(),
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        date,
		TripID:      tripID,
		CreatedAt:   time.Now(),
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		if errors.Is(err, repository.ErrReferentialViolation) {
			return nil, ErrInvalidReference
		}
		s.logger.Error("Failed to create expense", zap.Error(err))
		return nil, err
	}

	return expense, nil
}

func (s *ExpenseService) ListByTrip(ctx context.Context, userID, tripID uuid.UUID) ([]models.Expense, error) {
	if _, err := s.tripRepo.GetByOwner(ctx, tripID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return s.expenseRepo.ListByTrip(ctx, tripID)
}
