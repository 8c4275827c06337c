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

var (
	ErrTripNotFound     = errors.New("trip not found")
	ErrInvalidReference = errors.New("referenced record not found")
	ErrValidation       = errors.New("invalid input")
	ErrNegativeFund     = errors.New("fund balance cannot be negative")
)

type TripService struct {
	tripRepo    *repository.TripRepository
	expenseRepo *repository.ExpenseRepository
	logger      *zap.Logger
}

func NewTripService(tripRepo *repository.TripRepository, expenseRepo *repository.ExpenseRepository, logger *zap.Logger) *TripService {
	return &TripService{
		tripRepo:    tripRepo,
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (s *TripService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTripRequest) (*models.Trip, error) {
	if req.Title == "" || req.Destination == "" {
		return nil, ErrValidation
	}
	if req.Budget != nil && *req.Budget < 0 {
		return nil, ErrValidation
	}
	if req.EmergencyFund < 0 {
		return nil, ErrNegativeFund
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, ErrValidation
	}
	if endDate.Before(startDate) {
		return nil, ErrValidation
	}

	now := time.Now()
	trip := &models.Trip{
		ID:            uuid.New(),
		Title:         req.Title,
		Destination:   req.Destination,
		StartDate:     startDate,
		EndDate:       endDate,
		Budget:        req.Budget,
		EmergencyFund: req.EmergencyFund,
		UserID:        userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		if errors.Is(err, repository.ErrReferentialViolation) {
			return nil, ErrInvalidReference
		}
		s.logger.Error("Failed to create trip", zap.Error(err))
		return nil, err
	}

	return trip, nil
}

// ListWithExpenses returns the caller's trips with their expenses attached.
func (s *TripService) ListWithExpenses(ctx context.Context, userID uuid.UUID) ([]*dto.TripWithExpenses, error) {
	trips, err := s.tripRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.TripWithExpenses, 0, len(trips))
	for _, trip := range trips {
		expenses, err := s.expenseRepo.ListByTrip(ctx, trip.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, &dto.TripWithExpenses{Trip: trip, Expenses: expenses})
	}

	return out, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
