package repository

import (
	"context"

	"tripledger/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const tripColumns = "id, title, destination, start_date, end_date, budget, emergency_fund, used_emergency_fund, user_id, created_at, updated_at"

type TripRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTripRepository(db *pgxpool.Pool, logger *zap.Logger) *TripRepository {
	return &TripRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TripRepository) Create(ctx context.Context, trip *models.Trip) error {
	query := squirrel.Insert("trips").
		Columns("id", "title", "destination", "start_date", "end_date", "budget", "emergency_fund", "used_emergency_fund", "user_id", "created_at", "updated_at").
		Values(trip.ID, trip.Title, trip.Destination, trip.StartDate, trip.EndDate, trip.Budget, trip.EmergencyFund, trip.UsedEmergencyFund, trip.UserID, trip.CreatedAt, trip.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return mapError(err)
}

// GetByOwner returns the trip only when it belongs to the given user, so a
// caller can never read another user's trip through this path.
func (r *TripRepository) GetByOwner(ctx context.Context, tripID, userID uuid.UUID) (*models.Trip, error) {
	query := squirrel.Select(tripColumns).
		From("trips").
		Where(squirrel.Eq{"id": tripID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var trip models.Trip
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&trip.ID, &trip.Title, &trip.Destination, &trip.StartDate, &trip.EndDate,
		&trip.Budget, &trip.EmergencyFund, &trip.UsedEmergencyFund, &trip.UserID,
		&trip.CreatedAt, &trip.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}

	return &trip, nil
}

func (r *TripRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error) {
	query := squirrel.Select(tripColumns).
		From("trips").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*models.Trip
	for rows.Next() {
		var trip models.Trip
		if err := rows.Scan(
			&trip.ID, &trip.Title, &trip.Destination, &trip.StartDate, &trip.EndDate,
			&trip.Budget, &trip.EmergencyFund, &trip.UsedEmergencyFund, &trip.UserID,
			&trip.CreatedAt, &trip.UpdatedAt,
		); err != nil {
			return nil, err
		}
		trips = append(trips, &trip)
	}

	return trips, rows.Err()
}
