package repository

import (
	"context"

	"tripledger/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const operationColumns = "id, type, trip_id, user_id, amount_from_trip, amount_from_global, total_amount, created_at"

// OperationRepository reads the append-only financial operation log. Inserts
// happen only inside a ledger transaction; there is no update or delete path.
type OperationRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewOperationRepository(db *pgxpool.Pool, logger *zap.Logger) *OperationRepository {
	return &OperationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *OperationRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]models.FinancialOperation, error) {
	query := squirrel.Select(operationColumns).
		From("financial_operations").
		Where(squirrel.Eq{"trip_id": tripID}).
		OrderBy("created_at ASC", "id ASC").
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

	return scanOperations(rows)
}

func scanOperations(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]models.FinancialOperation, error) {
	var ops []models.FinancialOperation
	for rows.Next() {
		var op models.FinancialOperation
		if err := rows.Scan(
			&op.ID, &op.Type, &op.TripID, &op.UserID,
			&op.AmountFromTrip, &op.AmountFromGlobal, &op.TotalAmount, &op.CreatedAt,
		); err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, rows.Err()
}
