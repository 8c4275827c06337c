package repository

import (
	"context"

	"tripledger/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Ledger hands out scoped transactions over the financial records. A
// transaction is acquired with Begin (writes, row-locked reads) or
// BeginSnapshot (read-only, repeatable-read) and must end with Commit or
// Rollback; Rollback after Commit is a no-op, so callers defer it on every
// path.
type Ledger interface {
	Begin(ctx context.Context) (LedgerTx, error)
	BeginSnapshot(ctx context.Context) (LedgerTx, error)
}

// LedgerTx is one transaction against the ledger. The ForUpdate readers take
// row locks so concurrent allocations on the same trip serialize instead of
// racing the fund balances.
type LedgerTx interface {
	Trip(ctx context.Context, tripID, userID uuid.UUID) (*models.Trip, error)
	TripForUpdate(ctx context.Context, tripID, userID uuid.UUID) (*models.Trip, error)
	User(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UserForUpdate(ctx context.Context, userID uuid.UUID) (*models.User, error)
	ExpensesByTrip(ctx context.Context, tripID uuid.UUID) ([]models.Expense, error)
	OperationsByTrip(ctx context.Context, tripID uuid.UUID) ([]models.FinancialOperation, error)
	UpdateTripFunds(ctx context.Context, trip *models.Trip) error
	UpdateUserFund(ctx context.Context, user *models.User) error
	InsertOperation(ctx context.Context, op *models.FinancialOperation) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type PgLedger struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

var _ Ledger = (*PgLedger)(nil)

func NewLedger(db *pgxpool.Pool, logger *zap.Logger) *PgLedger {
	return &PgLedger{
		db:     db,
		logger: logger,
	}
}

func (l *PgLedger) Begin(ctx context.Context) (LedgerTx, error) {
	tx, err := l.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, err
	}
	return &pgLedgerTx{tx: tx, logger: l.logger}, nil
}

func (l *PgLedger) BeginSnapshot(ctx context.Context) (LedgerTx, error) {
	tx, err := l.db.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, err
	}
	return &pgLedgerTx{tx: tx, logger: l.logger}, nil
}

type pgLedgerTx struct {
	tx     pgx.Tx
	logger *zap.Logger
}

func (t *pgLedgerTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *pgLedgerTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if err == pgx.ErrTxClosed {
		return nil
	}
	return err
}

func (t *pgLedgerTx) trip(ctx context.Context, tripID, userID uuid.UUID, forUpdate bool) (*models.Trip, error) {
	query := squirrel.Select(tripColumns).
		From("trips").
		Where(squirrel.Eq{"id": tripID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var trip models.Trip
	err = t.tx.QueryRow(ctx, sql, args...).Scan(
		&trip.ID, &trip.Title, &trip.Destination, &trip.StartDate, &trip.EndDate,
		&trip.Budget, &trip.EmergencyFund, &trip.UsedEmergencyFund, &trip.UserID,
		&trip.CreatedAt, &trip.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}

	return &trip, nil
}

func (t *pgLedgerTx) Trip(ctx context.Context, tripID, userID uuid.UUID) (*models.Trip, error) {
	return t.trip(ctx, tripID, userID, false)
}

func (t *pgLedgerTx) TripForUpdate(ctx context.Context, tripID, userID uuid.UUID) (*models.Trip, error) {
	return t.trip(ctx, tripID, userID, true)
}

func (t *pgLedgerTx) user(ctx context.Context, userID uuid.UUID, forUpdate bool) (*models.User, error) {
	query := squirrel.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar)
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user models.User
	err = t.tx.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.GlobalEmergencyFund, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}

	return &user, nil
}

func (t *pgLedgerTx) User(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return t.user(ctx, userID, false)
}

func (t *pgLedgerTx) UserForUpdate(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return t.user(ctx, userID, true)
}

func (t *pgLedgerTx) ExpensesByTrip(ctx context.Context, tripID uuid.UUID) ([]models.Expense, error) {
	query := squirrel.Select(expenseColumns).
		From("expenses").
		Where(squirrel.Eq{"trip_id": tripID}).
		OrderBy("date ASC", "created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := t.tx.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Category, &e.Date, &e.TripID, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

func (t *pgLedgerTx) OperationsByTrip(ctx context.Context, tripID uuid.UUID) ([]models.FinancialOperation, error) {
	query := squirrel.Select(operationColumns).
		From("financial_operations").
		Where(squirrel.Eq{"trip_id": tripID}).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := t.tx.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOperations(rows)
}

func (t *pgLedgerTx) UpdateTripFunds(ctx context.Context, trip *models.Trip) error {
	query := squirrel.Update("trips").
		Set("emergency_fund", trip.EmergencyFund).
		Set("used_emergency_fund", trip.UsedEmergencyFund).
		Set("updated_at", trip.UpdatedAt).
		Where(squirrel.Eq{"id": trip.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := t.tx.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (t *pgLedgerTx) UpdateUserFund(ctx context.Context, user *models.User) error {
	query := squirrel.Update("users").
		Set("global_emergency_fund", user.GlobalEmergencyFund).
		Set("updated_at", user.UpdatedAt).
		Where(squirrel.Eq{"id": user.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := t.tx.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (t *pgLedgerTx) InsertOperation(ctx context.Context, op *models.FinancialOperation) error {
	query := squirrel.Insert("financial_operations").
		Columns("id", "type", "trip_id", "user_id", "amount_from_trip", "amount_from_global", "total_amount", "created_at").
		Values(op.ID, op.Type, op.TripID, op.UserID, op.AmountFromTrip, op.AmountFromGlobal, op.TotalAmount, op.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = t.tx.Exec(ctx, sql, args...)
	return mapError(err)
}
