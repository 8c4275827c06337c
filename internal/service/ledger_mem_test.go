package service

import (
	"context"
	"sync"

	"tripledger/internal/models"
	"tripledger/internal/repository"

	"github.com/google/uuid"
)

// memLedger is an in-memory repository.Ledger for service tests. One mutex
// held from Begin to Commit/Rollback stands in for the row locks a real
// write transaction takes, and writes are staged so an abandoned transaction
// leaves no trace.
type memLedger struct {
	mu       sync.Mutex
	trips    map[uuid.UUID]models.Trip
	users    map[uuid.UUID]models.User
	expenses map[uuid.UUID][]models.Expense
	ops      map[uuid.UUID][]models.FinancialOperation
}

func newMemLedger() *memLedger {
	return &memLedger{
		trips:    make(map[uuid.UUID]models.Trip),
		users:    make(map[uuid.UUID]models.User),
		expenses: make(map[uuid.UUID][]models.Expense),
		ops:      make(map[uuid.UUID][]models.FinancialOperation),
	}
}

func (l *memLedger) addUser(u models.User) { l.users[u.ID] = u }
func (l *memLedger) addTrip(t models.Trip) { l.trips[t.ID] = t }

func (l *memLedger) addExpense(tripID uuid.UUID, amount float64, category string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.expenses[tripID] = append(l.expenses[tripID], models.Expense{
		ID:       uuid.New(),
		Amount:   amount,
		Category: category,
		TripID:   tripID,
	})
}

func (l *memLedger) tripState(tripID uuid.UUID) models.Trip {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.trips[tripID]
}

func (l *memLedger) userState(userID uuid.UUID) models.User {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.users[userID]
}

func (l *memLedger) operations(tripID uuid.UUID) []models.FinancialOperation {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.FinancialOperation(nil), l.ops[tripID]...)
}

func (l *memLedger) Begin(ctx context.Context) (repository.LedgerTx, error) {
	l.mu.Lock()
	return &memTx{ledger: l}, nil
}

func (l *memLedger) BeginSnapshot(ctx context.Context) (repository.LedgerTx, error) {
	l.mu.Lock()
	return &memTx{ledger: l, readOnly: true}, nil
}

type memTx struct {
	ledger   *memLedger
	readOnly bool
	done     bool

	stagedTrip *models.Trip
	stagedUser *models.User
	stagedOps  []models.FinancialOperation
}

func (t *memTx) release() {
	if !t.done {
		t.done = true
		t.ledger.mu.Unlock()
	}
}

func (t *memTx) Commit(ctx context.Context) error {
	if t.stagedTrip != nil {
		t.ledger.trips[t.stagedTrip.ID] = *t.stagedTrip
	}
	if t.stagedUser != nil {
		t.ledger.users[t.stagedUser.ID] = *t.stagedUser
	}
	for _, op := range t.stagedOps {
		t.ledger.ops[op.TripID] = append(t.ledger.ops[op.TripID], op)
	}
	t.release()
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	t.release()
	return nil
}

func (t *memTx) Trip(ctx context.Context, tripID, userID uuid.UUID) (*models.Trip, error) {
	trip, ok := t.ledger.trips[tripID]
	if !ok || trip.UserID != userID {
		return nil, repository.ErrNotFound
	}
	out := trip
	return &out, nil
}

func (t *memTx) TripForUpdate(ctx context.Context, tripID, userID uuid.UUID) (*models.Trip, error) {
	return t.Trip(ctx, tripID, userID)
}

func (t *memTx) User(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, ok := t.ledger.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := user
	return &out, nil
}

func (t *memTx) UserForUpdate(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return t.User(ctx, userID)
}

func (t *memTx) ExpensesByTrip(ctx context.Context, tripID uuid.UUID) ([]models.Expense, error) {
	return append([]models.Expense(nil), t.ledger.expenses[tripID]...), nil
}

func (t *memTx) OperationsByTrip(ctx context.Context, tripID uuid.UUID) ([]models.FinancialOperation, error) {
	return append([]models.FinancialOperation(nil), t.ledger.ops[tripID]...), nil
}

func (t *memTx) UpdateTripFunds(ctx context.Context, trip *models.Trip) error {
	out := *trip
	t.stagedTrip = &out
	return nil
}

func (t *memTx) UpdateUserFund(ctx context.Context, user *models.User) error {
	out := *user
	t.stagedUser = &out
	return nil
}

func (t *memTx) InsertOperation(ctx context.Context, op *models.FinancialOperation) error {
	t.stagedOps = append(t.stagedOps, *op)
	return nil
}
