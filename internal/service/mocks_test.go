package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) Insert(ctx context.Context, create *sqlconfig.TransactionCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockTransactionTable) List(ctx context.Context, userID string, filter *sqlconfig.TransactionFilter) ([]*sqlconfig.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	rows, _ := args.Get(0).([]*sqlconfig.Transaction)
	return rows, args.Error(1)
}

func (m *mockTransactionTable) ListForPeriod(ctx context.Context, userID string, from, toExclusive time.Time) ([]*sqlconfig.Transaction, error) {
	args := m.Called(ctx, userID, from, toExclusive)
	rows, _ := args.Get(0).([]*sqlconfig.Transaction)
	return rows, args.Error(1)
}

func (m *mockTransactionTable) Delete(ctx context.Context, userID string, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockCategoryTable struct {
	mock.Mock
}

func (m *mockCategoryTable) FindByID(ctx context.Context, userID string, id uuid.UUID) (*sqlconfig.Category, error) {
	args := m.Called(ctx, userID, id)
	row, _ := args.Get(0).(*sqlconfig.Category)
	return row, args.Error(1)
}

func (m *mockCategoryTable) Insert(ctx context.Context, create *sqlconfig.CategoryCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockCategoryTable) List(ctx context.Context, userID string) ([]*sqlconfig.Category, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]*sqlconfig.Category)
	return rows, args.Error(1)
}

type mockSnapshotTable struct {
	mock.Mock
}

func (m *mockSnapshotTable) Upsert(ctx context.Context, upsert *sqlconfig.SnapshotUpsert) (uuid.UUID, error) {
	args := m.Called(ctx, upsert)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockSnapshotTable) ListForAccount(ctx context.Context, userID string, accountID uuid.UUID, from, to time.Time) ([]*sqlconfig.Snapshot, error) {
	args := m.Called(ctx, userID, accountID, from, to)
	rows, _ := args.Get(0).([]*sqlconfig.Snapshot)
	return rows, args.Error(1)
}

func (m *mockSnapshotTable) ListWithAccounts(ctx context.Context, userID string, from, to time.Time) ([]*sqlconfig.SnapshotWithAccount, error) {
	args := m.Called(ctx, userID, from, to)
	rows, _ := args.Get(0).([]*sqlconfig.SnapshotWithAccount)
	return rows, args.Error(1)
}
