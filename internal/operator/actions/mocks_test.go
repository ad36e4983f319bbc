package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type mockAccountTable struct {
	mock.Mock
}

var _ sqlconfig.IAccountTable = (*mockAccountTable)(nil)

func (m *mockAccountTable) FindByID(ctx context.Context, userID string, id uuid.UUID) (*sqlconfig.Account, error) {
	args := m.Called(ctx, userID, id)
	account, _ := args.Get(0).(*sqlconfig.Account)
	return account, args.Error(1)
}

func (m *mockAccountTable) Insert(ctx context.Context, create *sqlconfig.AccountCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

func (m *mockAccountTable) List(ctx context.Context, userID string) ([]*sqlconfig.Account, error) {
	args := m.Called(ctx, userID)
	accounts, _ := args.Get(0).([]*sqlconfig.Account)
	return accounts, args.Error(1)
}

func (m *mockAccountTable) Update(ctx context.Context, userID string, id uuid.UUID, update *sqlconfig.AccountUpdate) (int64, error) {
	args := m.Called(ctx, userID, id, update)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAccountTable) Delete(ctx context.Context, userID string, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockSnapshotTable struct {
	mock.Mock
}

var _ sqlconfig.ISnapshotTable = (*mockSnapshotTable)(nil)

func (m *mockSnapshotTable) Upsert(ctx context.Context, upsert *sqlconfig.SnapshotUpsert) (uuid.UUID, error) {
	args := m.Called(ctx, upsert)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

func (m *mockSnapshotTable) ListForAccount(ctx context.Context, userID string, accountID uuid.UUID, from, to time.Time) ([]*sqlconfig.Snapshot, error) {
	args := m.Called(ctx, userID, accountID, from, to)
	snapshots, _ := args.Get(0).([]*sqlconfig.Snapshot)
	return snapshots, args.Error(1)
}

func (m *mockSnapshotTable) ListWithAccounts(ctx context.Context, userID string, from, to time.Time) ([]*sqlconfig.SnapshotWithAccount, error) {
	args := m.Called(ctx, userID, from, to)
	snapshots, _ := args.Get(0).([]*sqlconfig.SnapshotWithAccount)
	return snapshots, args.Error(1)
}

type mockCategoryTable struct {
	mock.Mock
}

var _ sqlconfig.ICategoryTable = (*mockCategoryTable)(nil)

func (m *mockCategoryTable) FindByID(ctx context.Context, userID string, id uuid.UUID) (*sqlconfig.Category, error) {
	args := m.Called(ctx, userID, id)
	category, _ := args.Get(0).(*sqlconfig.Category)
	return category, args.Error(1)
}

func (m *mockCategoryTable) Insert(ctx context.Context, create *sqlconfig.CategoryCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

func (m *mockCategoryTable) List(ctx context.Context, userID string) ([]*sqlconfig.Category, error) {
	args := m.Called(ctx, userID)
	categories, _ := args.Get(0).([]*sqlconfig.Category)
	return categories, args.Error(1)
}

type mockTransactionTable struct {
	mock.Mock
}

var _ sqlconfig.ITransactionTable = (*mockTransactionTable)(nil)

func (m *mockTransactionTable) Insert(ctx context.Context, create *sqlconfig.TransactionCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

func (m *mockTransactionTable) List(ctx context.Context, userID string, filter *sqlconfig.TransactionFilter) ([]*sqlconfig.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	transactions, _ := args.Get(0).([]*sqlconfig.Transaction)
	return transactions, args.Error(1)
}

func (m *mockTransactionTable) ListForPeriod(ctx context.Context, userID string, from, toExclusive time.Time) ([]*sqlconfig.Transaction, error) {
	args := m.Called(ctx, userID, from, toExclusive)
	transactions, _ := args.Get(0).([]*sqlconfig.Transaction)
	return transactions, args.Error(1)
}

func (m *mockTransactionTable) Delete(ctx context.Context, userID string, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(int64), args.Error(1)
}
