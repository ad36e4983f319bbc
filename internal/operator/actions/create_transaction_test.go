package actions

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

func TestCreateTransaction_ZeroAmountRejected(t *testing.T) {
	mockCategories := new(mockCategoryTable)
	mockTransactions := new(mockTransactionTable)

	action := &CreateTransaction{
		UserID:          "user-1",
		CategoryID:      uuid.Must(uuid.NewV4()),
		Amount:          decimal.Zero,
		TransactionDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	err := action.Perform(context.Background(), &storage.Writer{
		Categories:   mockCategories,
		Transactions: mockTransactions,
	})

	assert.Error(t, err)
	mockCategories.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
	mockTransactions.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateTransaction_CategoryNotOwned(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())

	mockCategories := new(mockCategoryTable)
	mockCategories.On("FindByID", mock.Anything, "user-1", categoryID).
		Return(nil, sql.ErrNoRows)
	mockTransactions := new(mockTransactionTable)

	action := &CreateTransaction{
		UserID:          "user-1",
		CategoryID:      categoryID,
		Amount:          decimal.RequireFromString("-25.00"),
		TransactionDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	err := action.Perform(context.Background(), &storage.Writer{
		Categories:   mockCategories,
		Transactions: mockTransactions,
	})

	assert.ErrorIs(t, err, ErrNotOwned)
	mockTransactions.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateTransaction_CategoryLookupFailurePropagates(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())
	lookupErr := errors.New("transaction aborted")

	mockCategories := new(mockCategoryTable)
	mockCategories.On("FindByID", mock.Anything, "user-1", categoryID).
		Return(nil, lookupErr)
	mockTransactions := new(mockTransactionTable)

	action := &CreateTransaction{
		UserID:          "user-1",
		CategoryID:      categoryID,
		Amount:          decimal.RequireFromString("-25.00"),
		TransactionDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	err := action.Perform(context.Background(), &storage.Writer{
		Categories:   mockCategories,
		Transactions: mockTransactions,
	})

	assert.ErrorIs(t, err, lookupErr)
	assert.NotErrorIs(t, err, ErrNotOwned)
	mockTransactions.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateTransaction_CarriesCreatedIDBack(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())
	createdID := uuid.Must(uuid.NewV4())

	mockCategories := new(mockCategoryTable)
	mockCategories.On("FindByID", mock.Anything, "user-1", categoryID).
		Return(&sqlconfig.Category{ID: categoryID, UserID: "user-1"}, nil)
	mockTransactions := new(mockTransactionTable)
	mockTransactions.On("Insert", mock.Anything, mock.MatchedBy(func(create *sqlconfig.TransactionCreate) bool {
		return create.UserID == "user-1" && create.CategoryID == categoryID
	})).Return(createdID, nil)

	action := &CreateTransaction{
		UserID:          "user-1",
		CategoryID:      categoryID,
		Amount:          decimal.RequireFromString("-25.00"),
		TransactionDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Description:     "Groceries",
	}

	err := action.Perform(context.Background(), &storage.Writer{
		Categories:   mockCategories,
		Transactions: mockTransactions,
	})

	assert.NoError(t, err)
	assert.Equal(t, createdID, action.CreatedID)
}
