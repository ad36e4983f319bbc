package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context, userID string, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error) {
	args := m.Called(ctx, userID, cursor)
	txs, _ := args.Get(0).([]service.Transaction)
	next, _ := args.Get(1).(*service.TransactionCursor)
	return txs, next, args.Error(2)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(auth.StaticUserMiddleware("user-1"))
	NewListTransactionsHandler(svc).Register(api)
	return api
}

// -- parseListTransactionsInput unit tests --

func TestParseListTransactionsInput_NoCursor(t *testing.T) {
	input := &ListTransactionsInput{
		Body: ListTransactionsBody{},
	}

	cursor, err := parseListTransactionsInput(input)
	assert.NoError(t, err)
	assert.Nil(t, cursor)
}

func TestParseListTransactionsInput_WithCursor(t *testing.T) {
	cursorMaxTime := "2025-06-15T08:00:00Z"

	input := &ListTransactionsInput{
		Body: ListTransactionsBody{
			Cursor: &ListTransactionsCursor{
				Position:        40,
				Limit:           10,
				MaxCreationTime: cursorMaxTime,
			},
		},
	}

	cursor, err := parseListTransactionsInput(input)
	assert.NoError(t, err)

	expectedMax, _ := time.Parse(time.RFC3339, cursorMaxTime)
	assert.NotNil(t, cursor)
	assert.Equal(t, 40, cursor.Position)
	assert.Equal(t, 10, cursor.Limit)
	assert.Equal(t, expectedMax, cursor.MaxCreationTime)
}

func TestParseListTransactionsInput_InvalidCursorMaxCreationTime(t *testing.T) {
	input := &ListTransactionsInput{
		Body: ListTransactionsBody{
			Cursor: &ListTransactionsCursor{
				Position:        0,
				Limit:           10,
				MaxCreationTime: "not-a-date",
			},
		},
	}

	_, err := parseListTransactionsInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_ListTransactions_SinglePage(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	txID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, "user-1", (*service.TransactionCursor)(nil)).
		Return([]service.Transaction{
			{
				ID:              txID,
				CategoryID:      uuid.Must(uuid.NewV4()),
				Amount:          decimal.RequireFromString("-10.00"),
				TransactionDate: now,
				Description:     "Coffee",
				CreatedAt:       now,
			},
		}, nil, nil)

	api := newListTestAPI(t, mockSvc)
	resp := api.Post("/v1/transaction/list", map[string]any{})

	assert.Equal(t, http.StatusOK, resp.Code)

	var body ListTransactionsResponseBody
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Transactions, 1)
	assert.Equal(t, txID.String(), body.Transactions[0].ID)
	assert.Equal(t, "-10", body.Transactions[0].Amount)
	assert.Equal(t, "2025-06-01", body.Transactions[0].TransactionDate)
	assert.Nil(t, body.NextCursor)
}

func TestHTTP_ListTransactions_WithNextCursor(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, "user-1", mock.Anything).
		Return([]service.Transaction{}, &service.TransactionCursor{
			Position:        20,
			Limit:           20,
			MaxCreationTime: now,
		}, nil)

	api := newListTestAPI(t, mockSvc)
	resp := api.Post("/v1/transaction/list", map[string]any{})

	assert.Equal(t, http.StatusOK, resp.Code)

	var body ListTransactionsResponseBody
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.NotNil(t, body.NextCursor)
	assert.Equal(t, 20, body.NextCursor.Position)
	assert.Equal(t, now.Format(time.RFC3339), body.NextCursor.MaxCreationTime)
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, "user-1", mock.Anything).
		Return(nil, nil, errors.New("database unavailable"))

	api := newListTestAPI(t, mockSvc)
	resp := api.Post("/v1/transaction/list", map[string]any{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
