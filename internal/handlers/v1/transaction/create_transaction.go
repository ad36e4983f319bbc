package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	CategoryID      string `json:"categoryId" required:"true" doc:"Category UUID"`
	Amount          string `json:"amount" required:"true" doc:"Decimal amount; positive income, negative expense, never zero"`
	TransactionDate string `json:"transactionDate" required:"true" doc:"Transaction date, YYYY-MM-DD"`
	Description     string `json:"description" doc:"Free-text description"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponseBody is the response body for creating a transaction.
type CreateTransactionResponseBody struct {
	ID string `json:"id" doc:"Transaction UUID"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponseBody
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Creates a new transaction for the authenticated user.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated", err)
	}

	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid categoryId", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if amount.IsZero() {
		return nil, huma.NewError(http.StatusBadRequest, "amount must not be zero")
	}
	transactionDate, err := time.ParseInLocation(time.DateOnly, input.Body.TransactionDate, time.UTC)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
	}

	action := &actions.CreateTransaction{
		UserID:          userID,
		CategoryID:      categoryID,
		Amount:          amount,
		TransactionDate: transactionDate,
		Description:     input.Body.Description,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, actions.ErrNotOwned) {
			return nil, huma.NewError(http.StatusNotFound, "category not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponseBody{ID: action.CreatedID.String()},
	}, nil
}
