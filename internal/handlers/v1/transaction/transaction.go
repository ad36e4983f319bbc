package transaction

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// actionProcessor enqueues a write action and blocks until a worker has
// performed it.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	CategoryID      string `json:"categoryId" doc:"Category UUID"`
	Amount          string `json:"amount" doc:"Decimal amount; positive income, negative expense"`
	TransactionDate string `json:"transactionDate" doc:"Transaction date, YYYY-MM-DD"`
	Description     string `json:"description" doc:"Free-text description"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 creation time"`
}
