package account

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// actionProcessor enqueues a write action and blocks until a worker has
// performed it.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Account is the API response model for an account.
// It is used only for responses, not for request bodies.
type Account struct {
	ID          string `json:"id" doc:"Account UUID"`
	Name        string `json:"name" doc:"Display name"`
	AccountType string `json:"accountType" doc:"Free-text type tag, e.g. bank or credit"`
	IsLiability bool   `json:"isLiability" doc:"Whether balances count against net worth"`
}

// Snapshot is the API response model for a balance snapshot.
type Snapshot struct {
	ID           string `json:"id" doc:"Snapshot UUID"`
	AccountID    string `json:"accountId" doc:"Account UUID"`
	SnapshotDate string `json:"date" doc:"Snapshot date, YYYY-MM-DD"`
	Balance      string `json:"balance" doc:"Decimal balance"`
}
