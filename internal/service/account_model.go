package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Account represents an account in the service layer. IsLiability decides
// the balance sign in net-worth sums.
type Account struct {
	ID          uuid.UUID
	Name        string
	AccountType string
	IsLiability bool
	CreatedAt   time.Time
}

// Snapshot represents a balance snapshot in the service layer.
type Snapshot struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	SnapshotDate time.Time
	Balance      decimal.Decimal
	CreatedAt    time.Time
}

func accountFromStorage(row *sqlconfig.Account) Account {
	return Account{
		ID:          row.ID,
		Name:        row.Name,
		AccountType: row.AccountType,
		IsLiability: row.IsLiability,
		CreatedAt:   row.CreatedAt,
	}
}

func snapshotFromStorage(row *sqlconfig.Snapshot) Snapshot {
	return Snapshot{
		ID:           row.ID,
		AccountID:    row.AccountID,
		SnapshotDate: row.SnapshotDate,
		Balance:      row.Balance,
		CreatedAt:    row.CreatedAt,
	}
}
