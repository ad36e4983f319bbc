package service

import (
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Account     *AccountService
	Snapshot    *SnapshotService
	Transaction *TransactionService
	Category    *CategoryService
	Summary     *SummaryService
	NetWorth    *NetWorthService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Account:     NewAccountService(store),
		Snapshot:    NewSnapshotService(store),
		Transaction: NewTransactionService(store),
		Category:    NewCategoryService(store),
		Summary:     NewSummaryService(store),
		NetWorth:    NewNetWorthService(store),
	}
}
