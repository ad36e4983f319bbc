package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// AccountService handles account reads. Writes go through the operator.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// GetAccount retrieves one of the user's accounts by ID.
func (s *AccountService) GetAccount(ctx context.Context, userID string, id uuid.UUID) (*Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	account := accountFromStorage(row)
	return &account, nil
}

// ListAccounts returns all of the user's accounts ordered by name.
func (s *AccountService) ListAccounts(ctx context.Context, userID string) ([]Account, error) {
	rows, err := s.storage.Accounts.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	accounts := make([]Account, len(rows))
	for i, row := range rows {
		accounts[i] = accountFromStorage(row)
	}
	return accounts, nil
}
