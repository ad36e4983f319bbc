package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

type DeleteAccount struct {
	UserID    string
	AccountID uuid.UUID

	IAction
}

// Perform removes the account; its snapshots cascade at the database level.
func (d *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	affected, err := writer.Accounts.Delete(ctx, d.UserID, d.AccountID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotOwned
	}
	return nil
}
