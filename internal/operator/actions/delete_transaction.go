package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

type DeleteTransaction struct {
	UserID        string
	TransactionID uuid.UUID

	IAction
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	affected, err := writer.Transactions.Delete(ctx, d.UserID, d.TransactionID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotOwned
	}
	return nil
}
