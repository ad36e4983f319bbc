package actions

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type UpdateAccount struct {
	UserID      string
	AccountID   uuid.UUID
	Name        *string
	AccountType *string
	IsLiability *bool

	IAction
}

func (u *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	affected, err := writer.Accounts.Update(ctx, u.UserID, u.AccountID, &sqlconfig.AccountUpdate{
		Name:        omit.FromPtr(u.Name),
		AccountType: omit.FromPtr(u.AccountType),
		IsLiability: omit.FromPtr(u.IsLiability),
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotOwned
	}
	return nil
}
