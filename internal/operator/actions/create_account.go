package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type CreateAccount struct {
	UserID      string
	Name        string
	AccountType string
	IsLiability bool

	// CreatedID carries the generated id back to the enqueuing handler.
	CreatedID uuid.UUID

	IAction
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Accounts.Insert(ctx, &sqlconfig.AccountCreate{
		UserID:      c.UserID,
		Name:        c.Name,
		AccountType: c.AccountType,
		IsLiability: c.IsLiability,
	})
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}
