package actions

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type CreateTransaction struct {
	UserID          string
	CategoryID      uuid.UUID
	Amount          decimal.Decimal
	TransactionDate time.Time
	Description     string

	// CreatedID carries the generated id back to the enqueuing handler.
	CreatedID uuid.UUID

	IAction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if t.Amount.IsZero() {
		return errors.New("transaction amount must not be zero")
	}

	// The category must exist and belong to the requesting user; the foreign
	// key alone does not enforce same-user ownership.
	if _, err := writer.Categories.FindByID(ctx, t.UserID, t.CategoryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotOwned
		}
		return err
	}

	id, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		UserID:          t.UserID,
		CategoryID:      t.CategoryID,
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate,
		Description:     t.Description,
	})
	if err != nil {
		return err
	}

	t.CreatedID = id
	return nil
}
