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

type UpsertSnapshot struct {
	UserID       string
	AccountID    uuid.UUID
	SnapshotDate time.Time
	Balance      decimal.Decimal

	// SnapshotID carries the row id back to the enqueuing handler. Upserting
	// an existing (account, date) pair returns the existing row's id.
	SnapshotID uuid.UUID

	IAction
}

func (u *UpsertSnapshot) Perform(ctx context.Context, writer *storage.Writer) error {
	// Snapshots carry no user key of their own; ownership comes from the
	// account, which must belong to the requesting user.
	if _, err := writer.Accounts.FindByID(ctx, u.UserID, u.AccountID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotOwned
		}
		return err
	}

	id, err := writer.Snapshots.Upsert(ctx, &sqlconfig.SnapshotUpsert{
		AccountID:    u.AccountID,
		SnapshotDate: u.SnapshotDate,
		Balance:      u.Balance,
	})
	if err != nil {
		return err
	}

	u.SnapshotID = id
	return nil
}
