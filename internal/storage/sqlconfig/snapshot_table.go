package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Snapshot represents an account balance snapshot record.
type Snapshot struct {
	ID           uuid.UUID       `db:"id"`
	AccountID    uuid.UUID       `db:"account_id"`
	SnapshotDate time.Time       `db:"snapshot_date"`
	Balance      decimal.Decimal `db:"balance"`
	CreatedAt    time.Time       `db:"created_at"`
}

// SnapshotWithAccount is a snapshot row joined with the liability flag of its
// owning account, as consumed by the net-worth series.
type SnapshotWithAccount struct {
	AccountID    uuid.UUID       `db:"account_id"`
	SnapshotDate time.Time       `db:"snapshot_date"`
	Balance      decimal.Decimal `db:"balance"`
	IsLiability  bool            `db:"is_liability"`
}

// SnapshotUpsert is the input for creating or overwriting a snapshot. At most
// one snapshot exists per account per calendar date; upserting an existing
// date replaces the balance.
type SnapshotUpsert struct {
	AccountID    uuid.UUID
	SnapshotDate time.Time
	Balance      decimal.Decimal
}

// ISnapshotTable defines the interface for snapshot storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type ISnapshotTable interface {
	Upsert(ctx context.Context, upsert *SnapshotUpsert) (uuid.UUID, error)
	ListForAccount(ctx context.Context, userID string, accountID uuid.UUID, from, to time.Time) ([]*Snapshot, error)
	ListWithAccounts(ctx context.Context, userID string, from, to time.Time) ([]*SnapshotWithAccount, error)
}

// SnapshotsTable provides access to the account_snapshots table.
type SnapshotsTable struct {
	exec bob.Executor
}

var _ ISnapshotTable = (*SnapshotsTable)(nil)

func NewSnapshotsTable(exec bob.Executor) *SnapshotsTable {
	return &SnapshotsTable{exec: exec}
}

// Upsert inserts a snapshot, overwriting the balance when one already exists
// for the same account and date.
func (t *SnapshotsTable) Upsert(ctx context.Context, upsert *SnapshotUpsert) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("account_snapshots", "account_id", "snapshot_date", "balance"),
		im.Values(psql.Arg(upsert.AccountID, upsert.SnapshotDate, upsert.Balance)),
		im.OnConflict("account_id", "snapshot_date").DoUpdate(
			im.SetExcluded("balance"),
		),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// ListForAccount returns an account's snapshots in the closed range
// [from, to], scoped to the owning user via the accounts join.
func (t *SnapshotsTable) ListForAccount(ctx context.Context, userID string, accountID uuid.UUID, from, to time.Time) ([]*Snapshot, error) {
	q := psql.Select(
		sm.Columns(
			psql.Quote("account_snapshots", "id"),
			psql.Quote("account_snapshots", "account_id"),
			psql.Quote("account_snapshots", "snapshot_date"),
			psql.Quote("account_snapshots", "balance"),
			psql.Quote("account_snapshots", "created_at"),
		),
		sm.From("account_snapshots"),
		sm.InnerJoin("accounts").On(
			psql.Quote("accounts", "id").EQ(psql.Quote("account_snapshots", "account_id")),
		),
		sm.Where(psql.And(
			psql.Quote("accounts", "user_id").EQ(psql.Arg(userID)),
			psql.Quote("account_snapshots", "account_id").EQ(psql.Arg(accountID)),
			psql.Quote("account_snapshots", "snapshot_date").GTE(psql.Arg(from)),
			psql.Quote("account_snapshots", "snapshot_date").LTE(psql.Arg(to)),
		)),
		sm.OrderBy(psql.Quote("account_snapshots", "snapshot_date")).Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Snapshot]())
}

// ListWithAccounts returns every snapshot of the user's accounts in the
// closed range [from, to], each joined with the account's liability flag.
func (t *SnapshotsTable) ListWithAccounts(ctx context.Context, userID string, from, to time.Time) ([]*SnapshotWithAccount, error) {
	q := psql.Select(
		sm.Columns(
			psql.Quote("account_snapshots", "account_id"),
			psql.Quote("account_snapshots", "snapshot_date"),
			psql.Quote("account_snapshots", "balance"),
			psql.Quote("accounts", "is_liability"),
		),
		sm.From("account_snapshots"),
		sm.InnerJoin("accounts").On(
			psql.Quote("accounts", "id").EQ(psql.Quote("account_snapshots", "account_id")),
		),
		sm.Where(psql.And(
			psql.Quote("accounts", "user_id").EQ(psql.Arg(userID)),
			psql.Quote("account_snapshots", "snapshot_date").GTE(psql.Arg(from)),
			psql.Quote("account_snapshots", "snapshot_date").LTE(psql.Arg(to)),
		)),
		sm.OrderBy(psql.Quote("account_snapshots", "snapshot_date")).Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*SnapshotWithAccount]())
}
