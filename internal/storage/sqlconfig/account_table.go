package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// Account represents an account record.
type Account struct {
	ID          uuid.UUID `db:"id"`
	UserID      string    `db:"user_id"`
	Name        string    `db:"name"`
	AccountType string    `db:"account_type"`
	IsLiability bool      `db:"is_liability"`
	CreatedAt   time.Time `db:"created_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	UserID      string
	Name        string
	AccountType string
	IsLiability bool
}

// AccountUpdate carries the mutable account fields; unset fields are left
// untouched.
type AccountUpdate struct {
	Name        omit.Val[string]
	AccountType omit.Val[string]
	IsLiability omit.Val[bool]
}

// IAccountTable defines the interface for account storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type IAccountTable interface {
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error)
	List(ctx context.Context, userID string) ([]*Account, error)
	Update(ctx context.Context, userID string, id uuid.UUID, update *AccountUpdate) (int64, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) (int64, error)
}

// AccountsTable provides access to the accounts table.
type AccountsTable struct {
	exec bob.Executor
}

var _ IAccountTable = (*AccountsTable)(nil)

// NewAccountsTable creates an AccountsTable bound to the given executor,
// which may be a database handle or an open transaction.
func NewAccountsTable(exec bob.Executor) *AccountsTable {
	return &AccountsTable{exec: exec}
}

// FindByID retrieves an account by primary key, scoped to the owning user.
func (t *AccountsTable) FindByID(ctx context.Context, userID string, id uuid.UUID) (*Account, error) {
	q := psql.Select(
		sm.Columns("id", "user_id", "name", "account_type", "is_liability", "created_at"),
		sm.From("accounts"),
		sm.Where(psql.And(
			psql.Quote("user_id").EQ(psql.Arg(userID)),
			psql.Quote("id").EQ(psql.Arg(id)),
		)),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Account]())
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Insert creates a new account and returns its generated ID.
func (t *AccountsTable) Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("accounts", "user_id", "name", "account_type", "is_liability"),
		im.Values(psql.Arg(create.UserID, create.Name, create.AccountType, create.IsLiability)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns all of a user's accounts ordered by name.
func (t *AccountsTable) List(ctx context.Context, userID string) ([]*Account, error) {
	q := psql.Select(
		sm.Columns("id", "user_id", "name", "account_type", "is_liability", "created_at"),
		sm.From("accounts"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Account]())
}

// Update applies the non-nil fields of update and reports the number of rows
// affected, which is zero when the account does not exist for this user.
func (t *AccountsTable) Update(ctx context.Context, userID string, id uuid.UUID, update *AccountUpdate) (int64, error) {
	mods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("accounts"),
		um.Where(psql.And(
			psql.Quote("user_id").EQ(psql.Arg(userID)),
			psql.Quote("id").EQ(psql.Arg(id)),
		)),
	}
	if update.Name.IsValue() {
		mods = append(mods, um.SetCol("name").ToArg(update.Name.MustGet()))
	}
	if update.AccountType.IsValue() {
		mods = append(mods, um.SetCol("account_type").ToArg(update.AccountType.MustGet()))
	}
	if update.IsLiability.IsValue() {
		mods = append(mods, um.SetCol("is_liability").ToArg(update.IsLiability.MustGet()))
	}

	result, err := bob.Exec(ctx, t.exec, psql.Update(mods...))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Delete removes an account; snapshots cascade at the database level.
func (t *AccountsTable) Delete(ctx context.Context, userID string, id uuid.UUID) (int64, error) {
	q := psql.Delete(
		dm.From("accounts"),
		dm.Where(psql.And(
			psql.Quote("user_id").EQ(psql.Arg(userID)),
			psql.Quote("id").EQ(psql.Arg(id)),
		)),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
