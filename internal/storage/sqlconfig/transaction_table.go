package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Transaction represents a transaction record. Amount sign carries meaning:
// positive is income, negative is expense.
type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	UserID          string          `db:"user_id"`
	CategoryID      uuid.UUID       `db:"category_id"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     string          `db:"description"`
	CreatedAt       time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID          string
	CategoryID      uuid.UUID
	Amount          decimal.Decimal
	TransactionDate time.Time
	Description     string
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context, userID string, filter *TransactionFilter) ([]*Transaction, error)
	ListForPeriod(ctx context.Context, userID string, from, toExclusive time.Time) ([]*Transaction, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) (int64, error)
}

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

var _ ITransactionTable = (*TransactionsTable)(nil)

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("transactions", "user_id", "category_id", "amount", "transaction_date", "description"),
		im.Values(psql.Arg(
			create.UserID,
			create.CategoryID,
			create.Amount,
			create.TransactionDate,
			create.Description,
		)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns the user's transactions matching the filter, newest first.
// Nil filter returns all of the user's transactions.
func (t *TransactionsTable) List(ctx context.Context, userID string, filter *TransactionFilter) ([]*Transaction, error) {
	whereExprs := []bob.Expression{
		psql.Quote("user_id").EQ(psql.Arg(userID)),
	}
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("id", "user_id", "category_id", "amount", "transaction_date", "description", "created_at"),
		sm.From("transactions"),
	}
	if filter != nil {
		if filter.MaxCreationTime != nil {
			whereExprs = append(whereExprs, psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime)))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.Where(psql.And(whereExprs...)),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}

// ListForPeriod returns the user's transactions with dates in the half-open
// range [from, toExclusive), as consumed by the monthly summary.
func (t *TransactionsTable) ListForPeriod(ctx context.Context, userID string, from, toExclusive time.Time) ([]*Transaction, error) {
	q := psql.Select(
		sm.Columns("id", "user_id", "category_id", "amount", "transaction_date", "description", "created_at"),
		sm.From("transactions"),
		sm.Where(psql.And(
			psql.Quote("user_id").EQ(psql.Arg(userID)),
			psql.Quote("transaction_date").GTE(psql.Arg(from)),
			psql.Quote("transaction_date").LT(psql.Arg(toExclusive)),
		)),
		sm.OrderBy("transaction_date").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Transaction]())
}

// Delete removes a transaction owned by the user.
func (t *TransactionsTable) Delete(ctx context.Context, userID string, id uuid.UUID) (int64, error) {
	q := psql.Delete(
		dm.From("transactions"),
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
