package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Writer exposes the entity tables bound to a single open transaction.
type Writer struct {
	tx           bob.Tx
	Accounts     sqlconfig.IAccountTable
	Snapshots    sqlconfig.ISnapshotTable
	Transactions sqlconfig.ITransactionTable
	Categories   sqlconfig.ICategoryTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Accounts:     sqlconfig.NewAccountsTable(tx),
		Snapshots:    sqlconfig.NewSnapshotsTable(tx),
		Transactions: sqlconfig.NewTransactionsTable(tx),
		Categories:   sqlconfig.NewCategoriesTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
