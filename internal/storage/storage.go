package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Storage bundles the database handle with per-entity table accessors. Reads
// go through the tables directly; writes go through a Writer so each action
// runs in its own transaction.
type Storage struct {
	db           bob.DB
	Accounts     sqlconfig.IAccountTable
	Snapshots    sqlconfig.ISnapshotTable
	Transactions sqlconfig.ITransactionTable
	Categories   sqlconfig.ICategoryTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		return nil, err
	}

	bobDB := bob.NewDB(db)

	return &Storage{
		db:           bobDB,
		Accounts:     sqlconfig.NewAccountsTable(bobDB),
		Snapshots:    sqlconfig.NewSnapshotsTable(bobDB),
		Transactions: sqlconfig.NewTransactionsTable(bobDB),
		Categories:   sqlconfig.NewCategoriesTable(bobDB),
	}, nil
}

// Write opens a transaction and returns a Writer whose tables are bound to
// it. The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
