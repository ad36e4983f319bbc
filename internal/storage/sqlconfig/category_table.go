package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Category represents a category record. Names are unique per user,
// case-insensitively. CategoryType is advisory only; aggregation infers
// income versus expense from transaction amount signs.
type Category struct {
	ID           uuid.UUID `db:"id"`
	UserID       string    `db:"user_id"`
	Name         string    `db:"name"`
	CategoryType string    `db:"category_type"`
	CreatedAt    time.Time `db:"created_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	UserID       string
	Name         string
	CategoryType string
}

// ICategoryTable defines the interface for category storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type ICategoryTable interface {
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error)
	List(ctx context.Context, userID string) ([]*Category, error)
}

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

var _ ICategoryTable = (*CategoriesTable)(nil)

func NewCategoriesTable(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

// FindByID retrieves a category by primary key, scoped to the owning user.
func (t *CategoriesTable) FindByID(ctx context.Context, userID string, id uuid.UUID) (*Category, error) {
	q := psql.Select(
		sm.Columns("id", "user_id", "name", "category_type", "created_at"),
		sm.From("categories"),
		sm.Where(psql.And(
			psql.Quote("user_id").EQ(psql.Arg(userID)),
			psql.Quote("id").EQ(psql.Arg(id)),
		)),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Category]())
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Insert creates a new category and returns its generated ID. The unique
// index on (user_id, lower(name)) rejects case-insensitive duplicates.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("categories", "user_id", "name", "category_type"),
		im.Values(psql.Arg(create.UserID, create.Name, create.CategoryType)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns all of a user's categories ordered by name.
func (t *CategoriesTable) List(ctx context.Context, userID string) ([]*Category, error) {
	q := psql.Select(
		sm.Columns("id", "user_id", "name", "category_type", "created_at"),
		sm.From("categories"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("name").Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Category]())
}
