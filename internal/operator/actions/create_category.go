package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type CreateCategory struct {
	UserID       string
	Name         string
	CategoryType string

	// CreatedID carries the generated id back to the enqueuing handler.
	CreatedID uuid.UUID

	IAction
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
		UserID:       c.UserID,
		Name:         c.Name,
		CategoryType: c.CategoryType,
	})
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}
