package category

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// actionProcessor enqueues a write action and blocks until a worker has
// performed it.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Category is the API response model for a category.
// It is used only for responses, not for request bodies.
type Category struct {
	ID           string `json:"id" doc:"Category UUID"`
	Name         string `json:"name" doc:"Display name, unique per user"`
	CategoryType string `json:"categoryType" doc:"Advisory tag: expense or income"`
}
