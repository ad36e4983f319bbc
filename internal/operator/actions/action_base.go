package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// ErrNotOwned is returned when an action targets an entity the requesting
// user does not own, or that does not exist. The two cases are deliberately
// indistinguishable to the caller.
var ErrNotOwned = errors.New("entity not found for user")
