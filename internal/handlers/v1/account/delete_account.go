package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// DeleteAccountInput is the Huma input for deleting an account.
type DeleteAccountInput struct {
	ID string `path:"id" doc:"Account UUID"`
}

// DeleteAccountOutput is the Huma output for deleting an account.
type DeleteAccountOutput struct {
	Status int
}

// DeleteAccountHandler handles DELETE /v1/account/{id}.
type DeleteAccountHandler struct {
	Operator actionProcessor
}

// NewDeleteAccountHandler creates a new DeleteAccountHandler.
func NewDeleteAccountHandler(op actionProcessor) *DeleteAccountHandler {
	return &DeleteAccountHandler{Operator: op}
}

// Register registers the delete account endpoint with the Huma API.
func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-account",
		Method:        http.MethodDelete,
		Path:          "/v1/account/{id}",
		Summary:       "Delete account",
		Description:   "Deletes one of the authenticated user's accounts along with its snapshots.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *DeleteAccountInput) (*DeleteAccountOutput, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated", err)
	}

	accountID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}

	action := &actions.DeleteAccount{
		UserID:    userID,
		AccountID: accountID,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, actions.ErrNotOwned) {
			return nil, huma.NewError(http.StatusNotFound, "account not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete account", err)
	}

	return &DeleteAccountOutput{Status: http.StatusNoContent}, nil
}
