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

// UpdateAccountBody is the request body for updating an account. Absent
// fields are left unchanged.
type UpdateAccountBody struct {
	Name        *string `json:"name,omitempty" minLength:"1" doc:"New display name"`
	AccountType *string `json:"accountType,omitempty" doc:"New type tag"`
	IsLiability *bool   `json:"isLiability,omitempty" doc:"New liability flag"`
}

// UpdateAccountInput is the Huma input for updating an account.
type UpdateAccountInput struct {
	ID   string `path:"id" doc:"Account UUID"`
	Body UpdateAccountBody
}

// UpdateAccountOutput is the Huma output for updating an account.
type UpdateAccountOutput struct {
	Status int
}

// UpdateAccountHandler handles PATCH /v1/account/{id}.
type UpdateAccountHandler struct {
	Operator actionProcessor
}

// NewUpdateAccountHandler creates a new UpdateAccountHandler.
func NewUpdateAccountHandler(op actionProcessor) *UpdateAccountHandler {
	return &UpdateAccountHandler{Operator: op}
}

// Register registers the update account endpoint with the Huma API.
func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-account",
		Method:        http.MethodPatch,
		Path:          "/v1/account/{id}",
		Summary:       "Update account",
		Description:   "Renames or retags one of the authenticated user's accounts.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated", err)
	}

	accountID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}

	if input.Body.Name == nil && input.Body.AccountType == nil && input.Body.IsLiability == nil {
		return nil, huma.NewError(http.StatusBadRequest, "at least one field must be provided")
	}

	action := &actions.UpdateAccount{
		UserID:      userID,
		AccountID:   accountID,
		Name:        input.Body.Name,
		AccountType: input.Body.AccountType,
		IsLiability: input.Body.IsLiability,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, actions.ErrNotOwned) {
			return nil, huma.NewError(http.StatusNotFound, "account not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update account", err)
	}

	return &UpdateAccountOutput{Status: http.StatusNoContent}, nil
}
