package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	Name        string `json:"name" required:"true" minLength:"1" doc:"Display name"`
	AccountType string `json:"accountType" doc:"Free-text type tag, e.g. bank or credit"`
	IsLiability bool   `json:"isLiability" doc:"Whether balances count against net worth"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountResponseBody is the response body for creating an account.
type CreateAccountResponseBody struct {
	ID string `json:"id" doc:"Account UUID"`
}

// CreateAccountOutput is the Huma output for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponseBody
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	Operator actionProcessor
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(op actionProcessor) *CreateAccountHandler {
	return &CreateAccountHandler{Operator: op}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/v1/account",
		Summary:       "Create account",
		Description:   "Creates a new account for the authenticated user.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated", err)
	}

	action := &actions.CreateAccount{
		UserID:      userID,
		Name:        input.Body.Name,
		AccountType: input.Body.AccountType,
		IsLiability: input.Body.IsLiability,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create account", err)
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   CreateAccountResponseBody{ID: action.CreatedID.String()},
	}, nil
}
