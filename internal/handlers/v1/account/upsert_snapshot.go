package account

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// UpsertSnapshotBody is the request body for recording a balance snapshot.
type UpsertSnapshotBody struct {
	Date    string `json:"date" required:"true" doc:"Snapshot date, YYYY-MM-DD"`
	Balance string `json:"balance" required:"true" doc:"Decimal balance"`
}

// UpsertSnapshotInput is the Huma input for recording a balance snapshot.
type UpsertSnapshotInput struct {
	ID   string `path:"id" doc:"Account UUID"`
	Body UpsertSnapshotBody
}

// UpsertSnapshotResponseBody is the response body for recording a snapshot.
type UpsertSnapshotResponseBody struct {
	ID string `json:"id" doc:"Snapshot UUID"`
}

// UpsertSnapshotOutput is the Huma output for recording a snapshot.
type UpsertSnapshotOutput struct {
	Body UpsertSnapshotResponseBody
}

// UpsertSnapshotHandler handles PUT /v1/account/{id}/snapshot.
type UpsertSnapshotHandler struct {
	Operator actionProcessor
}

// NewUpsertSnapshotHandler creates a new UpsertSnapshotHandler.
func NewUpsertSnapshotHandler(op actionProcessor) *UpsertSnapshotHandler {
	return &UpsertSnapshotHandler{Operator: op}
}

// Register registers the snapshot upsert endpoint with the Huma API.
func (h *UpsertSnapshotHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "upsert-snapshot",
		Method:      http.MethodPut,
		Path:        "/v1/account/{id}/snapshot",
		Summary:     "Record balance snapshot",
		Description: "Records an account's balance for a date, overwriting any existing snapshot for that date.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *UpsertSnapshotHandler) handle(ctx context.Context, input *UpsertSnapshotInput) (*UpsertSnapshotOutput, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated", err)
	}

	accountID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}
	snapshotDate, err := time.ParseInLocation(time.DateOnly, input.Body.Date, time.UTC)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}
	balance, err := decimal.NewFromString(input.Body.Balance)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid balance", err)
	}

	action := &actions.UpsertSnapshot{
		UserID:       userID,
		AccountID:    accountID,
		SnapshotDate: snapshotDate,
		Balance:      balance,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, actions.ErrNotOwned) {
			return nil, huma.NewError(http.StatusNotFound, "account not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to record snapshot", err)
	}

	return &UpsertSnapshotOutput{
		Body: UpsertSnapshotResponseBody{ID: action.SnapshotID.String()},
	}, nil
}
