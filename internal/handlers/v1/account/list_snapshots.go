package account

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListSnapshotsInput is the Huma input for listing an account's snapshots.
type ListSnapshotsInput struct {
	ID   string `path:"id" doc:"Account UUID"`
	From string `query:"from" doc:"Range start, YYYY-MM-DD" example:"2025-01-01"`
	To   string `query:"to" doc:"Range end (inclusive), YYYY-MM-DD" example:"2025-12-31"`
}

// ListSnapshotsResponseBody is the response body for listing snapshots.
type ListSnapshotsResponseBody struct {
	Snapshots []Snapshot `json:"snapshots" doc:"Snapshots in range, ordered by date"`
}

// ListSnapshotsOutput is the Huma output for listing snapshots.
type ListSnapshotsOutput struct {
	Body ListSnapshotsResponseBody
}

// snapshotLister is the interface for listing snapshots.
type snapshotLister interface {
	ListSnapshots(ctx context.Context, userID string, accountID uuid.UUID, from, to time.Time) ([]service.Snapshot, error)
}

// ListSnapshotsHandler handles GET /v1/account/{id}/snapshots.
type ListSnapshotsHandler struct {
	SnapshotService snapshotLister
}

// NewListSnapshotsHandler creates a new ListSnapshotsHandler.
func NewListSnapshotsHandler(svc snapshotLister) *ListSnapshotsHandler {
	return &ListSnapshotsHandler{SnapshotService: svc}
}

// Register registers the list snapshots endpoint with the Huma API.
func (h *ListSnapshotsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-snapshots",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}/snapshots",
		Summary:     "List balance snapshots",
		Description: "Returns an account's balance snapshots within a date range.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListSnapshotsHandler) handle(ctx context.Context, input *ListSnapshotsInput) (*ListSnapshotsOutput, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated", err)
	}

	accountID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}
	from, err := time.ParseInLocation(time.DateOnly, input.From, time.UTC)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid from date", err)
	}
	to, err := time.ParseInLocation(time.DateOnly, input.To, time.UTC)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid to date", err)
	}

	snapshots, err := h.SnapshotService.ListSnapshots(ctx, userID, accountID, from, to)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date range", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list snapshots", err)
	}

	resp := ListSnapshotsResponseBody{
		Snapshots: make([]Snapshot, len(snapshots)),
	}
	for i, snapshot := range snapshots {
		resp.Snapshots[i] = Snapshot{
			ID:           snapshot.ID.String(),
			AccountID:    snapshot.AccountID.String(),
			SnapshotDate: snapshot.SnapshotDate.Format(time.DateOnly),
			Balance:      snapshot.Balance.String(),
		}
	}

	return &ListSnapshotsOutput{Body: resp}, nil
}
