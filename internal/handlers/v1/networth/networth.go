package networth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/interval"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// NetWorthPoint is one sampled point of the series in the response.
type NetWorthPoint struct {
	Date     string `json:"date" doc:"Bucket start date, YYYY-MM-DD"`
	NetWorth string `json:"netWorth" doc:"Decimal net worth: assets minus liabilities"`
}

// NetWorthResponseBody is the response body for the net-worth series.
type NetWorthResponseBody struct {
	Points []NetWorthPoint `json:"points" doc:"Series ordered ascending by date; buckets without snapshots are omitted"`
}

// NetWorthInput is the Huma input for the net-worth series.
type NetWorthInput struct {
	From     string `query:"from" doc:"Range start, YYYY-MM-DD" example:"2025-01-01"`
	To       string `query:"to" doc:"Range end (inclusive), YYYY-MM-DD" example:"2025-12-31"`
	Interval string `query:"interval" doc:"Bucket size: day, week or month; defaults to month" example:"month"`
}

// NetWorthOutput is the Huma output for the net-worth series.
type NetWorthOutput struct {
	Body NetWorthResponseBody
}

// seriesComputer is the interface for computing net-worth series.
type seriesComputer interface {
	ComputeNetWorthSeries(ctx context.Context, userID string, from, to time.Time, iv interval.Interval) ([]service.NetWorthPoint, error)
}

// Handler handles GET /v1/networth.
type Handler struct {
	NetWorthService seriesComputer
}

// NewHandler creates a new net-worth Handler.
func NewHandler(svc seriesComputer) *Handler {
	return &Handler{NetWorthService: svc}
}

// Register registers the net-worth endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "networth-series",
		Method:      http.MethodGet,
		Path:        "/v1/networth",
		Summary:     "Net-worth series",
		Description: "Returns one net-worth data point per bucket, using each account's latest snapshot within the bucket.",
		Tags:        []string{"Summaries"},
	}, h.handle)
}

// parseNetWorthInput validates the date parameters. Interval parsing never
// fails; unknown values fall back to month buckets.
func parseNetWorthInput(input *NetWorthInput) (from, to time.Time, iv interval.Interval, err error) {
	from, err = time.ParseInLocation(time.DateOnly, input.From, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, "", huma.NewError(http.StatusBadRequest, "invalid from date", err)
	}
	to, err = time.ParseInLocation(time.DateOnly, input.To, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, "", huma.NewError(http.StatusBadRequest, "invalid to date", err)
	}
	return from, to, interval.Parse(input.Interval), nil
}

func (h *Handler) handle(ctx context.Context, input *NetWorthInput) (*NetWorthOutput, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated", err)
	}

	from, to, iv, err := parseNetWorthInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("netWorthSeriesMs")
	}
	points, err := h.NetWorthService.ComputeNetWorthSeries(ctx, userID, from, to, iv)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date range", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute net-worth series", err)
	}

	if logData != nil {
		logData.AddData("pointCount", len(points))
	}

	resp := NetWorthResponseBody{
		Points: make([]NetWorthPoint, len(points)),
	}
	for i, point := range points {
		resp.Points[i] = NetWorthPoint{
			Date:     point.Date.Format(time.DateOnly),
			NetWorth: point.NetWorth.String(),
		}
	}

	return &NetWorthOutput{Body: resp}, nil
}
