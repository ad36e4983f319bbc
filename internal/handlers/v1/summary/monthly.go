package summary

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ExpenseBreakdownEntry is one per-category expense subtotal in the response.
// Total is negative, matching the stored amounts.
type ExpenseBreakdownEntry struct {
	CategoryID   string `json:"categoryId" doc:"Category UUID"`
	CategoryName string `json:"categoryName" doc:"Category display name, \"Unknown\" if unresolved"`
	Total        string `json:"total" doc:"Decimal subtotal, negative"`
}

// MonthlySummaryResponseBody is the response body for the monthly summary.
type MonthlySummaryResponseBody struct {
	Month            string                  `json:"month" doc:"Calendar month, YYYY-MM"`
	TotalIncome      string                  `json:"totalIncome" doc:"Sum of positive amounts"`
	TotalExpenses    string                  `json:"totalExpenses" doc:"Sum of negative amounts, negative or zero"`
	Net              string                  `json:"net" doc:"totalIncome + totalExpenses"`
	ExpenseBreakdown []ExpenseBreakdownEntry `json:"expenseBreakdown" doc:"Per-category expense subtotals, largest expense first"`
}

// MonthlySummaryInput is the Huma input for the monthly summary.
type MonthlySummaryInput struct {
	Month string `query:"month" doc:"Calendar month to summarize, YYYY-MM" example:"2025-12"`
}

// MonthlySummaryOutput is the Huma output for the monthly summary.
type MonthlySummaryOutput struct {
	Body MonthlySummaryResponseBody
}

// monthlySummarizer is the interface for computing monthly summaries.
type monthlySummarizer interface {
	ComputeMonthlySummary(ctx context.Context, userID, monthLabel string) (*service.MonthlySummary, error)
}

// MonthlyHandler handles GET /v1/summary/monthly.
type MonthlyHandler struct {
	SummaryService monthlySummarizer
}

// NewMonthlyHandler creates a new MonthlyHandler.
func NewMonthlyHandler(svc monthlySummarizer) *MonthlyHandler {
	return &MonthlyHandler{SummaryService: svc}
}

// Register registers the monthly summary endpoint with the Huma API.
func (h *MonthlyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary/monthly",
		Summary:     "Monthly summary",
		Description: "Returns income and expense totals plus a per-category expense breakdown for one calendar month.",
		Tags:        []string{"Summaries"},
	}, h.handle)
}

func (h *MonthlyHandler) handle(ctx context.Context, input *MonthlySummaryInput) (*MonthlySummaryOutput, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated", err)
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("monthlySummaryMs")
	}
	summary, err := h.SummaryService.ComputeMonthlySummary(ctx, userID, input.Month)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			return nil, huma.NewError(http.StatusBadRequest, "invalid month", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute monthly summary", err)
	}

	resp := MonthlySummaryResponseBody{
		Month:            summary.Month,
		TotalIncome:      summary.TotalIncome.String(),
		TotalExpenses:    summary.TotalExpenses.String(),
		Net:              summary.Net.String(),
		ExpenseBreakdown: make([]ExpenseBreakdownEntry, len(summary.ExpenseBreakdown)),
	}
	for i, entry := range summary.ExpenseBreakdown {
		resp.ExpenseBreakdown[i] = ExpenseBreakdownEntry{
			CategoryID:   entry.CategoryID.String(),
			CategoryName: entry.CategoryName,
			Total:        entry.Total.String(),
		}
	}

	return &MonthlySummaryOutput{Body: resp}, nil
}
