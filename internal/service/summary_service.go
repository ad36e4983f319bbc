package service

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// unknownCategoryName labels breakdown entries whose category id no longer
// resolves. The foreign key makes this unreachable in practice, but a stale
// read must degrade to a label rather than fail the whole summary.
const unknownCategoryName = "Unknown"

// SummaryService computes monthly income/expense summaries. It is stateless
// and read-only; every invocation is independent.
type SummaryService struct {
	storage *storage.Storage
}

func NewSummaryService(store *storage.Storage) *SummaryService {
	return &SummaryService{storage: store}
}

// ComputeMonthlySummary aggregates the user's transactions for the calendar
// month given as "YYYY-MM": total income (amounts > 0), total expenses
// (amounts < 0, kept negative), their sum, and a per-category expense
// breakdown sorted most-negative first. A month with no transactions yields
// zeros and an empty breakdown.
func (s *SummaryService) ComputeMonthlySummary(ctx context.Context, userID, monthLabel string) (*MonthlySummary, error) {
	firstOfMonth, err := parseMonthLabel(monthLabel)
	if err != nil {
		return nil, err
	}
	firstOfNextMonth := firstOfMonth.AddDate(0, 1, 0)

	rows, err := s.storage.Transactions.ListForPeriod(ctx, userID, firstOfMonth, firstOfNextMonth)
	if err != nil {
		return nil, err
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	expenseByCategory := make(map[uuid.UUID]decimal.Decimal)

	for _, row := range rows {
		if row.Amount.IsPositive() {
			totalIncome = totalIncome.Add(row.Amount)
			continue
		}
		totalExpenses = totalExpenses.Add(row.Amount)
		expenseByCategory[row.CategoryID] = expenseByCategory[row.CategoryID].Add(row.Amount)
	}

	breakdown, err := s.resolveBreakdown(ctx, userID, expenseByCategory)
	if err != nil {
		return nil, err
	}

	return &MonthlySummary{
		Month:            monthLabel,
		TotalIncome:      totalIncome,
		TotalExpenses:    totalExpenses,
		Net:              totalIncome.Add(totalExpenses),
		ExpenseBreakdown: breakdown,
	}, nil
}

// resolveBreakdown attaches display names to the per-category sums and orders
// them ascending by total, so the largest expense comes first.
func (s *SummaryService) resolveBreakdown(ctx context.Context, userID string, expenseByCategory map[uuid.UUID]decimal.Decimal) ([]CategoryTotal, error) {
	breakdown := make([]CategoryTotal, 0, len(expenseByCategory))
	if len(expenseByCategory) == 0 {
		return breakdown, nil
	}

	categories, err := s.storage.Categories.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	namesByID := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		namesByID[category.ID] = category.Name
	}

	for categoryID, total := range expenseByCategory {
		name, ok := namesByID[categoryID]
		if !ok {
			name = unknownCategoryName
		}
		breakdown = append(breakdown, CategoryTotal{
			CategoryID:   categoryID,
			CategoryName: name,
			Total:        total,
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		cmp := breakdown[i].Total.Cmp(breakdown[j].Total)
		if cmp != 0 {
			return cmp < 0
		}
		return breakdown[i].CategoryName < breakdown[j].CategoryName
	})

	return breakdown, nil
}

func parseMonthLabel(monthLabel string) (time.Time, error) {
	if monthLabel == "" {
		return time.Time{}, invalidArgumentf("month is required")
	}
	firstOfMonth, err := time.ParseInLocation("2006-01", monthLabel, time.UTC)
	if err != nil {
		return time.Time{}, invalidArgumentf("month %q must be formatted YYYY-MM", monthLabel)
	}
	return firstOfMonth, nil
}
