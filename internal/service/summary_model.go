package service

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// MonthlySummary is the derived income/expense view of one calendar month.
// TotalExpenses is negative or zero, never flipped positive, so
// Net = TotalIncome + TotalExpenses holds exactly.
type MonthlySummary struct {
	Month            string
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	Net              decimal.Decimal
	ExpenseBreakdown []CategoryTotal
}

// CategoryTotal is one per-category expense subtotal. Total stays negative.
type CategoryTotal struct {
	CategoryID   uuid.UUID
	CategoryName string
	Total        decimal.Decimal
}
