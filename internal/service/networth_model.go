package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// NetWorthPoint is one sampled net-worth value: assets minus liabilities as
// of the bucket whose first day is Date.
type NetWorthPoint struct {
	Date     time.Time
	NetWorth decimal.Decimal
}
