package service

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/interval"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// NetWorthService computes net-worth time series from balance snapshots. It
// is stateless and read-only; every invocation is independent.
type NetWorthService struct {
	storage *storage.Storage
}

func NewNetWorthService(store *storage.Storage) *NetWorthService {
	return &NetWorthService{storage: store}
}

type bucketAccountKey struct {
	bucketStart time.Time
	accountID   uuid.UUID
}

// ComputeNetWorthSeries samples the user's net worth once per bucket over the
// closed date range [from, to]. Within each bucket, each account contributes
// its latest snapshot in that bucket; liabilities contribute negated. Buckets
// with no snapshots are skipped, never zero-filled. A range with no
// snapshots yields an empty series.
func (s *NetWorthService) ComputeNetWorthSeries(ctx context.Context, userID string, from, to time.Time, iv interval.Interval) ([]NetWorthPoint, error) {
	if to.Before(from) {
		return nil, invalidArgumentf("to %s before from %s",
			to.Format(time.DateOnly), from.Format(time.DateOnly))
	}

	rows, err := s.storage.Snapshots.ListWithAccounts(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	// Stage one: latest snapshot per account per bucket. Dates are unique per
	// account, so "later date wins" is the whole tie-break.
	representatives := make(map[bucketAccountKey]*sqlconfig.SnapshotWithAccount)
	for _, row := range rows {
		key := bucketAccountKey{
			bucketStart: interval.BucketStart(row.SnapshotDate, iv),
			accountID:   row.AccountID,
		}
		current, ok := representatives[key]
		if !ok || row.SnapshotDate.After(current.SnapshotDate) {
			representatives[key] = row
		}
	}

	// Stage two: sum signed balances per bucket.
	totals := make(map[time.Time]decimal.Decimal)
	for key, row := range representatives {
		balance := row.Balance
		if row.IsLiability {
			balance = balance.Neg()
		}
		totals[key.bucketStart] = totals[key.bucketStart].Add(balance)
	}

	points := make([]NetWorthPoint, 0, len(totals))
	for bucketStart, netWorth := range totals {
		points = append(points, NetWorthPoint{Date: bucketStart, NetWorth: netWorth})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points, nil
}
