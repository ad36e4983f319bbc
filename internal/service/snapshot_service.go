package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// SnapshotService handles balance snapshot reads. Upserts go through the
// operator.
type SnapshotService struct {
	storage *storage.Storage
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(store *storage.Storage) *SnapshotService {
	return &SnapshotService{storage: store}
}

// ListSnapshots returns an account's snapshots in the closed range
// [from, to], ordered by date. An account the user does not own yields an
// empty list.
func (s *SnapshotService) ListSnapshots(ctx context.Context, userID string, accountID uuid.UUID, from, to time.Time) ([]Snapshot, error) {
	if to.Before(from) {
		return nil, invalidArgumentf("to %s before from %s",
			to.Format(time.DateOnly), from.Format(time.DateOnly))
	}

	rows, err := s.storage.Snapshots.ListForAccount(ctx, userID, accountID, from, to)
	if err != nil {
		return nil, err
	}

	snapshots := make([]Snapshot, len(rows))
	for i, row := range rows {
		snapshots[i] = snapshotFromStorage(row)
	}
	return snapshots, nil
}
