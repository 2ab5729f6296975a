package port

import (
	"context"

	"adboard/internal/core/domain"
)

// SnapshotStore persists the most recently computed dashboard statistics so
// the next computation can derive percentage changes. It is a single logical
// slot: every Save overwrites the previous snapshot, there is no history.
type SnapshotStore interface {
	// Load returns the last saved snapshot, or nil when nothing has been
	// saved yet. Callers treat any error as "no snapshot".
	Load(ctx context.Context) (*domain.DashboardStats, error)
	// Save overwrites the snapshot slot.
	Save(ctx context.Context, stats domain.DashboardStats) error
}
