// Package memstore provides an in-memory snapshot store. It backs the
// dashboard when Redis is unavailable and substitutes for it in tests.
package memstore

import (
	"context"
	"sync"

	"adboard/internal/core/domain"
)

// SnapshotStore keeps the last saved snapshot in memory.
type SnapshotStore struct {
	mu    sync.Mutex
	stats *domain.DashboardStats
}

// New returns an empty SnapshotStore.
func New() *SnapshotStore {
	return &SnapshotStore{}
}

// Load returns the last saved snapshot, or nil when nothing has been saved.
func (s *SnapshotStore) Load(_ context.Context) (*domain.DashboardStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats == nil {
		return nil, nil
	}
	stats := *s.stats
	return &stats, nil
}

// Save overwrites the snapshot slot.
func (s *SnapshotStore) Save(_ context.Context, stats domain.DashboardStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = &stats
	return nil
}
