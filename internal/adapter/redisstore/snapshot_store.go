// Package redisstore persists the dashboard snapshot in Redis. The snapshot
// is a single logical slot, so one JSON-encoded key is sufficient.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"adboard/internal/core/domain"
)

// snapshotKey is distinct from any campaign data; last write wins.
const snapshotKey = "adboard:previous_stats"

// SnapshotStore implements port.SnapshotStore on a Redis client.
type SnapshotStore struct {
	client *redis.Client
}

// New returns a SnapshotStore backed by the given client.
func New(client *redis.Client) *SnapshotStore {
	return &SnapshotStore{client: client}
}

// Load returns the last saved snapshot, or nil when nothing is stored. A
// corrupt value is reported as an error; callers degrade to the all-zero
// default.
func (s *SnapshotStore) Load(ctx context.Context) (*domain.DashboardStats, error) {
	data, err := s.client.Get(ctx, snapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var stats domain.DashboardStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &stats, nil
}

// Save overwrites the snapshot slot.
func (s *SnapshotStore) Save(ctx context.Context, stats domain.DashboardStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.client.Set(ctx, snapshotKey, data, 0).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
