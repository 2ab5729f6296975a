package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard/internal/core/domain"
)

func TestSnapshotStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := New()

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	stats := domain.DashboardStats{
		TotalSpend:  domain.Stat{Value: 8000, Change: 12.5},
		TotalClicks: domain.Stat{Value: 700},
	}
	require.NoError(t, store.Save(ctx, stats))

	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, stats, *loaded)

	// last write wins
	next := domain.DashboardStats{TotalSpend: domain.Stat{Value: 1}}
	require.NoError(t, store.Save(ctx, next))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, next, *loaded)
}
