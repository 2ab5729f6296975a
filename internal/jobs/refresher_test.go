package jobs

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard/internal/core/domain"
)

type stubStats struct {
	calls atomic.Int32
}

func (s *stubStats) Overview(context.Context) (domain.DashboardStats, error) {
	s.calls.Add(1)
	return domain.DashboardStats{}, nil
}

func (s *stubStats) ComputeStats(context.Context, []domain.Campaign) (domain.DashboardStats, error) {
	return domain.DashboardStats{}, nil
}

func TestRefresherRunRecomputesStats(t *testing.T) {
	stats := &stubStats{}
	r := NewRefresher(stats, slog.New(slog.NewTextHandler(io.Discard, nil)), time.Minute)

	r.run()
	assert.Equal(t, int32(1), stats.calls.Load())
}

func TestRefresherStartStop(t *testing.T) {
	stats := &stubStats{}
	r := NewRefresher(stats, slog.New(slog.NewTextHandler(io.Discard, nil)), time.Hour)

	require.NoError(t, r.Start())
	r.Stop()

	// stopping twice must be safe
	r.Stop()
}
