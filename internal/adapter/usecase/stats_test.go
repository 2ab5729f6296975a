package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adboard/internal/adapter/memstore"
	"adboard/internal/core/domain"
	"adboard/internal/core/port"
	"adboard/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleCampaigns() []domain.Campaign {
	return []domain.Campaign{
		{
			ID: "c1", Name: "One", Status: domain.StatusActive,
			Budget: 5000, ViewsCount: 1500, ClicksCount: 300, ConversionsCount: 50,
		},
		{
			ID: "c2", Name: "Two", Status: domain.StatusActive,
			Budget: 3000, ViewsCount: 2000, ClicksCount: 400, ConversionsCount: 75,
		},
	}
}

func TestComputeStatsValues(t *testing.T) {
	svc := NewStatsService(nil, memstore.New(), discardLogger())

	stats, err := svc.ComputeStats(context.Background(), sampleCampaigns())
	require.NoError(t, err)

	assert.Equal(t, 2.0, stats.TotalCampaigns.Value)
	assert.Equal(t, 2.0, stats.ActiveCampaigns.Value)
	assert.Equal(t, 3500.0, stats.TotalViews.Value)
	assert.Equal(t, 700.0, stats.TotalClicks.Value)
	assert.Equal(t, 125.0, stats.Conversions.Value)
	assert.Equal(t, 8000.0, stats.TotalSpend.Value)
	assert.Equal(t, 8000.0, stats.MonthlySpend.Value)
	assert.Equal(t, 20.0, stats.AverageCTR.Value)
	assert.InDelta(t, 17.857, stats.AverageConversionRate.Value, 0.001)
	assert.Equal(t, 4325.0, stats.TotalInteractions.Value)
	assert.InDelta(t, 0.5625, stats.ROI.Value, 1e-9)
	assert.InDelta(t, 8000.0/700.0, stats.AverageCPC.Value, 1e-9)

	// recent metrics are aliases of the totals
	assert.Equal(t, stats.TotalViews.Value, stats.RecentViews.Value)
	assert.Equal(t, stats.TotalClicks.Value, stats.RecentClicks.Value)
	assert.Equal(t, stats.Conversions.Value, stats.RecentConversions.Value)

	// no prior snapshot: every change is zero
	assert.Equal(t, 0.0, stats.TotalSpend.Change)
	assert.Equal(t, 0.0, stats.AverageCTR.Change)
}

func TestComputeStatsInteractionsLaw(t *testing.T) {
	svc := NewStatsService(nil, memstore.New(), discardLogger())

	stats, err := svc.ComputeStats(context.Background(), sampleCampaigns())
	require.NoError(t, err)
	assert.Equal(t,
		stats.TotalViews.Value+stats.TotalClicks.Value+stats.Conversions.Value,
		stats.TotalInteractions.Value)
}

func TestComputeStatsEmptyInput(t *testing.T) {
	svc := NewStatsService(nil, memstore.New(), discardLogger())

	stats, err := svc.ComputeStats(context.Background(), nil)
	require.NoError(t, err)

	for _, s := range []domain.Stat{
		stats.TotalCampaigns, stats.ActiveCampaigns, stats.TotalViews,
		stats.TotalClicks, stats.Conversions, stats.TotalSpend,
		stats.MonthlySpend, stats.RecentViews, stats.RecentClicks,
		stats.RecentConversions, stats.AverageCTR, stats.AverageConversionRate,
		stats.TotalInteractions, stats.ROI, stats.AverageCPC,
	} {
		assert.Equal(t, 0.0, s.Value)
		assert.Equal(t, 0.0, s.Change)
	}
}

// Rate metrics must stay finite when views or clicks are zero.
func TestComputeStatsNoDivisionByZero(t *testing.T) {
	svc := NewStatsService(nil, memstore.New(), discardLogger())

	records := []domain.Campaign{{ID: "c1", Status: domain.StatusActive, Budget: 100}}
	stats, err := svc.ComputeStats(context.Background(), records)
	require.NoError(t, err)

	for _, v := range []float64{
		stats.AverageCTR.Value, stats.AverageConversionRate.Value, stats.AverageCPC.Value,
	} {
		assert.False(t, math.IsNaN(v))
		assert.False(t, math.IsInf(v, 0))
		assert.Equal(t, 0.0, v)
	}
}

// Running the same records twice in a row must produce zero change on the
// second run: the first run's result became the snapshot baseline.
func TestComputeStatsChangeIdempotence(t *testing.T) {
	svc := NewStatsService(nil, memstore.New(), discardLogger())
	ctx := context.Background()

	_, err := svc.ComputeStats(ctx, sampleCampaigns())
	require.NoError(t, err)

	second, err := svc.ComputeStats(ctx, sampleCampaigns())
	require.NoError(t, err)

	for _, s := range []domain.Stat{
		second.TotalCampaigns, second.ActiveCampaigns, second.TotalViews,
		second.TotalClicks, second.Conversions, second.TotalSpend,
		second.MonthlySpend, second.RecentViews, second.RecentClicks,
		second.RecentConversions, second.AverageCTR, second.AverageConversionRate,
		second.TotalInteractions, second.ROI, second.AverageCPC,
	} {
		assert.Equal(t, 0.0, s.Change)
	}
}

func TestComputeStatsChangeAgainstPreviousRun(t *testing.T) {
	svc := NewStatsService(nil, memstore.New(), discardLogger())
	ctx := context.Background()

	_, err := svc.ComputeStats(ctx, []domain.Campaign{
		{ID: "c1", Status: domain.StatusActive, Budget: 4000},
	})
	require.NoError(t, err)

	stats, err := svc.ComputeStats(ctx, []domain.Campaign{
		{ID: "c1", Status: domain.StatusActive, Budget: 8000},
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, stats.TotalSpend.Change)
	assert.Equal(t, 0.0, stats.TotalCampaigns.Change)
}

// The previous value must be read before this call's result overwrites the
// snapshot slot.
func TestComputeStatsReadsSnapshotBeforeWrite(t *testing.T) {
	snapshots := mocks.NewMockSnapshotStore(t)
	prev := &domain.DashboardStats{TotalSpend: domain.Stat{Value: 4000}}
	snapshots.EXPECT().Load(mock.Anything).Return(prev, nil)
	snapshots.EXPECT().Save(mock.Anything, mock.AnythingOfType("domain.DashboardStats")).
		Run(func(ctx context.Context, stats domain.DashboardStats) {
			assert.Equal(t, 8000.0, stats.TotalSpend.Value)
			assert.Equal(t, 100.0, stats.TotalSpend.Change)
		}).
		Return(nil)

	svc := NewStatsService(nil, snapshots, discardLogger())
	stats, err := svc.ComputeStats(context.Background(), []domain.Campaign{
		{ID: "c1", Budget: 8000},
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, stats.TotalSpend.Change)
}

// Storage failures are logged and swallowed; the computation still returns.
func TestComputeStatsDegradesOnStoreErrors(t *testing.T) {
	snapshots := mocks.NewMockSnapshotStore(t)
	snapshots.EXPECT().Load(mock.Anything).Return(nil, errors.New("store down"))
	snapshots.EXPECT().Save(mock.Anything, mock.AnythingOfType("domain.DashboardStats")).
		Return(errors.New("store down"))

	svc := NewStatsService(nil, snapshots, discardLogger())
	stats, err := svc.ComputeStats(context.Background(), sampleCampaigns())
	require.NoError(t, err)
	assert.Equal(t, 8000.0, stats.TotalSpend.Value)
	assert.Equal(t, 0.0, stats.TotalSpend.Change)
}

// A malformed budget string coerces at the decoding boundary and flows
// through aggregation as its cleaned numeric value.
func TestComputeStatsCoercedBudget(t *testing.T) {
	var c domain.Campaign
	require.NoError(t, json.Unmarshal([]byte(`{"id":"c1","budget":"1,200abc","status":"active"}`), &c))

	svc := NewStatsService(nil, memstore.New(), discardLogger())
	stats, err := svc.ComputeStats(context.Background(), []domain.Campaign{c})
	require.NoError(t, err)
	assert.Equal(t, 1200.0, stats.TotalSpend.Value)
}

// trackedStore counts how many load-to-save sections are open at once.
// Load sleeps so overlapping callers would be caught in the act.
type trackedStore struct {
	inner   port.SnapshotStore
	active  atomic.Int32
	maxSeen atomic.Int32
}

func (s *trackedStore) Load(ctx context.Context) (*domain.DashboardStats, error) {
	n := s.active.Add(1)
	for {
		m := s.maxSeen.Load()
		if n <= m || s.maxSeen.CompareAndSwap(m, n) {
			break
		}
	}
	time.Sleep(10 * time.Millisecond)
	return s.inner.Load(ctx)
}

func (s *trackedStore) Save(ctx context.Context, stats domain.DashboardStats) error {
	defer s.active.Add(-1)
	return s.inner.Save(ctx, stats)
}

// Two overlapping computations must serialize their snapshot sections:
// one of them sees the other's result as its baseline, never the same
// stale baseline twice.
func TestComputeStatsSerializesSnapshotSection(t *testing.T) {
	store := &trackedStore{inner: memstore.New()}
	svc := NewStatsService(nil, store, discardLogger())
	ctx := context.Background()

	records := [][]domain.Campaign{
		{{ID: "c1", Status: domain.StatusActive, Budget: 4000}},
		{{ID: "c1", Status: domain.StatusActive, Budget: 8000}},
	}
	results := make([]domain.DashboardStats, len(records))

	var wg sync.WaitGroup
	for i, rs := range records {
		i, rs := i, rs
		wg.Add(1)
		go func() {
			defer wg.Done()
			stats, err := svc.ComputeStats(ctx, rs)
			assert.NoError(t, err)
			results[i] = stats
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), store.maxSeen.Load())

	var zeroChanges int
	for _, stats := range results {
		if stats.TotalSpend.Change == 0 {
			zeroChanges++
		}
	}
	// whichever ran first saw the empty baseline; the other saw its spend
	assert.Equal(t, 1, zeroChanges)
}

// Concurrent overview calls share a single list-and-compute flight.
func TestOverviewSharesInFlightComputation(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().List(mock.Anything).
		Run(func(ctx context.Context) {
			close(entered)
			<-release
		}).
		Return(sampleCampaigns(), nil).
		Once()

	svc := NewStatsService(repo, memstore.New(), discardLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		stats, err := svc.Overview(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 8000.0, stats.TotalSpend.Value)
	}()
	<-entered

	wg.Add(1)
	go func() {
		defer wg.Done()
		stats, err := svc.Overview(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 8000.0, stats.TotalSpend.Value)
	}()
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
}

// A caller whose context dies must not poison the shared flight for the
// callers riding along on it.
func TestOverviewFlightOutlivesCallerContext(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().List(mock.Anything).
		RunAndReturn(func(ctx context.Context) ([]domain.Campaign, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return sampleCampaigns(), nil
		})

	svc := NewStatsService(repo, memstore.New(), discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8000.0, stats.TotalSpend.Value)
}

func TestOverview(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().List(mock.Anything).Return(sampleCampaigns(), nil)

	svc := NewStatsService(repo, memstore.New(), discardLogger())
	stats, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8000.0, stats.TotalSpend.Value)
}

func TestOverviewRepositoryError(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("db down"))

	svc := NewStatsService(repo, memstore.New(), discardLogger())
	_, err := svc.Overview(context.Background())
	assert.Error(t, err)
}
