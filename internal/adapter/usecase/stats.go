package usecase

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// StatsService computes dashboard statistics from campaign records. Each
// computation reads the previous snapshot to derive percentage changes and
// then overwrites it, so "change" always means "versus the last time stats
// were computed". A mutex holds the snapshot read-compute-write sequence
// together; on top of that, Overview runs under a singleflight group so
// concurrent refreshes share one in-flight computation instead of queueing.
type StatsService struct {
	repo      port.CampaignRepository
	snapshots port.SnapshotStore
	logger    *slog.Logger
	group     singleflight.Group
	mu        sync.Mutex
}

// NewStatsService creates a StatsService with the provided repository and
// snapshot store.
func NewStatsService(repo port.CampaignRepository, snapshots port.SnapshotStore, logger *slog.Logger) *StatsService {
	return &StatsService{repo: repo, snapshots: snapshots, logger: logger}
}

// Overview loads the full campaign set and computes stats from it.
func (s *StatsService) Overview(ctx context.Context) (domain.DashboardStats, error) {
	v, err, _ := s.group.Do("overview", func() (any, error) {
		// Detached from the caller: later callers piggyback on this
		// flight and must not be failed by the first caller bailing out.
		ctx := context.WithoutCancel(ctx)
		records, err := s.repo.List(ctx)
		if err != nil {
			return domain.DashboardStats{}, err
		}
		return s.compute(ctx, records), nil
	})
	if err != nil {
		return domain.DashboardStats{}, err
	}
	return v.(domain.DashboardStats), nil
}

// ComputeStats computes stats from the given records. No filtering is
// applied; callers requiring a subset must filter first. An empty set is
// valid and yields all-zero values.
func (s *StatsService) ComputeStats(ctx context.Context, records []domain.Campaign) (domain.DashboardStats, error) {
	return s.compute(ctx, records), nil
}

// compute holds the mutex from snapshot load to snapshot save: two
// overlapping computations must never read the same baseline, or one
// write gets lost and both report the same change.
func (s *StatsService) compute(ctx context.Context, records []domain.Campaign) domain.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.previous(ctx)

	var (
		active       int
		totalViews   float64
		totalClicks  float64
		conversions  float64
		totalSpend   float64
		monthlySpend float64
	)
	for _, c := range records {
		if c.Status == domain.StatusActive {
			active++
			monthlySpend += c.Budget.Float()
		}
		totalViews += c.ViewsCount.Float()
		totalClicks += c.ClicksCount.Float()
		conversions += c.ConversionsCount.Float()
		totalSpend += c.Budget.Float()
	}

	interactions := totalViews + totalClicks + conversions

	var ctr, conversionRate, roi, cpc float64
	if totalViews > 0 {
		ctr = totalClicks / totalViews * 100
	}
	if totalClicks > 0 {
		conversionRate = conversions / totalClicks * 100
		cpc = totalSpend / totalClicks
	}
	if totalSpend > 0 {
		roi = (conversions*100)/totalSpend - 1
	}

	stats := domain.DashboardStats{
		TotalCampaigns:        stat(float64(len(records)), prev.TotalCampaigns),
		ActiveCampaigns:       stat(float64(active), prev.ActiveCampaigns),
		TotalViews:            stat(totalViews, prev.TotalViews),
		TotalClicks:           stat(totalClicks, prev.TotalClicks),
		Conversions:           stat(conversions, prev.Conversions),
		TotalSpend:            stat(totalSpend, prev.TotalSpend),
		MonthlySpend:          stat(monthlySpend, prev.MonthlySpend),
		RecentViews:           stat(totalViews, prev.RecentViews),
		RecentClicks:          stat(totalClicks, prev.RecentClicks),
		RecentConversions:     stat(conversions, prev.RecentConversions),
		AverageCTR:            stat(ctr, prev.AverageCTR),
		AverageConversionRate: stat(conversionRate, prev.AverageConversionRate),
		TotalInteractions:     stat(interactions, prev.TotalInteractions),
		ROI:                   stat(roi, prev.ROI),
		AverageCPC:            stat(cpc, prev.AverageCPC),
	}

	// Save is best effort: the next computation simply treats this result
	// as the new baseline.
	if err := s.snapshots.Save(ctx, stats); err != nil {
		s.logger.Error("failed to save stats snapshot", slog.Any("error", err))
	}

	return stats
}

// previous returns the last saved snapshot, degrading to an all-zero
// default when nothing is stored or the store is unreadable.
func (s *StatsService) previous(ctx context.Context) domain.DashboardStats {
	prev, err := s.snapshots.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load stats snapshot", slog.Any("error", err))
		return domain.DashboardStats{}
	}
	if prev == nil {
		return domain.DashboardStats{}
	}
	return *prev
}

func stat(current float64, prev domain.Stat) domain.Stat {
	return domain.Stat{Value: current, Change: percentageChange(current, prev.Value)}
}

// percentageChange returns the signed percentage delta between current and
// previous. A zero previous value yields zero rather than infinity.
func percentageChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
