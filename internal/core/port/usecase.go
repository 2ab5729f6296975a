package port

import (
	"context"
	"errors"

	"adboard/internal/core/domain"
)

var ErrUnsupportedReportKind = errors.New("unsupported report kind")

// StatsUseCase exposes the dashboard statistics operations. This interface
// represents a primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
type StatsUseCase interface {
	// Overview loads the full campaign set and computes the dashboard
	// statistics from it. Concurrent callers share a single in-flight
	// computation so the snapshot baseline is read and written at most
	// once at a time.
	Overview(ctx context.Context) (domain.DashboardStats, error)

	// ComputeStats computes the dashboard statistics from the given
	// records. Percentage changes are derived against the previously
	// saved snapshot, and the result replaces that snapshot. Calling it
	// twice with identical records therefore yields zero change on the
	// second call.
	ComputeStats(ctx context.Context, records []domain.Campaign) (domain.DashboardStats, error)
}

// ReportUseCase exposes tabular report generation.
type ReportUseCase interface {
	// Report loads the full campaign set and generates the given report.
	Report(ctx context.Context, kind domain.ReportKind) (domain.TableData, error)

	// Generate builds the given report from the provided records. An
	// unknown kind fails with ErrUnsupportedReportKind.
	Generate(kind domain.ReportKind, records []domain.Campaign) (domain.TableData, error)
}

// CampaignUseCase exposes campaign management operations.
type CampaignUseCase interface {
	List(ctx context.Context) ([]domain.Campaign, error)
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	Create(ctx context.Context, in CampaignCreate) (*domain.Campaign, error)
	Update(ctx context.Context, id string, patch CampaignUpdate) (*domain.Campaign, error)
	Delete(ctx context.Context, id string) error
}
