package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
	"adboard/internal/format"
)

// Sentinel group labels for records missing the grouping field.
const (
	noLocationLabel = "No location"
	noProductLabel  = "No product"
)

const monthLayout = "January 2006"
const dayLayout = "02/01/2006"

// ReportService builds tabular reports from campaign records. Each report
// kind has a dedicated builder; dispatch is an exhaustive switch over the
// typed kind so an unknown value fails with a caller-visible error instead
// of silently producing nothing.
type ReportService struct {
	repo port.CampaignRepository
}

// NewReportService creates a ReportService backed by the given repository.
func NewReportService(repo port.CampaignRepository) *ReportService {
	return &ReportService{repo: repo}
}

// Report loads the full campaign set and generates the given report.
func (s *ReportService) Report(ctx context.Context, kind domain.ReportKind) (domain.TableData, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return domain.TableData{}, err
	}
	return s.Generate(kind, records)
}

// Generate builds the given report from the provided records.
func (s *ReportService) Generate(kind domain.ReportKind, records []domain.Campaign) (domain.TableData, error) {
	switch kind {
	case domain.ReportExpenseByCampaign:
		return expenseByCampaign(records), nil
	case domain.ReportExpenseByLocation:
		return expenseByLocation(records), nil
	case domain.ReportExpenseByProduct:
		return expenseByProduct(records), nil
	case domain.ReportExpenseEvolution:
		return expenseEvolution(records), nil
	case domain.ReportCampaignInfo:
		return campaignInfo(records), nil
	default:
		return domain.TableData{}, fmt.Errorf("%w: %q", port.ErrUnsupportedReportKind, kind)
	}
}

// expenseByCampaign is a pass-through projection: one row per record, no
// aggregation.
func expenseByCampaign(records []domain.Campaign) domain.TableData {
	rows := make([][]string, 0, len(records))
	for _, c := range records {
		rows = append(rows, []string{
			c.Name,
			format.Currency(c.Budget.Float()),
			string(c.Status),
			c.StartDate.Format(dayLayout),
			c.EndDate.Format(dayLayout),
		})
	}
	return domain.TableData{
		Headers: []string{"Campaign", "Spend", "Status", "Start Date", "End Date"},
		Rows:    rows,
	}
}

// group accumulates budget and record count for one grouping key.
type group struct {
	total float64
	count int
}

// groupBy buckets records by the derived key, preserving first-occurrence
// order of the keys.
func groupBy(records []domain.Campaign, key func(domain.Campaign) string) ([]string, map[string]*group) {
	order := make([]string, 0)
	buckets := make(map[string]*group)
	for _, c := range records {
		k := key(c)
		g, ok := buckets[k]
		if !ok {
			g = &group{}
			buckets[k] = g
			order = append(order, k)
		}
		g.total += c.Budget.Float()
		g.count++
	}
	return order, buckets
}

func expenseByLocation(records []domain.Campaign) domain.TableData {
	order, buckets := groupBy(records, func(c domain.Campaign) string {
		if len(c.TargetLocations) > 0 && c.TargetLocations[0].Address != "" {
			return c.TargetLocations[0].Address
		}
		return noLocationLabel
	})

	rows := make([][]string, 0, len(order))
	for _, location := range order {
		g := buckets[location]
		rows = append(rows, []string{
			location,
			format.Currency(g.total),
			strconv.Itoa(g.count),
		})
	}
	return domain.TableData{
		Headers: []string{"Location", "Total Spend", "Campaigns"},
		Rows:    rows,
	}
}

func expenseByProduct(records []domain.Campaign) domain.TableData {
	order, buckets := groupBy(records, func(c domain.Campaign) string {
		if c.Product != "" {
			return c.Product
		}
		return noProductLabel
	})

	rows := make([][]string, 0, len(order))
	for _, product := range order {
		g := buckets[product]
		rows = append(rows, []string{
			product,
			format.Currency(g.total),
			strconv.Itoa(g.count),
			// Per-product ROI is not implemented; the dashboard shows a
			// fixed placeholder in this column.
			"0%",
		})
	}
	return domain.TableData{
		Headers: []string{"Product", "Total Spend", "Campaigns", "Estimated ROI"},
		Rows:    rows,
	}
}

// expenseEvolution groups summed budget by calendar month of the start
// date. Unlike the other groupings, rows are sorted chronologically, and
// each row reports the variation versus the preceding month.
func expenseEvolution(records []domain.Campaign) domain.TableData {
	labels := make([]string, 0)
	totals := make(map[string]float64)
	for _, c := range records {
		label := c.StartDate.Format(monthLayout)
		if _, ok := totals[label]; !ok {
			labels = append(labels, label)
		}
		totals[label] += c.Budget.Float()
	}

	sort.Slice(labels, func(i, j int) bool {
		ti, _ := time.Parse(monthLayout, labels[i])
		tj, _ := time.Parse(monthLayout, labels[j])
		return ti.Before(tj)
	})

	rows := make([][]string, 0, len(labels))
	for i, label := range labels {
		total := totals[label]
		var variation float64
		if i > 0 {
			if prev := totals[labels[i-1]]; prev != 0 {
				variation = (total - prev) / prev * 100
			}
		}
		rows = append(rows, []string{
			label,
			format.Currency(total),
			format.Percentage(variation),
		})
	}
	return domain.TableData{
		Headers: []string{"Month", "Total Spend", "Variation"},
		Rows:    rows,
	}
}

// campaignInfo lists every campaign with its name, status and budget. The
// metric columns carry fixed placeholder values; per-campaign counters were
// never wired into this report. Known limitation.
func campaignInfo(records []domain.Campaign) domain.TableData {
	rows := make([][]string, 0, len(records))
	for _, c := range records {
		rows = append(rows, []string{
			c.Name,
			string(c.Status),
			format.Currency(c.Budget.Float()),
			"1,234",
			"123",
			"12",
			"+8.5%",
		})
	}
	return domain.TableData{
		Headers: []string{"Campaign", "Status", "Budget", "Views", "Clicks", "Conversions", "ROI"},
		Rows:    rows,
	}
}
