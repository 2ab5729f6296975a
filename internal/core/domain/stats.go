package domain

// Stat is a single aggregate measurement: the current value and the signed
// percentage delta versus the previously snapshotted value of the same
// metric.
type Stat struct {
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
}

// DashboardStats holds the named aggregate statistics shown on the
// dashboard. All fields are always present; the zero value is the valid
// "nothing computed yet" default.
type DashboardStats struct {
	TotalCampaigns        Stat `json:"totalCampaigns"`
	ActiveCampaigns       Stat `json:"activeCampaigns"`
	TotalViews            Stat `json:"totalViews"`
	TotalClicks           Stat `json:"totalClicks"`
	Conversions           Stat `json:"conversions"`
	TotalSpend            Stat `json:"totalSpend"`
	MonthlySpend          Stat `json:"monthlySpend"`
	RecentViews           Stat `json:"recentViews"`
	RecentClicks          Stat `json:"recentClicks"`
	RecentConversions     Stat `json:"recentConversions"`
	AverageCTR            Stat `json:"averageCTR"`
	AverageConversionRate Stat `json:"averageConversionRate"`
	TotalInteractions     Stat `json:"totalInteractions"`
	ROI                   Stat `json:"roi"`
	AverageCPC            Stat `json:"averageCPC"`
}
