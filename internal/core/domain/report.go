package domain

// ReportKind identifies one of the supported tabular reports. It is a typed
// constant so an unknown kind surfaces as a construction-time error instead
// of a silent no-op.
type ReportKind string

const (
	ReportExpenseByCampaign ReportKind = "expense-by-campaign"
	ReportExpenseByLocation ReportKind = "expense-by-location"
	ReportExpenseByProduct  ReportKind = "expense-by-product"
	ReportExpenseEvolution  ReportKind = "expense-evolution"
	ReportCampaignInfo      ReportKind = "campaign-info"
)

// ReportKinds lists every supported kind in presentation order.
func ReportKinds() []ReportKind {
	return []ReportKind{
		ReportExpenseByCampaign,
		ReportExpenseByLocation,
		ReportExpenseByProduct,
		ReportExpenseEvolution,
		ReportCampaignInfo,
	}
}

// Valid reports whether k names a supported report.
func (k ReportKind) Valid() bool {
	switch k {
	case ReportExpenseByCampaign, ReportExpenseByLocation, ReportExpenseByProduct,
		ReportExpenseEvolution, ReportCampaignInfo:
		return true
	}
	return false
}

// TableData is a rendered tabular report. Every row has exactly
// len(Headers) cells. It is produced fresh per request and never persisted.
type TableData struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}
