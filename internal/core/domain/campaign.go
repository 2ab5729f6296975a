package domain

import "time"

// Status is the lifecycle state of a campaign. Only active campaigns count
// toward the active-campaign and monthly-spend statistics.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusFinished  Status = "finished"
	StatusCancelled Status = "cancelled"
)

// GeoTarget is a single geographic target of a campaign. Only the first
// target's address participates in location grouping.
type GeoTarget struct {
	Address string  `json:"address"`
	Radius  float64 `json:"radius"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Campaign represents an advertising campaign. Budget is treated as the
// campaign's total spend for aggregation purposes.
type Campaign struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Description      string      `json:"description,omitempty"`
	Product          string      `json:"product,omitempty"`
	Channel          string      `json:"channel,omitempty"`
	Budget           Number      `json:"budget"`
	Status           Status      `json:"status"`
	StartDate        Date        `json:"start_date"`
	EndDate          Date        `json:"end_date"`
	TargetLocations  []GeoTarget `json:"target_locations,omitempty"`
	ViewsCount       Number      `json:"views_count"`
	ClicksCount      Number      `json:"clicks_count"`
	ConversionsCount Number      `json:"conversions_count"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}
