package port

import (
	"context"
	"errors"

	"adboard/internal/core/domain"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignRepository defines the persistence layer for campaign records. It
// is an outbound port in hexagonal architecture. The aggregation and
// reporting code only borrows read access through List and never mutates
// the returned records.
type CampaignRepository interface {
	// List returns the full current set of campaigns, oldest first.
	List(ctx context.Context) ([]domain.Campaign, error)
	// Get returns a campaign by id, or nil when it does not exist.
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	// Create persists a new campaign.
	Create(ctx context.Context, c domain.Campaign) error
	// Update applies a partial patch and returns the updated campaign, or
	// nil when the id does not exist.
	Update(ctx context.Context, id string, patch CampaignUpdate) (*domain.Campaign, error)
	// Delete removes a campaign. ErrCampaignNotFound is returned when the
	// id does not exist.
	Delete(ctx context.Context, id string) error
}

// CampaignCreate carries the fields accepted when creating a campaign. It is
// a DTO used by the HTTP layer and does not contain domain behaviour.
type CampaignCreate struct {
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Product         string             `json:"product"`
	Channel         string             `json:"channel"`
	Budget          domain.Number      `json:"budget"`
	Status          domain.Status      `json:"status"`
	StartDate       domain.Date        `json:"start_date"`
	EndDate         domain.Date        `json:"end_date"`
	TargetLocations []domain.GeoTarget `json:"target_locations"`
}

// CampaignUpdate is a partial patch; nil fields are left unchanged.
type CampaignUpdate struct {
	Name             *string             `json:"name"`
	Description      *string             `json:"description"`
	Product          *string             `json:"product"`
	Channel          *string             `json:"channel"`
	Budget           *domain.Number      `json:"budget"`
	Status           *domain.Status      `json:"status"`
	StartDate        *domain.Date        `json:"start_date"`
	EndDate          *domain.Date        `json:"end_date"`
	TargetLocations  *[]domain.GeoTarget `json:"target_locations"`
	ViewsCount       *domain.Number      `json:"views_count"`
	ClicksCount      *domain.Number      `json:"clicks_count"`
	ConversionsCount *domain.Number      `json:"conversions_count"`
}
