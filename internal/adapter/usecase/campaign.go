package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// CampaignService implements campaign management on top of the repository.
type CampaignService struct {
	repo port.CampaignRepository
}

// NewCampaignService creates a CampaignService.
func NewCampaignService(repo port.CampaignRepository) *CampaignService {
	return &CampaignService{repo: repo}
}

// List returns all campaigns.
func (s *CampaignService) List(ctx context.Context) ([]domain.Campaign, error) {
	return s.repo.List(ctx)
}

// Get returns a campaign by id, or nil when it does not exist.
func (s *CampaignService) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	return s.repo.Get(ctx, id)
}

// Create validates the input, assigns an id and persists the campaign.
// Status defaults to draft when not provided.
func (s *CampaignService) Create(ctx context.Context, in port.CampaignCreate) (*domain.Campaign, error) {
	if in.Name == "" {
		return nil, errors.New("campaign name is required")
	}
	status := in.Status
	if status == "" {
		status = domain.StatusDraft
	}
	now := time.Now().UTC()
	c := domain.Campaign{
		ID:              uuid.NewString(),
		Name:            in.Name,
		Description:     in.Description,
		Product:         in.Product,
		Channel:         in.Channel,
		Budget:          in.Budget,
		Status:          status,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		TargetLocations: in.TargetLocations,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Update applies a partial patch and returns the updated campaign, or nil
// when the id does not exist.
func (s *CampaignService) Update(ctx context.Context, id string, patch port.CampaignUpdate) (*domain.Campaign, error) {
	return s.repo.Update(ctx, id, patch)
}

// Delete removes a campaign.
func (s *CampaignService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
