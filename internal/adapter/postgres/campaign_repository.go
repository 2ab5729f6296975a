package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Geo targets are stored as an ordered JSONB array on the
// campaign row.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, name, description, product, channel, budget, status,
	start_date, end_date, target_locations, views_count, clicks_count,
	conversions_count, created_at, updated_at`

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c            domain.Campaign
		locationsRaw []byte
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Product,
		&c.Channel,
		&c.Budget,
		&c.Status,
		&c.StartDate,
		&c.EndDate,
		&locationsRaw,
		&c.ViewsCount,
		&c.ClicksCount,
		&c.ConversionsCount,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	if len(locationsRaw) > 0 {
		// malformed target data degrades to "no locations"
		if err := json.Unmarshal(locationsRaw, &c.TargetLocations); err != nil {
			c.TargetLocations = nil
		}
	}
	return c, nil
}

// List returns the full current set of campaigns, oldest first.
func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`SELECT %s FROM campaigns ORDER BY created_at, id`, campaignColumns))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// Get returns a campaign by id, or nil when it does not exist.
func (r *CampaignRepository) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`SELECT %s FROM campaigns WHERE id = $1`, campaignColumns), id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persists a new campaign.
func (r *CampaignRepository) Create(ctx context.Context, c domain.Campaign) error {
	locations, err := json.Marshal(c.TargetLocations)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns
	(id, name, description, product, channel, budget, status, start_date, end_date,
	 target_locations, views_count, clicks_count, conversions_count, created_at, updated_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		c.ID, c.Name, c.Description, c.Product, c.Channel, c.Budget, c.Status,
		c.StartDate, c.EndDate, locations, c.ViewsCount, c.ClicksCount,
		c.ConversionsCount, c.CreatedAt, c.UpdatedAt)
	return err
}

// Update applies the non-nil fields of the patch and returns the updated
// campaign, or nil when the id does not exist.
func (r *CampaignRepository) Update(ctx context.Context, id string, patch port.CampaignUpdate) (*domain.Campaign, error) {
	set := []string{"updated_at = now()"}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Product != nil {
		add("product", *patch.Product)
	}
	if patch.Channel != nil {
		add("channel", *patch.Channel)
	}
	if patch.Budget != nil {
		add("budget", *patch.Budget)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.StartDate != nil {
		add("start_date", *patch.StartDate)
	}
	if patch.EndDate != nil {
		add("end_date", *patch.EndDate)
	}
	if patch.TargetLocations != nil {
		locations, err := json.Marshal(*patch.TargetLocations)
		if err != nil {
			return nil, err
		}
		add("target_locations", locations)
	}
	if patch.ViewsCount != nil {
		add("views_count", *patch.ViewsCount)
	}
	if patch.ClicksCount != nil {
		add("clicks_count", *patch.ClicksCount)
	}
	if patch.ConversionsCount != nil {
		add("conversions_count", *patch.ConversionsCount)
	}

	query := fmt.Sprintf(`UPDATE campaigns SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(set, ", "), campaignColumns)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete removes a campaign.
func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}
