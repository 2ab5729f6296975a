package db

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaigns into the adboard database so a fresh install
// shows meaningful dashboard numbers.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	type demo struct {
		name        string
		product     string
		channel     string
		budget      float64
		status      string
		start       time.Time
		end         time.Time
		address     string
		views       int64
		clicks      int64
		conversions int64
	}
	now := time.Now().UTC()
	month := func(offset int) time.Time {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, offset, 0)
	}
	demos := []demo{
		{"Summer Launch", "Sneakers", "social", 5000, "active", month(-2), month(1), "Buenos Aires", 1500, 300, 50},
		{"Back to School", "Notebooks", "search", 3000, "active", month(-1), month(2), "Córdoba", 2000, 400, 75},
		{"Winter Clearance", "Jackets", "display", 1200, "paused", month(0), month(3), "Rosario", 800, 90, 12},
		{"Brand Awareness", "", "video", 2500, "draft", month(0), month(4), "", 0, 0, 0},
	}

	for _, d := range demos {
		locations := []byte(`[]`)
		if d.address != "" {
			locations, _ = json.Marshal([]map[string]any{{"address": d.address, "radius": 5000}})
		}
		_, err := pool.Exec(ctx, `INSERT INTO campaigns
	(id, name, description, product, channel, budget, status, start_date, end_date,
	 target_locations, views_count, clicks_count, conversions_count, created_at, updated_at)
	VALUES ($1,$2,'',$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,now(),now())
	ON CONFLICT DO NOTHING`,
			uuid.NewString(), d.name, d.product, d.channel, d.budget, d.status,
			d.start, d.end, locations, d.views, d.clicks, d.conversions)
		if err != nil {
			return err
		}
	}
	return nil
}
