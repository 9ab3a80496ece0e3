package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/bartek5186/bb2feed/internal/pipeline"
)

type feedInfo struct {
	RunID                  string         `json:"run_id"`
	LastUpdated            string         `json:"last_updated"`
	DurationSeconds        float64        `json:"duration_seconds"`
	ProductCount           int            `json:"product_count"`
	RandomSeed             int64          `json:"random_seed"`
	ValidationStats        pipeline.Stats `json:"validation_stats"`
	SuccessRate            string         `json:"success_rate"`
	StockValidationEnabled bool           `json:"stock_validation_enabled"`
	Marketplace            string         `json:"marketplace"`
	Country                string         `json:"country"`
	Language               string         `json:"language"`
	Currency               string         `json:"currency"`
	CurrencyRate           float64        `json:"currency_rate"`
	MinPriceEUR            float64        `json:"min_price_eur"`
	MaxPriceEUR            float64        `json:"max_price_eur"`
	MaxContentVolume       float64        `json:"max_content_volume"`
	MaxWeight              float64        `json:"max_weight"`
	MinStock               int            `json:"min_stock"`
	MarginApplied          string         `json:"margin_applied"`
	VATApplied             string         `json:"vat_applied"`
	CategoriesProcessed    int            `json:"categories_processed"`
	Files                  []string       `json:"files,omitempty"`
}

// WriteInfo zapisuje metadane przebiegu (feed_info.json).
func WriteInfo(w io.Writer, r Report, files []string) error {
	info := feedInfo{
		RunID:                  r.RunID,
		LastUpdated:            r.FinishedAt.Format(time.RFC3339),
		DurationSeconds:        r.FinishedAt.Sub(r.StartedAt).Seconds(),
		ProductCount:           r.Stats.Exported,
		RandomSeed:             r.Seed,
		ValidationStats:        r.Stats,
		SuccessRate:            fmt.Sprintf("%.1f%%", r.Stats.SuccessRate()),
		StockValidationEnabled: r.Rules.MinStock > 0,
		Marketplace:            r.Marketplace,
		Country:                r.Country,
		Language:               r.Language,
		Currency:               r.Currency,
		CurrencyRate:           r.Rules.CurrencyRate,
		MinPriceEUR:            r.Rules.MinPriceEUR,
		MaxPriceEUR:            r.Rules.MaxPriceEUR,
		MaxContentVolume:       r.Rules.MaxContentVolume,
		MaxWeight:              r.Rules.MaxWeight,
		MinStock:               r.Rules.MinStock,
		MarginApplied:          percent(r.Rules.MarginRate),
		VATApplied:             percent(r.Rules.VATRate),
		CategoriesProcessed:    r.Stats.CategoriesProcessed,
		Files:                  files,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}

func percent(rate float64) string {
	return fmt.Sprintf("%.0f%%", rate*100)
}
