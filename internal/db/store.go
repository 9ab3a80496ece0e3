package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bartek5186/bb2feed/internal/pipeline"
	"gorm.io/gorm"
)

// RunInfo – metadane przebiegu zapisywane razem z wierszami.
type RunInfo struct {
	RunID       string
	Marketplace string
	Country     string
	Currency    string
	Seed        int64
	StartedAt   time.Time
	FinishedAt  time.Time
}

const batchSize = 500

// SaveRun w jednej transakcji: hard purge poprzednich wierszy feedu,
// zapis przebiegu, wierszy i liczników odrzuceń.
// Historia runs/rejection_stats zostaje, feed_rows zawsze odpowiada ostatniemu przebiegowi.
func (h *Handle) SaveRun(ctx context.Context, info RunInfo, rows []pipeline.OutputRow, st pipeline.Stats) error {
	statsJSON, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	run := Run{
		RunID:             info.RunID,
		Marketplace:       info.Marketplace,
		Country:           info.Country,
		Currency:          info.Currency,
		Seed:              info.Seed,
		StartedAt:         info.StartedAt,
		FinishedAt:        info.FinishedAt,
		Categories:        st.CategoriesProcessed,
		ProductsFetched:   st.ProductsFetched,
		TotalProcessed:    st.TotalProcessed,
		Accepted:          st.Accepted,
		DuplicatesDropped: st.DuplicatesDropped,
		SampledOut:        st.SampledOut,
		Exported:          st.Exported,
		PriceMin:          st.PriceMin,
		PriceMax:          st.PriceMax,
		StatsJSON:         string(statsJSON),
	}

	return h.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1=1").Delete(&FeedRow{}).Error; err != nil {
			return fmt.Errorf("hard purge feed_rows failed: %w", err)
		}
		if err := tx.Create(&run).Error; err != nil {
			return fmt.Errorf("insert run: %w", err)
		}

		if len(rows) > 0 {
			recs := make([]FeedRow, 0, len(rows))
			for _, r := range rows {
				recs = append(recs, feedRow(info.RunID, r))
			}
			if err := tx.CreateInBatches(recs, batchSize).Error; err != nil {
				return fmt.Errorf("insert feed_rows: %w", err)
			}
		}

		stats := rejectionStats(info.RunID, st)
		if err := tx.Create(&stats).Error; err != nil {
			return fmt.Errorf("insert rejection_stats: %w", err)
		}
		return nil
	})
}

func feedRow(runID string, r pipeline.OutputRow) FeedRow {
	return FeedRow{
		RunID:     runID,
		ProductID: r.ProductID,
		SKU:       r.SKU,
		EAN:       r.EAN,
		Title:     r.Title,
		Category:  r.Category,
		Price:     r.Price,
		PriceEUR:  r.PriceEUR,
		Currency:  r.Currency,
		Quantity:  r.Quantity,
		Stock:     r.Stock,
		Weight:    r.Weight,
		ImageURL:  r.Images[0],
	}
}

// jeden wiersz na powód (także zera) + rozbicie missing_field po polach
func rejectionStats(runID string, st pipeline.Stats) []RejectionStat {
	out := make([]RejectionStat, 0, len(st.Rejections)+len(st.MissingFields))
	for _, reason := range pipeline.Reasons() {
		out = append(out, RejectionStat{RunID: runID, Reason: reason.String(), Count: st.Rejections[reason]})
	}
	for field, n := range st.MissingFields {
		out = append(out, RejectionStat{RunID: runID, Reason: pipeline.ReasonMissingField.String(), Field: field, Count: n})
	}
	return out
}

// LastRun zwraca ostatni zapisany przebieg dla marketplace.
func (h *Handle) LastRun(ctx context.Context, marketplace string) (*Run, error) {
	var run Run
	err := h.DB.WithContext(ctx).
		Where("marketplace = ?", marketplace).
		Order("finished_at DESC").
		First(&run).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}
