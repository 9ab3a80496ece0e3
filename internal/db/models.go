// internal/db/models.go
package db

import "time"

// runs – jeden przebieg eksportu
type Run struct {
	RunID             string `gorm:"primaryKey;size:36"`
	Marketplace       string `gorm:"index"`
	Country           string
	Currency          string
	Seed              int64
	StartedAt         time.Time
	FinishedAt        time.Time
	Categories        int
	ProductsFetched   int
	TotalProcessed    int
	Accepted          int
	DuplicatesDropped int
	SampledOut        int
	Exported          int
	PriceMin          float64
	PriceMax          float64
	StatsJSON         string `gorm:"type:text"`
}

// feed_rows – wiersze wyeksportowanego feedu
type FeedRow struct {
	ID        uint   `gorm:"primaryKey"`
	RunID     string `gorm:"index;size:36"`
	ProductID int64
	SKU       string `gorm:"index;size:64"`
	EAN       string `gorm:"index;size:13"`
	Title     string
	Category  string
	Price     float64
	PriceEUR  float64
	Currency  string `gorm:"size:3"`
	Quantity  int
	Stock     int
	Weight    float64
	ImageURL  string
	CreatedAt time.Time
}

// rejection_stats – liczniki odrzuceń przebiegu
type RejectionStat struct {
	RunID  string `gorm:"primaryKey;size:36"`
	Reason string `gorm:"primaryKey;size:32"`
	Field  string `gorm:"primaryKey;size:32"` // tylko dla missing_field, inaczej ""
	Count  int
}
