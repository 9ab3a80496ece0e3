package export

import (
	"time"

	"github.com/bartek5186/bb2feed/internal/pipeline"
)

// Report – dane przebiegu potrzebne do metadanych i podglądu HTML.
type Report struct {
	RunID       string
	StartedAt   time.Time
	FinishedAt  time.Time
	Seed        int64
	Marketplace string
	Country     string
	Language    string
	Currency    string
	Rules       pipeline.Config
	Stats       pipeline.Stats
}

// ReasonCount – para do wyświetlenia w tabeli odrzuceń.
type ReasonCount struct {
	Reason string
	Count  int
}

// RejectionTable zwraca liczniki w stałej kolejności sprawdzania.
func (r Report) RejectionTable() []ReasonCount {
	out := make([]ReasonCount, 0, len(r.Stats.Rejections))
	for _, reason := range pipeline.Reasons() {
		out = append(out, ReasonCount{Reason: reason.String(), Count: r.Stats.Rejections[reason]})
	}
	return out
}
