package pipeline

import "github.com/bartek5186/bb2feed/internal/catalog"

// OutputRow – gotowy rekord feedu, niezależny od formatu marketplace.
type OutputRow struct {
	ProductID      int64
	SKU            string
	EAN            string
	Title          string
	Description    string
	Category       string // etykieta kategorii marketplace
	SourceCategory string // nazwa kategorii u dostawcy

	Price    float64 // w walucie rynku
	PriceEUR float64
	Currency string
	Locale   string
	Quantity int
	Stock    int // potwierdzony stan, z którego policzono Quantity

	Condition     string
	Weight        float64
	Width         float64
	Height        float64
	Depth         float64
	ContentVolume float64

	Images [catalog.MaxImages]string
}
