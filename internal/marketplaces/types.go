// internal/marketplaces/types.go
package marketplaces

import (
	"encoding/json"
	"strconv"

	"github.com/bartek5186/bb2feed/internal/pipeline"
	"github.com/rs/zerolog"
)

// Feed – układ pliku dla konkretnego marketplace.
type Feed interface {
	Name() string
	Category(sourceCategory string) string // etykieta kategorii marketplace
	Columns() []string
	Record(r pipeline.OutputRow) []string // wartości w kolejności Columns()
}

type Factory func(log zerolog.Logger, raw json.RawMessage) (Feed, error)

// Money formatuje kwotę z dwoma miejscami po przecinku.
func Money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Number formatuje liczbę najkrócej, bez wykładnika.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
