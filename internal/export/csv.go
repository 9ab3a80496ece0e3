package export

import (
	"encoding/csv"
	"io"

	"github.com/bartek5186/bb2feed/internal/marketplaces"
	"github.com/bartek5186/bb2feed/internal/pipeline"
)

// WriteCSV zapisuje nagłówek i wiersze w układzie feedu. Pusty zbiór = sam nagłówek.
func WriteCSV(w io.Writer, feed marketplaces.Feed, rows []pipeline.OutputRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(feed.Columns()); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(feed.Record(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
