package kaufland_test

import (
	"strings"
	"testing"

	"github.com/bartek5186/bb2feed/internal/marketplaces"
	_ "github.com/bartek5186/bb2feed/internal/marketplaces/kaufland"
	"github.com/bartek5186/bb2feed/internal/pipeline"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	f, err := marketplaces.Build("kaufland", zerolog.Nop(), nil)
	require.NoError(t, err)

	long := strings.Repeat("ą", 250)
	row := pipeline.OutputRow{
		ProductID: 77, EAN: "4006381333931", Locale: "it-IT", Category: f.Category("whatever"),
		Title: "Hose", Description: long, Price: 9, Quantity: 5, ContentVolume: 1000, Currency: "EUR",
	}
	rec := f.Record(row)
	require.Len(t, rec, len(f.Columns()))

	byCol := map[string]string{}
	for i, c := range f.Columns() {
		byCol[c] = rec[i]
	}
	assert.Equal(t, "77", byCol["id_offer"])
	assert.Equal(t, "Gardening & DIY", byCol["category"])
	assert.Equal(t, "9.00", byCol["price_cs"])
	assert.Equal(t, "1000", byCol["content_volume"])
	assert.Equal(t, strings.Repeat("ą", 200)+"...", byCol["short_description"])
	assert.Equal(t, long, byCol["description"])
	assert.Equal(t, "2", byCol["handling_time"])

	// krótki opis bez "..."
	row.Description = "short"
	byShort := f.Record(row)
	assert.Equal(t, "short", byShort[5])
}

func TestRegistry(t *testing.T) {
	assert.Contains(t, marketplaces.Names(), "kaufland")
	_, err := marketplaces.Build("nope", zerolog.Nop(), nil)
	assert.Error(t, err)
}
