package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/bartek5186/bb2feed/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestProductFromRecord(t *testing.T) {
	r := catalog.Record{
		"id":             json.Number("15"),
		"sku":            " S-15 ",
		"ean13":          "4006381333931",
		"condition":      "NEW",
		"wholesalePrice": json.Number("9.90"),
		"width":          "10",
		"height":         json.Number("20"),
		"depth":          nil,
		"weight":         1.5,
	}
	p := catalog.ProductFromRecord(r, catalog.Category{ID: 3, Name: "Hogar"})
	assert.Equal(t, int64(15), p.ID)
	assert.Equal(t, "S-15", p.SKU)
	assert.Equal(t, 9.9, p.WholesalePrice)
	assert.Equal(t, 0.0, p.Depth)
	assert.Equal(t, 0.0, p.ContentVolume())
	assert.Equal(t, "Hogar", p.CategoryName)
	assert.Equal(t, int64(3), p.CategoryID)
}

func TestStockFromRecord_SumsWarehouses(t *testing.T) {
	r := catalog.Record{
		"sku": "S1",
		"stocks": []any{
			map[string]any{"quantity": json.Number("3"), "minHandlingDays": json.Number("1")},
			map[string]any{"quantity": json.Number("4")},
			map[string]any{"quantity": "bad"},
			"garbage",
		},
	}
	sku, qty := catalog.StockFromRecord(r)
	assert.Equal(t, "S1", sku)
	assert.Equal(t, 7, qty)
}

func TestImageSetFromRecord_FirstFour(t *testing.T) {
	var imgs []any
	for _, u := range []string{"a", "", "b", "c", "d", "e"} {
		imgs = append(imgs, map[string]any{"url": u})
	}
	set := catalog.ImageSetFromRecord(catalog.Record{"id": json.Number("9"), "images": imgs})
	assert.Equal(t, int64(9), set.ProductID)
	assert.Equal(t, []string{"a", "b", "c", "d"}, set.URLs)
	assert.Equal(t, "", set.URL(7))
}

func TestStockLedger_Total(t *testing.T) {
	l := catalog.NewStockLedger()
	l.SetProduct("P", 2)
	l.SetProduct("ZERO", 0)
	l.SetVariation("V1", 3)
	l.SetVariation("V2", 4)
	l.SetVariation("V2", 5) // nadpisuje

	assert.Equal(t, 10, l.Total("P", []string{"V1", "V2", "MISSING"}))
	assert.Equal(t, 0, l.Total("ZERO", nil))
	assert.Equal(t, 3, l.Total("NO-DIRECT", []string{"V1"}))
	n, v := l.Len()
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, v)
}
