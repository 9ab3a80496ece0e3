package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/bartek5186/bb2feed/internal/catalog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fake source ----

type fakeSource struct {
	taxonomies    []catalog.Record
	taxonomiesErr error
	products      map[int64][]catalog.Record
	variations    map[int64][]catalog.Record
	stock         map[int64][]catalog.Record
	varStock      map[int64][]catalog.Record
	info          map[int64][]catalog.Record
	images        map[int64][]catalog.Record
	failProducts  map[int64]bool
	languages     []string
}

func (f *fakeSource) Taxonomies(context.Context) ([]catalog.Record, error) {
	return f.taxonomies, f.taxonomiesErr
}
func (f *fakeSource) Products(_ context.Context, id int64) ([]catalog.Record, error) {
	if f.failProducts[id] {
		return nil, errors.New("boom")
	}
	return f.products[id], nil
}
func (f *fakeSource) Variations(_ context.Context, id int64) ([]catalog.Record, error) {
	return f.variations[id], nil
}
func (f *fakeSource) ProductStock(_ context.Context, id int64) ([]catalog.Record, error) {
	return f.stock[id], nil
}
func (f *fakeSource) VariationStock(_ context.Context, id int64) ([]catalog.Record, error) {
	return f.varStock[id], nil
}
func (f *fakeSource) Information(_ context.Context, id int64, lang string) ([]catalog.Record, error) {
	f.languages = append(f.languages, lang)
	return f.info[id], nil
}
func (f *fakeSource) Images(_ context.Context, id int64) ([]catalog.Record, error) {
	return f.images[id], nil
}

func n(v string) json.Number { return json.Number(v) }

func stockRec(sku string, qty ...string) catalog.Record {
	var stocks []any
	for _, q := range qty {
		stocks = append(stocks, map[string]any{"quantity": n(q)})
	}
	return catalog.Record{"sku": sku, "stocks": stocks}
}

func TestCollector_BuildsCatalog(t *testing.T) {
	src := &fakeSource{
		taxonomies: []catalog.Record{
			{"id": n("1"), "name": "Jardín"},
			{"id": n("2"), "name": "Sexy Lingerie"},
		},
		products: map[int64][]catalog.Record{
			1: {{"id": n("10"), "sku": "P10"}, {"id": n("11"), "sku": "P11"}},
		},
		variations: map[int64][]catalog.Record{
			1: {{"product": n("10"), "sku": "V1"}, {"product": n("10"), "sku": "V1"}, {"product": n("10"), "sku": "V2"}},
		},
		stock:    map[int64][]catalog.Record{1: {stockRec("P10", "1", "1"), stockRec("P11", "0")}},
		varStock: map[int64][]catalog.Record{1: {stockRec("V1", "2"), stockRec("V2", "5")}},
		info: map[int64][]catalog.Record{
			1: {{"sku": "P10", "name": "Old"}, {"sku": "P10", "name": "Garden Hose", "description": "d"}},
		},
		images: map[int64][]catalog.Record{
			1: {{"id": n("10"), "images": []any{map[string]any{"url": "u1"}}}, {"id": n("11"), "images": []any{}}},
		},
	}
	sel := catalog.Selection{ExcludedKeywords: []string{"lingerie"}, Language: "it"}

	cat := catalog.NewCollector(zerolog.Nop(), src, sel).Collect(context.Background(), rand.New(rand.NewSource(1)))

	require.Len(t, cat.Categories, 1)
	assert.Equal(t, "Jardín", cat.Categories[0].Name)
	require.Len(t, cat.Products, 2)
	for _, p := range cat.Products {
		assert.Equal(t, "Jardín", p.CategoryName)
	}
	assert.Equal(t, []string{"V1", "V2"}, cat.Variants[10])
	assert.Equal(t, 2+2+5, cat.TotalStock(catalog.RawProduct{ID: 10, SKU: "P10"}))
	assert.Equal(t, 0, cat.TotalStock(catalog.RawProduct{ID: 11, SKU: "P11"}))
	assert.Equal(t, "Garden Hose", cat.Descriptions["P10"].Name)
	assert.Equal(t, []string{"u1"}, cat.Images[10].URLs)
	_, hasEmpty := cat.Images[11]
	assert.False(t, hasEmpty)
	assert.Equal(t, []string{"it"}, src.languages)
}

func TestCollector_ProductLimitPerCategory(t *testing.T) {
	var many []catalog.Record
	for i := 0; i < 50; i++ {
		many = append(many, catalog.Record{"id": n(strconv.Itoa(i + 1))})
	}
	src := &fakeSource{
		taxonomies: []catalog.Record{{"id": n("1"), "name": "Garden"}, {"id": n("2"), "name": "Other"}},
		products:   map[int64][]catalog.Record{1: many, 2: many},
	}
	sel := catalog.Selection{PreferredKeywords: []string{"garden"}, PreferredProductLimit: 20, ProductLimit: 5}

	cat := catalog.NewCollector(zerolog.Nop(), src, sel).Collect(context.Background(), rand.New(rand.NewSource(1)))

	counts := map[string]int{}
	for _, p := range cat.Products {
		counts[p.CategoryName]++
	}
	assert.Equal(t, 20, counts["Garden"])
	assert.Equal(t, 5, counts["Other"])
}

func TestCollector_FailSoft(t *testing.T) {
	src := &fakeSource{
		taxonomies:   []catalog.Record{{"id": n("1"), "name": "Broken"}, {"id": n("2"), "name": "Fine"}},
		products:     map[int64][]catalog.Record{2: {{"id": n("20"), "sku": "P20"}}},
		failProducts: map[int64]bool{1: true},
	}
	cat := catalog.NewCollector(zerolog.Nop(), src, catalog.Selection{}).Collect(context.Background(), rand.New(rand.NewSource(1)))

	assert.Len(t, cat.Categories, 2)
	require.Len(t, cat.Products, 1)
	assert.Equal(t, "P20", cat.Products[0].SKU)
}

func TestCollector_NoTaxonomies(t *testing.T) {
	src := &fakeSource{taxonomiesErr: errors.New("unauthorized")}
	cat := catalog.NewCollector(zerolog.Nop(), src, catalog.Selection{}).Collect(context.Background(), rand.New(rand.NewSource(1)))
	assert.Empty(t, cat.Categories)
	assert.Empty(t, cat.Products)
	assert.NotNil(t, cat.Descriptions)
}
