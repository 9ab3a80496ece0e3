package pipeline_test

import (
	"github.com/bartek5186/bb2feed/internal/catalog"
	"github.com/bartek5186/bb2feed/internal/pipeline"
)

// poprawny produkt z pełnym zestawem danych w katalogu
func validProduct(id int64, sku, ean string) catalog.RawProduct {
	return catalog.RawProduct{
		ID:             id,
		SKU:            sku,
		EAN13:          ean,
		Condition:      "new",
		WholesalePrice: 5.0,
		Width:          10,
		Height:         10,
		Depth:          10,
		Weight:         1.0,
		CategoryID:     1,
		CategoryName:   "Jardín",
	}
}

func catalogWith(stock int, products ...catalog.RawProduct) *catalog.Catalog {
	cat := catalog.NewCatalog()
	cat.Categories = []catalog.Category{{ID: 1, Name: "Jardín", Preferred: true}}
	for _, p := range products {
		cat.Products = append(cat.Products, p)
		cat.Stock.SetProduct(p.SKU, stock)
		cat.Descriptions[p.SKU] = catalog.Description{SKU: p.SKU, Name: "Garden Hose", Text: "Long green hose"}
	}
	return cat
}

func testConfig() pipeline.Config {
	return pipeline.Config{
		VATRate:           0.22,
		MarginRate:        0.20,
		FixedFeeEUR:       0.75,
		CurrencyRate:      1,
		Currency:          "EUR",
		Locale:            "it-IT",
		MinPriceEUR:       6,
		MaxPriceEUR:       500,
		MaxWeight:         50,
		MaxContentVolume:  100000,
		MinStock:          2,
		TitleMaxLen:       100,
		DescriptionMaxLen: 2000,
		DefaultTitle:      "Product",
	}
}

type fixedMapper string

func (m fixedMapper) Category(string) string { return string(m) }
