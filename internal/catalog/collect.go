package catalog

import (
	"context"
	"math/rand"

	"github.com/rs/zerolog"
)

// Collector zbiera dane wszystkich wybranych kategorii w jeden Catalog.
// Błędy źródła nie przerywają przebiegu: kategoria bez danych jest po prostu pusta.
type Collector struct {
	log zerolog.Logger
	src Source
	sel Selection
}

func NewCollector(log zerolog.Logger, src Source, sel Selection) *Collector {
	return &Collector{log: log, src: src, sel: sel}
}

// Collect pobiera kategorie, a potem dla każdej: produkty, warianty, stany,
// opisy i zdjęcia. rng decyduje o kolejności kategorii i próbce produktów.
func (c *Collector) Collect(ctx context.Context, rng *rand.Rand) *Catalog {
	cat := NewCatalog()

	taxonomies, err := c.src.Taxonomies(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("taxonomies unavailable, nothing to collect")
		return cat
	}

	selected, excluded := SelectCategories(taxonomies, c.sel, rng)
	for _, name := range excluded {
		c.log.Debug().Str("category", name).Msg("category excluded by keyword")
	}
	c.log.Info().
		Int("available", len(taxonomies)).
		Int("excluded", len(excluded)).
		Int("selected", len(selected)).
		Msg("categories selected")

	for i, category := range selected {
		if ctx.Err() != nil {
			c.log.Warn().Err(ctx.Err()).Msg("collection interrupted")
			break
		}
		c.collectCategory(ctx, cat, category, rng)
		cat.Categories = append(cat.Categories, category)

		nProd, nVar := cat.Stock.Len()
		c.log.Info().
			Int("n", i+1).
			Int("of", len(selected)).
			Str("category", category.Name).
			Int("products_total", len(cat.Products)).
			Int("descriptions_total", len(cat.Descriptions)).
			Int("image_sets_total", len(cat.Images)).
			Int("stock_products", nProd).
			Int("stock_variations", nVar).
			Msg("category collected")
	}
	return cat
}

func (c *Collector) collectCategory(ctx context.Context, cat *Catalog, category Category, rng *rand.Rand) {
	log := c.log.With().Int64("category_id", category.ID).Str("category", category.Name).Logger()

	// produkty: tasowanie + limit na kategorię
	if recs, ok := c.fetch(log, "products", func() ([]Record, error) { return c.src.Products(ctx, category.ID) }); ok {
		rng.Shuffle(len(recs), func(i, j int) { recs[i], recs[j] = recs[j], recs[i] })
		if limit := c.sel.limitFor(category); limit > 0 && len(recs) > limit {
			recs = recs[:limit]
		}
		for _, r := range recs {
			cat.Products = append(cat.Products, ProductFromRecord(r, category))
		}
	}

	if recs, ok := c.fetch(log, "variations", func() ([]Record, error) { return c.src.Variations(ctx, category.ID) }); ok {
		for _, r := range recs {
			parent, sku := VariationFromRecord(r)
			if parent == 0 || sku == "" {
				continue
			}
			cat.Variants[parent] = appendUnique(cat.Variants[parent], sku)
		}
	}

	if recs, ok := c.fetch(log, "product stock", func() ([]Record, error) { return c.src.ProductStock(ctx, category.ID) }); ok {
		for _, r := range recs {
			cat.Stock.SetProduct(StockFromRecord(r))
		}
	}

	if recs, ok := c.fetch(log, "variation stock", func() ([]Record, error) { return c.src.VariationStock(ctx, category.ID) }); ok {
		for _, r := range recs {
			cat.Stock.SetVariation(StockFromRecord(r))
		}
	}

	if recs, ok := c.fetch(log, "information", func() ([]Record, error) {
		return c.src.Information(ctx, category.ID, c.sel.Language)
	}); ok {
		for _, r := range recs {
			d := DescriptionFromRecord(r)
			if d.SKU == "" {
				continue
			}
			cat.Descriptions[d.SKU] = d
		}
	}

	if recs, ok := c.fetch(log, "images", func() ([]Record, error) { return c.src.Images(ctx, category.ID) }); ok {
		for _, r := range recs {
			set := ImageSetFromRecord(r)
			if set.ProductID == 0 || len(set.URLs) == 0 {
				continue
			}
			cat.Images[set.ProductID] = set
		}
	}
}

// fetch wywołuje źródło i zamienia błąd/pustą odpowiedź na ostrzeżenie.
func (c *Collector) fetch(log zerolog.Logger, what string, call func() ([]Record, error)) ([]Record, bool) {
	recs, err := call()
	if err != nil {
		log.Warn().Err(err).Str("resource", what).Msg("fetch failed, treating as no data")
		return nil, false
	}
	if len(recs) == 0 {
		log.Debug().Str("resource", what).Msg("no data")
		return nil, false
	}
	log.Debug().Str("resource", what).Int("records", len(recs)).Msg("fetched")
	return recs, true
}

// ten sam wariant może przyjść w kilku kategoriach – liczymy go raz
func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
