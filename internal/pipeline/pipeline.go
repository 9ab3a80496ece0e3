package pipeline

import (
	"math/rand"
	"strings"
	"unicode/utf8"

	"github.com/bartek5186/bb2feed/internal/catalog"
	"github.com/rs/zerolog"
)

const progressEvery = 1000

// CategoryMapper zamienia nazwę kategorii dostawcy na etykietę marketplace.
type CategoryMapper interface {
	Category(sourceCategory string) string
}

// Result – wiersze gotowe do eksportu i statystyki przebiegu.
type Result struct {
	Rows  []OutputRow
	Stats Stats
}

// Pipeline: walidacja -> cena -> ilość -> deduplikacja -> próbka.
type Pipeline struct {
	log       zerolog.Logger
	cfg       Config
	validator Validator
	pricer    Pricer
	mapper    CategoryMapper
}

func New(log zerolog.Logger, cfg Config, mapper CategoryMapper) *Pipeline {
	return &Pipeline{
		log:       log,
		cfg:       cfg,
		validator: NewValidator(cfg),
		pricer:    cfg.Pricer(),
		mapper:    mapper,
	}
}

// Run przetwarza wszystkie produkty katalogu. Jedyne źródło losowości to rng.
func (p *Pipeline) Run(cat *catalog.Catalog, rng *rand.Rand) Result {
	stats := NewStats()
	stats.CategoriesProcessed = len(cat.Categories)
	stats.ProductsFetched = len(cat.Products)

	products := cat.Products
	if p.cfg.ShuffleProducts {
		products = append([]catalog.RawProduct(nil), cat.Products...)
		rng.Shuffle(len(products), func(i, j int) { products[i], products[j] = products[j], products[i] })
	}

	accepted := make([]OutputRow, 0, len(products)/4)
	for _, prod := range products {
		stats.TotalProcessed++

		row, out := p.Evaluate(prod, cat)
		if !out.Accepted() {
			stats.reject(out)
		} else {
			stats.Accepted++
			accepted = append(accepted, row)
		}

		if stats.TotalProcessed%progressEvery == 0 {
			p.log.Debug().
				Int("processed", stats.TotalProcessed).
				Int("accepted", stats.Accepted).
				Msg("validation progress")
		}
	}

	unique, dropped := Dedup(accepted)
	stats.DuplicatesDropped = dropped

	rows := Sample(unique, p.cfg.SampleSize, rng)
	stats.SampledOut = len(unique) - len(rows)
	stats.summarize(rows)

	ev := p.log.Info().
		Int("processed", stats.TotalProcessed).
		Int("accepted", stats.Accepted).
		Int("rejected", stats.Rejected()).
		Int("duplicates", stats.DuplicatesDropped).
		Int("sampled_out", stats.SampledOut).
		Int("exported", stats.Exported)
	for _, r := range Reasons() {
		if n := stats.Rejections[r]; n > 0 {
			ev = ev.Int(r.String(), n)
		}
	}
	ev.Msg("pipeline finished")

	return Result{Rows: rows, Stats: stats}
}

// Evaluate sprawdza jeden produkt: łańcuch walidacji, potem filtry wagi,
// objętości i ceny, na końcu ilość. Odrzucenie zawsze ma dokładnie jeden powód.
func (p *Pipeline) Evaluate(prod catalog.RawProduct, cat *catalog.Catalog) (OutputRow, Outcome) {
	out := p.validator.Validate(prod, cat)
	if !out.Accepted() {
		return OutputRow{}, out
	}

	if p.cfg.MaxWeight > 0 && prod.Weight > p.cfg.MaxWeight {
		return OutputRow{}, rejected(ReasonWeightTooHigh)
	}

	volume := prod.ContentVolume()
	if p.cfg.MaxContentVolume > 0 && volume > p.cfg.MaxContentVolume {
		return OutputRow{}, rejected(ReasonVolumeTooHigh)
	}

	priceEUR := p.pricer.RetailEUR(prod.WholesalePrice)
	price := p.pricer.Localize(priceEUR)
	if p.cfg.MaxPriceEUR > 0 && price > p.pricer.Bound(p.cfg.MaxPriceEUR) {
		return OutputRow{}, rejected(ReasonPriceTooHigh)
	}
	if p.cfg.MinPriceEUR > 0 && price < p.pricer.Bound(p.cfg.MinPriceEUR) {
		return OutputRow{}, rejected(ReasonPriceTooLow)
	}

	qty := Quantize(out.TotalStock)
	if qty <= 0 {
		return OutputRow{}, rejected(ReasonZeroQuantity)
	}

	return p.buildRow(prod, cat, price, priceEUR, qty, out.TotalStock), out
}

func (p *Pipeline) buildRow(prod catalog.RawProduct, cat *catalog.Catalog, price, priceEUR float64, qty, stock int) OutputRow {
	desc := cat.Descriptions[prod.SKU]
	title := strings.TrimSpace(desc.Name)
	if title == "" {
		title = p.cfg.DefaultTitle
	}

	category := prod.CategoryName
	if p.mapper != nil {
		category = p.mapper.Category(prod.CategoryName)
	}

	row := OutputRow{
		ProductID:      prod.ID,
		SKU:            prod.SKU,
		EAN:            strings.TrimSpace(prod.EAN13),
		Title:          Truncate(title, p.cfg.TitleMaxLen),
		Description:    Truncate(desc.Text, p.cfg.DescriptionMaxLen),
		Category:       category,
		SourceCategory: prod.CategoryName,
		Price:          price,
		PriceEUR:       priceEUR,
		Currency:       p.cfg.Currency,
		Locale:         p.cfg.Locale,
		Quantity:       qty,
		Stock:          stock,
		Condition:      conditionNew,
		Weight:         RoundCents(prod.Weight),
		Width:          RoundCents(prod.Width),
		Height:         RoundCents(prod.Height),
		Depth:          RoundCents(prod.Depth),
		ContentVolume:  RoundCents(prod.ContentVolume()),
	}
	if set, ok := cat.Images[prod.ID]; ok {
		for i := range row.Images {
			row.Images[i] = set.URL(i)
		}
	}
	return row
}

// Truncate przycina s do n znaków (runy, nie bajty). n <= 0 = bez limitu.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
