// internal/marketplaces/manomano/manomano.go
package manomano

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/bartek5186/bb2feed/internal/marketplaces"
	"github.com/bartek5186/bb2feed/internal/pipeline"
	"github.com/rs/zerolog"
)

type Config struct {
	Brand           string `json:"brand"`
	ConditionLabel  string `json:"condition_label"`
	ShippingCost    string `json:"shipping_cost"`
	DeliveryTime    string `json:"delivery_time"`
	Warranty        string `json:"warranty"`
	OriginCountry   string `json:"origin_country"`
	DefaultCategory string `json:"default_category"`
}

// DefaultConfig – wartości dla rynku włoskiego.
func DefaultConfig() Config {
	return Config{
		Brand:           "Pop Pulse Emporium",
		ConditionLabel:  "Nuovo",
		ShippingCost:    "0",
		DeliveryTime:    "3-5 giorni",
		Warranty:        "24 mesi",
		OriginCountry:   "EU",
		DefaultCategory: "Bricolage",
	}
}

var columns = []string{
	"sku", "ean", "title", "description", "brand", "category", "price", "quantity",
	"condition", "weight", "length", "width", "height",
	"image_url", "image_url_2", "image_url_3", "image_url_4",
	"shipping_cost", "delivery_time", "warranty", "origin_country",
	"material", "color", "size",
}

// słowo kluczowe w nazwie kategorii BigBuy (hiszpańskiej) -> kategoria ManoMano.
// Kolejność ma znaczenie: wygrywa pierwsze dopasowanie.
var categoryMapping = []struct{ key, label string }{
	{"bricolaje", "Bricolage"},
	{"herramientas", "Outillage"},
	{"jardín", "Jardin"},
	{"jardin", "Jardin"},
	{"hogar", "Maison"},
	{"cocina", "Cuisine"},
	{"iluminación", "Éclairage"},
	{"iluminacion", "Éclairage"},
	{"baño", "Salle de bain"},
	{"bano", "Salle de bain"},
	{"construcción", "Construction"},
	{"construccion", "Construction"},
	{"electricidad", "Électricité"},
	{"fontanería", "Plomberie"},
	{"fontaneria", "Plomberie"},
	{"pintura", "Peinture"},
	{"suelos", "Sol"},
	{"tejados", "Toiture"},
	{"ventanas", "Menuiserie"},
	{"puertas", "Menuiserie"},
	{"calefacción", "Chauffage"},
	{"calefaccion", "Chauffage"},
}

// drugie podejście, ogólniejsze słowa
var fallbackMapping = []struct {
	words []string
	label string
}{
	{[]string{"tool", "herramienta", "útil"}, "Outillage"},
	{[]string{"garden", "jardín", "exterior"}, "Jardin"},
	{[]string{"home", "casa", "hogar", "maison"}, "Maison"},
}

type Feed struct {
	log zerolog.Logger
	cfg Config
}

func (f *Feed) Name() string      { return "manomano" }
func (f *Feed) Columns() []string { return columns }

func (f *Feed) Category(sourceCategory string) string {
	name := strings.ToLower(sourceCategory)
	for _, m := range categoryMapping {
		if strings.Contains(name, m.key) {
			return m.label
		}
	}
	for _, m := range fallbackMapping {
		for _, w := range m.words {
			if strings.Contains(name, w) {
				return m.label
			}
		}
	}
	return f.cfg.DefaultCategory
}

func (f *Feed) Record(r pipeline.OutputRow) []string {
	return []string{
		r.SKU,
		r.EAN,
		r.Title,
		r.Description,
		f.cfg.Brand,
		r.Category,
		marketplaces.Money(r.Price),
		strconv.Itoa(r.Quantity),
		f.cfg.ConditionLabel,
		marketplaces.Number(r.Weight),
		marketplaces.Number(r.Depth),
		marketplaces.Number(r.Width),
		marketplaces.Number(r.Height),
		r.Images[0],
		r.Images[1],
		r.Images[2],
		r.Images[3],
		f.cfg.ShippingCost,
		f.cfg.DeliveryTime,
		f.cfg.Warranty,
		f.cfg.OriginCountry,
		"", "", "", // material, color, size – API ich nie podaje
	}
}

func factory(log zerolog.Logger, raw json.RawMessage) (marketplaces.Feed, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}
	log.Debug().Str("brand", cfg.Brand).Str("condition", cfg.ConditionLabel).Msg("feed configured")
	return &Feed{log: log, cfg: cfg}, nil
}

func init() {
	marketplaces.Register("manomano", factory)
}
