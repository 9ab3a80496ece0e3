// internal/marketplaces/kaufland/kaufland.go
package kaufland

import (
	"encoding/json"
	"strconv"

	"github.com/bartek5186/bb2feed/internal/marketplaces"
	"github.com/bartek5186/bb2feed/internal/pipeline"
	"github.com/rs/zerolog"
)

type Config struct {
	Manufacturer        string `json:"manufacturer"`
	Category            string `json:"category"`
	ConditionLabel      string `json:"condition_label"`
	ShortDescriptionLen int    `json:"short_description_len"`
	HandlingTime        int    `json:"handling_time"`
	DeliveryTimeMin     int    `json:"delivery_time_min"`
	DeliveryTimeMax     int    `json:"delivery_time_max"`
}

func DefaultConfig() Config {
	return Config{
		Manufacturer:        "Pop Pulse Emporium",
		Category:            "Gardening & DIY",
		ConditionLabel:      "NEW",
		ShortDescriptionLen: 200,
		HandlingTime:        2,
		DeliveryTimeMin:     3,
		DeliveryTimeMax:     5,
	}
}

var columns = []string{
	"id_offer", "ean", "locale", "category", "title", "short_description", "description",
	"manufacturer", "picture_1", "picture_2", "picture_3", "picture_4",
	"price_cs", "quantity", "condition", "length", "width", "height", "weight",
	"content_volume", "currency", "handling_time", "delivery_time_max", "delivery_time_min",
}

type Feed struct {
	log zerolog.Logger
	cfg Config
}

func (f *Feed) Name() string             { return "kaufland" }
func (f *Feed) Columns() []string        { return columns }
func (f *Feed) Category(_ string) string { return f.cfg.Category }

// short_description: pierwsze N znaków opisu + "..." gdy przycięto
func (f *Feed) shortDescription(s string) string {
	short := pipeline.Truncate(s, f.cfg.ShortDescriptionLen)
	if short == s {
		return s
	}
	return short + "..."
}

func (f *Feed) Record(r pipeline.OutputRow) []string {
	return []string{
		strconv.FormatInt(r.ProductID, 10),
		r.EAN,
		r.Locale,
		r.Category,
		r.Title,
		f.shortDescription(r.Description),
		r.Description,
		f.cfg.Manufacturer,
		r.Images[0],
		r.Images[1],
		r.Images[2],
		r.Images[3],
		marketplaces.Money(r.Price),
		strconv.Itoa(r.Quantity),
		f.cfg.ConditionLabel,
		marketplaces.Number(r.Depth),
		marketplaces.Number(r.Width),
		marketplaces.Number(r.Height),
		marketplaces.Number(r.Weight),
		marketplaces.Number(r.ContentVolume),
		r.Currency,
		strconv.Itoa(f.cfg.HandlingTime),
		strconv.Itoa(f.cfg.DeliveryTimeMax),
		strconv.Itoa(f.cfg.DeliveryTimeMin),
	}
}

func factory(log zerolog.Logger, raw json.RawMessage) (marketplaces.Feed, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}
	log.Debug().Str("category", cfg.Category).Str("manufacturer", cfg.Manufacturer).Msg("feed configured")
	return &Feed{log: log, cfg: cfg}, nil
}

func init() {
	marketplaces.Register("kaufland", factory)
}
