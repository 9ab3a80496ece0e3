package conf

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/bartek5186/bb2feed/internal/bigbuy"
	"github.com/bartek5186/bb2feed/internal/catalog"
	"github.com/bartek5186/bb2feed/internal/pipeline"
	"github.com/joho/godotenv"
)

const APIKeyEnv = "BIGBUY_API_KEY"

var ErrMissingAPIKey = errors.New(APIKeyEnv + " is not set")

// LoadEnv wczytuje plik .env do środowiska procesu. Brak pliku nie jest błędem,
// zmienne już ustawione w środowisku mają pierwszeństwo.
func LoadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// APIKey zwraca klucz BigBuy ze środowiska.
func APIKey() (string, error) {
	key := strings.TrimSpace(os.Getenv(APIKeyEnv))
	if key == "" {
		return "", ErrMissingAPIKey
	}
	return key, nil
}

// Resolved – wszystko, czego potrzebuje jeden przebieg, już bez map i nadpisań.
type Resolved struct {
	Marketplace string
	Country     string
	Market      Market
	Rules       pipeline.Config
	Selection   catalog.Selection
	Feed        json.RawMessage
	Source      bigbuy.Config
}

// Resolve składa konfigurację przebiegu dla marketplace i rynku.
// Puste argumenty = wartości z pliku.
func (c *Config) Resolve(marketplace, market, apiKey string) (*Resolved, error) {
	if marketplace == "" {
		marketplace = c.Marketplace
	}
	if market == "" {
		market = c.Market
	}
	country := strings.ToUpper(strings.TrimSpace(market))

	prof, ok := c.Profiles[marketplace]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMarketplace, marketplace)
	}
	m, ok := c.Markets[country]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMarket, market)
	}
	if err := validate(prof.Rules, m); err != nil {
		return nil, fmt.Errorf("profile %q / market %q: %w", marketplace, country, err)
	}

	r := prof.Rules
	return &Resolved{
		Marketplace: marketplace,
		Country:     country,
		Market:      m,
		Rules: pipeline.Config{
			VATRate:           r.VATRate,
			MarginRate:        r.MarginRate,
			FixedFeeEUR:       r.FixedFeeEUR,
			CurrencyRate:      m.Rate,
			Currency:          m.Currency,
			Locale:            m.Locale,
			MinPriceEUR:       r.MinPriceEUR,
			MaxPriceEUR:       r.MaxPriceEUR,
			MaxWeight:         r.MaxWeight,
			MaxContentVolume:  r.MaxContentVolume,
			MinStock:          r.MinStock,
			SampleSize:        r.SampleSize,
			ShuffleProducts:   r.ShuffleProducts,
			TitleMaxLen:       r.TitleMaxLen,
			DescriptionMaxLen: r.DescriptionMaxLen,
			DefaultTitle:      r.DefaultTitle,
		},
		Selection: catalog.Selection{
			ExcludedKeywords:      prof.Selection.ExcludedKeywords,
			PreferredKeywords:     prof.Selection.PreferredKeywords,
			CategoryLimit:         prof.Selection.CategoryLimit,
			ProductLimit:          prof.Selection.ProductLimit,
			PreferredProductLimit: prof.Selection.PreferredProductLimit,
			Language:              m.Language,
		},
		Feed: prof.Feed,
		Source: bigbuy.Config{
			BaseURL:      c.Source.BaseURL,
			APIKey:       apiKey,
			RequestDelay: time.Duration(c.Source.RequestDelayMs) * time.Millisecond,
			Timeout:      time.Duration(c.Source.TimeoutSec) * time.Second,
			CacheBuster:  c.Source.CacheBuster,
		},
	}, nil
}

func validate(r Rules, m Market) error {
	switch {
	case r.VATRate < 0 || r.MarginRate < 0 || r.FixedFeeEUR < 0:
		return errors.New("price rules must not be negative")
	case m.Rate <= 0:
		return errors.New("market rate must be positive")
	case m.Currency == "":
		return errors.New("market currency is empty")
	case m.Language == "":
		return errors.New("market language is empty")
	case r.MaxPriceEUR > 0 && r.MinPriceEUR > r.MaxPriceEUR:
		return fmt.Errorf("min_price_eur %.2f > max_price_eur %.2f", r.MinPriceEUR, r.MaxPriceEUR)
	case r.MinStock < 0 || r.SampleSize < 0:
		return errors.New("min_stock and sample_size must not be negative")
	}
	return nil
}
