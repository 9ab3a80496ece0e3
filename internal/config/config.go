// internal/config/config.go
package conf

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Główny config aplikacji
type Config struct {
	Marketplace     string             `json:"marketplace"` // domyślny profil, -marketplace nadpisuje
	Market          string             `json:"market"`      // kod kraju, -market nadpisuje
	Seed            *int64             `json:"seed,omitempty"`
	IntervalMinutes int                `json:"interval_minutes"` // 0 = jeden przebieg
	OutputDir       string             `json:"output_dir"`
	LogPath         string             `json:"log_path"`
	EnvFile         string             `json:"env_file"`
	Source          Source             `json:"source"`
	Store           Store              `json:"store"`
	Markets         map[string]Market  `json:"markets"`
	Profiles        map[string]Profile `json:"profiles"`
}

// Source – połączenie z API BigBuy. Klucz API nie trafia do pliku, tylko do env.
type Source struct {
	BaseURL        string `json:"base_url"`
	RequestDelayMs int    `json:"request_delay_ms"`
	TimeoutSec     int    `json:"timeout_sec"`
	CacheBuster    bool   `json:"cache_buster"`
}

// Store – opcjonalna baza eksportu. Pusty driver = wyłączona.
type Store struct {
	Driver string `json:"driver"` // sqlite | sqlite3 | postgres | mysql
	DSN    string `json:"dsn"`
}

type Market struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"` // EUR -> waluta
	Language string  `json:"language"`
	Locale   string  `json:"locale"`
}

// Profile – reguły i układ feedu jednego marketplace.
type Profile struct {
	Rules     Rules           `json:"rules"`
	Selection Selection       `json:"selection"`
	Feed      json.RawMessage `json:"feed,omitempty"` // surowy JSON dla fabryki feedu
}

type Rules struct {
	VATRate           float64 `json:"vat_rate"`
	MarginRate        float64 `json:"margin_rate"`
	FixedFeeEUR       float64 `json:"fixed_fee_eur"`
	MinPriceEUR       float64 `json:"min_price_eur"`
	MaxPriceEUR       float64 `json:"max_price_eur"`
	MaxWeight         float64 `json:"max_weight"`
	MaxContentVolume  float64 `json:"max_content_volume"`
	MinStock          int     `json:"min_stock"`
	SampleSize        int     `json:"sample_size"`
	ShuffleProducts   bool    `json:"shuffle_products"`
	TitleMaxLen       int     `json:"title_max_len"`
	DescriptionMaxLen int     `json:"description_max_len"`
	DefaultTitle      string  `json:"default_title"`
}

type Selection struct {
	ExcludedKeywords      []string `json:"excluded_keywords"`
	PreferredKeywords     []string `json:"preferred_keywords"`
	CategoryLimit         int      `json:"category_limit"`
	ProductLimit          int      `json:"product_limit"`
	PreferredProductLimit int      `json:"preferred_product_limit"`
}

func LoadOrCreate(path string) (*Config, bool, error) {
	// upewnij się, że katalog istnieje
	_ = os.MkdirAll(filepath.Dir(path), 0o755)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := Save(path, cfg); err != nil {
				return nil, false, fmt.Errorf("błąd zapisu domyślnego configa: %w", err)
			}
			return cfg, true, nil
		}
		return nil, false, fmt.Errorf("błąd otwierania configa: %w", err)
	}
	defer f.Close()

	cfg := &Config{}
	if err := json.NewDecoder(f).Decode(cfg); err != nil {
		return nil, false, fmt.Errorf("błąd parsowania configa: %w", err)
	}
	cfg.fillDefaults()
	return cfg, false, nil
}

func Save(path string, cfg *Config) error {
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}

// brakujące sekcje z domyślnych, żeby stary plik dalej działał
func (c *Config) fillDefaults() {
	def := Default()
	if c.Marketplace == "" {
		c.Marketplace = def.Marketplace
	}
	if c.Market == "" {
		c.Market = def.Market
	}
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	if c.LogPath == "" {
		c.LogPath = def.LogPath
	}
	if c.Source.BaseURL == "" {
		c.Source.BaseURL = def.Source.BaseURL
	}
	if len(c.Markets) == 0 {
		c.Markets = def.Markets
	}
	if len(c.Profiles) == 0 {
		c.Profiles = def.Profiles
	}
}

var (
	ErrUnknownMarketplace = errors.New("unknown marketplace profile")
	ErrUnknownMarket      = errors.New("unknown market")
)

// ClockSeed – ziarno z zegara: godzina + dzień miesiąca * 24.
func ClockSeed(t time.Time) int64 {
	return int64(t.Hour() + t.Day()*24)
}

// SeedAt zwraca stałe ziarno z configu, a bez niego ClockSeed(now).
func (c *Config) SeedAt(now time.Time) int64 {
	if c.Seed != nil {
		return *c.Seed
	}
	return ClockSeed(now)
}

func (c *Config) Interval() time.Duration {
	if c.IntervalMinutes <= 0 {
		return 0
	}
	return time.Duration(c.IntervalMinutes) * time.Minute
}
