package conf

import (
	"encoding/json"

	"github.com/bartek5186/bb2feed/internal/bigbuy"
)

var (
	excludedKeywords = []string{"erotic", "erotico", "adult", "sex", "sexy", "intimate", "lingerie", "sensualidad"}
	// preferowane: DIY, dom i ogród
	preferredKeywords = []string{"bricolaje", "herramientas", "jardín", "hogar", "cocina", "iluminación", "tool", "garden", "home", "diy"}
)

// Default zwraca konfigurację zapisywaną przy pierwszym uruchomieniu.
func Default() *Config {
	return &Config{
		Marketplace: "manomano",
		Market:      "IT",
		OutputDir:   "./out",
		LogPath:     "./logs/bb2feed.log",
		EnvFile:     ".env",
		Source: Source{
			BaseURL:        bigbuy.DefaultBaseURL,
			RequestDelayMs: 500,
			TimeoutSec:     60,
			CacheBuster:    true,
		},
		Markets: map[string]Market{
			"IT": {Currency: "EUR", Rate: 1.0, Language: "it", Locale: "it-IT"},
			"DE": {Currency: "EUR", Rate: 1.0, Language: "de", Locale: "de-DE"},
			"FR": {Currency: "EUR", Rate: 1.0, Language: "fr", Locale: "fr-FR"},
			"ES": {Currency: "EUR", Rate: 1.0, Language: "es", Locale: "es-ES"},
			"PL": {Currency: "PLN", Rate: 4.3, Language: "pl", Locale: "pl-PL"},
			"CZ": {Currency: "CZK", Rate: 25.0, Language: "cs", Locale: "cs-CZ"},
		},
		Profiles: map[string]Profile{
			"manomano": {
				Rules: Rules{
					VATRate:           0.22,
					MarginRate:        0.30,
					FixedFeeEUR:       0.75,
					MinPriceEUR:       6,
					MaxPriceEUR:       500,
					MaxWeight:         50,
					MaxContentVolume:  100000, // 100 l
					MinStock:          2,
					SampleSize:        20000,
					ShuffleProducts:   true,
					TitleMaxLen:       100,
					DescriptionMaxLen: 2000,
					DefaultTitle:      "Product",
				},
				Selection: Selection{
					ExcludedKeywords:      excludedKeywords,
					PreferredKeywords:     preferredKeywords,
					CategoryLimit:         15,
					ProductLimit:          400,
					PreferredProductLimit: 800,
				},
				Feed: mustRaw(map[string]any{
					"brand":            "Pop Pulse Emporium",
					"condition_label":  "Nuovo",
					"delivery_time":    "3-5 giorni",
					"default_category": "Bricolage",
				}),
			},
			"kaufland": {
				Rules: Rules{
					VATRate:      0.22,
					MarginRate:   0.20,
					FixedFeeEUR:  0.75,
					MinStock:     2,
					DefaultTitle: "Product",
				},
				Selection: Selection{
					ExcludedKeywords: excludedKeywords[:7],
					CategoryLimit:    10,
				},
				Feed: mustRaw(map[string]any{
					"category":              "Gardening & DIY",
					"short_description_len": 200,
				}),
			},
		},
	}
}

func mustRaw(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
