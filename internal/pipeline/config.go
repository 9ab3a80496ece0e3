package pipeline

// Config – niezmienne reguły jednego przebiegu. Budowane w warstwie konfiguracji
// i przekazywane do etapów przy tworzeniu.
type Config struct {
	// ceny
	VATRate      float64 // np. 0.22
	MarginRate   float64 // np. 0.30
	FixedFeeEUR  float64 // stała dopłata za sztukę
	CurrencyRate float64 // EUR -> waluta rynku, 1.0 dla strefy euro
	Currency     string
	Locale       string

	// filtry (0 = brak limitu)
	MinPriceEUR      float64
	MaxPriceEUR      float64
	MaxWeight        float64 // kg
	MaxContentVolume float64 // cm3
	MinStock         int

	// wynik
	SampleSize        int // 0 = bez próbkowania
	ShuffleProducts   bool
	TitleMaxLen       int // w znakach, 0 = bez przycinania
	DescriptionMaxLen int
	DefaultTitle      string
}

// Pricer zwraca silnik cen dla tej konfiguracji.
func (c Config) Pricer() Pricer {
	return Pricer{
		VATRate:      c.VATRate,
		MarginRate:   c.MarginRate,
		FixedFeeEUR:  c.FixedFeeEUR,
		CurrencyRate: c.CurrencyRate,
	}
}
