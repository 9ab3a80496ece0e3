package pipeline

import "math"

// Pricer liczy cenę detaliczną z ceny hurtowej:
//
//	eur   = round2(wholesale * (1+vat) * (1+margin) + fee)
//	local = round2(eur * rate)
//
// Zaokrąglenie: połówki od zera (math.Round).
type Pricer struct {
	VATRate      float64
	MarginRate   float64
	FixedFeeEUR  float64
	CurrencyRate float64
}

// RetailEUR – cena brutto w EUR.
func (p Pricer) RetailEUR(wholesaleEUR float64) float64 {
	// float64(...) wyklucza FMA
	gross := float64(wholesaleEUR * (1 + p.VATRate) * (1 + p.MarginRate))
	return RoundCents(gross + p.FixedFeeEUR)
}

// Localize przelicza kwotę w EUR na walutę rynku.
func (p Pricer) Localize(eur float64) float64 {
	return RoundCents(eur * p.rate())
}

// Bound przelicza granicę ceny (EUR) na walutę rynku, bez zaokrąglania.
func (p Pricer) Bound(eur float64) float64 {
	return eur * p.rate()
}

// Price = Localize(RetailEUR(wholesale)).
func (p Pricer) Price(wholesaleEUR float64) float64 {
	return p.Localize(p.RetailEUR(wholesaleEUR))
}

func (p Pricer) rate() float64 {
	if p.CurrencyRate <= 0 {
		return 1
	}
	return p.CurrencyRate
}

// RoundCents zaokrągla do 2 miejsc, połówki od zera.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
