package catalog

// StockLedger trzyma stany magazynowe: bezpośrednie (po SKU produktu)
// i wariantów (po SKU wariantu).
type StockLedger struct {
	products   map[string]int
	variations map[string]int
}

func NewStockLedger() *StockLedger {
	return &StockLedger{
		products:   map[string]int{},
		variations: map[string]int{},
	}
}

// SetProduct zapisuje łączny stan SKU. Niedodatnie stany są pomijane,
// ponowny wpis (np. z innej kategorii) nadpisuje poprzedni.
func (l *StockLedger) SetProduct(sku string, qty int) {
	if sku == "" || qty <= 0 {
		return
	}
	l.products[sku] = qty
}

// SetVariation jak SetProduct, dla wariantów.
func (l *StockLedger) SetVariation(sku string, qty int) {
	if sku == "" || qty <= 0 {
		return
	}
	l.variations[sku] = qty
}

// Total – stan bezpośredni + suma stanów podanych wariantów.
func (l *StockLedger) Total(sku string, variantSKUs []string) int {
	total := l.products[sku]
	for _, v := range variantSKUs {
		total += l.variations[v]
	}
	return total
}

// Len zwraca liczbę wpisów (produkty, warianty).
func (l *StockLedger) Len() (int, int) {
	return len(l.products), len(l.variations)
}
