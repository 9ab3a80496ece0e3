package catalog

// Record to surowy rekord z API (obiekt JSON zdekodowany z UseNumber).
type Record = map[string]any

// Category – kategoria pierwszego poziomu, z której pobieramy produkty.
type Category struct {
	ID        int64
	Name      string
	Preferred bool
}

// RawProduct – produkt po normalizacji pól. Zerowe wartości oznaczają brak danych.
type RawProduct struct {
	ID             int64
	SKU            string
	EAN13          string
	Condition      string
	WholesalePrice float64 // EUR
	Width          float64 // cm
	Height         float64
	Depth          float64
	Weight         float64 // kg

	CategoryID   int64  // kategoria, pod którą produkt został pobrany
	CategoryName string
}

// ContentVolume = szerokość * wysokość * głębokość.
func (p RawProduct) ContentVolume() float64 {
	return p.Width * p.Height * p.Depth
}

// Description – zlokalizowana nazwa i opis, klucz: SKU.
type Description struct {
	SKU  string
	Name string
	Text string
}

// MaxImages – ile zdjęć trafia do feedu.
const MaxImages = 4

// ImageSet – do 4 URL-i zdjęć, klucz: id produktu.
type ImageSet struct {
	ProductID int64
	URLs      []string
}

// URL zwraca i-te zdjęcie albo "".
func (s ImageSet) URL(i int) string {
	if i < 0 || i >= len(s.URLs) {
		return ""
	}
	return s.URLs[i]
}

// Catalog – wszystko, co zebrano w danym przebiegu. Budowany raz przed walidacją,
// potem tylko do odczytu.
type Catalog struct {
	Categories   []Category
	Products     []RawProduct
	Descriptions map[string]Description
	Images       map[int64]ImageSet
	Variants     map[int64][]string // id produktu -> SKU wariantów
	Stock        *StockLedger
}

// NewCatalog zwraca pusty katalog z zainicjalizowanymi mapami.
func NewCatalog() *Catalog {
	return &Catalog{
		Descriptions: map[string]Description{},
		Images:       map[int64]ImageSet{},
		Variants:     map[int64][]string{},
		Stock:        NewStockLedger(),
	}
}

// TotalStock = stan bezpośredni SKU + suma stanów wszystkich wariantów produktu.
func (c *Catalog) TotalStock(p RawProduct) int {
	return c.Stock.Total(p.SKU, c.Variants[p.ID])
}
