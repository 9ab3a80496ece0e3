package pipeline

// Stats – statystyki przebiegu: liczniki odrzuceń i zakresy wyniku.
type Stats struct {
	CategoriesProcessed int `json:"categories_processed"`
	ProductsFetched     int `json:"products_fetched"`
	TotalProcessed      int `json:"total_processed"`

	Rejections    map[Reason]int `json:"rejections"`
	MissingFields map[string]int `json:"missing_fields"`

	Accepted          int `json:"valid_products"`
	DuplicatesDropped int `json:"duplicates_dropped"`
	SampledOut        int `json:"sampled_out"`
	Exported          int `json:"exported"`

	PriceMin      float64 `json:"price_min"`
	PriceMax      float64 `json:"price_max"`
	QuantityMin   int     `json:"quantity_min"`
	QuantityMax   int     `json:"quantity_max"`
	QuantityTotal int     `json:"quantity_total"`
}

// NewStats zwraca statystyki z zerem dla każdego powodu.
func NewStats() Stats {
	s := Stats{
		Rejections:    make(map[Reason]int, len(reasonNames)),
		MissingFields: map[string]int{},
	}
	for _, r := range Reasons() {
		s.Rejections[r] = 0
	}
	return s
}

func (s *Stats) reject(o Outcome) {
	s.Rejections[o.Reason]++
	if o.Reason == ReasonMissingField {
		s.MissingFields[o.Field]++
	}
}

// Rejected – suma wszystkich odrzuceń.
func (s Stats) Rejected() int {
	n := 0
	for _, v := range s.Rejections {
		n += v
	}
	return n
}

// SuccessRate – procent zaakceptowanych spośród przetworzonych.
func (s Stats) SuccessRate() float64 {
	if s.TotalProcessed == 0 {
		return 0
	}
	return 100 * float64(s.Accepted) / float64(s.TotalProcessed)
}

// summarize wypełnia zakresy ceny i ilości na podstawie wierszy wynikowych.
func (s *Stats) summarize(rows []OutputRow) {
	s.Exported = len(rows)
	s.PriceMin, s.PriceMax = 0, 0
	s.QuantityMin, s.QuantityMax, s.QuantityTotal = 0, 0, 0
	for i, r := range rows {
		if i == 0 || r.Price < s.PriceMin {
			s.PriceMin = r.Price
		}
		if i == 0 || r.Price > s.PriceMax {
			s.PriceMax = r.Price
		}
		if i == 0 || r.Quantity < s.QuantityMin {
			s.QuantityMin = r.Quantity
		}
		if i == 0 || r.Quantity > s.QuantityMax {
			s.QuantityMax = r.Quantity
		}
		s.QuantityTotal += r.Quantity
	}
}
