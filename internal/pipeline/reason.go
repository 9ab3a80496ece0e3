package pipeline

// Reason – powód odrzucenia produktu. Zamknięty zbiór, każdy odrzucony
// produkt dostaje dokładnie jeden.
type Reason uint8

const (
	ReasonMissingField Reason = iota + 1
	ReasonInvalidEAN
	ReasonNotNew
	ReasonInvalidPrice
	ReasonInsufficientStock
	ReasonNoDescription
	ReasonInvalidName
	ReasonWeightTooHigh
	ReasonVolumeTooHigh
	ReasonPriceTooHigh
	ReasonPriceTooLow
	ReasonZeroQuantity
)

var reasonNames = map[Reason]string{
	ReasonMissingField:      "missing_field",
	ReasonInvalidEAN:        "invalid_ean",
	ReasonNotNew:            "not_new_condition",
	ReasonInvalidPrice:      "invalid_price",
	ReasonInsufficientStock: "insufficient_stock",
	ReasonNoDescription:     "no_product_info",
	ReasonInvalidName:       "invalid_name",
	ReasonWeightTooHigh:     "weight_too_high",
	ReasonVolumeTooHigh:     "volume_too_high",
	ReasonPriceTooHigh:      "price_too_high",
	ReasonPriceTooLow:       "price_too_low",
	ReasonZeroQuantity:      "zero_quantity",
}

// Reasons zwraca wszystkie powody w kolejności sprawdzania.
func Reasons() []Reason {
	out := make([]Reason, 0, len(reasonNames))
	for r := ReasonMissingField; r <= ReasonZeroQuantity; r++ {
		out = append(out, r)
	}
	return out
}

func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return "unknown"
}

// MarshalText pozwala używać Reason jako klucza mapy w JSON.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
