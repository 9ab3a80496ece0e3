package pipeline

import (
	"strings"
	"unicode/utf8"

	"github.com/bartek5186/bb2feed/internal/catalog"
)

const (
	eanLength     = 13
	minNameLength = 3
	conditionNew  = "NEW"
)

// Outcome – wynik walidacji: albo odrzucenie z powodem, albo potwierdzony stan.
type Outcome struct {
	Reason     Reason // 0 = zaakceptowany
	Field      string // dla ReasonMissingField: które pole
	TotalStock int
}

func (o Outcome) Accepted() bool { return o.Reason == 0 }

func rejected(r Reason) Outcome { return Outcome{Reason: r} }

// Validator sprawdza łańcuch reguł kwalifikacji produktu. Kolejność jest stała,
// zatrzymuje się na pierwszej niespełnionej.
type Validator struct {
	minStock int
}

func NewValidator(cfg Config) Validator {
	return Validator{minStock: cfg.MinStock}
}

// Validate:
//  1. wymagane pola: sku, ean13, wholesalePrice, condition, weight
//  2. EAN: 13 cyfr
//  3. stan: NEW (bez względu na wielkość liter)
//  4. cena hurtowa > 0
//  5. stan magazynowy (bezpośredni + warianty) >= minStock
//  6. opis istnieje, nazwa ma >= 3 znaki
func (v Validator) Validate(p catalog.RawProduct, cat *catalog.Catalog) Outcome {
	if f := missingField(p); f != "" {
		return Outcome{Reason: ReasonMissingField, Field: f}
	}

	if !ValidEAN(p.EAN13) {
		return rejected(ReasonInvalidEAN)
	}

	if !strings.EqualFold(strings.TrimSpace(p.Condition), conditionNew) {
		return rejected(ReasonNotNew)
	}

	if p.WholesalePrice <= 0 {
		return rejected(ReasonInvalidPrice)
	}

	total := cat.TotalStock(p)
	if total < v.minStock {
		return Outcome{Reason: ReasonInsufficientStock, TotalStock: total}
	}

	d, ok := cat.Descriptions[p.SKU]
	if !ok {
		return rejected(ReasonNoDescription)
	}
	if utf8.RuneCountInString(strings.TrimSpace(d.Name)) < minNameLength {
		return rejected(ReasonInvalidName)
	}

	return Outcome{TotalStock: total}
}

// puste albo zerowe = brak
func missingField(p catalog.RawProduct) string {
	switch {
	case p.SKU == "":
		return "sku"
	case strings.TrimSpace(p.EAN13) == "":
		return "ean13"
	case p.WholesalePrice == 0:
		return "wholesalePrice"
	case strings.TrimSpace(p.Condition) == "":
		return "condition"
	case p.Weight == 0:
		return "weight"
	}
	return ""
}

// ValidEAN – po obcięciu spacji dokładnie 13 cyfr ASCII.
func ValidEAN(ean string) bool {
	ean = strings.TrimSpace(ean)
	if len(ean) != eanLength {
		return false
	}
	for i := 0; i < len(ean); i++ {
		if ean[i] < '0' || ean[i] > '9' {
			return false
		}
	}
	return true
}
