package catalog

import (
	"math/rand"
	"sort"
	"strings"
)

// Selection – które kategorie i ile produktów z każdej bierzemy.
type Selection struct {
	ExcludedKeywords      []string
	PreferredKeywords     []string
	CategoryLimit         int // 0 = wszystkie
	ProductLimit          int // 0 = bez limitu
	PreferredProductLimit int // 0 = bez limitu
	Language              string
}

// limitFor zwraca limit produktów dla kategorii.
func (s Selection) limitFor(c Category) int {
	if c.Preferred {
		return s.PreferredProductLimit
	}
	return s.ProductLimit
}

// SelectCategories odrzuca kategorie z wykluczonymi słowami, tasuje resztę,
// preferowane stawia na początku i przycina do CategoryLimit.
// Zwraca też nazwy odrzuconych kategorii.
func SelectCategories(recs []Record, sel Selection, rng *rand.Rand) ([]Category, []string) {
	var (
		out      []Category
		excluded []string
	)
	for _, r := range recs {
		c := Category{
			ID:   Int64(r["id"], 0),
			Name: strings.TrimSpace(String(r["name"], "")),
		}
		if c.ID == 0 {
			continue
		}
		name := strings.ToLower(c.Name)
		if containsAny(name, sel.ExcludedKeywords) {
			excluded = append(excluded, c.Name)
			continue
		}
		c.Preferred = containsAny(name, sel.PreferredKeywords)
		out = append(out, c)
	}

	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Preferred && !out[j].Preferred })

	if sel.CategoryLimit > 0 && len(out) > sel.CategoryLimit {
		out = out[:sel.CategoryLimit]
	}
	return out, excluded
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(s, strings.ToLower(k)) {
			return true
		}
	}
	return false
}
