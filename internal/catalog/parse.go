package catalog

import "strings"

// ProductFromRecord normalizuje rekord z /products.json. cat to kategoria,
// w ramach której produkt został pobrany.
func ProductFromRecord(r Record, cat Category) RawProduct {
	return RawProduct{
		ID:             Int64(r["id"], 0),
		SKU:            strings.TrimSpace(String(r["sku"], "")),
		EAN13:          String(r["ean13"], ""),
		Condition:      String(r["condition"], ""),
		WholesalePrice: Float(r["wholesalePrice"], 0),
		Width:          Float(r["width"], 0),
		Height:         Float(r["height"], 0),
		Depth:          Float(r["depth"], 0),
		Weight:         Float(r["weight"], 0),
		CategoryID:     cat.ID,
		CategoryName:   cat.Name,
	}
}

// VariationFromRecord zwraca (id produktu nadrzędnego, SKU wariantu).
func VariationFromRecord(r Record) (int64, string) {
	return Int64(r["product"], 0), strings.TrimSpace(String(r["sku"], ""))
}

// StockFromRecord sumuje ilości ze wszystkich magazynów (stocks[].quantity).
func StockFromRecord(r Record) (string, int) {
	total := 0
	for _, s := range Slice(r["stocks"]) {
		total += Int(Map(s)["quantity"], 0)
	}
	return strings.TrimSpace(String(r["sku"], "")), total
}

// DescriptionFromRecord normalizuje rekord z /productsinformation.json.
func DescriptionFromRecord(r Record) Description {
	return Description{
		SKU:  strings.TrimSpace(String(r["sku"], "")),
		Name: String(r["name"], ""),
		Text: String(r["description"], ""),
	}
}

// ImageSetFromRecord bierze pierwsze MaxImages niepuste URL-e.
func ImageSetFromRecord(r Record) ImageSet {
	set := ImageSet{ProductID: Int64(r["id"], 0)}
	for _, img := range Slice(r["images"]) {
		if len(set.URLs) == MaxImages {
			break
		}
		if u := String(Map(img)["url"], ""); u != "" {
			set.URLs = append(set.URLs, u)
		}
	}
	return set
}
