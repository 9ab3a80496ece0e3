package bigbuy

import "time"

const (
	DefaultBaseURL = "https://api.bigbuy.eu"
	userAgent      = "bb2feed/1.0"
)

// Ścieżki REST katalogu. Wszystkie poza taksonomiami są filtrowane po parentTaxonomy.
const (
	pathTaxonomies     = "/rest/catalog/taxonomies.json"
	pathProducts       = "/rest/catalog/products.json"
	pathVariations     = "/rest/catalog/productsvariations.json"
	pathProductStock   = "/rest/catalog/productsstockbyhandlingdays.json"
	pathVariationStock = "/rest/catalog/productsvariationsstockbyhandlingdays.json"
	pathInformation    = "/rest/catalog/productsinformation.json"
	pathImages         = "/rest/catalog/productsimages.json"
)

type Config struct {
	BaseURL      string
	APIKey       string
	RequestDelay time.Duration // stała przerwa między wywołaniami
	Timeout      time.Duration
	CacheBuster  bool // dopisuje t=<unix> do zapytań
}
