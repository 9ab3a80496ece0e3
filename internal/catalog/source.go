package catalog

import "context"

// Source – dostawca katalogu (np. BigBuy REST API). Każda metoda zwraca surowe
// rekordy dla jednej kategorii pierwszego poziomu. Błąd oznacza tylko tyle, że
// dla tej kategorii nie ma danych.
type Source interface {
	Taxonomies(ctx context.Context) ([]Record, error)
	Products(ctx context.Context, taxonomyID int64) ([]Record, error)
	Variations(ctx context.Context, taxonomyID int64) ([]Record, error)
	ProductStock(ctx context.Context, taxonomyID int64) ([]Record, error)
	VariationStock(ctx context.Context, taxonomyID int64) ([]Record, error)
	Information(ctx context.Context, taxonomyID int64, language string) ([]Record, error)
	Images(ctx context.Context, taxonomyID int64) ([]Record, error)
}
