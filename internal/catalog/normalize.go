package catalog

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Rekordy ze źródła są nietypowane (map[string]any z JSON-a). Poniższe funkcje
// nigdy nie panikują: zła wartość, brak albo nil -> wartość domyślna.

// Float zwraca liczbę zmiennoprzecinkową albo def.
func Float(v any, def float64) float64 {
	var f float64
	switch x := v.(type) {
	case nil:
		return def
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case int32:
		f = float64(x)
	case json.Number:
		p, err := strconv.ParseFloat(string(x), 64)
		if err != nil {
			return def
		}
		f = p
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return def
		}
		// zamień ewentualny przecinek na kropkę
		s = strings.ReplaceAll(s, ",", ".")
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return def
		}
		f = p
	case bool:
		if !x {
			return def
		}
		f = 1
	default:
		return def
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return def
	}
	return f
}

// Int zwraca liczbę całkowitą (ułamki obcinane) albo def.
func Int(v any, def int) int {
	switch x := v.(type) {
	case nil:
		return def
	case int:
		if x == 0 {
			return def
		}
		return x
	case int64:
		if x == 0 {
			return def
		}
		return int(x)
	case string:
		s := strings.TrimSpace(x)
		if n, err := strconv.Atoi(s); err == nil && n != 0 {
			return n
		}
	case json.Number:
		if n, err := x.Int64(); err == nil && n != 0 {
			return int(n)
		}
	}
	f := Float(v, math.NaN())
	if math.IsNaN(f) || math.Abs(f) > 9e18 {
		return def
	}
	n := int(f)
	if n == 0 {
		return def
	}
	return n
}

// Int64 to samo co Int, dla identyfikatorów.
func Int64(v any, def int64) int64 {
	return int64(Int(v, int(def)))
}

// String zwraca tekst albo def. Liczby są formatowane bez wykładnika,
// żeby EAN przysłany jako liczba nie zamienił się w 4.006381333931e+12.
func String(v any, def string) string {
	switch x := v.(type) {
	case nil:
		return def
	case string:
		if x == "" {
			return def
		}
		return x
	case json.Number:
		if x == "" || Float(x, 0) == 0 {
			return def
		}
		return string(x)
	case float64:
		if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return def
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		if x == 0 {
			return def
		}
		return strconv.Itoa(x)
	case int64:
		if x == 0 {
			return def
		}
		return strconv.FormatInt(x, 10)
	case bool:
		if !x {
			return def
		}
		return "true"
	default:
		return def
	}
}

// Map zwraca v jako obiekt JSON albo nil.
func Map(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// Slice zwraca v jako tablicę JSON albo nil.
func Slice(v any) []any {
	s, _ := v.([]any)
	return s
}
