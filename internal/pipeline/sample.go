package pipeline

import "math/rand"

// Sample zwraca losowy podzbiór dokładnie size wierszy (tasowanie + przycięcie),
// jeśli wierszy jest więcej. W przeciwnym razie rows bez zmian.
// Wejściowy slice nie jest modyfikowany.
func Sample(rows []OutputRow, size int, rng *rand.Rand) []OutputRow {
	if size <= 0 || len(rows) <= size {
		return rows
	}
	out := append([]OutputRow(nil), rows...)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out[:size]
}
