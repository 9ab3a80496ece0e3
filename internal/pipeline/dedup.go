package pipeline

// Dedup zostawia pierwszy wiersz dla każdego EAN, kolejność pierwszych wystąpień
// zostaje zachowana. Zwraca też liczbę odrzuconych duplikatów.
func Dedup(rows []OutputRow) ([]OutputRow, int) {
	seen := make(map[string]struct{}, len(rows))
	out := make([]OutputRow, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		if r.EAN == "" {
			dropped++
			continue
		}
		if _, ok := seen[r.EAN]; ok {
			dropped++
			continue
		}
		seen[r.EAN] = struct{}{}
		out = append(out, r)
	}
	return out, dropped
}
