package pipeline

// MaxQuantity – twardy limit platformy.
const MaxQuantity = 50

// Quantize zamienia stan magazynowy na ilość wystawianą na sprzedaż.
// Powyżej 2 sztuk wynik jest zawsze mniejszy od stanu (zapas bezpieczeństwa).
//
//	<=0    -> 0
//	1-2    -> 1
//	3-5    -> min(2, s-1)
//	6-10   -> min(5, s-2)
//	11-20  -> min(10, s-3)
//	21-50  -> min(25, s-5)
//	>50    -> min(50, floor(s*0.9))
func Quantize(stock int) int {
	switch {
	case stock <= 0:
		return 0
	case stock <= 2:
		return 1
	case stock <= 5:
		return min(2, stock-1)
	case stock <= 10:
		return min(5, stock-2)
	case stock <= 20:
		return min(10, stock-3)
	case stock <= 50:
		return min(25, stock-5)
	default:
		return min(MaxQuantity, stock*9/10)
	}
}
