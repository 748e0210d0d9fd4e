package render

// font is a 5x7 bitmap font covering the glyphs the overlay uses.
// Each glyph is 7 rows, bit 4 leftmost. Missing runes render blank,
// the safe default for unrecognized values.
var font = map[rune][7]uint8{
	'0': {0b01110, 0b10001, 0b10011, 0b10101, 0b11001, 0b10001, 0b01110},
	'1': {0b00100, 0b01100, 0b00100, 0b00100, 0b00100, 0b00100, 0b01110},
	'2': {0b01110, 0b10001, 0b00001, 0b00010, 0b00100, 0b01000, 0b11111},
	'3': {0b11111, 0b00010, 0b00100, 0b00010, 0b00001, 0b10001, 0b01110},
	'4': {0b00010, 0b00110, 0b01010, 0b10010, 0b11111, 0b00010, 0b00010},
	'5': {0b11111, 0b10000, 0b11110, 0b00001, 0b00001, 0b10001, 0b01110},
	'6': {0b00110, 0b01000, 0b10000, 0b11110, 0b10001, 0b10001, 0b01110},
	'7': {0b11111, 0b00001, 0b00010, 0b00100, 0b01000, 0b01000, 0b01000},
	'8': {0b01110, 0b10001, 0b10001, 0b01110, 0b10001, 0b10001, 0b01110},
	'9': {0b01110, 0b10001, 0b10001, 0b01111, 0b00001, 0b00010, 0b01100},
	'A': {0b01110, 0b10001, 0b10001, 0b11111, 0b10001, 0b10001, 0b10001},
	'C': {0b01110, 0b10001, 0b10000, 0b10000, 0b10000, 0b10001, 0b01110},
	'E': {0b11111, 0b10000, 0b10000, 0b11110, 0b10000, 0b10000, 0b11111},
	'G': {0b01110, 0b10001, 0b10000, 0b10111, 0b10001, 0b10001, 0b01111},
	'J': {0b00111, 0b00010, 0b00010, 0b00010, 0b00010, 0b10010, 0b01100},
	'M': {0b10001, 0b11011, 0b10101, 0b10101, 0b10001, 0b10001, 0b10001},
	'O': {0b01110, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b01110},
	'P': {0b11110, 0b10001, 0b10001, 0b11110, 0b10000, 0b10000, 0b10000},
	'R': {0b11110, 0b10001, 0b10001, 0b11110, 0b10100, 0b10010, 0b10001},
	'S': {0b01111, 0b10000, 0b10000, 0b01110, 0b00001, 0b00001, 0b11110},
	'T': {0b11111, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100},
	'U': {0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b01110},
	'V': {0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b01010, 0b00100},
	' ': {},
}

// Glyph cell metrics: 5 columns of ink plus 1 of spacing, 7 rows.
const (
	glyphWidth  = 5
	glyphCell   = 6
	glyphHeight = 7
)

// textWidth returns the pixel width of a string at the given scale.
func textWidth(text string, scale int) int {
	n := len(text)
	if n == 0 {
		return 0
	}
	return (n*glyphCell - 1) * scale
}

// textPixel reports whether (x, y) lands on an inked pixel of text laid
// out as fixed-width character cells starting at (startX, startY).
func textPixel(x, y, startX, startY, scale int, text string) bool {
	if scale <= 0 || y < startY || y >= startY+glyphHeight*scale {
		return false
	}
	dx := x - startX
	if dx < 0 || dx >= len(text)*glyphCell*scale {
		return false
	}

	idx := dx / (glyphCell * scale)
	col := (dx % (glyphCell * scale)) / scale
	if col >= glyphWidth {
		return false // Spacing column
	}

	glyph, ok := font[rune(text[idx])]
	if !ok {
		return false
	}
	row := (y - startY) / scale
	return glyph[row]&(1<<(glyphWidth-1-col)) != 0
}

// scoreDigits decomposes a score into five decimal digits, most
// significant first, by repeated largest-threshold subtraction.
func scoreDigits(score uint16) [5]byte {
	var out [5]byte
	v := int(score)
	thresholds := [5]int{10000, 1000, 100, 10, 1}
	for i, th := range thresholds {
		d := 0
		for v >= th {
			v -= th
			d++
		}
		if d > 9 {
			d = 9
		}
		out[i] = byte('0' + d)
	}
	return out
}
