package geocoding

// hangulRanges lists the Unicode blocks that mark a query as Korean
var hangulRanges = [][2]rune{
	{0xAC00, 0xD7AF}, // Hangul syllables
	{0x3130, 0x318F}, // Hangul compatibility jamo
	{0xA960, 0xA97F}, // Hangul jamo extended-A
	{0xD7B0, 0xD7FF}, // Hangul jamo extended-B
}

// HasHangul reports whether any character of text is Hangul
func HasHangul(text string) bool {
	for _, r := range text {
		for _, rng := range hangulRanges {
			if r >= rng[0] && r <= rng[1] {
				return true
			}
		}
	}
	return false
}
