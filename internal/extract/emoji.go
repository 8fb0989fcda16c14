package extract

// Emoji detection by Unicode block. A span is a maximal run of emoji runes
// together with the joiners that glue sequences (ZWJ families, variation
// selectors, skin tones, flags), so a composed emoji comes back as one span.
// Block coverage is a heuristic: the main pictographic blocks are listed, not
// the full Unicode emoji property.

var emojiBlocks = [][2]rune{
	{0x1F1E6, 0x1F1FF}, // regional indicators (flags)
	{0x1F300, 0x1F5FF}, // misc symbols and pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport and map
	{0x1F900, 0x1F9FF}, // supplemental symbols and pictographs
	{0x1FA70, 0x1FAFF}, // symbols and pictographs extended-A
	{0x2600, 0x26FF},   // misc symbols
	{0x2700, 0x27BF},   // dingbats
	{0x2B00, 0x2BFF},   // misc symbols and arrows (stars, checkmarks)
}

func isEmojiRune(r rune) bool {
	for _, b := range emojiBlocks {
		if r >= b[0] && r <= b[1] {
			return true
		}
	}
	return false
}

// isJoinerRune reports runes that extend an emoji sequence but are not emoji
// on their own.
func isJoinerRune(r rune) bool {
	switch {
	case r == 0x200D: // zero-width joiner
		return true
	case r == 0xFE0F: // variation selector-16
		return true
	case r == 0x20E3: // combining enclosing keycap
		return true
	case r >= 0x1F3FB && r <= 0x1F3FF: // skin tone modifiers
		return true
	}
	return false
}

// FindEmoji returns every emoji span in s, in order of occurrence. Always
// non-nil.
func FindEmoji(s string) []string {
	spans := []string{}
	runes := []rune(s)

	for i := 0; i < len(runes); {
		if !isEmojiRune(runes[i]) {
			i++
			continue
		}

		j := i + 1
		for j < len(runes) && (isEmojiRune(runes[j]) || isJoinerRune(runes[j])) {
			j++
		}

		spans = append(spans, string(runes[i:j]))
		i = j
	}

	return spans
}
