package textutil

import "strings"

// Invisible bidi and zero-width formatting runes, made visible so file
// names cannot reorder or hide parts of the listing.
var formattingRuneLabels = map[rune]string{
	0x061C: "⟪ALM⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200D: "⟪ZWJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2028: "⟪LSEP⟫",
	0x2029: "⟪PSEP⟫",
	0x00AD: "⟪SHY⟫",
	0x2060: "⟪WJ⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0xFEFF: "⟪BOM⟫",
}

// SanitizeFileName replaces control characters in a file name so it cannot
// inject terminal escape sequences or break column alignment when rendered.
// Names without problem runes are returned unchanged.
func SanitizeFileName(name string) string {
	for _, r := range name {
		if requiresSanitization(r) {
			return sanitize(name)
		}
	}
	return name
}

func requiresSanitization(r rune) bool {
	if _, ok := formattingRuneLabels[r]; ok {
		return true
	}
	return (r >= 0 && r < 0x20) || r == 0x7f
}

func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case isFormattingRune(r):
			b.WriteString(formattingRuneLabels[r])
		case r == '\t':
			b.WriteByte(' ')
		case r < 0x20 || r == 0x7f:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isFormattingRune(r rune) bool {
	_, ok := formattingRuneLabels[r]
	return ok
}
