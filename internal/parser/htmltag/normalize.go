package htmltag

import "strings"

// mojibakeFixes corrects a known set of double-encoded UTF-8 sequences that
// show up in these sources (spec.md §4.5 pre-correction).
var mojibakeFixes = strings.NewReplacer(
	"Âº", "º",
	"Â§", "§",
	"CAP�TULO", "CAPÍTULO",
	"SE��O", "SEÇÃO",
)

// normalizeEncoding fixes double-encoded UTF-8 and normalizes ordinal
// glyphs before any block classification runs.
func normalizeEncoding(html string) string {
	return mojibakeFixes.Replace(html)
}

// normalizeOrdinal turns every bare "o" immediately following a digit into
// the ordinal glyph "º" (e.g. "Art. 1oTexto" -> "Art. 1ºTexto"); this applies
// anywhere in the text, not only after an article number.
func normalizeOrdinal(text string) string {
	runes := []rune(text)
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == 'o' && i > 0 && runes[i-1] >= '0' && runes[i-1] <= '9' {
			out = append(out, 'º')
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
