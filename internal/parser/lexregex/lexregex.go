// Package lexregex holds the prefix regexes shared by the tag-driven and
// text-driven HTML parsers (spec.md §4.5 step 1-7, reused verbatim by
// §4.6 step 6: "Content classification uses the same prefix regexes as
// §4.5").
package lexregex

import "regexp"

var (
	// Hierarchy headers: PARTE / LIVRO / TÍTULO / CAPÍTULO / SEÇÃO, tolerant
	// to accents and to "I-A" style numerals.
	Parte   = regexp.MustCompile(`(?i)^PARTE\s+([IVXLCDM]+(-[A-Z])?|ÚNICA|UNICA)\b`)
	Livro   = regexp.MustCompile(`(?i)^LIVRO\s+([IVXLCDM]+(-[A-Z])?|ÚNICO|UNICO)\b`)
	Titulo  = regexp.MustCompile(`(?i)^T[ÍI]TULO\s+([IVXLCDM]+(-[A-Z])?|ÚNICO|UNICO)\b`)
	Capitulo = regexp.MustCompile(`(?i)^CAP[ÍI]TULO\s+([IVXLCDM]+(-[A-Z])?|ÚNICO|UNICO)\b`)
	Secao   = regexp.MustCompile(`(?i)^SE[ÇC][ÃA]O\s+([IVXLCDM]+(-[A-Z])?|ÚNICA|UNICA)\b`)

	// Article: "Art. 1º", "Art.1o", "Art 121-A", with a glued-ordinal
	// fallback handled separately by a character scanner. The suffix group
	// keeps its hyphen so callers can concatenate m[1]+m[2] straight into
	// the canonical "121-A" form instead of losing the separator.
	Article = regexp.MustCompile(`(?i)^Art\.?\s*(\d+)[ºo.]*(-[A-Z])?`)

	// Paragraph: "§ 2º", "Parágrafo único".
	Paragraph       = regexp.MustCompile(`^§\s*(\d+)[ºo]?`)
	ParagraphUnico  = regexp.MustCompile(`(?i)^Par[áa]grafo\s+[úu]nico`)

	// Roman numeral clause: "IV -".
	RomanClause = regexp.MustCompile(`^([IVXLCDM]+)\s*-\s*`)

	// Lettered clause: "a)".
	LetteredClause = regexp.MustCompile(`^([a-z])\)\s*`)

	// Item: "1.".
	Item = regexp.MustCompile(`^(\d+)\.\s+`)

	// Penalty: "Pena -".
	Penalty = regexp.MustCompile(`(?i)^Pena\s*-`)
)

// RomanToArabic converts a roman numeral (I..XX range is all the spec
// requires) to its arabic value.
func RomanToArabic(roman string) int {
	values := map[byte]int{'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000}
	total := 0
	prev := 0
	for i := len(roman) - 1; i >= 0; i-- {
		v, ok := values[roman[i]]
		if !ok {
			return 0
		}
		if v < prev {
			total -= v
		} else {
			total += v
		}
		prev = v
	}
	return total
}

// StartsLowercase reports whether s begins with a lowercase letter, the
// continuation-vs-orphan signal used by both parsers.
func StartsLowercase(s string) bool {
	for _, r := range s {
		return r >= 'a' && r <= 'z'
	}
	return false
}

// EndsSentence reports whether s ends with sentence-terminating
// punctuation, used to decide whether a following lowercase line is a
// continuation (spec.md §4.6 step 6).
func EndsSentence(s string) bool {
	if s == "" {
		return true
	}
	last := s[len(s)-1]
	switch last {
	case '.', ':', ';', '!', '?':
		return true
	default:
		return false
	}
}
