package emitter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jusbr/leiimporter/internal/parser/lexregex"
)

// leadingDigits splits a number string into its leading arabic digits
// (possibly thousands-dotted, e.g. "1.029") and any trailing hyphen-letter
// suffix (e.g. "121-A" -> "121", "-A"; "1.029" -> "1.029", "").
var leadingDigits = regexp.MustCompile(`^(\d+(?:\.\d+)*)(-[A-Z])?$`)

func splitNumberSuffix(number string) (digits string, suffix string) {
	m := leadingDigits.FindStringSubmatch(number)
	if m == nil {
		return "", number
	}
	return m[1], m[2]
}

// parseLeadingInt parses a (possibly thousands-dotted) digit run into its
// integer value, e.g. "1.029" -> 1029, so article 1.029 sorts and compares
// numerically rather than splitting at the internal dot (spec.md §3's
// "number" preserves the dot for display, not for ordering).
func parseLeadingInt(digits string) (int, error) {
	return strconv.Atoi(strings.ReplaceAll(digits, ".", ""))
}

// articleLabel renders the legislative typography for an article number
// (spec.md §4.7 step 2, scenarios §8.1): ordinal "Art. Nº" for N<=9,
// cardinal "Art. N" for N>=10, suffix appended after the ordinal glyph.
func articleLabel(number string) string {
	digits, suffix := splitNumberSuffix(number)
	n, err := parseLeadingInt(digits)
	if err != nil {
		return fmt.Sprintf("Art. %s", number)
	}
	if n <= 9 {
		return fmt.Sprintf("Art. %sº%s", digits, suffix)
	}
	return fmt.Sprintf("Art. %s%s", digits, suffix)
}

// paragraphLabel renders "§ N", "§ Nº" (N<=9), or "Parágrafo único".
func paragraphLabel(number string) string {
	if number == "unico" {
		return "Parágrafo único"
	}
	digits, suffix := splitNumberSuffix(number)
	n, err := parseLeadingInt(digits)
	if err != nil {
		return fmt.Sprintf("§ %s", number)
	}
	if n <= 9 {
		return fmt.Sprintf("§ %sº%s", digits, suffix)
	}
	return fmt.Sprintf("§ %s%s", digits, suffix)
}

// romanClauseLabel renders "IV -".
func romanClauseLabel(roman string) string {
	return roman + " -"
}

// letteredClauseLabel renders "x)".
func letteredClauseLabel(letter string) string {
	return letter + ")"
}

// itemLabel renders "n.".
func itemLabel(number string) string {
	return number + "."
}

const penaltyLabel = "Pena"

// romanToArabicSlug converts a roman numeral clause number to the arabic
// value used in its slug segment.
func romanToArabicSlug(roman string) int {
	return lexregex.RomanToArabic(roman)
}
