// Package htmltext re-blocks HTML into logical paragraphs and classifies
// each line via heuristics, for sources too sparsely tagged for reliable
// bold-span detection (spec.md §4.6; typical of the Planalto source).
package htmltext

import (
	"regexp"
	"strings"
)

// mojibakeFixes corrects a known set of encoding mistakes (spec.md §4.6
// step 3, e.g. "CAP�TULO" -> "CAPÍTULO").
var mojibakeFixes = strings.NewReplacer(
	"CAP�TULO", "CAPÍTULO",
	"SE��O", "SEÇÃO",
	"PAR�GRAFO", "PARÁGRAFO",
	"Art�go", "Artigo",
)

func normalizeEncoding(s string) string {
	return mojibakeFixes.Replace(s)
}

// indiceHeading matches the trailing "ÍNDICE" table of contents some
// sources append (spec.md §4.6 step 2), anchored so only a trailing
// heading-like occurrence is stripped.
var indiceHeading = regexp.MustCompile(`(?is)\n\s*[ÍI]NDICE\s*\n.*$`)

func stripTrailingIndice(s string) string {
	return indiceHeading.ReplaceAllString(s, "")
}
