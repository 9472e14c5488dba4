package htmltext

import (
	"regexp"
	"strings"

	"github.com/jusbr/leiimporter/internal/model"
	"github.com/jusbr/leiimporter/internal/parser/lexregex"
)

type classKind string

const (
	classPart        classKind = "part"
	classBook        classKind = "book"
	classTitle       classKind = "title"
	classChapter     classKind = "chapter"
	classSection     classKind = "section"
	classEpigraph    classKind = "epigraph"
	classArticle     classKind = "article"
	classParagraph   classKind = "paragraph"
	classRoman       classKind = "roman_clause"
	classLettered    classKind = "lettered_clause"
	classPenalty     classKind = "penalty"
	classContinuation classKind = "continuation"
	classOrphan      classKind = "orphan"
)

type classification struct {
	Kind   classKind
	Number string
	Text   string
}

// hierarchyLabel matches a single hierarchy heading occurrence anywhere in
// a line, used both for hierarchy classification and for multi-label
// segmentation (spec.md §4.6 step 5).
var hierarchyLabel = regexp.MustCompile(`(?i)(PARTE|LIVRO|T[ÍI]TULO|CAP[ÍI]TULO|SE[ÇC][ÃA]O)\s+([IVXLCDM]+(-[A-Z])?|[ÚU]NIC[AO])\b`)

// segmentMultiLabel splits a line carrying several concatenated headings
// ("TÍTULO II CAPÍTULO I ...") into one segment per heading.
func segmentMultiLabel(text string) []string {
	matches := hierarchyLabel.FindAllStringIndex(text, -1)
	if len(matches) <= 1 {
		return []string{text}
	}

	var segments []string
	for i, m := range matches {
		start := m[0]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		segments = append(segments, strings.TrimSpace(text[start:end]))
	}
	return segments
}

func classifyLine(text string, centered bool) classification {
	text = strings.TrimSpace(text)
	if text == "" {
		return classification{Kind: classOrphan}
	}

	switch {
	case lexregex.Parte.MatchString(text):
		return classification{Kind: classPart, Text: text}
	case lexregex.Livro.MatchString(text):
		return classification{Kind: classBook, Text: text}
	case lexregex.Titulo.MatchString(text):
		return classification{Kind: classTitle, Text: text}
	case lexregex.Capitulo.MatchString(text):
		return classification{Kind: classChapter, Text: text}
	case lexregex.Secao.MatchString(text):
		return classification{Kind: classSection, Text: text}
	}

	if m := lexregex.Article.FindStringSubmatch(text); m != nil {
		return classification{Kind: classArticle, Number: m[1] + m[2], Text: text}
	}
	if lexregex.ParagraphUnico.MatchString(text) {
		return classification{Kind: classParagraph, Number: "unico", Text: text}
	}
	if m := lexregex.Paragraph.FindStringSubmatch(text); m != nil {
		return classification{Kind: classParagraph, Number: m[1], Text: text}
	}
	if m := lexregex.RomanClause.FindStringSubmatch(text); m != nil {
		return classification{Kind: classRoman, Number: m[1], Text: text}
	}
	if m := lexregex.LetteredClause.FindStringSubmatch(text); m != nil {
		return classification{Kind: classLettered, Number: m[1], Text: text}
	}
	if lexregex.Penalty.MatchString(text) {
		return classification{Kind: classPenalty, Text: text}
	}

	if centered && !lexregex.StartsLowercase(text) {
		return classification{Kind: classEpigraph, Text: text}
	}
	// Lowercase/punctuation-led lines are left unclassified here; the
	// caller resolves continuation vs orphan using block/context state
	// (centering, previous sentence-ending, parenthesized annotation) per
	// spec.md §4.6 step 6.
	return classification{Kind: classOrphan, Text: text}
}

func startsLowercaseOrPunct(text string) bool {
	if text == "" {
		return false
	}
	if lexregex.StartsLowercase(text) {
		return true
	}
	r := text[0]
	return !((r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'))
}

func isParenthesizedAnnotation(text string) bool {
	return strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")")
}

// stripPrefix removes the leading match of re from text, trimming the
// remainder.
func stripPrefix(re *regexp.Regexp, text string) string {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[loc[1]:])
}
