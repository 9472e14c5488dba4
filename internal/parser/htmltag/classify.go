package htmltag

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jusbr/leiimporter/internal/parser/lexregex"
)

// classKind extends model.Kind with two parser-local states that never
// reach the intermediate tree directly: continuation and orphan text.
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

var glued = regexp.MustCompile(`(?i)^Art\.?\s*(\d+)[ºo]`)

// classifyBlock classifies one <p>/<h3>/<h4> block following the ordered
// rule list in spec.md §4.5.
func classifyBlock(sel *goquery.Selection) classification {
	text := strings.TrimSpace(normalizeOrdinal(sel.Text()))
	if text == "" {
		return classification{Kind: classOrphan, Text: ""}
	}

	if lexregex.Parte.MatchString(text) {
		return classification{Kind: classPart, Text: text}
	}
	if lexregex.Livro.MatchString(text) {
		return classification{Kind: classBook, Text: text}
	}
	if lexregex.Titulo.MatchString(text) {
		return classification{Kind: classTitle, Text: text}
	}
	if lexregex.Capitulo.MatchString(text) {
		return classification{Kind: classChapter, Text: text}
	}
	if lexregex.Secao.MatchString(text) {
		return classification{Kind: classSection, Text: text}
	}

	if isBoldEpigraph(sel, text) {
		return classification{Kind: classEpigraph, Text: text}
	}

	if m := lexregex.Article.FindStringSubmatch(text); m != nil {
		return classification{Kind: classArticle, Number: m[1] + m[2], Text: text}
	}
	if m := glued.FindStringSubmatch(text); m != nil {
		return classification{Kind: classArticle, Number: m[1], Text: text}
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

	if lexregex.StartsLowercase(text) {
		return classification{Kind: classContinuation, Text: text}
	}
	return classification{Kind: classOrphan, Text: text}
}

// isBoldEpigraph implements spec.md §4.5 rule 2: the block's bold children,
// concatenated, must cover the whole non-annotation content, and that
// content must not itself start with "Art".
func isBoldEpigraph(sel *goquery.Selection, fullText string) bool {
	if strings.HasPrefix(strings.ToLower(fullText), "art") {
		return false
	}

	var boldText strings.Builder
	sel.Find("b, strong").Each(func(_ int, bold *goquery.Selection) {
		boldText.WriteString(bold.Text())
	})
	if boldText.Len() == 0 {
		return false
	}

	collapse := func(s string) string {
		return strings.Join(strings.Fields(s), " ")
	}
	return collapse(boldText.String()) == collapse(fullText)
}
