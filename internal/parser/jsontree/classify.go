package jsontree

import (
	"regexp"
	"strings"

	"github.com/jusbr/leiimporter/internal/model"
)

var fragmentToken = regexp.MustCompile(`[!_]([a-z]{3})(\d+[a-zA-Z]?)?$`)

var tokenKind = map[string]model.Kind{
	"art": model.KindArticle,
	"par": model.KindParagraph,
	"inc": model.KindRomanClause,
	"ali": model.KindLetteredClause,
	"ite": model.KindItem,
	"cpt": model.KindCaput,
	"prt": model.KindPart,
	"liv": model.KindBook,
	"tit": model.KindTitle,
	"cap": model.KindChapter,
	"sec": model.KindSection,
}

var romanRe = regexp.MustCompile(`^[IVXLCDM]+\s*-`)
var letterRe = regexp.MustCompile(`^[a-z]\)`)

// classify determines the kind and number for n, preferring its URN
// fragment and falling back to human-readable name cues (spec.md §4.4).
func classify(n node) (model.Kind, string, bool) {
	if kind, number, ok := classifyByURN(n.URN); ok {
		return refineSubLevel(kind, n.Name), number, true
	}
	return classifyByName(n.Name)
}

func classifyByURN(urn string) (model.Kind, string, bool) {
	m := fragmentToken.FindStringSubmatch(urn)
	if m == nil {
		return "", "", false
	}
	kind, ok := tokenKind[m[1]]
	if !ok {
		return "", "", false
	}
	return kind, m[2], true
}

// refineSubLevel distinguishes subtitle/subsection from title/chapter when
// the URN token set (spec.md §4.1) does not carry a distinct code for them;
// the name text is the only signal available.
func refineSubLevel(kind model.Kind, name string) model.Kind {
	folded := strings.ToLower(name)
	switch kind {
	case model.KindTitle:
		if strings.Contains(folded, "subtítulo") || strings.Contains(folded, "subtitulo") {
			return model.KindSubtitle
		}
	case model.KindSection:
		if strings.Contains(folded, "subseção") || strings.Contains(folded, "subsecao") {
			return model.KindSubsection
		}
	}
	return kind
}

// classifyByName falls back to the human-readable cues named in spec.md
// §4.4 when the URN carries no recognizable fragment token.
func classifyByName(name string) (model.Kind, string, bool) {
	trimmed := strings.TrimSpace(name)
	folded := strings.ToLower(trimmed)

	switch {
	case strings.HasPrefix(folded, "parágrafo"), strings.HasPrefix(folded, "paragrafo"), strings.HasPrefix(trimmed, "§"):
		return model.KindParagraph, "", true
	case romanRe.MatchString(trimmed):
		return model.KindRomanClause, strings.TrimSuffix(romanRe.FindString(trimmed), " -"), true
	case letterRe.MatchString(trimmed):
		return model.KindLetteredClause, trimmed[:1], true
	default:
		return "", "", false
	}
}
