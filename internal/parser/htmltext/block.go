package htmltext

import (
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

// markdownConverter renders a sparsely-tagged source (no p/div/h* blocks at
// all) to markdown before re-blocking, the same pre-pass the teacher's
// scraper runs ahead of its own paragraph-level processing. Markdown
// survives strike-through (~~...~~) and bold (**...**) as plain-text
// markers we can still detect without a DOM to query.
var markdownConverter = md.NewConverter("", true, nil)

var markdownEmphasis = regexp.MustCompile(`[*_~]{1,2}`)

func stripMarkdownEmphasis(s string) string {
	return markdownEmphasis.ReplaceAllString(s, "")
}

// textBlock is one logical paragraph after re-blocking (spec.md §4.6
// step 1): its text, whether it is wholly struck-through, and whether it
// was visually centered in the source.
type textBlock struct {
	Text     string
	Revoked  bool
	Centered bool
}

var blockSelectors = "p, div, center, h1, h2, h3, h4, h5, h6"

// reblock re-flows html into a sequence of textBlock values, falling back
// to blank-line splitting when no block-level tags are present.
func reblock(html string) []textBlock {
	html = normalizeEncoding(html)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return splitOnBlankLines(html)
	}

	sel := doc.Find(blockSelectors)
	if sel.Length() == 0 {
		return reflowViaMarkdown(html)
	}

	var blocks []textBlock
	sel.Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(collapseSpace(s.Text()))
		if text == "" {
			return
		}
		blocks = append(blocks, textBlock{
			Text:     stripTrailingIndice(text),
			Revoked:  isStruckThrough(s, text),
			Centered: isCentered(s),
		})
	})
	return blocks
}

// isStruckThrough reports whether s is itself a strike-through element, sits
// inside one, or has strike-through descendants covering the whole block
// content (the same "fully covers the text" test used for bold epigraph
// detection in the tag parser).
func isStruckThrough(s *goquery.Selection, fullText string) bool {
	if s.Is("strike, s, del") || s.ParentsFiltered("strike, s, del").Length() > 0 {
		return true
	}
	var struck strings.Builder
	s.Find("strike, s, del").Each(func(_ int, inner *goquery.Selection) {
		struck.WriteString(inner.Text())
	})
	if struck.Len() == 0 {
		return false
	}
	return collapseSpace(struck.String()) == fullText
}

func isCentered(s *goquery.Selection) bool {
	if s.Is("center") {
		return true
	}
	if align, ok := s.Attr("align"); ok && strings.EqualFold(align, "center") {
		return true
	}
	if style, ok := s.Attr("style"); ok && strings.Contains(strings.ToLower(style), "center") {
		return true
	}
	return false
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// reflowViaMarkdown handles sources with no block-level tags at all:
// convert to markdown (preserving strike-through/bold as text markers),
// then split on blank lines the same way splitOnBlankLines does on raw
// text (spec.md §4.6 step 1 fallback).
func reflowViaMarkdown(html string) []textBlock {
	markdown, err := markdownConverter.ConvertString(html)
	if err != nil {
		return splitOnBlankLines(html)
	}
	markdown = stripTrailingIndice(markdown)

	var blocks []textBlock
	for _, para := range strings.Split(markdown, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		revoked := strings.Contains(para, "~~")
		text := collapseSpace(stripMarkdownEmphasis(para))
		if text == "" {
			continue
		}
		blocks = append(blocks, textBlock{Text: text, Revoked: revoked})
	}
	return blocks
}

// splitOnBlankLines is the fallback re-blocking strategy when markdown
// conversion itself fails (spec.md §4.6 step 1).
func splitOnBlankLines(text string) []textBlock {
	text = stripTrailingIndice(text)
	var blocks []textBlock
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(collapseSpace(para))
		if para == "" {
			continue
		}
		blocks = append(blocks, textBlock{Text: para})
	}
	return blocks
}
