// Package parser dispatches an acquired payload to the structured JSON
// parser or one of the two HTML parsing strategies, per the selection
// rule in spec.md §4.6's last paragraph and §6 (IMPORTER_TEXT_PARSER).
package parser

import (
	"fmt"
	"strings"

	"github.com/jusbr/leiimporter/internal/importerr"
	"github.com/jusbr/leiimporter/internal/model"
	"github.com/jusbr/leiimporter/internal/parser/decode"
	"github.com/jusbr/leiimporter/internal/parser/htmltag"
	"github.com/jusbr/leiimporter/internal/parser/htmltext"
	"github.com/jusbr/leiimporter/internal/parser/jsontree"
	"github.com/ternarybob/arbor"
)

// Options controls parser selection.
type Options struct {
	// ForceTextParser forces the text parser first even when the HTML
	// does not look Planalto-sourced (IMPORTER_TEXT_PARSER=1).
	ForceTextParser bool
}

// Tree is the result of a successful parse: the top-level element list
// plus the accumulated structural headings.
type Tree struct {
	Elements  []*model.LawElement
	Structure *model.Structure
}

// SelectAndParse dispatches payload (raw bytes, possibly not UTF-8, for
// HTML; raw bytes for JSON) to the appropriate parser, decoding HTML
// payloads to text first (spec.md §7 "Decoding").
func SelectAndParse(kind string, payload []byte, opts Options, logger arbor.ILogger) (Tree, error) {
	if kind == "json" {
		elements, structure, err := jsontree.Parse(payload)
		if err != nil {
			return Tree{}, fmt.Errorf("%w: %v", importerr.ErrParse, err)
		}
		return Tree{Elements: elements, Structure: structure}, nil
	}

	html, err := decode.HTML(payload)
	if err != nil {
		return Tree{}, err
	}
	textFirst := opts.ForceTextParser || strings.Contains(strings.ToLower(html), "planalto")

	primary, fallback := tagAttempt, textAttempt
	if textFirst {
		primary, fallback = textAttempt, tagAttempt
	}

	if tree, ok := primary(html, logger); ok {
		return tree, nil
	}
	logger.Warn().Bool("text_first", textFirst).Msg("primary HTML parser produced no articles, falling back")
	if tree, ok := fallback(html, logger); ok {
		return tree, nil
	}

	return Tree{}, fmt.Errorf("%w: both HTML parsers produced zero articles", importerr.ErrParse)
}

// tagAttempt and textAttempt report success only when at least one article
// was produced without error, matching spec.md §4.6's success criterion.
func tagAttempt(html string, logger arbor.ILogger) (Tree, bool) {
	elements, structure, err := htmltag.Parse(html)
	if err != nil {
		logger.Warn().Err(err).Msg("tag parser raised")
		return Tree{}, false
	}
	if len(elements) == 0 {
		return Tree{}, false
	}
	return Tree{Elements: elements, Structure: structure}, true
}

func textAttempt(html string, logger arbor.ILogger) (Tree, bool) {
	elements, structure, err := htmltext.Parse(html)
	if err != nil {
		logger.Warn().Err(err).Msg("text parser raised")
		return Tree{}, false
	}
	if len(elements) == 0 {
		return Tree{}, false
	}
	return Tree{Elements: elements, Structure: structure}, true
}
