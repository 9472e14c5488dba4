package emitter

import (
	"strings"

	"github.com/jusbr/leiimporter/internal/annotation"
	"github.com/jusbr/leiimporter/internal/common"
	"github.com/jusbr/leiimporter/internal/model"
)

// plateResult is a built PlateBlock plus the body text contributed to the
// article's texto_plano (empty for epigraph/rubric blocks, which are
// never included there per spec.md §3).
type plateResult struct {
	block           *model.PlateBlock
	bodyForTextoPlano string
}

// buildBodyBlock builds a plate block for a body element (caput,
// paragraph, clause, alinea, item, penalty), running the annotation
// splitter and substituting a revoked/vetoed placeholder when the clean
// body is effectively empty (spec.md §4.7 step 6).
func buildBodyBlock(label string, labelBold bool, rawText string, slug string, urn string, indent int) plateResult {
	split := annotation.Split(rawText)
	body := split.Clean
	revoked, vetoed := false, false

	if annotation.IsEffectivelyEmpty(split.Clean) && len(split.Annotations) > 0 {
		switch annotation.Classify(split.Annotations) {
		case annotation.Revoked:
			body = "Dispositivo revogado."
			revoked = true
		case annotation.Vetoed:
			body = "Dispositivo vetado."
			vetoed = true
		}
	}

	var children []model.TextRun
	if label != "" {
		children = append(children, model.TextRun{Text: label + " ", Bold: labelBold})
	}
	bodyRun := model.TextRun{Text: body}
	if revoked || vetoed {
		bodyRun.Strikethrough = true
		bodyRun.Color = "gray"
	}
	children = append(children, bodyRun)

	blk := &model.PlateBlock{
		Type:       "p",
		Children:   children,
		ID:         common.NewPlateBlockID(),
		Slug:       slug,
		URN:        urn,
		SearchText: collapseSpace(label + " " + body),
		Indent:     indent,
		Revoked:    revoked,
		Vetoed:     vetoed,
	}
	if len(split.Annotations) > 0 {
		blk.TextoOriginal = split.Original
		blk.Anotacoes = split.Annotations
	}

	return plateResult{block: blk, bodyForTextoPlano: body}
}

// buildEpigraphBlock builds a bold, non-body plate block for an epigraph
// or rubric (spec.md §4.7 step 3, step 5 bullet on rubrics). Never
// contributes to texto_plano.
func buildEpigraphBlock(text string, slug string, urn string) *model.PlateBlock {
	return &model.PlateBlock{
		Type:       "p",
		Children:   []model.TextRun{{Text: text, Bold: true}},
		ID:         common.NewPlateBlockID(),
		Slug:       slug,
		URN:        urn,
		SearchText: collapseSpace(text),
	}
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
