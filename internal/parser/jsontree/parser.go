package jsontree

import (
	"encoding/json"
	"fmt"

	"github.com/jusbr/leiimporter/internal/model"
)

var hierarchyKinds = map[model.Kind]bool{
	model.KindPart: true, model.KindBook: true, model.KindTitle: true,
	model.KindSubtitle: true, model.KindChapter: true, model.KindSection: true,
	model.KindSubsection: true,
}

var bodyKinds = map[model.Kind]bool{
	model.KindCaput: true, model.KindParagraph: true, model.KindRomanClause: true,
	model.KindLetteredClause: true, model.KindItem: true,
}

// Parse recursively descends the hasPart tree in payload, producing the
// top-level element list and the accumulated Structure (spec.md §4.4).
func Parse(payload []byte) ([]*model.LawElement, *model.Structure, error) {
	var doc document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, nil, fmt.Errorf("decoding structured JSON payload: %w", err)
	}

	structure := model.NewStructure()
	elements := walkChildren(doc.HasPart, map[model.Kind]string{}, structure, structure.Root)
	return elements, structure, nil
}

// walkChildren walks one level of hasPart nodes, threading the running
// context of currently-open hierarchy headings and appending to structure
// as hierarchy nodes are encountered.
func walkChildren(nodes []node, ctx map[model.Kind]string, structure *model.Structure, parent *model.HierarchyNode) []*model.LawElement {
	var elements []*model.LawElement

	for _, n := range nodes {
		kind, number, ok := classify(n)
		if !ok {
			if text := n.Name; text != "" {
				structure.OrphanTexts = append(structure.OrphanTexts, text)
			}
			elements = append(elements, walkChildren(n.HasPart, ctx, structure, parent)...)
			continue
		}

		if hierarchyKinds[kind] {
			heading := n.Name
			newCtx := cloneContext(ctx)
			newCtx[kind] = heading
			childNode := structure.AppendHeading(kind, heading, parent)
			elements = append(elements, walkChildren(n.HasPart, newCtx, structure, childNode)...)
			continue
		}

		el := model.NewLawElement(kind)
		el.Number = number
		el.URN = n.URN
		el.Text = latestWorkExampleText(n)
		el.InForce = n.LegislationLegalForce != "NotInForce"
		el.TextuallyRevoked = !el.InForce
		el.Path = cloneContext(ctx)

		if kind == model.KindArticle || bodyKinds[kind] {
			el.Children = walkChildren(n.HasPart, ctx, structure, parent)
		}

		elements = append(elements, el)
	}

	return elements
}

// latestWorkExampleText returns the most recent (last) workExample's text.
func latestWorkExampleText(n node) string {
	if len(n.WorkExample) == 0 {
		return ""
	}
	return n.WorkExample[len(n.WorkExample)-1].Text
}

func cloneContext(ctx map[model.Kind]string) map[model.Kind]string {
	clone := make(map[model.Kind]string, len(ctx))
	for k, v := range ctx {
		clone[k] = v
	}
	return clone
}
