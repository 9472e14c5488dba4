package emitter

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/jusbr/leiimporter/internal/model"
	"github.com/jusbr/leiimporter/internal/urnslug"
)

// emitArticle runs spec.md §4.7 steps 1-6 for a single top-level article
// LawElement, returning the finished Article plus the count of URN->slug
// validation mismatches observed while building it.
func emitArticle(el *model.LawElement, lawURN string) (*model.Article, int) {
	mismatches := 0
	out := model.NewArticle()
	out.Number = el.Number
	out.InForce = el.InForce && !el.TextuallyRevoked

	slugBase := "artigo-" + strings.ToLower(el.Number)
	if el.TextuallyRevoked {
		slugBase += "-revogado"
	}
	out.Slug = slugBase

	articleURN := el.URN
	if articleURN == "" {
		articleURN = fmt.Sprintf("%s!art%s", lawURN, el.Number)
	}

	out.Path = stringifyPath(el.Path)
	out.Context = stringifyPath(el.Path)

	var blocks []*model.PlateBlock
	var bodyTexts []string
	var searchParts []string

	if el.Epigraph != "" {
		blk := buildEpigraphBlock(el.Epigraph, slugBase+"_epigrafe", articleURN+"_epi")
		blocks = append(blocks, blk)
		out.Epigraph = el.Epigraph
		searchParts = append(searchParts, blk.SearchText)
	}

	caputURN := articleURN + "_cpt"
	caputSlug := slugBase + ".caput"
	if !urnslug.Validate(caputSlug) {
		mismatches++
	}
	caputResult := buildBodyBlock(articleLabel(el.Number), true, el.Text, caputSlug, caputURN, 0)
	blocks = append(blocks, caputResult.block)
	bodyTexts = append(bodyTexts, caputResult.bodyForTextoPlano)
	searchParts = append(searchParts, caputResult.block.SearchText)

	var pendingRubric string
	childBlocks, childBodies, childSearch, childMismatches := walkChildren(el.Children, slugBase, articleURN, 1, &pendingRubric)
	blocks = append(blocks, childBlocks...)
	bodyTexts = append(bodyTexts, childBodies...)
	searchParts = append(searchParts, childSearch...)
	mismatches += childMismatches

	out.PlateContent = blocks
	out.TextoPlano = strings.Join(filterNonEmpty(bodyTexts), "\n")
	out.SearchText = strings.Join(searchParts, " ")
	hash := sha256.Sum256([]byte(out.TextoPlano))
	out.ContentHash = hex.EncodeToString(hash[:])

	return out, mismatches
}

// walkChildren recurses into an element's children, producing plate
// blocks per spec.md §4.7 step 5: paragraphs, clauses, alineas, items,
// penalties, each slugged under slugPrefix.
func walkChildren(children []*model.LawElement, slugPrefix string, urnPrefix string, indent int, pendingRubric *string) (blocks []*model.PlateBlock, bodies []string, searchParts []string, mismatches int) {
	for _, child := range children {
		childSlugBase, childURN := "", ""

		switch child.Kind {
		case model.KindParagraph:
			childSlugBase = slugPrefix + ".paragrafo-" + strings.ToLower(child.Number)
			childURN = urnPrefix + "_par" + child.Number
			if !urnslug.Validate(childSlugBase) {
				mismatches++
			}
			if child.TextuallyRevoked {
				childSlugBase += "-revogado"
			}
			if child.Epigraph != "" {
				*pendingRubric = child.Epigraph
			}
			if *pendingRubric != "" {
				blk := buildEpigraphBlock(*pendingRubric, childSlugBase+"-epigraph", childURN+"_epi")
				blocks = append(blocks, blk)
				searchParts = append(searchParts, blk.SearchText)
				*pendingRubric = ""
			}
			res := buildBodyBlock(paragraphLabel(child.Number), true, child.Text, childSlugBase, childURN, indent)
			blocks = append(blocks, res.block)
			bodies = append(bodies, res.bodyForTextoPlano)
			searchParts = append(searchParts, res.block.SearchText)

		case model.KindRomanClause:
			arabic := romanToArabicSlug(child.Number)
			childSlugBase = fmt.Sprintf("%s.inciso-%d", slugPrefix, arabic)
			childURN = fmt.Sprintf("%s_inc%d", urnPrefix, arabic)
			if !urnslug.Validate(childSlugBase) {
				mismatches++
			}
			if child.TextuallyRevoked {
				childSlugBase += "-revogado"
			}
			res := buildBodyBlock(romanClauseLabel(child.Number), true, child.Text, childSlugBase, childURN, indent)
			blocks = append(blocks, res.block)
			bodies = append(bodies, res.bodyForTextoPlano)
			searchParts = append(searchParts, res.block.SearchText)

		case model.KindLetteredClause:
			childSlugBase = slugPrefix + ".alinea-" + child.Number
			childURN = urnPrefix + "_ali" + child.Number
			if !urnslug.Validate(childSlugBase) {
				mismatches++
			}
			if child.TextuallyRevoked {
				childSlugBase += "-revogado"
			}
			res := buildBodyBlock(letteredClauseLabel(child.Number), false, child.Text, childSlugBase, childURN, indent)
			blocks = append(blocks, res.block)
			bodies = append(bodies, res.bodyForTextoPlano)
			searchParts = append(searchParts, res.block.SearchText)

		case model.KindItem:
			childSlugBase = slugPrefix + ".item-" + child.Number
			childURN = urnPrefix + "_ite" + child.Number
			if !urnslug.Validate(childSlugBase) {
				mismatches++
			}
			if child.TextuallyRevoked {
				childSlugBase += "-revogado"
			}
			res := buildBodyBlock(itemLabel(child.Number), false, child.Text, childSlugBase, childURN, indent)
			blocks = append(blocks, res.block)
			bodies = append(bodies, res.bodyForTextoPlano)
			searchParts = append(searchParts, res.block.SearchText)

		case model.KindPenalty:
			childSlugBase = slugPrefix + ".pena"
			res := buildBodyBlock(penaltyLabel, true, child.Text, childSlugBase, "", indent)
			blocks = append(blocks, res.block)
			bodies = append(bodies, res.bodyForTextoPlano)
			searchParts = append(searchParts, res.block.SearchText)
			continue // penalties carry no further children

		default:
			continue
		}

		childBlocks, childBodies, childSearch, childMismatches := walkChildren(child.Children, childSlugBase, childURN, indent+1, pendingRubric)
		blocks = append(blocks, childBlocks...)
		bodies = append(bodies, childBodies...)
		searchParts = append(searchParts, childSearch...)
		mismatches += childMismatches
	}
	return blocks, bodies, searchParts, mismatches
}

func stringifyPath(path map[model.Kind]string) map[string]string {
	out := make(map[string]string, len(path))
	for k, v := range path {
		out[string(k)] = v
	}
	return out
}

func filterNonEmpty(texts []string) []string {
	var out []string
	for _, t := range texts {
		if strings.TrimSpace(t) != "" {
			out = append(out, t)
		}
	}
	return out
}
