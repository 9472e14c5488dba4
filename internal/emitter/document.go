// Package emitter turns a parsed element tree into the final plate-block
// document contract (spec.md §3, §4.7).
package emitter

import (
	"github.com/jusbr/leiimporter/internal/model"
)

// Result is the emitted document plus the URN->slug validation mismatch
// count accumulated while building it (spec.md §4.7's closing line: this
// count is the emit boundary's only error surface; it never aborts
// emission).
type Result struct {
	Document   *model.Document
	Mismatches int
}

// Emit builds the final Document from a parsed tree (spec.md §4.7 steps
// 1-8): every top-level article element is walked into its plate-block
// tree, revoked variants are merged into RevokedVersions, and the
// remaining in-force (or sole-revoked) articles are sorted by number.
func Emit(lawURN string, title string, elements []*model.LawElement, structure *model.Structure) Result {
	var articles []*model.Article
	mismatches := 0

	for _, el := range elements {
		if el.Kind != model.KindArticle {
			continue
		}
		a, m := emitArticle(el, lawURN)
		a.ID = lawURN + "!" + a.Slug
		articles = append(articles, a)
		mismatches += m
	}

	articles = mergeRevokedVersions(articles)
	sortArticlesByNumber(articles)

	var hierarchy *model.HierarchyNode
	estrutura := model.EstruturaDTO{}
	if structure != nil {
		hierarchy = structure.Root
		estrutura = model.EstruturaDTO{
			Partes:     structure.Parts,
			Livros:     structure.Books,
			Titulos:    structure.Titles,
			Subtitulos: structure.Subtitles,
			Capitulos:  structure.Chapters,
			Secoes:     structure.Sections,
			Subsecoes:  structure.Subsections,
		}
	}

	doc := &model.Document{
		Lei: model.LawMeta{
			URN:          lawURN,
			Title:        title,
			Hierarquia:   hierarchy,
			Estrutura:    estrutura,
			SlugWarnings: mismatches,
		},
		Artigos: articles,
	}

	return Result{Document: doc, Mismatches: mismatches}
}
