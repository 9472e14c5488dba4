package emitter

import (
	"testing"

	"github.com/jusbr/leiimporter/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func article1(number, text string) *model.LawElement {
	el := model.NewLawElement(model.KindArticle)
	el.Number = number
	el.Text = text
	return el
}

func TestEmit_OrdinalArticleLabels(t *testing.T) {
	low := article1("1", "Toda pessoa é capaz de direitos e deveres na ordem civil.")
	high := article1("10", "A existência da pessoa natural termina com a morte.")
	suffixed := article1("121-A", "Texto do artigo acrescido.")

	res := Emit("urn:lex:br:test", "Test", []*model.LawElement{low, high, suffixed}, model.NewStructure())
	require.Len(t, res.Document.Artigos, 3)

	byNumber := map[string]*model.Article{}
	for _, a := range res.Document.Artigos {
		byNumber[a.Number] = a
	}

	assert.Equal(t, "Art. 1º Toda pessoa é capaz de direitos e deveres na ordem civil.", byNumber["1"].PlateContent[0].SearchText)
	assert.Equal(t, "Art. 10 A existência da pessoa natural termina com a morte.", byNumber["10"].PlateContent[0].SearchText)
	assert.Equal(t, "Art. 121-A Texto do artigo acrescido.", byNumber["121-A"].PlateContent[0].SearchText)
}

func TestEmit_RevokedVersionMerge(t *testing.T) {
	inForce := article1("5", "Texto vigente do artigo quinto.")
	inForce.InForce = true

	revoked := article1("5", "Texto antigo. (Revogado pela Lei nº 9.999, de 2000)")
	revoked.InForce = false
	revoked.TextuallyRevoked = true
	revoked.Epigraph = "Da revogação"

	res := Emit("urn:lex:br:test", "Test", []*model.LawElement{inForce, revoked}, model.NewStructure())
	require.Len(t, res.Document.Artigos, 1)

	out := res.Document.Artigos[0]
	assert.Equal(t, "5", out.Number)
	assert.True(t, out.InForce)
	require.Len(t, out.RevokedVersions, 1)
	assert.True(t, out.RevokedVersions[0].ContentHash != out.ContentHash)
	assert.Equal(t, "Da revogação", out.Epigraph)
}

func TestEmit_ThousandsDottedNumberLabelAndSort(t *testing.T) {
	a1 := article1("1", "Primeiro.")
	a1029 := article1("1.029", "Mil e vinte e nove.")

	res := Emit("urn:lex:br:test", "Test", []*model.LawElement{a1029, a1}, model.NewStructure())
	require.Len(t, res.Document.Artigos, 2)

	assert.Equal(t, []string{"1", "1.029"}, []string{res.Document.Artigos[0].Number, res.Document.Artigos[1].Number})

	byNumber := map[string]*model.Article{}
	for _, a := range res.Document.Artigos {
		byNumber[a.Number] = a
	}
	assert.Equal(t, "Art. 1.029 Mil e vinte e nove.", byNumber["1.029"].PlateContent[0].SearchText)
}

func TestEmit_AllRevokedGroupKeptSeparate(t *testing.T) {
	revokedA := article1("9", "Primeira redação. (Revogado pela Lei nº 1.000, de 1990)")
	revokedA.TextuallyRevoked = true
	revokedB := article1("9", "Segunda redação. (Revogado pela Lei nº 2.000, de 2000)")
	revokedB.TextuallyRevoked = true

	res := Emit("urn:lex:br:test", "Test", []*model.LawElement{revokedA, revokedB}, model.NewStructure())
	require.Len(t, res.Document.Artigos, 2)
	for _, a := range res.Document.Artigos {
		assert.False(t, a.InForce)
		assert.Empty(t, a.RevokedVersions)
	}
}

func TestEmit_VetoedEmptyBodySubstitution(t *testing.T) {
	vetoed := article1("7", "(VETADO)")

	res := Emit("urn:lex:br:test", "Test", []*model.LawElement{vetoed}, model.NewStructure())
	require.Len(t, res.Document.Artigos, 1)

	blk := res.Document.Artigos[0].PlateContent[0]
	var bodyRun model.TextRun
	for _, c := range blk.Children {
		if !c.Bold {
			bodyRun = c
		}
	}
	assert.Equal(t, "Dispositivo vetado.", bodyRun.Text)
	assert.True(t, bodyRun.Strikethrough)
	assert.True(t, blk.Vetoed)
}

func TestEmit_SortedOutputAndMalformedFallback(t *testing.T) {
	a2 := article1("2", "Segundo.")
	a10 := article1("10", "Décimo.")
	aBad := article1("abc", "Número malformado.")
	a1 := article1("1", "Primeiro.")

	res := Emit("urn:lex:br:test", "Test", []*model.LawElement{a2, a10, aBad, a1}, model.NewStructure())
	require.Len(t, res.Document.Artigos, 4)

	var numbers []string
	for _, a := range res.Document.Artigos {
		numbers = append(numbers, a.Number)
	}
	assert.Equal(t, []string{"abc", "1", "2", "10"}, numbers)
}

func TestEmit_UniqueSlugsAndTextoPlanoExcludesAnnotations(t *testing.T) {
	el := article1("3", "Corpo do artigo. (Incluído pela Lei nº 1.000, de 1990)")
	paragraph := model.NewLawElement(model.KindParagraph)
	paragraph.Number = "1"
	paragraph.Text = "Parágrafo primeiro."
	el.Children = append(el.Children, paragraph)

	res := Emit("urn:lex:br:test", "Test", []*model.LawElement{el}, model.NewStructure())
	out := res.Document.Artigos[0]

	seen := map[string]bool{}
	for _, blk := range out.PlateContent {
		assert.False(t, seen[blk.Slug], "duplicate slug %s", blk.Slug)
		seen[blk.Slug] = true
	}

	assert.NotContains(t, out.TextoPlano, "Incluído")
	assert.Contains(t, out.TextoPlano, "Parágrafo primeiro.")
}
