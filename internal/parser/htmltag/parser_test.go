package htmltag

import (
	"testing"

	"github.com/jusbr/leiimporter/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ArticleWithParagraphUnico(t *testing.T) {
	html := `
	<h3>TÍTULO I</h3>
	<p>Das Pessoas Naturais</p>
	<p>Art. 5º A maioridade civil começa aos dezoito anos completos.</p>
	<p>Parágrafo único. Texto do parágrafo único.</p>
	`
	elements, structure, err := Parse(html)
	require.NoError(t, err)
	require.Len(t, structure.Titles, 1)
	assert.Equal(t, "TÍTULO I - Das Pessoas Naturais", structure.Titles[0])

	require.Len(t, elements, 1)
	article := elements[0]
	assert.Equal(t, "5", article.Number)
	require.Len(t, article.Children, 1)
	assert.Equal(t, model.KindParagraph, article.Children[0].Kind)
	assert.Equal(t, "unico", article.Children[0].Number)
}

func TestParse_RomanClauseUnderParagraph(t *testing.T) {
	html := `
	<p>Art. 121. Matar alguém.</p>
	<p>§ 2º Se o homicídio é cometido:</p>
	<p>IV - à traição, de emboscada, ou mediante dissimulação;</p>
	`
	elements, _, err := Parse(html)
	require.NoError(t, err)
	require.Len(t, elements, 1)
	require.Len(t, elements[0].Children, 1)
	paragraph := elements[0].Children[0]
	require.Len(t, paragraph.Children, 1)
	clause := paragraph.Children[0]
	assert.Equal(t, model.KindRomanClause, clause.Kind)
	assert.Equal(t, "IV", clause.Number)
}

func TestParse_BoldEpigraphBoundToArticle(t *testing.T) {
	html := `
	<p><b>Da Morte</b></p>
	<p>Art. 6º A existência da pessoa natural termina com a morte.</p>
	`
	elements, _, err := Parse(html)
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, "Da Morte", elements[0].Epigraph)
}

func TestParse_SuffixedArticleNumberKeepsHyphen(t *testing.T) {
	html := `<p>Art. 121-A. Feminicídio:</p>`
	elements, _, err := Parse(html)
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, "121-A", elements[0].Number)
}

func TestParse_ParteGeralSynthesis(t *testing.T) {
	html := `
	<p>Este Código institui a Parte Geral do direito civil.</p>
	<h3>TÍTULO I</h3>
	<p>Das Normas</p>
	<p>Art. 1º Toda pessoa é capaz de direitos e deveres na ordem civil.</p>
	`
	_, structure, err := Parse(html)
	require.NoError(t, err)
	require.Len(t, structure.Parts, 1)
	assert.Equal(t, "Parte geral", structure.Parts[0])
}
