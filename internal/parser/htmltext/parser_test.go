package htmltext

import (
	"testing"

	"github.com/jusbr/leiimporter/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ArticleWithLowercasePenaltyLine(t *testing.T) {
	html := `
	<p>Art. 121. Matar alguém:</p>
	<p>pena - reclusão, de seis a vinte anos.</p>
	`
	elements, _, err := Parse(html)
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Contains(t, elements[0].Text, "Matar alguém")
	require.Len(t, elements[0].Children, 1)
	assert.Equal(t, model.KindPenalty, elements[0].Children[0].Kind)
}

func TestParse_RevokedArticleMerge(t *testing.T) {
	html := `
	<p>Art. 121. Texto original.</p>
	<strike><p>Art. 121. Texto revogado.</p></strike>
	`
	// goquery treats <strike> as an inline wrapper here; the inner <p> is
	// still a block and inherits revocation via isStruckThrough.
	elements, _, err := Parse(html)
	require.NoError(t, err)
	require.Len(t, elements, 2)
	assert.False(t, elements[0].TextuallyRevoked)
	assert.True(t, elements[1].TextuallyRevoked)
}

func TestParse_HierarchyWithCenteredDescription(t *testing.T) {
	html := `
	<center>TÍTULO I</center>
	<center>Das Pessoas</center>
	<p>Art. 1º Toda pessoa é capaz de direitos e deveres na ordem civil.</p>
	`
	_, structure, err := Parse(html)
	require.NoError(t, err)
	require.Len(t, structure.Titles, 1)
	assert.Equal(t, "TÍTULO I - Das Pessoas", structure.Titles[0])
}

func TestParse_MarkdownFallbackForUntaggedSource(t *testing.T) {
	html := "Art. 121. Matar alguém:\n\npena - reclusão, de seis a vinte anos."
	elements, _, err := Parse(html)
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Contains(t, elements[0].Text, "Matar alguém")
}

func TestParse_SuffixedArticleNumberKeepsHyphen(t *testing.T) {
	html := `
	<p>Art. 121-A. Feminicídio:</p>
	<p>Pena - reclusão, de doze a trinta anos.</p>
	`
	elements, _, err := Parse(html)
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, "121-A", elements[0].Number)
}

func TestParse_ParagraphUnico(t *testing.T) {
	html := `
	<p>Art. 5º A maioridade civil começa aos dezoito anos completos.</p>
	<p>Parágrafo único. Texto complementar.</p>
	`
	elements, _, err := Parse(html)
	require.NoError(t, err)
	require.Len(t, elements, 1)
	require.Len(t, elements[0].Children, 1)
	assert.Equal(t, model.KindParagraph, elements[0].Children[0].Kind)
	assert.Equal(t, "unico", elements[0].Children[0].Number)
}
