package jsontree

import (
	"testing"

	"github.com/jusbr/leiimporter/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `{
  "urn": "urn:lex:br:federal:lei:2003;10.406",
  "hasPart": [
    {
      "urn": "urn:lex:br:federal:lei:2003;10.406!tit1",
      "name": "TÍTULO I - Das Pessoas",
      "hasPart": [
        {
          "urn": "urn:lex:br:federal:lei:2003;10.406!art121",
          "name": "Art. 121",
          "legislationLegalForce": "InForce",
          "workExample": [{"text": "Caput antigo"}, {"text": "A existência da pessoa natural termina com a morte."}],
          "hasPart": [
            {
              "urn": "urn:lex:br:federal:lei:2003;10.406!art121_par2",
              "name": "§ 2º",
              "legislationLegalForce": "InForce",
              "workExample": [{"text": "Texto do parágrafo segundo."}]
            }
          ]
        }
      ]
    }
  ]
}`

func TestParse_BuildsHierarchyAndArticle(t *testing.T) {
	elements, structure, err := Parse([]byte(samplePayload))
	require.NoError(t, err)
	require.Len(t, structure.Titles, 1)
	assert.Equal(t, "TÍTULO I - Das Pessoas", structure.Titles[0])

	require.Len(t, elements, 1)
	article := elements[0]
	assert.Equal(t, model.KindArticle, article.Kind)
	assert.Equal(t, "121", article.Number)
	assert.Equal(t, "A existência da pessoa natural termina com a morte.", article.Text)
	assert.True(t, article.InForce)
	assert.Equal(t, "TÍTULO I - Das Pessoas", article.Path[model.KindTitle])

	require.Len(t, article.Children, 1)
	paragraph := article.Children[0]
	assert.Equal(t, model.KindParagraph, paragraph.Kind)
	assert.Equal(t, "2", paragraph.Number)
}

func TestParse_RevokedNode(t *testing.T) {
	payload := `{
	  "hasPart": [
	    {
	      "urn": "urn:x!art5",
	      "name": "Art. 5",
	      "legislationLegalForce": "NotInForce",
	      "workExample": [{"text": "Texto revogado."}]
	    }
	  ]
	}`
	elements, _, err := Parse([]byte(payload))
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.False(t, elements[0].InForce)
	assert.True(t, elements[0].TextuallyRevoked)
}
