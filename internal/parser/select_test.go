package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
)

func TestSelectAndParse_JSON(t *testing.T) {
	payload := []byte(`{"hasPart":[{"urn":"urn:x!art1","name":"Art. 1","workExample":[{"text":"Texto."}]}]}`)
	tree, err := SelectAndParse("json", payload, Options{}, arbor.NewLogger())
	require.NoError(t, err)
	require.Len(t, tree.Elements, 1)
}

func TestSelectAndParse_HTML_TagDefault(t *testing.T) {
	html := `<p>Art. 1º Toda pessoa é capaz de direitos e deveres na ordem civil.</p>`
	tree, err := SelectAndParse("html", []byte(html), Options{}, arbor.NewLogger())
	require.NoError(t, err)
	require.Len(t, tree.Elements, 1)
	assert.Equal(t, "1", tree.Elements[0].Number)
}

func TestSelectAndParse_ForceTextParser(t *testing.T) {
	html := `<p>Art. 1º Toda pessoa é capaz de direitos e deveres na ordem civil.</p>`
	tree, err := SelectAndParse("html", []byte(html), Options{ForceTextParser: true}, arbor.NewLogger())
	require.NoError(t, err)
	require.Len(t, tree.Elements, 1)
}

func TestSelectAndParse_NoArticlesFails(t *testing.T) {
	html := `<p>Sem artigos aqui.</p>`
	_, err := SelectAndParse("html", []byte(html), Options{}, arbor.NewLogger())
	assert.Error(t, err)
}
