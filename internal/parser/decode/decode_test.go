package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestHTML_PassesThroughValidUTF8(t *testing.T) {
	s, err := HTML([]byte("Art. 1º Toda pessoa é capaz."))
	require.NoError(t, err)
	assert.Equal(t, "Art. 1º Toda pessoa é capaz.", s)
}

func TestHTML_DecodesLatin1Bytes(t *testing.T) {
	encoded, err := charmap.ISO8859_1.NewEncoder().String("Art. 1º Não revogado")
	require.NoError(t, err)

	s, err := HTML([]byte(encoded))
	require.NoError(t, err)
	assert.Contains(t, s, "Não revogado")
}
