package urnslug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromFragment_Simple(t *testing.T) {
	slug, warnings := FromFragment("art121")
	assert.Equal(t, "artigo-121", slug)
	assert.Empty(t, warnings)
}

func TestFromFragment_Nested(t *testing.T) {
	slug, warnings := FromFragment("art121_par2_inc4")
	assert.Equal(t, "artigo-121.paragrafo-2.inciso-4", slug)
	assert.Empty(t, warnings)
}

func TestFromFragment_Caput(t *testing.T) {
	slug, warnings := FromFragment("art121_cpt")
	assert.Equal(t, "artigo-121.caput", slug)
	assert.Empty(t, warnings)
}

func TestFromFragment_HyphenLetterSuffix(t *testing.T) {
	slug, warnings := FromFragment("art121a")
	assert.Equal(t, "artigo-121a", slug)
	assert.Empty(t, warnings)
}

func TestFromFragment_UnknownTokenWarns(t *testing.T) {
	slug, warnings := FromFragment("xyz9")
	assert.Equal(t, "xyz9", slug)
	assert.Len(t, warnings, 1)
	assert.Equal(t, "xyz9", warnings[0].Token)
}

func TestValidate(t *testing.T) {
	assert.True(t, Validate("artigo-121"))
	assert.True(t, Validate("paragrafo-2"))
	assert.False(t, Validate("xyz-9"))
}
