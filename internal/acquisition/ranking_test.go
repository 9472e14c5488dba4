package acquisition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectVariant_PrefersCurrent(t *testing.T) {
	encodings := []Encoding{
		{ContentURL: "https://x/a", AdditionalType: "PublicacaoOriginal"},
		{ContentURL: "https://x/b", Version: "Current"},
		{ContentURL: "https://x/c", AdditionalType: "Compilacao"},
	}
	v, ok := selectVariant(encodings)
	assert.True(t, ok)
	assert.Equal(t, "https://x/b", v.ContentURL)
}

func TestSelectVariant_FallsBackToCompilacao(t *testing.T) {
	encodings := []Encoding{
		{ContentURL: "https://x/a", AdditionalType: "PublicacaoOriginal"},
		{ContentURL: "https://x/b", AdditionalType: "Vigente"},
	}
	v, ok := selectVariant(encodings)
	assert.True(t, ok)
	assert.Equal(t, "https://x/b", v.ContentURL)
}

func TestSelectVariant_FallsBackToPublicacaoOriginal(t *testing.T) {
	encodings := []Encoding{
		{ContentURL: "https://x/a", AdditionalType: "PublicacaoOriginal"},
	}
	v, ok := selectVariant(encodings)
	assert.True(t, ok)
	assert.Equal(t, "https://x/a", v.ContentURL)
}

func TestSelectVariant_FallsBackToLast(t *testing.T) {
	encodings := []Encoding{
		{ContentURL: "https://x/a"},
		{ContentURL: "https://x/b"},
	}
	v, ok := selectVariant(encodings)
	assert.True(t, ok)
	assert.Equal(t, "https://x/b", v.ContentURL)
}

func TestSelectVariant_Empty(t *testing.T) {
	_, ok := selectVariant(nil)
	assert.False(t, ok)
}

func TestExtractVariantUUID(t *testing.T) {
	uuid, ok := extractVariantUUID("https://example.com/binario/550e8400-e29b-41d4-a716-446655440000/texto")
	assert.True(t, ok)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", uuid)
}

func TestExtractVariantUUID_NotFound(t *testing.T) {
	_, ok := extractVariantUUID("https://example.com/no-uuid-here")
	assert.False(t, ok)
}
