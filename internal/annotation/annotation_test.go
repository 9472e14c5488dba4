package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit_NoAnnotation(t *testing.T) {
	r := Split("Texto normal sem anotacao.")
	assert.Equal(t, "Texto normal sem anotacao.", r.Clean)
	assert.Empty(t, r.Annotations)
}

func TestSplit_SingleTrailingAnnotation(t *testing.T) {
	r := Split("Texto do dispositivo. (Incluído pela Lei nº 12.015, de 2009)")
	assert.Equal(t, "Texto do dispositivo.", r.Clean)
	assert.Equal(t, []string{"Incluído pela Lei nº 12.015, de 2009"}, r.Annotations)
}

func TestSplit_MultipleTrailingAnnotations(t *testing.T) {
	r := Split("Texto. (Revogado) (Vide Lei nº 1.000)")
	assert.Equal(t, "Texto.", r.Clean)
	assert.Len(t, r.Annotations, 2)
}

func TestSplit_TrailingParenWithoutMarkerIsNotAnnotation(t *testing.T) {
	r := Split("Texto com uma nota comum (nao e marcador legislativo)")
	assert.Equal(t, "Texto com uma nota comum (nao e marcador legislativo)", r.Clean)
	assert.Empty(t, r.Annotations)
}

func TestClassify_Revoked(t *testing.T) {
	assert.Equal(t, Revoked, Classify([]string{"Revogado pela Lei nº 9.000"}))
}

func TestClassify_VetoedWithoutMantido(t *testing.T) {
	assert.Equal(t, Vetoed, Classify([]string{"Vetado na Lei nº 9.000"}))
}

func TestClassify_VetoedOverriddenByMantido(t *testing.T) {
	assert.Equal(t, InForce, Classify([]string{"Vetado e mantido pelo Congresso Nacional"}))
}

func TestIsEffectivelyEmpty(t *testing.T) {
	assert.True(t, IsEffectivelyEmpty("."))
	assert.True(t, IsEffectivelyEmpty(""))
	assert.False(t, IsEffectivelyEmpty("texto"))
}
