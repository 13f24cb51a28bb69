package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestLocalizedTextResolve(t *testing.T) {
	full := LocalizedText{ES: "Valle Sagrado", EN: strPtr("Sacred Valley")}
	esOnly := LocalizedText{ES: "Valle Sagrado"}
	enOnly := LocalizedText{EN: strPtr("Sacred Valley")}
	emptyEN := LocalizedText{ES: "Valle Sagrado", EN: strPtr("")}

	// Idioma solicitado cuando existe la traducción
	assert.Equal(t, "Sacred Valley", full.Resolve(LangEnglish))
	assert.Equal(t, "Valle Sagrado", full.Resolve(LangSpanish))

	// Fallback a español cuando falta el inglés
	assert.Equal(t, "Valle Sagrado", esOnly.Resolve(LangEnglish))
	assert.Equal(t, "Valle Sagrado", emptyEN.Resolve(LangEnglish))

	// Fallback a inglés cuando falta el español
	assert.Equal(t, "Sacred Valley", enOnly.Resolve(LangSpanish))

	// Sin texto en ningún idioma
	assert.Equal(t, "", LocalizedText{}.Resolve(LangEnglish))
}

func TestLocalizedTextIsEmpty(t *testing.T) {
	assert.True(t, LocalizedText{}.IsEmpty())
	assert.True(t, LocalizedText{EN: strPtr("")}.IsEmpty())
	assert.False(t, LocalizedText{ES: "hola"}.IsEmpty())
	assert.False(t, LocalizedText{EN: strPtr("hi")}.IsEmpty())
}

func TestResolveAll(t *testing.T) {
	texts := []LocalizedText{
		{ES: "Guía profesional", EN: strPtr("Professional guide")},
		{ES: "Almuerzo"},
	}

	assert.Equal(t, []string{"Professional guide", "Almuerzo"}, ResolveAll(texts, LangEnglish))
	assert.Equal(t, []string{"Guía profesional", "Almuerzo"}, ResolveAll(texts, LangSpanish))
	assert.Empty(t, ResolveAll(nil, LangSpanish))
}
