package domain

// LocalizedText is a bilingual text field as exchanged with the frontend:
// Spanish is mandatory, English optional. The JSON shape ({es, en}) is also
// the storage shape, so the tags live on the domain type.
type LocalizedText struct {
	ES string  `json:"es"`
	EN *string `json:"en,omitempty"`
}

// Resolve returns the text for lang, falling back to Spanish, then English,
// then the empty string.
func (t LocalizedText) Resolve(lang string) string {
	if lang == LangEnglish && t.EN != nil && *t.EN != "" {
		return *t.EN
	}
	if t.ES != "" {
		return t.ES
	}
	if t.EN != nil {
		return *t.EN
	}
	return ""
}

// IsEmpty reports whether the field carries no text in any language.
func (t LocalizedText) IsEmpty() bool {
	return t.ES == "" && (t.EN == nil || *t.EN == "")
}

// ResolveAll resolves a slice of localized fields into plain strings.
func ResolveAll(texts []LocalizedText, lang string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = t.Resolve(lang)
	}
	return out
}
