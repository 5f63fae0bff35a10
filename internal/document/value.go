package document

// Language codes the site publishes content in. English doubles as the
// fallback language everywhere.
const (
	LanguageEN = "en"
	LanguagePT = "pt"
)

// Languages returns the supported language codes in display order.
func Languages() []string {
	return []string{LanguageEN, LanguagePT}
}

// IsLanguage reports whether code names a supported language.
func IsLanguage(code string) bool {
	return code == LanguageEN || code == LanguagePT
}

// Bilingual builds a language-variant value from its two sides.
func Bilingual(en, pt string) map[string]any {
	return map[string]any{LanguageEN: en, LanguagePT: pt}
}

// BilingualList builds a bilingual string-array value, used for point-form
// lists such as project details and goals.
func BilingualList(en, pt []string) map[string]any {
	return map[string]any{
		LanguageEN: toAnyList(en),
		LanguagePT: toAnyList(pt),
	}
}

// AsVariant reports whether value carries the {en, pt} language-variant shape
// and returns it as a map when it does. Presence of either key marks the
// value as bilingual; absence of both means "not yet bilingual".
func AsVariant(value any) (map[string]any, bool) {
	variant, ok := asMap(value)
	if !ok {
		return nil, false
	}
	if _, present := variant[LanguageEN]; present {
		return variant, true
	}
	if _, present := variant[LanguagePT]; present {
		return variant, true
	}
	return nil, false
}

// ToBilingual converts a scalar value to the language-variant shape, keeping
// the existing text as English. Non-string values convert to an empty pair.
func ToBilingual(value any) map[string]any {
	existing, _ := value.(string)
	return Bilingual(existing, "")
}

// Strings coerces a stored array value to []string, dropping entries that are
// not strings. Nil or non-array values yield an empty slice so callers can
// treat uninitialized galleries as empty.
func Strings(value any) []string {
	list, ok := asList(value)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if text, isString := item.(string); isString {
			out = append(out, text)
		}
	}
	return out
}

// VariantStrings extracts the per-language list from a bilingual string-array
// value. Lists may have different lengths between languages; no alignment is
// enforced.
func VariantStrings(value any, language string) []string {
	variant, ok := AsVariant(value)
	if !ok {
		return nil
	}
	return Strings(variant[language])
}

// Records coerces a stored array value to a slice of structured records
// (materials, sponsors, categories). Entries that are not objects are
// skipped.
func Records(value any) []map[string]any {
	list, ok := asList(value)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if record, isMap := asMap(item); isMap {
			out = append(out, record)
		}
	}
	return out
}

// RecordList converts structured records back to the stored representation.
func RecordList(records []map[string]any) []any {
	out := make([]any, len(records))
	for i, record := range records {
		out[i] = record
	}
	return out
}
