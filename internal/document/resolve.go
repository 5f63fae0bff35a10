package document

import "strings"

// Result reports the outcome of a dotted-path lookup. Found distinguishes a
// missing path from a path that resolved to an empty value, which the legacy
// accessor conflated.
type Result struct {
	Value any
	Found bool
}

// Lookup traverses a dotted path ("section.field" relative to a page, or
// "page.section.field" on the document) and returns whatever value lives
// there. Any missing segment, or a segment applied to a non-object, yields
// Found == false rather than an error. Empty segments from stray dots simply
// miss.
func (d Document) Lookup(path string) Result {
	return lookup(d, path)
}

// Lookup resolves a dotted path against a single page slice.
func (p Page) Lookup(path string) Result {
	return lookup(p, path)
}

func lookup(root any, path string) Result {
	current := root
	for _, segment := range strings.Split(path, ".") {
		next, ok := child(current, segment)
		if !ok {
			return Result{}
		}
		current = next
	}
	return Result{Value: current, Found: true}
}

func child(value any, key string) (any, bool) {
	switch typed := value.(type) {
	case Document:
		page, ok := typed[key]
		return page, ok
	case Page:
		section, ok := typed[key]
		return section, ok
	case Section:
		v, ok := typed[key]
		return v, ok
	case map[string]any:
		v, ok := typed[key]
		return v, ok
	default:
		return nil, false
	}
}

// Text resolves path and projects the value to the requested language.
// Language-variant values follow the three-step fallback chain: requested
// language, then English, then the empty string. Plain strings come back
// verbatim. Arrays and other shapes are not textual and report ok == false,
// as does a path that fails to resolve; callers layer their own defaults on
// top.
func (d Document) Text(path, language string) (string, bool) {
	return projectText(d.Lookup(path), language)
}

// Text resolves path within a page slice. See Document.Text.
func (p Page) Text(path, language string) (string, bool) {
	return projectText(p.Lookup(path), language)
}

func projectText(result Result, language string) (string, bool) {
	if !result.Found {
		return "", false
	}
	if text, ok := result.Value.(string); ok {
		return text, true
	}
	variant, ok := AsVariant(result.Value)
	if !ok || !variantIsText(variant) {
		return "", false
	}
	return projectVariant(variant, language), true
}

// variantIsText reports whether at least one language side holds a string.
// Bilingual string-array values share the variant shape but are not textual.
func variantIsText(variant map[string]any) bool {
	for _, code := range Languages() {
		if _, isString := variant[code].(string); isString {
			return true
		}
	}
	return false
}

// projectVariant applies the fallback law: value[language] || value.en || "".
// An explicitly empty requested-language string falls through to English,
// exactly like the site always behaved.
func projectVariant(variant map[string]any, language string) string {
	if text, ok := variant[language].(string); ok && text != "" {
		return text
	}
	if text, ok := variant[LanguageEN].(string); ok && text != "" {
		return text
	}
	return ""
}
