package document

// Document is the whole site content tree, keyed by page. It is a schema-less
// JSON document: pages and sections are open maps, and admin actions may add
// keys the static editor schema does not declare.
type Document map[string]Page

// Page groups the sections that belong to one logical page.
type Page map[string]Section

// Section maps field keys to their stored values. A value is either a plain
// string, a language-variant object, a string array, a bilingual string-array
// object, or an array of structured records.
type Section map[string]any

// PageKeys lists the logical pages the site ships with. The document itself
// imposes no restriction; these are the keys the bootstrap document and the
// editor schema use.
var PageKeys = []string{
	"home",
	"aboutTeam",
	"sponsors",
	"social",
	"robots",
	"materials",
	"projects",
	"aboutWebsite",
	"navigation",
	"footer",
}

// Clone returns a deep copy of the document. Mutating the copy never affects
// the original, which is what the editor relies on to keep its last-saved
// snapshot intact.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for key, page := range d {
		out[key] = page.Clone()
	}
	return out
}

// Clone returns a deep copy of the page.
func (p Page) Clone() Page {
	if p == nil {
		return nil
	}
	out := make(Page, len(p))
	for key, section := range p {
		out[key] = section.Clone()
	}
	return out
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	if s == nil {
		return nil
	}
	out := make(Section, len(s))
	for key, value := range s {
		out[key] = CloneValue(value)
	}
	return out
}

// CloneValue deep-copies an arbitrary JSON value tree.
func CloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[k] = CloneValue(v)
		}
		return out
	case Section:
		return map[string]any(typed.Clone())
	case []any:
		out := make([]any, len(typed))
		for i, v := range typed {
			out[i] = CloneValue(v)
		}
		return out
	case []string:
		out := make([]any, len(typed))
		for i, v := range typed {
			out[i] = v
		}
		return out
	default:
		return typed
	}
}

// Equal reports deep structural equality between two documents. The editor
// computes its dirty flag from this comparison, so it has to be reference
// independent.
func (d Document) Equal(other Document) bool {
	if len(d) != len(other) {
		return false
	}
	for key, page := range d {
		counterpart, ok := other[key]
		if !ok || !page.Equal(counterpart) {
			return false
		}
	}
	return true
}

// Equal reports deep structural equality between two pages.
func (p Page) Equal(other Page) bool {
	if len(p) != len(other) {
		return false
	}
	for key, section := range p {
		counterpart, ok := other[key]
		if !ok || !section.Equal(counterpart) {
			return false
		}
	}
	return true
}

// Equal reports deep structural equality between two sections.
func (s Section) Equal(other Section) bool {
	if len(s) != len(other) {
		return false
	}
	for key, value := range s {
		counterpart, ok := other[key]
		if !ok || !EqualValues(value, counterpart) {
			return false
		}
	}
	return true
}

// EqualValues compares two JSON value trees structurally.
func EqualValues(a, b any) bool {
	switch typedA := a.(type) {
	case map[string]any:
		typedB, ok := asMap(b)
		if !ok || len(typedA) != len(typedB) {
			return false
		}
		for k, v := range typedA {
			counterpart, present := typedB[k]
			if !present || !EqualValues(v, counterpart) {
				return false
			}
		}
		return true
	case Section:
		return EqualValues(map[string]any(typedA), b)
	case []any:
		typedB, ok := asList(b)
		if !ok || len(typedA) != len(typedB) {
			return false
		}
		for i, v := range typedA {
			if !EqualValues(v, typedB[i]) {
				return false
			}
		}
		return true
	case []string:
		return EqualValues(toAnyList(typedA), b)
	case nil:
		return b == nil
	default:
		return a == b
	}
}

func asMap(value any) (map[string]any, bool) {
	switch typed := value.(type) {
	case map[string]any:
		return typed, true
	case Section:
		return map[string]any(typed), true
	default:
		return nil, false
	}
}

func asList(value any) ([]any, bool) {
	switch typed := value.(type) {
	case []any:
		return typed, true
	case []string:
		return toAnyList(typed), true
	default:
		return nil, false
	}
}

func toAnyList(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
