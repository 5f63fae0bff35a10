package document

// Set returns a new document with page.section.field replaced by value.
// Intermediate page and section maps are created when absent. The receiver is
// never mutated: the path down to the field is copied, sibling keys and
// untouched subtrees are shared, so snapshot comparisons against the previous
// document stay valid.
func (d Document) Set(page, section, field string, value any) Document {
	next := shallowCloneDocument(d)

	nextPage := shallowClonePage(next[page])
	nextSection := shallowCloneSection(nextPage[section])

	nextSection[field] = value
	nextPage[section] = nextSection
	next[page] = nextPage
	return next
}

// SetLanguage returns a new document with page.section.field[language]
// replaced by value. When the field is absent or not yet an object it is
// vivified as an empty variant first, matching how the editor converts plain
// fields the first time a language-specific edit lands on them.
func (d Document) SetLanguage(page, section, field, language, value string) Document {
	next := shallowCloneDocument(d)

	nextPage := shallowClonePage(next[page])
	nextSection := shallowCloneSection(nextPage[section])

	variant := map[string]any{}
	if existing, ok := asMap(nextSection[field]); ok {
		variant = make(map[string]any, len(existing)+1)
		for k, v := range existing {
			variant[k] = v
		}
	}
	variant[language] = value

	nextSection[field] = variant
	nextPage[section] = nextSection
	next[page] = nextPage
	return next
}

func shallowCloneDocument(d Document) Document {
	out := make(Document, len(d)+1)
	for k, v := range d {
		out[k] = v
	}
	return out
}

func shallowClonePage(p Page) Page {
	out := make(Page, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	return out
}

func shallowCloneSection(s Section) Section {
	out := make(Section, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	return out
}
