package editor

import (
	"github.com/alphire-robotics/team-cms/internal/document"
)

// GalleryImages returns the image URLs currently stored in a gallery field.
func (s *Session) GalleryImages(page, section, field string) []string {
	return document.Strings(s.fieldValue(page, section, field))
}

// AppendGalleryImage adds an image URL to the end of a gallery.
func (s *Session) AppendGalleryImage(page, section, field, url string) {
	list := asAnyList(s.editableValue(page, section, field))
	s.UpdateField(page, section, field, append(list, url))
}

// SetGalleryImage replaces the URL at index.
func (s *Session) SetGalleryImage(page, section, field string, index int, url string) error {
	list, err := listAt(s.editableValue(page, section, field), index)
	if err != nil {
		return err
	}
	list[index] = url
	s.UpdateField(page, section, field, list)
	return nil
}

// RemoveGalleryImage deletes the URL at index.
func (s *Session) RemoveGalleryImage(page, section, field string, index int) error {
	list, err := listAt(s.editableValue(page, section, field), index)
	if err != nil {
		return err
	}
	s.UpdateField(page, section, field, append(list[:index], list[index+1:]...))
	return nil
}

// ListItems returns one language side of a bilingual point list.
func (s *Session) ListItems(page, section, field, language string) []string {
	return document.VariantStrings(s.fieldValue(page, section, field), language)
}

// InitBilingualList seeds an uninitialized details or goals field with one
// empty point per language. An already-variant field is left alone.
func (s *Session) InitBilingualList(page, section, field string) {
	if _, ok := document.AsVariant(s.fieldValue(page, section, field)); ok {
		return
	}
	s.UpdateField(page, section, field, document.BilingualList([]string{""}, []string{""}))
}

// AppendListItem adds an empty point to one language side.
func (s *Session) AppendListItem(page, section, field, language string) {
	variant := asVariantMap(s.editableValue(page, section, field))
	variant[language] = append(asAnyList(variant[language]), "")
	s.UpdateField(page, section, field, variant)
}

// SetListItem replaces the point at index on one language side.
func (s *Session) SetListItem(page, section, field, language string, index int, text string) error {
	variant := asVariantMap(s.editableValue(page, section, field))
	list, err := listAt(variant[language], index)
	if err != nil {
		return err
	}
	list[index] = text
	variant[language] = list
	s.UpdateField(page, section, field, variant)
	return nil
}

// RemoveListItem deletes the point at index on one language side. The other
// language keeps its own length; sides are never realigned.
func (s *Session) RemoveListItem(page, section, field, language string, index int) error {
	variant := asVariantMap(s.editableValue(page, section, field))
	list, err := listAt(variant[language], index)
	if err != nil {
		return err
	}
	variant[language] = append(list[:index], list[index+1:]...)
	s.UpdateField(page, section, field, variant)
	return nil
}

// Records returns the structured records stored in a list field.
func (s *Session) Records(page, section, field string) []map[string]any {
	return document.Records(s.fieldValue(page, section, field))
}

// AppendRecord adds a record (usually a schema template) to a list field.
func (s *Session) AppendRecord(page, section, field string, record map[string]any) {
	list := asAnyList(s.editableValue(page, section, field))
	s.UpdateField(page, section, field, append(list, document.CloneValue(record)))
}

// SetRecordValue replaces one key of the record at index.
func (s *Session) SetRecordValue(page, section, field string, index int, key string, value any) error {
	list, err := listAt(s.editableValue(page, section, field), index)
	if err != nil {
		return err
	}
	record, ok := list[index].(map[string]any)
	if !ok {
		return ErrNotAList
	}
	record[key] = value
	s.UpdateField(page, section, field, list)
	return nil
}

// SetRecordText replaces one language side of a bilingual key on the record
// at index, vivifying the variant shape when the key is still plain.
func (s *Session) SetRecordText(page, section, field string, index int, key, language, text string) error {
	list, err := listAt(s.editableValue(page, section, field), index)
	if err != nil {
		return err
	}
	record, ok := list[index].(map[string]any)
	if !ok {
		return ErrNotAList
	}
	variant, ok := record[key].(map[string]any)
	if !ok {
		variant = map[string]any{}
	}
	variant[language] = text
	record[key] = variant
	s.UpdateField(page, section, field, list)
	return nil
}

// RemoveRecord deletes the record at index.
func (s *Session) RemoveRecord(page, section, field string, index int) error {
	list, err := listAt(s.editableValue(page, section, field), index)
	if err != nil {
		return err
	}
	s.UpdateField(page, section, field, append(list[:index], list[index+1:]...))
	return nil
}

// AppendNestedRecord adds a record to a list living under one key of the
// record at index, e.g. a material inside a category.
func (s *Session) AppendNestedRecord(page, section, field string, index int, key string, record map[string]any) error {
	list, err := listAt(s.editableValue(page, section, field), index)
	if err != nil {
		return err
	}
	parent, ok := list[index].(map[string]any)
	if !ok {
		return ErrNotAList
	}
	parent[key] = append(asAnyList(parent[key]), document.CloneValue(record))
	s.UpdateField(page, section, field, list)
	return nil
}

// RemoveNestedRecord deletes the nested record at nestedIndex.
func (s *Session) RemoveNestedRecord(page, section, field string, index int, key string, nestedIndex int) error {
	list, err := listAt(s.editableValue(page, section, field), index)
	if err != nil {
		return err
	}
	parent, ok := list[index].(map[string]any)
	if !ok {
		return ErrNotAList
	}
	nested, err := listAt(parent[key], nestedIndex)
	if err != nil {
		return err
	}
	parent[key] = append(nested[:nestedIndex], nested[nestedIndex+1:]...)
	s.UpdateField(page, section, field, list)
	return nil
}

func asAnyList(value any) []any {
	switch typed := value.(type) {
	case []any:
		return typed
	case []string:
		out := make([]any, len(typed))
		for i, v := range typed {
			out[i] = v
		}
		return out
	default:
		return []any{}
	}
}

func asVariantMap(value any) map[string]any {
	if variant, ok := value.(map[string]any); ok {
		return variant
	}
	return map[string]any{}
}

func listAt(value any, index int) ([]any, error) {
	switch value.(type) {
	case nil:
		return nil, ErrIndexOutOfRange
	case []any, []string:
	default:
		return nil, ErrNotAList
	}
	list := asAnyList(value)
	if index < 0 || index >= len(list) {
		return nil, ErrIndexOutOfRange
	}
	return list, nil
}
