package schema

import (
	"strings"

	"github.com/alphire-robotics/team-cms/internal/document"
)

// FieldKind names the editor widget a field resolves to.
type FieldKind int

const (
	// KindScalar is a single-language one-line text input.
	KindScalar FieldKind = iota
	// KindLongText is a single-language multi-line input.
	KindLongText
	// KindBilingual is a one-line input with an en/pt language toggle.
	KindBilingual
	// KindBilingualLongText is a multi-line input with both languages visible.
	KindBilingualLongText
	// KindImage is an image URL with an upload affordance.
	KindImage
	// KindGallery is an ordered list of image URLs.
	KindGallery
	// KindBilingualList is a per-language list of free-text points.
	KindBilingualList
	// KindMaterialList is an array of material records with download links.
	KindMaterialList
	// KindSponsorList is an array of sponsor records.
	KindSponsorList
	// KindCategoryList is an array of category records, each holding its own
	// nested material list.
	KindCategoryList
	// KindBilingualLeaf is a section whose fields are literally "en" and "pt",
	// edited side by side as a single message.
	KindBilingualLeaf
)

var fieldKindNames = map[FieldKind]string{
	KindScalar:            "scalar",
	KindLongText:          "longText",
	KindBilingual:         "bilingual",
	KindBilingualLongText: "bilingualLongText",
	KindImage:             "image",
	KindGallery:           "gallery",
	KindBilingualList:     "bilingualList",
	KindMaterialList:      "materialList",
	KindSponsorList:       "sponsorList",
	KindCategoryList:      "categoryList",
	KindBilingualLeaf:     "bilingualLeaf",
}

func (k FieldKind) String() string {
	if name, ok := fieldKindNames[k]; ok {
		return name
	}
	return "scalar"
}

// Sections whose two fields are the en/pt sides of one message.
var bilingualLeafSections = map[string]bool{
	"noPosts":        true,
	"noResults":      true,
	"downloads":      true,
	"downloadButton": true,
}

// KindFor resolves the editor kind for a field. The rules are ordered and the
// first match wins; reordering them changes which widget a field gets, so the
// sequence is load-bearing. Position rules (section and field names) are
// checked before value-shape rules, which means an image-named field keeps the
// image widget even when it currently holds a bilingual value.
func KindFor(page, section, field string, value any) FieldKind {
	switch {
	case bilingualLeafSections[section] && (field == document.LanguageEN || field == document.LanguagePT):
		return KindBilingualLeaf
	case field == "gallery":
		return KindGallery
	case field == "details" || field == "goals":
		return KindBilingualList
	case field == "items" && section == "materialsData":
		return KindMaterialList
	case field == "items" && section == "sponsorsList":
		return KindSponsorList
	case field == "items" && section == "categories":
		return KindCategoryList
	case IsImageField(field):
		return KindImage
	case field == "fullDescription":
		return KindBilingualLongText
	}

	if _, ok := document.AsVariant(value); ok {
		if IsLongTextField(field) {
			return KindBilingualLongText
		}
		return KindBilingual
	}

	if IsLongTextField(field) {
		return KindLongText
	}
	return KindScalar
}

// IsImageField reports whether a field name denotes an image URL.
func IsImageField(field string) bool {
	return strings.Contains(field, "image") ||
		strings.Contains(field, "Image") ||
		strings.Contains(field, "logo") ||
		strings.Contains(field, "Logo") ||
		field == "background"
}

// IsLongTextField reports whether a field name denotes multi-line text.
func IsLongTextField(field string) bool {
	return strings.Contains(field, "description") ||
		strings.Contains(field, "Description") ||
		strings.Contains(field, "subtitle") ||
		strings.Contains(field, "Subtitle") ||
		field == "text" ||
		strings.Contains(field, "Desc") ||
		field == "fullDescription"
}

// ConvertibleToBilingual reports whether the editor should offer converting a
// still-single-language value to the bilingual shape. Sponsor descriptions
// and full descriptions started life as plain strings and migrate lazily, one
// field at a time, as admins touch them.
func ConvertibleToBilingual(page, field string, value any) bool {
	if _, ok := document.AsVariant(value); ok {
		return false
	}
	if field == "fullDescription" {
		return true
	}
	return page == "sponsors" && field == "description"
}
