package schema

import "github.com/alphire-robotics/team-cms/internal/document"

// ColorOption is a display name paired with a gradient token the site's
// stylesheet understands.
type ColorOption struct {
	Name  string
	Value string
}

// DefaultCategoryIcon and DefaultCategoryColor seed newly created material
// categories.
const (
	DefaultCategoryIcon  = "Book"
	DefaultCategoryColor = "from-red-600 to-red-700"

	// DefaultMaterialCategory and DefaultMaterialSeason seed newly created
	// materials.
	DefaultMaterialCategory = "notebooks"
	DefaultMaterialSeason   = "2024-2025"
)

// IconOptions lists the icon names a material category may use.
func IconOptions() []string {
	return []string{"Book", "FileText", "Code", "Image", "Video", "GraduationCap", "Folder", "Archive", "File", "HardDrive"}
}

// ColorOptions lists the gradient choices for material category cards.
func ColorOptions() []ColorOption {
	return []ColorOption{
		{Name: "Red", Value: "from-red-600 to-red-700"},
		{Name: "Orange-Red", Value: "from-orange-600 to-red-600"},
		{Name: "Red-Orange", Value: "from-red-500 to-orange-500"},
		{Name: "Red-Pink", Value: "from-red-600 to-pink-600"},
		{Name: "Pink-Red", Value: "from-pink-600 to-red-600"},
		{Name: "Blue-Purple", Value: "from-blue-600 to-purple-600"},
		{Name: "Purple-Red", Value: "from-purple-600 to-red-600"},
		{Name: "Green-Red", Value: "from-green-600 to-red-600"},
	}
}

// MaterialCategories lists the fixed category codes a flat material may carry.
func MaterialCategories() []string {
	return []string{"notebooks", "cad", "programming", "media", "videos", "educational"}
}

// NewSponsor returns the template record appended when an admin adds a
// sponsor. The handshake emoji stands in for a logo until one is uploaded.
func NewSponsor() map[string]any {
	return map[string]any{
		"name":        "",
		"description": document.Bilingual("", ""),
		"url":         "",
		"logo":        "🤝",
	}
}

// NewMaterial returns the template record for the flat materials list.
func NewMaterial() map[string]any {
	return map[string]any{
		"name":     document.Bilingual("", ""),
		"category": DefaultMaterialCategory,
		"season":   DefaultMaterialSeason,
		"link":     "",
	}
}

// NewCategory returns the template record for a material category.
func NewCategory() map[string]any {
	return map[string]any{
		"title":     document.Bilingual("", ""),
		"icon":      DefaultCategoryIcon,
		"color":     DefaultCategoryColor,
		"materials": []any{},
	}
}

// NewCategoryMaterial returns the template for a material nested inside a
// category. Unlike the flat list, nested materials carry no category code.
func NewCategoryMaterial() map[string]any {
	return map[string]any{
		"name":   document.Bilingual("", ""),
		"season": DefaultMaterialSeason,
		"link":   "",
	}
}

// NewBilingualList returns the seed value for an uninitialized details or
// goals field: one empty point per language.
func NewBilingualList() map[string]any {
	return document.BilingualList([]string{""}, []string{""})
}
