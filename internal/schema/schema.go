// Package schema describes the static editor layout for the content document:
// which pages exist, which sections they expose, which fields each section
// edits, and which editor kind a field resolves to. The document itself stays
// schema-less; this package only drives the admin editing surface.
package schema

// PageConfig describes one editable page tab.
type PageConfig struct {
	Key      string
	Name     string
	Icon     string
	Sections []SectionConfig
}

// SectionConfig describes one collapsible section within a page tab.
type SectionConfig struct {
	Key    string
	Name   string
	Fields []string
}

// Pages returns the editor layout in display order. The list is intentionally
// narrower than the stored document: sections the editor does not declare are
// still persisted and served, they just have no editing surface.
func Pages() []PageConfig {
	return []PageConfig{
		{
			Key: "home", Name: "Home", Icon: "🏠",
			Sections: []SectionConfig{
				{Key: "hero", Name: "Hero Section", Fields: []string{"logo", "background", "motto", "buttonLearn", "buttonAchievements"}},
				{Key: "about", Name: "About Section", Fields: []string{"badge", "title", "description1", "description2", "image"}},
				{Key: "stats", Name: "Statistics", Fields: []string{"competitions", "competitionsValue", "awards", "awardsValue", "members", "membersValue", "founded", "foundedValue"}},
				{Key: "achievements", Name: "Achievements", Fields: []string{"badge", "title", "subtitle", "connectYear", "connect", "connectDesc", "winningYear", "winning", "winningDesc", "controlYear", "control", "controlDesc"}},
			},
		},
		{
			Key: "aboutTeam", Name: "About Team", Icon: "👥",
			Sections: []SectionConfig{
				{Key: "header", Name: "Header", Fields: []string{"badge", "title", "subtitle", "heroImage"}},
				{Key: "schoolInfo", Name: "School Info", Fields: []string{"schoolLabel", "schoolName", "locationLabel", "locationName", "foundedLabel", "foundedYear"}},
				{Key: "mission", Name: "Mission", Fields: []string{"title", "text"}},
				{Key: "areas", Name: "Areas of Focus", Fields: []string{"title", "admMarketing", "admMarketingDesc", "eletProg", "eletProgDesc", "mecCAD", "mecCADDesc"}},
				{Key: "timeline", Name: "Timeline", Fields: []string{"title", "event1Year", "event1Title", "event1Desc", "event2Year", "event2Title", "event2Desc", "event3Year", "event3Title", "event3Desc", "event4Year", "event4Title", "event4Desc"}},
				{Key: "values", Name: "Values", Fields: []string{"title", "teamwork", "teamworkDesc", "innovation", "innovationDesc", "community", "communityDesc"}},
			},
		},
		{
			Key: "sponsors", Name: "Sponsors", Icon: "🤝",
			Sections: []SectionConfig{
				{Key: "header", Name: "Header", Fields: []string{"badge", "title", "subtitle"}},
				{Key: "mainSponsors", Name: "Section Title", Fields: []string{"title"}},
				{Key: "sponsorsList", Name: "Sponsors List", Fields: []string{"items"}},
				{Key: "cta", Name: "Call to Action", Fields: []string{"title", "subtitle", "becomeButton", "becomeButtonLink", "downloadButton", "downloadButtonLink"}},
			},
		},
		{
			Key: "social", Name: "Social", Icon: "📱",
			Sections: []SectionConfig{
				{Key: "header", Name: "Header", Fields: []string{"badge", "title", "subtitle"}},
				{Key: "noPosts", Name: "No Posts Message", Fields: []string{"en", "pt"}},
			},
		},
		{
			Key: "robots", Name: "Robots", Icon: "🤖",
			Sections: []SectionConfig{
				{Key: "header", Name: "Header", Fields: []string{"badge", "title", "subtitle"}},
				{Key: "search", Name: "Search Labels", Fields: []string{"placeholder", "filterSeason", "allSeasons"}},
				{Key: "noResults", Name: "No Results Message", Fields: []string{"en", "pt"}},
			},
		},
		{
			Key: "materials", Name: "Materials", Icon: "📁",
			Sections: []SectionConfig{
				{Key: "header", Name: "Header", Fields: []string{"badge", "title", "subtitle"}},
				{Key: "categories", Name: "Material Categories", Fields: []string{"items"}},
			},
		},
		{
			Key: "projects", Name: "Projects", Icon: "🚀",
			Sections: []SectionConfig{
				{Key: "header", Name: "Header", Fields: []string{"badge", "title", "subtitle"}},
				{Key: "arc", Name: "Project 1 - ARC", Fields: projectFields()},
				{Key: "sgof", Name: "Project 2 - SGOF", Fields: projectFields()},
				{Key: "flames", Name: "Project 3 - Flames", Fields: projectFields()},
				{Key: "cta", Name: "Call to Action", Fields: []string{"title", "description", "buttonText"}},
			},
		},
		{
			Key: "aboutWebsite", Name: "About Website", Icon: "💻",
			Sections: []SectionConfig{
				{Key: "header", Name: "Header", Fields: []string{"badge", "title", "subtitle"}},
				{Key: "intro", Name: "Introduction", Fields: []string{"title", "description", "heroImage"}},
				{Key: "techStack", Name: "Technology Stack", Fields: []string{"title", "react", "reactDesc", "tailwind", "tailwindDesc", "typescript", "typescriptDesc", "supabase", "supabaseDesc"}},
				{Key: "features", Name: "Features", Fields: []string{"title", "responsive", "responsiveDesc", "bilingual", "bilingualDesc", "darkMode", "darkModeDesc", "cms", "cmsDesc"}},
			},
		},
		{
			Key: "navigation", Name: "Navigation", Icon: "🧭",
			Sections: []SectionConfig{
				{Key: "menu", Name: "Menu Items", Fields: []string{"home", "robots", "social", "sponsors", "materials", "projects", "aboutTeam", "aboutWebsite", "admin"}},
			},
		},
		{
			Key: "footer", Name: "Footer", Icon: "📄",
			Sections: []SectionConfig{
				{Key: "content", Name: "Footer Content", Fields: []string{"abeImage"}},
			},
		},
	}
}

func projectFields() []string {
	return []string{"name", "description", "image", "fullDescription", "title", "gallery", "details", "goals", "status"}
}

// FindPage returns the editor config for a page key.
func FindPage(key string) (PageConfig, bool) {
	for _, page := range Pages() {
		if page.Key == key {
			return page, true
		}
	}
	return PageConfig{}, false
}

// FindSection returns the editor config for a section within a page.
func FindSection(pageKey, sectionKey string) (SectionConfig, bool) {
	page, ok := FindPage(pageKey)
	if !ok {
		return SectionConfig{}, false
	}
	for _, section := range page.Sections {
		if section.Key == sectionKey {
			return section, true
		}
	}
	return SectionConfig{}, false
}
