package document_test

import (
	"encoding/json"
	"testing"

	"github.com/alphire-robotics/team-cms/internal/document"
)

func TestCloneIsolation(t *testing.T) {
	original := document.Document{
		"home": document.Page{
			"hero": document.Section{
				"motto":   document.Bilingual("Always in flames!", "Sempre em chamas!"),
				"gallery": []any{"a.jpg", "b.jpg"},
			},
		},
	}

	clone := original.Clone()
	if !original.Equal(clone) {
		t.Fatal("expected clone to equal original")
	}

	clone["home"]["hero"]["motto"].(map[string]any)["en"] = "changed"
	clone["home"]["hero"]["gallery"].([]any)[0] = "z.jpg"

	motto := original["home"]["hero"]["motto"].(map[string]any)
	if motto["en"] != "Always in flames!" {
		t.Fatalf("clone mutation leaked into original motto: %v", motto["en"])
	}
	gallery := original["home"]["hero"]["gallery"].([]any)
	if gallery[0] != "a.jpg" {
		t.Fatalf("clone mutation leaked into original gallery: %v", gallery[0])
	}
}

func TestEqualNormalizesMapTypes(t *testing.T) {
	// Values decoded from JSON arrive as map[string]any / []any; values built
	// in code may use Section and []string. Equality must not care.
	a := document.Document{
		"home": document.Page{
			"hero": document.Section{
				"motto": document.Section{"en": "Hello", "pt": "Olá"},
				"tags":  []string{"x", "y"},
			},
		},
	}
	b := document.Document{
		"home": document.Page{
			"hero": document.Section{
				"motto": map[string]any{"en": "Hello", "pt": "Olá"},
				"tags":  []any{"x", "y"},
			},
		},
	}
	if !a.Equal(b) {
		t.Fatal("expected documents with mixed map/slice types to compare equal")
	}

	b["home"]["hero"]["motto"].(map[string]any)["pt"] = "Oi"
	if a.Equal(b) {
		t.Fatal("expected documents to differ after mutation")
	}
}

func TestEqualDetectsMissingKeys(t *testing.T) {
	a := document.Document{"home": document.Page{"hero": document.Section{"logo": ""}}}
	b := document.Document{"home": document.Page{"hero": document.Section{}}}
	if a.Equal(b) {
		t.Fatal("expected documents with different key sets to differ")
	}
	if b.Equal(a) {
		t.Fatal("expected comparison to be symmetric")
	}
}

func TestDocumentRoundTripsThroughJSON(t *testing.T) {
	original := document.Default()

	encoded, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}

	var decoded document.Document
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal document: %v", err)
	}

	if !original.Equal(decoded) {
		t.Fatal("expected document to survive a JSON round trip")
	}
}

func TestDefaultDocument(t *testing.T) {
	doc := document.Default()

	for _, key := range document.PageKeys {
		if _, ok := doc[key]; !ok {
			t.Fatalf("default document missing page %q", key)
		}
	}

	motto, ok := doc.Text("home.hero.motto", document.LanguagePT)
	if !ok || motto != "Sempre em chamas!" {
		t.Fatalf("home.hero.motto pt = %q, ok = %v", motto, ok)
	}

	sponsor := doc["sponsors"]["sponsor1"]
	if sponsor["name"] != "Parker Hannifin" {
		t.Fatalf("unexpected sponsor1 name: %v", sponsor["name"])
	}
	if sponsor["logo"] != "" {
		t.Fatalf("expected sponsor1 logo to start empty, got %v", sponsor["logo"])
	}
}
