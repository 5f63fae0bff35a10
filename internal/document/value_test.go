package document_test

import (
	"testing"

	"github.com/alphire-robotics/team-cms/internal/document"
)

func TestAsVariant(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"both sides", document.Bilingual("a", "b"), true},
		{"en only", map[string]any{"en": "a"}, true},
		{"pt only", map[string]any{"pt": "b"}, true},
		{"section shape", document.Section{"en": "a", "pt": "b"}, true},
		{"plain string", "a", false},
		{"record without languages", map[string]any{"name": "x", "url": "y"}, false},
		{"nil", nil, false},
		{"array", []any{"a"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := document.AsVariant(tc.value); ok != tc.want {
				t.Fatalf("AsVariant(%v) = %v, want %v", tc.value, ok, tc.want)
			}
		})
	}
}

func TestToBilingual(t *testing.T) {
	variant := document.ToBilingual("existing")
	if variant["en"] != "existing" || variant["pt"] != "" {
		t.Fatalf("ToBilingual(string) = %v", variant)
	}

	variant = document.ToBilingual(nil)
	if variant["en"] != "" || variant["pt"] != "" {
		t.Fatalf("ToBilingual(nil) = %v", variant)
	}
}

func TestStrings(t *testing.T) {
	if got := document.Strings([]any{"a", 2, "b"}); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Strings dropped wrong entries: %v", got)
	}
	if got := document.Strings(nil); len(got) != 0 {
		t.Fatalf("Strings(nil) = %v", got)
	}
	if got := document.Strings("not a list"); len(got) != 0 {
		t.Fatalf("Strings(string) = %v", got)
	}
}

func TestVariantStrings(t *testing.T) {
	value := document.BilingualList([]string{"one", "two"}, []string{"um"})

	en := document.VariantStrings(value, "en")
	pt := document.VariantStrings(value, "pt")
	if len(en) != 2 || len(pt) != 1 {
		t.Fatalf("variant lists = %v / %v", en, pt)
	}
	if got := document.VariantStrings("plain", "en"); got != nil {
		t.Fatalf("expected nil for non-variant value, got %v", got)
	}
}

func TestRecordsRoundTrip(t *testing.T) {
	stored := []any{
		map[string]any{"name": "sponsor"},
		"stray string",
		document.Section{"name": "from section"},
	}

	records := document.Records(stored)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	back := document.RecordList(records)
	if len(back) != 2 {
		t.Fatalf("expected 2 entries back, got %d", len(back))
	}
}
