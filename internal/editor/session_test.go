package editor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alphire-robotics/team-cms/internal/content"
	"github.com/alphire-robotics/team-cms/internal/document"
	"github.com/alphire-robotics/team-cms/internal/editor"
	"github.com/alphire-robotics/team-cms/internal/schema"
)

func newSession(t *testing.T) (*editor.Session, content.Service) {
	t.Helper()

	service := content.NewService(content.NewMemoryDocumentRepository())
	session, err := editor.NewSession(context.Background(), service)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return session, service
}

func TestFreshSessionHasNoChanges(t *testing.T) {
	session, _ := newSession(t)

	if session.HasChanges() {
		t.Fatal("fresh session should be clean")
	}
	if session.Revision() != 1 {
		t.Fatalf("revision = %d, want 1", session.Revision())
	}
}

func TestUpdateFieldMarksDirty(t *testing.T) {
	session, _ := newSession(t)

	session.UpdateField("home", "hero", "background", "bg.jpg")
	if !session.HasChanges() {
		t.Fatal("edit should mark the session dirty")
	}

	// Writing the original value back makes the session clean again: the
	// dirty flag is a comparison, not an edit counter.
	session.UpdateField("home", "hero", "background", "")
	if session.HasChanges() {
		t.Fatal("restoring the original value should clear the dirty flag")
	}
}

func TestUpdateFieldLanguageKeepsOtherSide(t *testing.T) {
	session, _ := newSession(t)

	session.UpdateFieldLanguage("home", "hero", "motto", "pt", "Em chamas!")

	doc := session.Document()
	pt, _ := doc.Text("home.hero.motto", document.LanguagePT)
	en, _ := doc.Text("home.hero.motto", document.LanguageEN)
	if pt != "Em chamas!" || en != "Always in flames!" {
		t.Fatalf("motto sides = %q / %q", en, pt)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	session, service := newSession(t)
	ctx := context.Background()

	session.UpdateField("home", "hero", "logo", "logo.png")
	if err := session.Save(ctx); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if session.HasChanges() {
		t.Fatal("session should be clean after save")
	}
	if session.Revision() != 2 {
		t.Fatalf("revision after save = %d, want 2", session.Revision())
	}

	view, err := service.GetDocument(ctx)
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}
	logo, _ := view.Document.Text("home.hero.logo", document.LanguageEN)
	if logo != "logo.png" {
		t.Fatalf("persisted logo = %q", logo)
	}
}

func TestConcurrentSaveConflictLeavesEditsIntact(t *testing.T) {
	first, service := newSession(t)
	ctx := context.Background()

	second, err := editor.NewSession(ctx, service)
	if err != nil {
		t.Fatalf("second session: %v", err)
	}

	second.UpdateField("home", "hero", "logo", "other.png")
	if err := second.Save(ctx); err != nil {
		t.Fatalf("second session save: %v", err)
	}

	first.UpdateField("home", "hero", "background", "bg.jpg")
	err = first.Save(ctx)
	if !errors.Is(err, content.ErrRevisionConflict) {
		t.Fatalf("stale save error = %v", err)
	}
	if !first.HasChanges() {
		t.Fatal("failed save must keep local edits")
	}

	// Reload then re-apply resolves the conflict.
	if err := first.Reload(ctx); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	first.UpdateField("home", "hero", "background", "bg.jpg")
	if err := first.Save(ctx); err != nil {
		t.Fatalf("save after reload: %v", err)
	}

	view, _ := service.GetDocument(ctx)
	logo, _ := view.Document.Text("home.hero.logo", document.LanguageEN)
	bg, _ := view.Document.Text("home.hero.background", document.LanguageEN)
	if logo != "other.png" || bg != "bg.jpg" {
		t.Fatalf("merged state = logo %q, background %q", logo, bg)
	}
}

func TestConvertToBilingual(t *testing.T) {
	session, _ := newSession(t)

	session.UpdateField("sponsors", "sponsor1", "description", "plain text")
	session.ConvertToBilingual("sponsors", "sponsor1", "description")

	variant, ok := document.AsVariant(session.Document()["sponsors"]["sponsor1"]["description"])
	if !ok {
		t.Fatal("expected variant shape after conversion")
	}
	if variant["en"] != "plain text" || variant["pt"] != "" {
		t.Fatalf("converted variant = %v", variant)
	}

	// Converting again must not clobber the Portuguese side.
	session.UpdateFieldLanguage("sponsors", "sponsor1", "description", "pt", "texto")
	session.ConvertToBilingual("sponsors", "sponsor1", "description")
	variant, _ = document.AsVariant(session.Document()["sponsors"]["sponsor1"]["description"])
	if variant["pt"] != "texto" {
		t.Fatalf("second conversion clobbered pt side: %v", variant)
	}
}

func TestAppendSponsorTemplate(t *testing.T) {
	session, _ := newSession(t)

	session.AppendRecord("sponsors", "sponsorsList", "items", schema.NewSponsor())
	session.AppendRecord("sponsors", "sponsorsList", "items", schema.NewSponsor())

	records := session.Records("sponsors", "sponsorsList", "items")
	if len(records) != 2 {
		t.Fatalf("sponsor count = %d", len(records))
	}
	if records[0]["logo"] != "🤝" {
		t.Fatalf("sponsor template logo = %v", records[0]["logo"])
	}

	if err := session.SetRecordValue("sponsors", "sponsorsList", "items", 0, "name", "New Sponsor"); err != nil {
		t.Fatalf("SetRecordValue: %v", err)
	}
	if err := session.SetRecordText("sponsors", "sponsorsList", "items", 0, "description", "pt", "Descrição"); err != nil {
		t.Fatalf("SetRecordText: %v", err)
	}

	records = session.Records("sponsors", "sponsorsList", "items")
	if records[0]["name"] != "New Sponsor" {
		t.Fatalf("name = %v", records[0]["name"])
	}
	desc, _ := records[0]["description"].(map[string]any)
	if desc["pt"] != "Descrição" {
		t.Fatalf("description = %v", records[0]["description"])
	}
	// The second sponsor shares nothing with the first.
	if records[1]["name"] != "" {
		t.Fatalf("template leaked between records: %v", records[1]["name"])
	}
}

func TestGalleryOperations(t *testing.T) {
	session, _ := newSession(t)

	session.AppendGalleryImage("projects", "arc", "gallery", "a.jpg")
	session.AppendGalleryImage("projects", "arc", "gallery", "b.jpg")

	if err := session.SetGalleryImage("projects", "arc", "gallery", 1, "c.jpg"); err != nil {
		t.Fatalf("SetGalleryImage: %v", err)
	}
	if err := session.RemoveGalleryImage("projects", "arc", "gallery", 0); err != nil {
		t.Fatalf("RemoveGalleryImage: %v", err)
	}

	images := session.GalleryImages("projects", "arc", "gallery")
	if len(images) != 1 || images[0] != "c.jpg" {
		t.Fatalf("gallery = %v", images)
	}

	if err := session.RemoveGalleryImage("projects", "arc", "gallery", 5); !errors.Is(err, editor.ErrIndexOutOfRange) {
		t.Fatalf("out of range error = %v", err)
	}
}

func TestBilingualListSidesAreIndependent(t *testing.T) {
	session, _ := newSession(t)

	session.InitBilingualList("projects", "arc", "details")
	session.AppendListItem("projects", "arc", "details", "en")
	if err := session.SetListItem("projects", "arc", "details", "en", 1, "Second point"); err != nil {
		t.Fatalf("SetListItem: %v", err)
	}

	en := session.ListItems("projects", "arc", "details", "en")
	pt := session.ListItems("projects", "arc", "details", "pt")
	if len(en) != 2 || len(pt) != 1 {
		t.Fatalf("list lengths = %d / %d", len(en), len(pt))
	}
	if en[1] != "Second point" {
		t.Fatalf("en list = %v", en)
	}

	// Re-initializing an already-bilingual list is a no-op.
	session.InitBilingualList("projects", "arc", "details")
	if got := session.ListItems("projects", "arc", "details", "en"); len(got) != 2 {
		t.Fatalf("init clobbered list: %v", got)
	}
}

func TestNestedCategoryMaterials(t *testing.T) {
	session, _ := newSession(t)

	session.AppendRecord("materials", "categories", "items", schema.NewCategory())
	if err := session.AppendNestedRecord("materials", "categories", "items", 0, "materials", schema.NewCategoryMaterial()); err != nil {
		t.Fatalf("AppendNestedRecord: %v", err)
	}

	records := session.Records("materials", "categories", "items")
	nested, _ := records[0]["materials"].([]any)
	if len(nested) != 1 {
		t.Fatalf("nested materials = %v", records[0]["materials"])
	}

	if err := session.RemoveNestedRecord("materials", "categories", "items", 0, "materials", 0); err != nil {
		t.Fatalf("RemoveNestedRecord: %v", err)
	}
	records = session.Records("materials", "categories", "items")
	nested, _ = records[0]["materials"].([]any)
	if len(nested) != 0 {
		t.Fatalf("nested materials after remove = %v", nested)
	}
}

func TestArrayEditsDoNotLeakIntoSnapshot(t *testing.T) {
	session, service := newSession(t)
	ctx := context.Background()

	session.AppendRecord("sponsors", "sponsorsList", "items", schema.NewSponsor())
	if err := session.Save(ctx); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Mutate the array after saving; the persisted copy must be unaffected
	// until the next save.
	if err := session.SetRecordValue("sponsors", "sponsorsList", "items", 0, "name", "Edited"); err != nil {
		t.Fatalf("SetRecordValue: %v", err)
	}
	if !session.HasChanges() {
		t.Fatal("record edit should mark the session dirty")
	}

	view, _ := service.GetDocument(ctx)
	persisted := document.Records(view.Document["sponsors"]["sponsorsList"]["items"])
	if persisted[0]["name"] != "" {
		t.Fatalf("unsaved edit leaked into store: %v", persisted[0]["name"])
	}
}
