package content_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/alphire-robotics/team-cms/internal/content"
	"github.com/alphire-robotics/team-cms/internal/document"
	"github.com/alphire-robotics/team-cms/internal/events"
)

func newTestService(t *testing.T, opts ...content.ServiceOption) content.Service {
	t.Helper()

	base := []content.ServiceOption{
		content.WithClock(func() time.Time {
			return time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
		}),
		content.WithIDGenerator(func() uuid.UUID {
			return uuid.MustParse("0f9deda8-9f5f-4a43-9cf5-51b1b6f2a001")
		}),
	}
	return content.NewService(content.NewMemoryDocumentRepository(), append(base, opts...)...)
}

func TestGetDocumentBootstrapsDefaults(t *testing.T) {
	svc := newTestService(t)

	view, err := svc.GetDocument(context.Background())
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}
	if view.Revision != 1 {
		t.Fatalf("bootstrap revision = %d, want 1", view.Revision)
	}
	motto, ok := view.Document.Text("home.hero.motto", document.LanguageEN)
	if !ok || motto != "Always in flames!" {
		t.Fatalf("bootstrap motto = %q, ok = %v", motto, ok)
	}

	// A second read serves the persisted record without reseeding.
	again, err := svc.GetDocument(context.Background())
	if err != nil {
		t.Fatalf("second GetDocument: %v", err)
	}
	if again.Revision != 1 {
		t.Fatalf("second read revision = %d, want 1", again.Revision)
	}
}

func TestSetFieldPersistsAndBumpsRevision(t *testing.T) {
	svc := newTestService(t)

	view, err := svc.SetField(context.Background(), content.SetFieldRequest{
		Page:    "home",
		Section: "hero",
		Field:   "background",
		Value:   "https://cdn.example.com/bg.jpg",
	})
	if err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if view.Revision != 2 {
		t.Fatalf("revision after first write = %d, want 2", view.Revision)
	}

	got, _ := view.Document.Text("home.hero.background", document.LanguageEN)
	if got != "https://cdn.example.com/bg.jpg" {
		t.Fatalf("background = %q", got)
	}
}

func TestSetFieldLanguageScoped(t *testing.T) {
	svc := newTestService(t)

	view, err := svc.SetField(context.Background(), content.SetFieldRequest{
		Page:     "home",
		Section:  "hero",
		Field:    "motto",
		Value:    "Em chamas!",
		Language: "pt",
	})
	if err != nil {
		t.Fatalf("SetField: %v", err)
	}

	pt, _ := view.Document.Text("home.hero.motto", document.LanguagePT)
	en, _ := view.Document.Text("home.hero.motto", document.LanguageEN)
	if pt != "Em chamas!" {
		t.Fatalf("pt side = %q", pt)
	}
	if en != "Always in flames!" {
		t.Fatalf("en side changed: %q", en)
	}
}

func TestSetFieldValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.SetField(ctx, content.SetFieldRequest{Section: "hero", Field: "x"}); !errors.Is(err, content.ErrPageRequired) {
		t.Fatalf("missing page error = %v", err)
	}
	if _, err := svc.SetField(ctx, content.SetFieldRequest{Page: "home", Field: "x"}); !errors.Is(err, content.ErrSectionRequired) {
		t.Fatalf("missing section error = %v", err)
	}
	if _, err := svc.SetField(ctx, content.SetFieldRequest{Page: "home", Section: "hero"}); !errors.Is(err, content.ErrFieldRequired) {
		t.Fatalf("missing field error = %v", err)
	}
	if _, err := svc.SetField(ctx, content.SetFieldRequest{
		Page: "home", Section: "hero", Field: "motto", Value: "x", Language: "fr",
	}); !errors.Is(err, content.ErrUnknownLanguage) {
		t.Fatalf("unknown language error = %v", err)
	}
	if _, err := svc.SetField(ctx, content.SetFieldRequest{
		Page: "home", Section: "hero", Field: "motto", Value: 7, Language: "en",
	}); !errors.Is(err, content.ErrValueNotText) {
		t.Fatalf("non-text language value error = %v", err)
	}
}

func TestBulkReplaceSequentialSaves(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.GetDocument(ctx)
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}

	edited := first.Document.Set("home", "hero", "motto", document.Bilingual("New motto", "Novo lema"))
	second, err := svc.BulkReplace(ctx, content.BulkReplaceRequest{Document: edited, BaseRevision: first.Revision})
	if err != nil {
		t.Fatalf("first BulkReplace: %v", err)
	}
	if second.Revision != first.Revision+1 {
		t.Fatalf("revision = %d, want %d", second.Revision, first.Revision+1)
	}

	// Saving again from the fresh revision succeeds.
	third, err := svc.BulkReplace(ctx, content.BulkReplaceRequest{Document: second.Document, BaseRevision: second.Revision})
	if err != nil {
		t.Fatalf("second BulkReplace: %v", err)
	}
	if third.Revision != second.Revision+1 {
		t.Fatalf("revision = %d, want %d", third.Revision, second.Revision+1)
	}
}

func TestBulkReplaceStaleRevisionConflicts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.GetDocument(ctx)
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}
	if _, err := svc.BulkReplace(ctx, content.BulkReplaceRequest{Document: first.Document, BaseRevision: first.Revision}); err != nil {
		t.Fatalf("BulkReplace: %v", err)
	}

	// A second writer still holding the old revision must be rejected.
	_, err = svc.BulkReplace(ctx, content.BulkReplaceRequest{Document: first.Document, BaseRevision: first.Revision})
	if !errors.Is(err, content.ErrRevisionConflict) {
		t.Fatalf("stale save error = %v", err)
	}
}

func TestBulkReplaceWithoutGuard(t *testing.T) {
	svc := newTestService(t, content.WithRevisionGuard(false))
	ctx := context.Background()

	first, err := svc.GetDocument(ctx)
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}
	if _, err := svc.BulkReplace(ctx, content.BulkReplaceRequest{Document: first.Document, BaseRevision: first.Revision}); err != nil {
		t.Fatalf("BulkReplace: %v", err)
	}

	// Guard disabled: the stale revision is accepted, last write wins.
	if _, err := svc.BulkReplace(ctx, content.BulkReplaceRequest{Document: first.Document, BaseRevision: first.Revision}); err != nil {
		t.Fatalf("unguarded save: %v", err)
	}
}

func TestBulkReplaceRequiresDocument(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.BulkReplace(context.Background(), content.BulkReplaceRequest{}); !errors.Is(err, content.ErrDocumentRequired) {
		t.Fatalf("missing document error = %v", err)
	}
}

func TestBulkReplaceBootstrapsEmptyStore(t *testing.T) {
	svc := newTestService(t)

	doc := document.Document{"home": document.Page{"hero": document.Section{"logo": ""}}}
	view, err := svc.BulkReplace(context.Background(), content.BulkReplaceRequest{Document: doc, BaseRevision: -1})
	if err != nil {
		t.Fatalf("BulkReplace on empty store: %v", err)
	}
	if view.Revision != 1 {
		t.Fatalf("bootstrap revision = %d, want 1", view.Revision)
	}
}

func TestSavesBroadcastOnBus(t *testing.T) {
	bus := events.NewBus()
	svc := newTestService(t, content.WithBus(bus))
	ctx := context.Background()

	var revisions []int64
	bus.Subscribe(func(event events.ContentUpdated) {
		revisions = append(revisions, event.Revision)
	})

	if _, err := svc.SetField(ctx, content.SetFieldRequest{
		Page: "home", Section: "hero", Field: "logo", Value: "logo.png",
	}); err != nil {
		t.Fatalf("SetField: %v", err)
	}

	view, _ := svc.GetDocument(ctx)
	if _, err := svc.BulkReplace(ctx, content.BulkReplaceRequest{Document: view.Document, BaseRevision: view.Revision}); err != nil {
		t.Fatalf("BulkReplace: %v", err)
	}

	if len(revisions) != 2 || revisions[0] != 2 || revisions[1] != 3 {
		t.Fatalf("broadcast revisions = %v", revisions)
	}
}

type rejectingValidator struct{}

func (rejectingValidator) ValidateDocument(document.Document) error {
	return content.ErrDocumentInvalid
}

func TestBulkReplaceRunsValidator(t *testing.T) {
	svc := newTestService(t, content.WithValidator(rejectingValidator{}))

	_, err := svc.BulkReplace(context.Background(), content.BulkReplaceRequest{
		Document: document.Document{},
	})
	if !errors.Is(err, content.ErrDocumentInvalid) {
		t.Fatalf("validator error = %v", err)
	}
}
