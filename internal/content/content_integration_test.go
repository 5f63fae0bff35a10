package content_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alphire-robotics/team-cms/internal/content"
	"github.com/alphire-robotics/team-cms/internal/document"
	"github.com/alphire-robotics/team-cms/internal/migrations"
	"github.com/alphire-robotics/team-cms/pkg/testsupport"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func TestContentService_WithBunStorageAndCache(t *testing.T) {
	ctx := context.Background()

	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())
	bunDB.SetMaxOpenConns(1)

	if err := migrations.Run(ctx, bunDB); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	cacheCfg := repocache.DefaultConfig()
	cacheCfg.TTL = time.Minute
	cacheService, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		t.Fatalf("new cache service: %v", err)
	}
	keySerializer := repocache.NewDefaultKeySerializer()

	repo := content.NewBunDocumentRepositoryWithCache(bunDB, cacheService, keySerializer)
	svc := content.NewService(repo)

	// First read bootstraps the default document and warms the cache.
	view, err := svc.GetDocument(ctx)
	if err != nil {
		t.Fatalf("get document: %v", err)
	}
	if view.Revision != 1 {
		t.Fatalf("expected bootstrap revision 1, got %d", view.Revision)
	}

	updated, err := svc.SetField(ctx, content.SetFieldRequest{
		Page:     "home",
		Section:  "hero",
		Field:    "motto",
		Value:    "Nova chama",
		Language: document.LanguagePT,
	})
	if err != nil {
		t.Fatalf("set field: %v", err)
	}
	if updated.Revision != 2 {
		t.Fatalf("expected revision 2 after write, got %d", updated.Revision)
	}

	// The warmed read must see the write, not the cached bootstrap.
	view, err = svc.GetDocument(ctx)
	if err != nil {
		t.Fatalf("get document after write: %v", err)
	}
	if view.Revision != 2 {
		t.Fatalf("expected revision 2 on reread, got %d", view.Revision)
	}
	if got, ok := view.Document.Text("home.hero.motto", document.LanguagePT); !ok || got != "Nova chama" {
		t.Fatalf("expected updated motto, got %q (ok=%v)", got, ok)
	}

	// A save based on the superseded revision is rejected.
	if _, err := svc.BulkReplace(ctx, content.BulkReplaceRequest{
		Document:     view.Document,
		BaseRevision: 1,
	}); !errors.Is(err, content.ErrRevisionConflict) {
		t.Fatalf("expected revision conflict, got %v", err)
	}
}
