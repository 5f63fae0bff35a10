package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/alphire-robotics/team-cms/internal/catalog"
	"github.com/alphire-robotics/team-cms/internal/migrations"
	"github.com/alphire-robotics/team-cms/pkg/testsupport"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func TestCatalogService_WithBunStorageAndCache(t *testing.T) {
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

	svc := catalog.NewService(catalog.Repositories{
		Robots:    catalog.NewBunRobotRepositoryWithCache(bunDB, cacheService, keySerializer),
		Posts:     catalog.NewBunPostRepositoryWithCache(bunDB, cacheService, keySerializer),
		Contacts:  catalog.NewBunContactRepository(bunDB),
		Downloads: catalog.NewBunDownloadRepository(bunDB),
	})

	robot, err := svc.SaveRobot(ctx, catalog.SaveRobotRequest{
		Data: map[string]any{"name": "Vulcan", "weight": "110kg"},
	})
	if err != nil {
		t.Fatalf("save robot: %v", err)
	}

	// Warm the cached listing before mutating again.
	robots, err := svc.ListRobots(ctx)
	if err != nil {
		t.Fatalf("list robots: %v", err)
	}
	if len(robots) != 1 {
		t.Fatalf("expected 1 robot, got %d", len(robots))
	}
	if robots[0].Data["name"] != "Vulcan" {
		t.Fatalf("expected robot name Vulcan, got %v", robots[0].Data["name"])
	}

	if _, err := svc.SaveRobot(ctx, catalog.SaveRobotRequest{
		ID:   robot.ID,
		Data: map[string]any{"name": "Vulcan Mk2", "weight": "110kg"},
	}); err != nil {
		t.Fatalf("update robot: %v", err)
	}

	robots, err = svc.ListRobots(ctx)
	if err != nil {
		t.Fatalf("list robots after update: %v", err)
	}
	if len(robots) != 1 {
		t.Fatalf("expected 1 robot after update, got %d", len(robots))
	}
	if robots[0].Data["name"] != "Vulcan Mk2" {
		t.Fatalf("expected updated robot name in listing, got %v", robots[0].Data["name"])
	}

	hidden := false
	post, err := svc.SavePost(ctx, catalog.SavePostRequest{
		Data:    map[string]any{"title": "Season kickoff"},
		Visible: &hidden,
	})
	if err != nil {
		t.Fatalf("save post: %v", err)
	}

	public, err := svc.ListPosts(ctx, catalog.ListPostsRequest{})
	if err != nil {
		t.Fatalf("list public posts: %v", err)
	}
	if len(public) != 0 {
		t.Fatalf("expected hidden post excluded, got %d posts", len(public))
	}

	visible := true
	if _, err := svc.SavePost(ctx, catalog.SavePostRequest{
		ID:      post.ID,
		Data:    map[string]any{"title": "Season kickoff"},
		Visible: &visible,
	}); err != nil {
		t.Fatalf("publish post: %v", err)
	}

	public, err = svc.ListPosts(ctx, catalog.ListPostsRequest{})
	if err != nil {
		t.Fatalf("list public posts after publish: %v", err)
	}
	if len(public) != 1 {
		t.Fatalf("expected published post in listing, got %d posts", len(public))
	}

	if err := svc.DeleteRobot(ctx, robot.ID); err != nil {
		t.Fatalf("delete robot: %v", err)
	}
	robots, err = svc.ListRobots(ctx)
	if err != nil {
		t.Fatalf("list robots after delete: %v", err)
	}
	if len(robots) != 0 {
		t.Fatalf("expected empty robot listing after delete, got %d", len(robots))
	}
}
