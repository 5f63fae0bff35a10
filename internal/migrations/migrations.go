// Package migrations bootstraps the database schema for the portal's bun
// models.
package migrations

import (
	"context"
	"fmt"

	"github.com/alphire-robotics/team-cms/internal/catalog"
	"github.com/alphire-robotics/team-cms/internal/content"
	"github.com/alphire-robotics/team-cms/internal/images"
	"github.com/uptrace/bun"
)

// models lists every table the portal persists, in creation order.
func models() []any {
	return []any{
		(*content.ContentDocument)(nil),
		(*images.WebsiteImage)(nil),
		(*catalog.Robot)(nil),
		(*catalog.Post)(nil),
		(*catalog.Contact)(nil),
		(*catalog.DownloadStat)(nil),
	}
}

// Run creates any missing tables. It is idempotent and safe to call on
// every startup.
func Run(ctx context.Context, db *bun.DB) error {
	for _, model := range models() {
		if _, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("migrations: create table for %T: %w", model, err)
		}
	}
	return nil
}
