package images

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// WebsiteImage is one named slot in the site-wide image map, e.g.
// heroBackground or aboutTeamPhoto.
type WebsiteImage struct {
	bun.BaseModel `bun:"table:website_images,alias:wi"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Key       string    `bun:"key,notnull,unique" json:"key"`
	URL       string    `bun:"url,notnull,default:''" json:"url"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// ImageRepository stores the website image map.
type ImageRepository interface {
	// All returns the stored map, empty when never seeded.
	All(ctx context.Context) (map[string]string, error)
	// ReplaceAll swaps the stored map wholesale.
	ReplaceAll(ctx context.Context, images map[string]string) error
}

// MemoryImageRepository is an in-memory implementation for scaffolding and
// tests.
type MemoryImageRepository struct {
	mu     sync.RWMutex
	images map[string]string
}

// NewMemoryImageRepository creates an empty in-memory image repository.
func NewMemoryImageRepository() *MemoryImageRepository {
	return &MemoryImageRepository{}
}

func (m *MemoryImageRepository) All(_ context.Context) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]string, len(m.images))
	for k, v := range m.images {
		out[k] = v
	}
	return out, nil
}

func (m *MemoryImageRepository) ReplaceAll(_ context.Context, images map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.images = make(map[string]string, len(images))
	for k, v := range images {
		m.images[k] = v
	}
	return nil
}

// BunImageRepository persists the website image map with bun.
type BunImageRepository struct {
	db *bun.DB
	id func() uuid.UUID
}

// NewBunImageRepository constructs the repository.
func NewBunImageRepository(db *bun.DB) *BunImageRepository {
	return &BunImageRepository{db: db, id: uuid.New}
}

func (r *BunImageRepository) All(ctx context.Context) (map[string]string, error) {
	var rows []WebsiteImage
	if err := r.db.NewSelect().Model(&rows).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("website image repository error: %w", err)
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.URL
	}
	return out, nil
}

func (r *BunImageRepository) ReplaceAll(ctx context.Context, images map[string]string) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*WebsiteImage)(nil)).Where("1 = 1").Exec(ctx); err != nil {
			return fmt.Errorf("website image repository error: %w", err)
		}
		if len(images) == 0 {
			return nil
		}

		rows := make([]WebsiteImage, 0, len(images))
		now := time.Now()
		for key, url := range images {
			rows = append(rows, WebsiteImage{
				ID:        r.id(),
				Key:       key,
				URL:       url,
				UpdatedAt: now,
			})
		}
		if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
			return fmt.Errorf("website image repository error: %w", err)
		}
		return nil
	})
}
