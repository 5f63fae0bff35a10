package content

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/uptrace/bun"
)

const documentNamespace = "content_document"

// BunDocumentRepository persists the content document with bun.
type BunDocumentRepository struct {
	db           *bun.DB
	repo         repository.Repository[*ContentDocument]
	cacheService cache.CacheService
	cachePrefix  string
}

// NewBunDocumentRepository constructs the repository without caching.
func NewBunDocumentRepository(db *bun.DB) *BunDocumentRepository {
	return NewBunDocumentRepositoryWithCache(db, nil, nil)
}

// NewBunDocumentRepositoryWithCache constructs the repository with optional
// read caching.
func NewBunDocumentRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunDocumentRepository {
	base := NewDocumentRepository(db)
	var svc cache.CacheService
	prefix := ""
	if cacheService != nil && keySerializer != nil {
		base = repositorycache.New(base, cacheService, keySerializer)
		svc = cacheService
		prefix = documentNamespace + cache.KeySeparator
	}
	return &BunDocumentRepository{
		db:           db,
		repo:         base,
		cacheService: svc,
		cachePrefix:  prefix,
	}
}

// Get retrieves the single site-content record.
func (r *BunDocumentRepository) Get(ctx context.Context) (*ContentDocument, error) {
	result, err := r.repo.GetByIdentifier(ctx, DocumentKey)
	if err != nil {
		return nil, mapRepositoryError(err, "content document", DocumentKey)
	}
	return result, nil
}

// Create inserts the initial record.
func (r *BunDocumentRepository) Create(ctx context.Context, record *ContentDocument) (*ContentDocument, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update persists the record, guarded by the expected revision when one is
// supplied. The guard rides in the WHERE clause so concurrent saves race on
// the database rather than in memory.
func (r *BunDocumentRepository) Update(ctx context.Context, record *ContentDocument, expectedRevision int64) (*ContentDocument, error) {
	query := r.db.NewUpdate().
		Model(record).
		Column("document", "revision", "updated_at").
		Where("key = ?", record.Key)
	if expectedRevision >= 0 {
		query = query.Where("revision = ?", expectedRevision)
	}

	result, err := query.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("content document repository error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("content document repository error: %w", err)
	}
	if affected == 0 {
		if expectedRevision >= 0 {
			return nil, ErrRevisionConflict
		}
		return nil, &NotFoundError{Resource: "content document", Key: record.Key}
	}

	// The guarded update runs outside the cache decorator, so the cached
	// read has to be dropped by hand.
	if err := r.InvalidateCache(ctx); err != nil {
		return nil, err
	}
	return record, nil
}

// InvalidateCache drops the cached document read, when caching is enabled.
func (r *BunDocumentRepository) InvalidateCache(ctx context.Context) error {
	if r.cacheService == nil || r.cachePrefix == "" {
		return nil
	}
	return r.cacheService.DeleteByPrefix(ctx, r.cachePrefix)
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
