package catalog

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	cache "github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const (
	robotNamespace    = "robot"
	postNamespace     = "post"
	contactNamespace  = "contact"
	downloadNamespace = "download_stat"
)

// BunRobotRepository implements RobotRepository with optional caching.
type BunRobotRepository struct {
	repo         repository.Repository[*Robot]
	cacheService cache.CacheService
	cachePrefix  string
}

// NewBunRobotRepository creates a robot repository without caching.
func NewBunRobotRepository(db *bun.DB) *BunRobotRepository {
	return NewBunRobotRepositoryWithCache(db, nil, nil)
}

// NewBunRobotRepositoryWithCache creates a robot repository with caching
// services.
func NewBunRobotRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRobotRepository {
	base := NewRobotRepository(db)
	var svc cache.CacheService
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
		svc = cacheService
	}
	return &BunRobotRepository{
		repo:         base,
		cacheService: svc,
		cachePrefix:  cachePrefixFor(svc, robotNamespace),
	}
}

func (r *BunRobotRepository) List(ctx context.Context) ([]*Robot, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.updated_at DESC")
		}),
	)
	return records, err
}

func (r *BunRobotRepository) Get(ctx context.Context, id uuid.UUID) (*Robot, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "robot", id.String())
	}
	return record, nil
}

func (r *BunRobotRepository) Create(ctx context.Context, robot *Robot) (*Robot, error) {
	record, err := r.repo.Create(ctx, robot)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunRobotRepository) Update(ctx context.Context, robot *Robot) (*Robot, error) {
	record, err := r.repo.Update(ctx, robot)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunRobotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Robot{ID: id})
}

func (r *BunRobotRepository) InvalidateCache(ctx context.Context) error {
	if r.cacheService == nil || r.cachePrefix == "" {
		return nil
	}
	return r.cacheService.DeleteByPrefix(ctx, r.cachePrefix)
}

// BunPostRepository implements PostRepository with optional caching.
type BunPostRepository struct {
	repo         repository.Repository[*Post]
	cacheService cache.CacheService
	cachePrefix  string
}

// NewBunPostRepository creates a post repository without caching.
func NewBunPostRepository(db *bun.DB) *BunPostRepository {
	return NewBunPostRepositoryWithCache(db, nil, nil)
}

// NewBunPostRepositoryWithCache creates a post repository with caching
// services.
func NewBunPostRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunPostRepository {
	base := NewPostRepository(db)
	var svc cache.CacheService
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
		svc = cacheService
	}
	return &BunPostRepository{
		repo:         base,
		cacheService: svc,
		cachePrefix:  cachePrefixFor(svc, postNamespace),
	}
}

func (r *BunPostRepository) List(ctx context.Context) ([]*Post, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.sort_order ASC").
				OrderExpr("?TableAlias.updated_at DESC")
		}),
	)
	return records, err
}

func (r *BunPostRepository) Get(ctx context.Context, id uuid.UUID) (*Post, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "post", id.String())
	}
	return record, nil
}

func (r *BunPostRepository) Create(ctx context.Context, post *Post) (*Post, error) {
	record, err := r.repo.Create(ctx, post)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunPostRepository) Update(ctx context.Context, post *Post) (*Post, error) {
	record, err := r.repo.Update(ctx, post)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Post{ID: id})
}

func (r *BunPostRepository) InvalidateCache(ctx context.Context) error {
	if r.cacheService == nil || r.cachePrefix == "" {
		return nil
	}
	return r.cacheService.DeleteByPrefix(ctx, r.cachePrefix)
}

// BunContactRepository implements ContactRepository.
type BunContactRepository struct {
	repo repository.Repository[*Contact]
}

// NewBunContactRepository creates a contact repository. Submissions are
// write-heavy and admin-only on the read side, so they are never cached.
func NewBunContactRepository(db *bun.DB) *BunContactRepository {
	return &BunContactRepository{repo: NewContactRepository(db)}
}

func (r *BunContactRepository) List(ctx context.Context) ([]*Contact, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.submitted_at DESC")
		}),
	)
	return records, err
}

func (r *BunContactRepository) Get(ctx context.Context, id uuid.UUID) (*Contact, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "contact", id.String())
	}
	return record, nil
}

func (r *BunContactRepository) Create(ctx context.Context, contact *Contact) (*Contact, error) {
	record, err := r.repo.Create(ctx, contact)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunContactRepository) Update(ctx context.Context, contact *Contact) (*Contact, error) {
	record, err := r.repo.Update(ctx, contact)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Contact{ID: id})
}

// BunDownloadRepository implements DownloadRepository.
type BunDownloadRepository struct {
	repo repository.Repository[*DownloadStat]
}

// NewBunDownloadRepository creates a download counter repository.
func NewBunDownloadRepository(db *bun.DB) *BunDownloadRepository {
	return &BunDownloadRepository{repo: NewDownloadRepository(db)}
}

func (r *BunDownloadRepository) List(ctx context.Context) ([]*DownloadStat, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.count DESC")
		}),
	)
	return records, err
}

func (r *BunDownloadRepository) GetByMaterial(ctx context.Context, material string) (*DownloadStat, error) {
	record, err := r.repo.GetByIdentifier(ctx, material)
	if err != nil {
		return nil, mapRepositoryError(err, "download stat", material)
	}
	return record, nil
}

func (r *BunDownloadRepository) Create(ctx context.Context, stat *DownloadStat) (*DownloadStat, error) {
	record, err := r.repo.Create(ctx, stat)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunDownloadRepository) Update(ctx context.Context, stat *DownloadStat) (*DownloadStat, error) {
	record, err := r.repo.Update(ctx, stat)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}

	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}

	return fmt.Errorf("%s repository error: %w", resource, err)
}

func cachePrefixFor(svc cache.CacheService, namespace string) string {
	if svc == nil || namespace == "" {
		return ""
	}
	return namespace + cache.KeySeparator
}
