package catalog

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RobotRepository stores robot entries.
type RobotRepository interface {
	List(ctx context.Context) ([]*Robot, error)
	Get(ctx context.Context, id uuid.UUID) (*Robot, error)
	Create(ctx context.Context, record *Robot) (*Robot, error)
	Update(ctx context.Context, record *Robot) (*Robot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PostRepository stores social feed entries.
type PostRepository interface {
	List(ctx context.Context) ([]*Post, error)
	Get(ctx context.Context, id uuid.UUID) (*Post, error)
	Create(ctx context.Context, record *Post) (*Post, error)
	Update(ctx context.Context, record *Post) (*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContactRepository stores contact form submissions.
type ContactRepository interface {
	List(ctx context.Context) ([]*Contact, error)
	Get(ctx context.Context, id uuid.UUID) (*Contact, error)
	Create(ctx context.Context, record *Contact) (*Contact, error)
	Update(ctx context.Context, record *Contact) (*Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DownloadRepository stores download counters keyed by material.
type DownloadRepository interface {
	List(ctx context.Context) ([]*DownloadStat, error)
	// GetByMaterial returns the counter for material, or a NotFoundError
	// when the material has never been downloaded.
	GetByMaterial(ctx context.Context, material string) (*DownloadStat, error)
	Create(ctx context.Context, record *DownloadStat) (*DownloadStat, error)
	Update(ctx context.Context, record *DownloadStat) (*DownloadStat, error)
}

// NewRobotRepository builds the bun-backed repository handlers for robots.
func NewRobotRepository(db *bun.DB) repository.Repository[*Robot] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Robot]{
		NewRecord: func() *Robot { return &Robot{} },
		GetID: func(r *Robot) uuid.UUID {
			return r.ID
		},
		SetID: func(r *Robot, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(r *Robot) string {
			return r.ID.String()
		},
	})
}

// NewPostRepository builds the bun-backed repository handlers for posts.
func NewPostRepository(db *bun.DB) repository.Repository[*Post] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Post]{
		NewRecord: func() *Post { return &Post{} },
		GetID: func(p *Post) uuid.UUID {
			return p.ID
		},
		SetID: func(p *Post, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(p *Post) string {
			return p.ID.String()
		},
	})
}

// NewContactRepository builds the bun-backed repository handlers for
// contact submissions.
func NewContactRepository(db *bun.DB) repository.Repository[*Contact] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Contact]{
		NewRecord: func() *Contact { return &Contact{} },
		GetID: func(ct *Contact) uuid.UUID {
			return ct.ID
		},
		SetID: func(ct *Contact, id uuid.UUID) {
			ct.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(ct *Contact) string {
			return ct.ID.String()
		},
	})
}

// NewDownloadRepository builds the bun-backed repository handlers for
// download counters, addressable by material key.
func NewDownloadRepository(db *bun.DB) repository.Repository[*DownloadStat] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*DownloadStat]{
		NewRecord: func() *DownloadStat { return &DownloadStat{} },
		GetID: func(ds *DownloadStat) uuid.UUID {
			return ds.ID
		},
		SetID: func(ds *DownloadStat, id uuid.UUID) {
			ds.ID = id
		},
		GetIdentifier: func() string {
			return "material"
		},
		GetIdentifierValue: func(ds *DownloadStat) string {
			return ds.Material
		},
	})
}
