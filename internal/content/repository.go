package content

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// DocumentRepository abstracts storage for the single content document.
type DocumentRepository interface {
	// Get returns the stored document record, or a NotFoundError when the
	// table has never been bootstrapped.
	Get(ctx context.Context) (*ContentDocument, error)
	// Create inserts the initial record.
	Create(ctx context.Context, record *ContentDocument) (*ContentDocument, error)
	// Update persists record only if the stored revision still equals
	// expectedRevision, returning ErrRevisionConflict otherwise.
	Update(ctx context.Context, record *ContentDocument, expectedRevision int64) (*ContentDocument, error)
}

// NewDocumentRepository builds the bun-backed repository handlers for the
// content document table.
func NewDocumentRepository(db *bun.DB) repository.Repository[*ContentDocument] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*ContentDocument]{
		NewRecord: func() *ContentDocument { return &ContentDocument{} },
		GetID: func(cd *ContentDocument) uuid.UUID {
			return cd.ID
		},
		SetID: func(cd *ContentDocument, id uuid.UUID) {
			cd.ID = id
		},
		GetIdentifier: func() string {
			return "key"
		},
		GetIdentifierValue: func(cd *ContentDocument) string {
			return cd.Key
		},
	})
}
