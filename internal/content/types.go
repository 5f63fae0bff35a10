package content

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/alphire-robotics/team-cms/internal/document"
)

// DocumentKey identifies the single site-content row. The whole website edits
// one document, so the table holds exactly one record under this key.
const DocumentKey = "site-content"

// ContentDocument is the persisted form of the site content tree.
type ContentDocument struct {
	bun.BaseModel `bun:"table:content_documents,alias:cd"`

	ID        uuid.UUID         `bun:",pk,type:uuid" json:"id"`
	Key       string            `bun:"key,notnull,unique" json:"key"`
	Document  document.Document `bun:"document,type:jsonb,notnull" json:"document"`
	Revision  int64             `bun:"revision,notnull,default:0" json:"revision"`
	CreatedAt time.Time         `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time         `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

func cloneRecord(src *ContentDocument) *ContentDocument {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Document = src.Document.Clone()
	return &copied
}
