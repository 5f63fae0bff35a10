// Package catalog manages the auxiliary records the site serves next to the
// content document: robot entries, social posts, contact submissions, and
// per-material download counters.
package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Robot is one entry in the robot database. The payload is free-form: the
// public site renders whatever fields the admin filled in.
type Robot struct {
	bun.BaseModel `bun:"table:robots,alias:r"`

	ID        uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	Data      map[string]any `bun:"data,type:jsonb,notnull" json:"data"`
	UpdatedAt time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updatedAt"`
}

// Post is one social feed entry. Visibility and ordering are columns so the
// public listing can exclude hidden posts and keep the admin's arrangement.
type Post struct {
	bun.BaseModel `bun:"table:posts,alias:p"`

	ID        uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	Data      map[string]any `bun:"data,type:jsonb,notnull" json:"data"`
	Visible   bool           `bun:"visible,notnull,default:true" json:"visible"`
	SortOrder int            `bun:"sort_order,notnull,default:0" json:"order"`
	UpdatedAt time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updatedAt"`
}

// Contact is one contact form submission.
type Contact struct {
	bun.BaseModel `bun:"table:contacts,alias:ct"`

	ID          uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	Data        map[string]any `bun:"data,type:jsonb,notnull" json:"data"`
	Read        bool           `bun:"read,notnull,default:false" json:"read"`
	SubmittedAt time.Time      `bun:"submitted_at,nullzero,default:current_timestamp" json:"submittedAt"`
}

// DownloadStat counts downloads per material key.
type DownloadStat struct {
	bun.BaseModel `bun:"table:download_stats,alias:ds"`

	ID           uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Material     string    `bun:"material,notnull,unique" json:"material"`
	Count        int64     `bun:"count,notnull,default:0" json:"count"`
	LastDownload time.Time `bun:"last_download,nullzero" json:"lastDownload"`
}

func cloneData(data map[string]any) map[string]any {
	if data == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}

func cloneRobot(src *Robot) *Robot {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Data = cloneData(src.Data)
	return &copied
}

func clonePost(src *Post) *Post {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Data = cloneData(src.Data)
	return &copied
}

func cloneContact(src *Contact) *Contact {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Data = cloneData(src.Data)
	return &copied
}
