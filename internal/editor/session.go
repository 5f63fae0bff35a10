// Package editor holds the in-memory editing session behind the admin
// content screen: a working copy of the document, the last-saved snapshot it
// is diffed against, and the save pipeline that pushes the working copy back
// through the content service.
package editor

import (
	"context"
	"errors"

	"github.com/alphire-robotics/team-cms/internal/content"
	"github.com/alphire-robotics/team-cms/internal/document"
)

var (
	ErrNotLoaded       = errors.New("editor: session not loaded")
	ErrNotAList        = errors.New("editor: field does not hold a list")
	ErrIndexOutOfRange = errors.New("editor: list index out of range")
)

// Session edits a private copy of the content document. Mutations never touch
// the snapshot, so HasChanges stays a pure comparison and a failed save
// leaves both copies intact.
type Session struct {
	service  content.Service
	working  document.Document
	snapshot document.Document
	revision int64
}

// NewSession loads the current document and opens an editing session on it.
func NewSession(ctx context.Context, service content.Service) (*Session, error) {
	s := &Session{service: service}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload discards local edits and refreshes both copies from the service.
func (s *Session) Reload(ctx context.Context) error {
	view, err := s.service.GetDocument(ctx)
	if err != nil {
		return err
	}
	s.working = view.Document
	s.snapshot = view.Document.Clone()
	s.revision = view.Revision
	return nil
}

// Document returns the working copy. Callers treat it as read-only and go
// through the mutators for edits.
func (s *Session) Document() document.Document {
	return s.working
}

// Revision returns the revision the session loaded from.
func (s *Session) Revision() int64 {
	return s.revision
}

// HasChanges reports whether the working copy diverged from the last-saved
// snapshot.
func (s *Session) HasChanges() bool {
	return !s.working.Equal(s.snapshot)
}

// UpdateField replaces one field in the working copy.
func (s *Session) UpdateField(page, section, field string, value any) {
	s.working = s.working.Set(page, section, field, value)
}

// UpdateFieldLanguage replaces one language side of a field, vivifying the
// variant shape when needed.
func (s *Session) UpdateFieldLanguage(page, section, field, language, value string) {
	s.working = s.working.SetLanguage(page, section, field, language, value)
}

// ConvertToBilingual migrates a plain field to the language-variant shape,
// keeping its current text as English. Already-bilingual fields are left
// alone.
func (s *Session) ConvertToBilingual(page, section, field string) {
	current := s.fieldValue(page, section, field)
	if _, ok := document.AsVariant(current); ok {
		return
	}
	s.working = s.working.Set(page, section, field, document.ToBilingual(current))
}

// Save pushes the working copy through the bulk save pipeline. On success the
// snapshot catches up and the session tracks the new revision; on a revision
// conflict both copies are untouched so the caller can Reload and re-apply.
func (s *Session) Save(ctx context.Context) error {
	if s.working == nil {
		return ErrNotLoaded
	}
	view, err := s.service.BulkReplace(ctx, content.BulkReplaceRequest{
		Document:     s.working,
		BaseRevision: s.revision,
	})
	if err != nil {
		return err
	}
	s.working = view.Document
	s.snapshot = view.Document.Clone()
	s.revision = view.Revision
	return nil
}

func (s *Session) fieldValue(page, section, field string) any {
	result := s.working.Lookup(page + "." + section + "." + field)
	if !result.Found {
		return nil
	}
	return result.Value
}

// editableValue returns a private deep copy of the field value. List and
// record mutators edit the copy and write it back whole, so subtrees shared
// with the snapshot are never modified in place.
func (s *Session) editableValue(page, section, field string) any {
	return document.CloneValue(s.fieldValue(page, section, field))
}
