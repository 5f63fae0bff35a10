package content

import (
	"context"
	"sync"
)

// MemoryDocumentRepository is an in-memory implementation for scaffolding and
// tests.
type MemoryDocumentRepository struct {
	mu     sync.RWMutex
	record *ContentDocument
}

// NewMemoryDocumentRepository creates an empty in-memory document repository.
func NewMemoryDocumentRepository() *MemoryDocumentRepository {
	return &MemoryDocumentRepository{}
}

// Get retrieves the stored record.
func (m *MemoryDocumentRepository) Get(_ context.Context) (*ContentDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.record == nil {
		return nil, &NotFoundError{Resource: "content document", Key: DocumentKey}
	}
	return cloneRecord(m.record), nil
}

// Create inserts the initial record.
func (m *MemoryDocumentRepository) Create(_ context.Context, record *ContentDocument) (*ContentDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record = cloneRecord(record)
	return cloneRecord(m.record), nil
}

// Update replaces the stored record when the revision guard holds.
func (m *MemoryDocumentRepository) Update(_ context.Context, record *ContentDocument, expectedRevision int64) (*ContentDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.record == nil {
		return nil, &NotFoundError{Resource: "content document", Key: DocumentKey}
	}
	if expectedRevision >= 0 && m.record.Revision != expectedRevision {
		return nil, ErrRevisionConflict
	}

	m.record = cloneRecord(record)
	return cloneRecord(m.record), nil
}
