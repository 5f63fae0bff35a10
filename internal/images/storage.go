package images

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// ObjectStorage abstracts the bucket uploads go to.
type ObjectStorage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// MemoryObjectStorage is an in-memory bucket for scaffolding and tests.
type MemoryObjectStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
	failPut error
}

// NewMemoryObjectStorage creates an empty in-memory bucket.
func NewMemoryObjectStorage() *MemoryObjectStorage {
	return &MemoryObjectStorage{objects: make(map[string][]byte)}
}

// FailPuts makes subsequent Put calls return err. Pass nil to restore.
func (m *MemoryObjectStorage) FailPuts(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failPut = err
}

// Put stores the object body under key.
func (m *MemoryObjectStorage) Put(_ context.Context, key string, body io.Reader, _ int64, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failPut != nil {
		return m.failPut
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return err
	}
	m.objects[key] = buf.Bytes()
	return nil
}

// SignedURL returns a deterministic pseudo-URL for the stored object.
func (m *MemoryObjectStorage) SignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.objects[key]; !ok {
		return "", fmt.Errorf("images: object %q not stored", key)
	}
	return "memory://bucket/" + key, nil
}

// Object returns a stored object body, for test assertions.
func (m *MemoryObjectStorage) Object(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	body, ok := m.objects[key]
	return body, ok
}

// Len reports how many objects the bucket holds.
func (m *MemoryObjectStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
