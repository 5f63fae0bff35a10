package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRobotRepository is an in-memory robot store for scaffolding and
// tests.
type MemoryRobotRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Robot
}

// NewMemoryRobotRepository creates an empty in-memory robot repository.
func NewMemoryRobotRepository() *MemoryRobotRepository {
	return &MemoryRobotRepository{records: map[uuid.UUID]*Robot{}}
}

func (m *MemoryRobotRepository) List(_ context.Context) ([]*Robot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Robot, 0, len(m.records))
	for _, record := range m.records {
		out = append(out, cloneRobot(record))
	}
	return out, nil
}

func (m *MemoryRobotRepository) Get(_ context.Context, id uuid.UUID) (*Robot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return nil, &NotFoundError{Resource: "robot", Key: id.String()}
	}
	return cloneRobot(record), nil
}

func (m *MemoryRobotRepository) Create(_ context.Context, record *Robot) (*Robot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[record.ID] = cloneRobot(record)
	return cloneRobot(record), nil
}

func (m *MemoryRobotRepository) Update(_ context.Context, record *Robot) (*Robot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "robot", Key: record.ID.String()}
	}
	m.records[record.ID] = cloneRobot(record)
	return cloneRobot(record), nil
}

func (m *MemoryRobotRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return &NotFoundError{Resource: "robot", Key: id.String()}
	}
	delete(m.records, id)
	return nil
}

// MemoryPostRepository is an in-memory post store for scaffolding and tests.
type MemoryPostRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Post
}

// NewMemoryPostRepository creates an empty in-memory post repository.
func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{records: map[uuid.UUID]*Post{}}
}

func (m *MemoryPostRepository) List(_ context.Context) ([]*Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Post, 0, len(m.records))
	for _, record := range m.records {
		out = append(out, clonePost(record))
	}
	return out, nil
}

func (m *MemoryPostRepository) Get(_ context.Context, id uuid.UUID) (*Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return nil, &NotFoundError{Resource: "post", Key: id.String()}
	}
	return clonePost(record), nil
}

func (m *MemoryPostRepository) Create(_ context.Context, record *Post) (*Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[record.ID] = clonePost(record)
	return clonePost(record), nil
}

func (m *MemoryPostRepository) Update(_ context.Context, record *Post) (*Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "post", Key: record.ID.String()}
	}
	m.records[record.ID] = clonePost(record)
	return clonePost(record), nil
}

func (m *MemoryPostRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return &NotFoundError{Resource: "post", Key: id.String()}
	}
	delete(m.records, id)
	return nil
}

// MemoryContactRepository is an in-memory contact store for scaffolding and
// tests.
type MemoryContactRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Contact
}

// NewMemoryContactRepository creates an empty in-memory contact repository.
func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{records: map[uuid.UUID]*Contact{}}
}

func (m *MemoryContactRepository) List(_ context.Context) ([]*Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Contact, 0, len(m.records))
	for _, record := range m.records {
		out = append(out, cloneContact(record))
	}
	return out, nil
}

func (m *MemoryContactRepository) Get(_ context.Context, id uuid.UUID) (*Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return nil, &NotFoundError{Resource: "contact", Key: id.String()}
	}
	return cloneContact(record), nil
}

func (m *MemoryContactRepository) Create(_ context.Context, record *Contact) (*Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[record.ID] = cloneContact(record)
	return cloneContact(record), nil
}

func (m *MemoryContactRepository) Update(_ context.Context, record *Contact) (*Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "contact", Key: record.ID.String()}
	}
	m.records[record.ID] = cloneContact(record)
	return cloneContact(record), nil
}

func (m *MemoryContactRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return &NotFoundError{Resource: "contact", Key: id.String()}
	}
	delete(m.records, id)
	return nil
}

// MemoryDownloadRepository is an in-memory download counter store for
// scaffolding and tests.
type MemoryDownloadRepository struct {
	mu      sync.RWMutex
	records map[string]*DownloadStat
}

// NewMemoryDownloadRepository creates an empty in-memory download
// repository.
func NewMemoryDownloadRepository() *MemoryDownloadRepository {
	return &MemoryDownloadRepository{records: map[string]*DownloadStat{}}
}

func (m *MemoryDownloadRepository) List(_ context.Context) ([]*DownloadStat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*DownloadStat, 0, len(m.records))
	for _, record := range m.records {
		copied := *record
		out = append(out, &copied)
	}
	return out, nil
}

func (m *MemoryDownloadRepository) GetByMaterial(_ context.Context, material string) (*DownloadStat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[material]
	if !ok {
		return nil, &NotFoundError{Resource: "download stat", Key: material}
	}
	copied := *record
	return &copied, nil
}

func (m *MemoryDownloadRepository) Create(_ context.Context, record *DownloadStat) (*DownloadStat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *record
	m.records[record.Material] = &copied
	result := copied
	return &result, nil
}

func (m *MemoryDownloadRepository) Update(_ context.Context, record *DownloadStat) (*DownloadStat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.Material]; !ok {
		return nil, &NotFoundError{Resource: "download stat", Key: record.Material}
	}
	copied := *record
	m.records[record.Material] = &copied
	result := copied
	return &result, nil
}
