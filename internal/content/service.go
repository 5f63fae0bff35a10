package content

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alphire-robotics/team-cms/internal/document"
	"github.com/alphire-robotics/team-cms/internal/events"
	"github.com/alphire-robotics/team-cms/internal/logging"
	"github.com/alphire-robotics/team-cms/pkg/interfaces"
)

// Service exposes content document use-cases.
type Service interface {
	// GetDocument returns the current document, bootstrapping the default
	// content on first read.
	GetDocument(ctx context.Context) (*DocumentView, error)
	// SetField applies a single field update and persists the result.
	SetField(ctx context.Context, req SetFieldRequest) (*DocumentView, error)
	// BulkReplace swaps in a whole document, as the editor's save-all does.
	BulkReplace(ctx context.Context, req BulkReplaceRequest) (*DocumentView, error)
}

// DocumentView is the read model returned by every operation: the full tree
// plus the revision it was persisted under.
type DocumentView struct {
	Document document.Document `json:"content"`
	Revision int64             `json:"revision"`
}

// SetFieldRequest captures one field write. Language is optional: when set,
// only that side of a language-variant value changes and Value must be text.
type SetFieldRequest struct {
	Page     string
	Section  string
	Field    string
	Value    any
	Language string
}

// BulkReplaceRequest captures a whole-document save. BaseRevision is the
// revision the caller last loaded; pass a negative value to skip the
// optimistic guard.
type BulkReplaceRequest struct {
	Document     document.Document
	BaseRevision int64
}

var ErrValueNotText = errors.New("content: language-scoped value must be text")

// DocumentValidator checks the structural shape of an incoming document
// before it replaces the stored one.
type DocumentValidator interface {
	ValidateDocument(doc document.Document) error
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		s.now = clock
	}
}

type IDGenerator func() uuid.UUID

func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger attaches a logger to the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithBus attaches the event bus updates are broadcast on.
func WithBus(bus *events.Bus) ServiceOption {
	return func(s *service) {
		s.bus = bus
	}
}

// WithValidator attaches a structural validator for bulk saves.
func WithValidator(validator DocumentValidator) ServiceOption {
	return func(s *service) {
		s.validator = validator
	}
}

// WithRevisionGuard toggles the optimistic revision check on saves.
func WithRevisionGuard(enabled bool) ServiceOption {
	return func(s *service) {
		s.revisionGuard = enabled
	}
}

// service implements Service.
type service struct {
	documents     DocumentRepository
	now           func() time.Time
	id            IDGenerator
	logger        interfaces.Logger
	bus           *events.Bus
	validator     DocumentValidator
	revisionGuard bool
}

// NewService constructs a content service with the required dependencies.
func NewService(documents DocumentRepository, opts ...ServiceOption) Service {
	s := &service{
		documents:     documents,
		now:           time.Now,
		id:            uuid.New,
		logger:        logging.NoOp(),
		revisionGuard: true,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GetDocument returns the stored document. A missing record means the table
// was never seeded, so the default content is written at revision 1 and
// served from then on.
func (s *service) GetDocument(ctx context.Context) (*DocumentView, error) {
	record, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return viewOf(record), nil
}

func (s *service) load(ctx context.Context) (*ContentDocument, error) {
	record, err := s.documents.Get(ctx)
	if err == nil {
		return record, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}

	now := s.now()
	seeded := &ContentDocument{
		ID:        s.id(),
		Key:       DocumentKey,
		Document:  document.Default(),
		Revision:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.documents.Create(ctx, seeded)
	if err != nil {
		return nil, err
	}
	s.logger.Info("seeded default content document", "revision", created.Revision)
	return created, nil
}

// SetField loads the current document, applies one update, and persists the
// result under the next revision.
func (s *service) SetField(ctx context.Context, req SetFieldRequest) (*DocumentView, error) {
	if strings.TrimSpace(req.Page) == "" {
		return nil, ErrPageRequired
	}
	if strings.TrimSpace(req.Section) == "" {
		return nil, ErrSectionRequired
	}
	if strings.TrimSpace(req.Field) == "" {
		return nil, ErrFieldRequired
	}

	record, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	var next document.Document
	if req.Language != "" {
		if !document.IsLanguage(req.Language) {
			return nil, ErrUnknownLanguage
		}
		text, ok := req.Value.(string)
		if !ok {
			return nil, ErrValueNotText
		}
		next = record.Document.SetLanguage(req.Page, req.Section, req.Field, req.Language, text)
	} else {
		next = record.Document.Set(req.Page, req.Section, req.Field, document.CloneValue(req.Value))
	}

	saved, err := s.persist(ctx, record, next)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("content field updated",
		"page", req.Page,
		"section", req.Section,
		"field", req.Field,
		"revision", saved.Revision,
	)
	return viewOf(saved), nil
}

// BulkReplace swaps in the supplied document wholesale. When the revision
// guard is active, a stale BaseRevision is rejected so a second admin cannot
// silently clobber a save they never saw.
func (s *service) BulkReplace(ctx context.Context, req BulkReplaceRequest) (*DocumentView, error) {
	if req.Document == nil {
		return nil, ErrDocumentRequired
	}
	if s.validator != nil {
		if err := s.validator.ValidateDocument(req.Document); err != nil {
			return nil, err
		}
	}

	record, err := s.documents.Get(ctx)
	if err != nil {
		if !IsNotFound(err) {
			return nil, err
		}
		return s.bootstrapWith(ctx, req.Document)
	}

	if s.revisionGuard && req.BaseRevision >= 0 && req.BaseRevision != record.Revision {
		return nil, ErrRevisionConflict
	}

	saved, err := s.persist(ctx, record, req.Document.Clone())
	if err != nil {
		return nil, err
	}

	s.logger.Info("content document replaced", "revision", saved.Revision)
	return viewOf(saved), nil
}

func (s *service) bootstrapWith(ctx context.Context, doc document.Document) (*DocumentView, error) {
	now := s.now()
	record := &ContentDocument{
		ID:        s.id(),
		Key:       DocumentKey,
		Document:  doc.Clone(),
		Revision:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := s.documents.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.publish(created)
	return viewOf(created), nil
}

func (s *service) persist(ctx context.Context, current *ContentDocument, next document.Document) (*ContentDocument, error) {
	expected := int64(-1)
	if s.revisionGuard {
		expected = current.Revision
	}

	updated := &ContentDocument{
		ID:        current.ID,
		Key:       current.Key,
		Document:  next,
		Revision:  current.Revision + 1,
		CreatedAt: current.CreatedAt,
		UpdatedAt: s.now(),
	}

	saved, err := s.documents.Update(ctx, updated, expected)
	if err != nil {
		return nil, err
	}

	s.publish(saved)
	return saved, nil
}

func (s *service) publish(record *ContentDocument) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(events.ContentUpdated{
		Document: record.Document,
		Revision: record.Revision,
	})
}

func viewOf(record *ContentDocument) *DocumentView {
	return &DocumentView{
		Document: record.Document.Clone(),
		Revision: record.Revision,
	}
}
