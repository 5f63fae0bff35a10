package catalog

import (
	"context"
	"sort"
	"time"

	"github.com/alphire-robotics/team-cms/internal/logging"
	"github.com/alphire-robotics/team-cms/pkg/interfaces"
	"github.com/google/uuid"
)

// SaveRobotRequest creates or updates a robot entry. A zero ID creates a new
// record.
type SaveRobotRequest struct {
	ID   uuid.UUID
	Data map[string]any
}

// SavePostRequest creates or updates a post. A zero ID creates a new record;
// nil Visible defaults to visible, nil Order keeps the post unordered at 0.
type SavePostRequest struct {
	ID      uuid.UUID
	Data    map[string]any
	Visible *bool
	Order   *int
}

// ListPostsRequest controls post listing. The public site sees only visible
// posts; the admin dashboard lists everything.
type ListPostsRequest struct {
	IncludeHidden bool
}

// SubmitContactRequest carries one contact form submission.
type SubmitContactRequest struct {
	Data map[string]any
}

// Service exposes catalog use-cases.
type Service interface {
	ListRobots(ctx context.Context) ([]*Robot, error)
	SaveRobot(ctx context.Context, req SaveRobotRequest) (*Robot, error)
	DeleteRobot(ctx context.Context, id uuid.UUID) error

	ListPosts(ctx context.Context, req ListPostsRequest) ([]*Post, error)
	SavePost(ctx context.Context, req SavePostRequest) (*Post, error)
	DeletePost(ctx context.Context, id uuid.UUID) error

	SubmitContact(ctx context.Context, req SubmitContactRequest) (*Contact, error)
	ListContacts(ctx context.Context) ([]*Contact, error)
	MarkContactRead(ctx context.Context, id uuid.UUID) (*Contact, error)
	DeleteContact(ctx context.Context, id uuid.UUID) error

	TrackDownload(ctx context.Context, material string) (*DownloadStat, error)
	DownloadStats(ctx context.Context) ([]*DownloadStat, error)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the time source.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		s.now = clock
	}
}

// WithIDGenerator overrides the record ID source.
func WithIDGenerator(generator func() uuid.UUID) ServiceOption {
	return func(s *service) {
		s.id = generator
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

type service struct {
	robots    RobotRepository
	posts     PostRepository
	contacts  ContactRepository
	downloads DownloadRepository
	now       func() time.Time
	id        func() uuid.UUID
	logger    interfaces.Logger
}

// cacheInvalidator is implemented by repositories carrying a read cache.
type cacheInvalidator interface {
	InvalidateCache(ctx context.Context) error
}

// invalidate flushes the repository's read cache after a mutation, when the
// repository has one.
func invalidate(ctx context.Context, repo any) error {
	if invalidator, ok := repo.(cacheInvalidator); ok {
		return invalidator.InvalidateCache(ctx)
	}
	return nil
}

// Repositories groups the stores the service depends on.
type Repositories struct {
	Robots    RobotRepository
	Posts     PostRepository
	Contacts  ContactRepository
	Downloads DownloadRepository
}

// NewService constructs a catalog service with the required repositories.
func NewService(repos Repositories, opts ...ServiceOption) Service {
	s := &service{
		robots:    repos.Robots,
		posts:     repos.Posts,
		contacts:  repos.Contacts,
		downloads: repos.Downloads,
		now:       time.Now,
		id:        uuid.New,
		logger:    logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) ListRobots(ctx context.Context) ([]*Robot, error) {
	records, err := s.robots.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].UpdatedAt.After(records[j].UpdatedAt)
	})
	return records, nil
}

func (s *service) SaveRobot(ctx context.Context, req SaveRobotRequest) (*Robot, error) {
	if len(req.Data) == 0 {
		return nil, ErrDataRequired
	}

	record := &Robot{
		ID:        req.ID,
		Data:      cloneData(req.Data),
		UpdatedAt: s.now(),
	}

	if req.ID == uuid.Nil {
		record.ID = s.id()
		created, err := s.robots.Create(ctx, record)
		if err != nil {
			return nil, err
		}
		if err := invalidate(ctx, s.robots); err != nil {
			return nil, err
		}
		s.logger.Info("robot created", "id", created.ID)
		return created, nil
	}

	updated, err := s.robots.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	if err := invalidate(ctx, s.robots); err != nil {
		return nil, err
	}
	s.logger.Info("robot updated", "id", updated.ID)
	return updated, nil
}

func (s *service) DeleteRobot(ctx context.Context, id uuid.UUID) error {
	if err := s.robots.Delete(ctx, id); err != nil {
		return err
	}
	return invalidate(ctx, s.robots)
}

// ListPosts returns posts ordered by their explicit position, most recently
// updated first among ties. Hidden posts are excluded unless the caller asks
// for them.
func (s *service) ListPosts(ctx context.Context, req ListPostsRequest) ([]*Post, error) {
	records, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*Post, 0, len(records))
	for _, record := range records {
		if !req.IncludeHidden && !record.Visible {
			continue
		}
		out = append(out, record)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (s *service) SavePost(ctx context.Context, req SavePostRequest) (*Post, error) {
	if len(req.Data) == 0 {
		return nil, ErrDataRequired
	}

	record := &Post{
		ID:        req.ID,
		Data:      cloneData(req.Data),
		Visible:   true,
		UpdatedAt: s.now(),
	}
	if req.Visible != nil {
		record.Visible = *req.Visible
	}
	if req.Order != nil {
		record.SortOrder = *req.Order
	}

	if req.ID == uuid.Nil {
		record.ID = s.id()
		created, err := s.posts.Create(ctx, record)
		if err != nil {
			return nil, err
		}
		if err := invalidate(ctx, s.posts); err != nil {
			return nil, err
		}
		s.logger.Info("post created", "id", created.ID, "visible", created.Visible)
		return created, nil
	}

	updated, err := s.posts.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	if err := invalidate(ctx, s.posts); err != nil {
		return nil, err
	}
	s.logger.Info("post updated", "id", updated.ID, "visible", updated.Visible)
	return updated, nil
}

func (s *service) DeletePost(ctx context.Context, id uuid.UUID) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	return invalidate(ctx, s.posts)
}

// SubmitContact records a public contact form submission.
func (s *service) SubmitContact(ctx context.Context, req SubmitContactRequest) (*Contact, error) {
	if len(req.Data) == 0 {
		return nil, ErrDataRequired
	}

	record := &Contact{
		ID:          s.id(),
		Data:        cloneData(req.Data),
		Read:        false,
		SubmittedAt: s.now(),
	}

	created, err := s.contacts.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("contact submission received", "id", created.ID)
	return created, nil
}

// ListContacts returns submissions newest first.
func (s *service) ListContacts(ctx context.Context) ([]*Contact, error) {
	records, err := s.contacts.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SubmittedAt.After(records[j].SubmittedAt)
	})
	return records, nil
}

func (s *service) MarkContactRead(ctx context.Context, id uuid.UUID) (*Contact, error) {
	record, err := s.contacts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.Read {
		return record, nil
	}

	record.Read = true
	return s.contacts.Update(ctx, record)
}

func (s *service) DeleteContact(ctx context.Context, id uuid.UUID) error {
	return s.contacts.Delete(ctx, id)
}

// TrackDownload bumps the counter for material, creating it on first
// download.
func (s *service) TrackDownload(ctx context.Context, material string) (*DownloadStat, error) {
	if material == "" {
		return nil, ErrMaterialRequired
	}

	record, err := s.downloads.GetByMaterial(ctx, material)
	if err != nil {
		if !IsNotFound(err) {
			return nil, err
		}
		return s.downloads.Create(ctx, &DownloadStat{
			ID:           s.id(),
			Material:     material,
			Count:        1,
			LastDownload: s.now(),
		})
	}

	record.Count++
	record.LastDownload = s.now()
	return s.downloads.Update(ctx, record)
}

// DownloadStats returns all counters, most downloaded first.
func (s *service) DownloadStats(ctx context.Context) ([]*DownloadStat, error) {
	records, err := s.downloads.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Count != records[j].Count {
			return records[i].Count > records[j].Count
		}
		return records[i].Material < records[j].Material
	})
	return records, nil
}
