// Package images manages the site-wide image map and binary uploads. Uploads
// land in object storage under a generated key and come back as a signed URL
// the editor writes into content fields; the image map covers the handful of
// fixed slots the public site reads outside the content document.
package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"path"
	"strings"
	"time"

	"github.com/alphire-robotics/team-cms/internal/logging"
	"github.com/alphire-robotics/team-cms/pkg/interfaces"
)

var (
	ErrNoFile       = errors.New("images: no file provided")
	ErrFileTooLarge = errors.New("images: file exceeds upload limit")
)

// DefaultMaxUploadSize caps uploads at 10 MiB, matching the bucket policy.
const DefaultMaxUploadSize = 10 << 20

// DefaultSignedURLTTL is the presign window for returned URLs. Presigned URLs
// cannot be permanent; the editor re-resolves slots through the image map
// when a URL ages out.
const DefaultSignedURLTTL = 7 * 24 * time.Hour

// defaultSlots seeds the image map on first read.
var defaultSlots = []string{"heroBackground", "heroLogo", "aboutTeamPhoto"}

// UploadRequest carries one binary upload.
type UploadRequest struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadResult reports where an upload landed.
type UploadResult struct {
	FileName string `json:"fileName"`
	URL      string `json:"url"`
}

// Service exposes image use-cases.
type Service interface {
	Upload(ctx context.Context, req UploadRequest) (*UploadResult, error)
	WebsiteImages(ctx context.Context) (map[string]string, error)
	SetWebsiteImages(ctx context.Context, images map[string]string) error
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to derive upload keys.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		s.now = clock
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

// WithSignedURLTTL overrides the presign window for returned URLs.
func WithSignedURLTTL(ttl time.Duration) ServiceOption {
	return func(s *service) {
		if ttl > 0 {
			s.signedURLTTL = ttl
		}
	}
}

// WithMaxUploadSize overrides the upload size cap.
func WithMaxUploadSize(limit int64) ServiceOption {
	return func(s *service) {
		if limit > 0 {
			s.maxUploadSize = limit
		}
	}
}

// WithKeySuffix overrides the random key suffix source, for deterministic
// tests.
func WithKeySuffix(suffix func() string) ServiceOption {
	return func(s *service) {
		if suffix != nil {
			s.suffix = suffix
		}
	}
}

type service struct {
	storage       ObjectStorage
	repo          ImageRepository
	now           func() time.Time
	suffix        func() string
	logger        interfaces.Logger
	signedURLTTL  time.Duration
	maxUploadSize int64
}

// NewService constructs an image service with the required dependencies.
func NewService(storage ObjectStorage, repo ImageRepository, opts ...ServiceOption) Service {
	s := &service{
		storage:       storage,
		repo:          repo,
		now:           time.Now,
		suffix:        randomSuffix,
		logger:        logging.NoOp(),
		signedURLTTL:  DefaultSignedURLTTL,
		maxUploadSize: DefaultMaxUploadSize,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Upload stores the file and returns its generated key plus a signed URL. A
// failed store returns before anything is recorded, so a broken upload never
// leaves a dangling reference.
func (s *service) Upload(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	if req.Body == nil {
		return nil, ErrNoFile
	}
	if req.Size > s.maxUploadSize {
		return nil, ErrFileTooLarge
	}

	key := s.uploadKey(req.FileName)
	if err := s.storage.Put(ctx, key, req.Body, req.Size, req.ContentType); err != nil {
		s.logger.Error("image upload failed", "key", key, "error", err)
		return nil, err
	}

	url, err := s.storage.SignedURL(ctx, key, s.signedURLTTL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("image uploaded", "key", key, "size", req.Size)
	return &UploadResult{FileName: key, URL: url}, nil
}

// WebsiteImages returns the image map, seeding the fixed slots on first
// read.
func (s *service) WebsiteImages(ctx context.Context) (map[string]string, error) {
	images, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(images) > 0 {
		return images, nil
	}

	seeded := make(map[string]string, len(defaultSlots))
	for _, slot := range defaultSlots {
		seeded[slot] = ""
	}
	if err := s.repo.ReplaceAll(ctx, seeded); err != nil {
		return nil, err
	}
	return seeded, nil
}

// SetWebsiteImages replaces the image map wholesale.
func (s *service) SetWebsiteImages(ctx context.Context, images map[string]string) error {
	if images == nil {
		images = map[string]string{}
	}
	return s.repo.ReplaceAll(ctx, images)
}

// uploadKey derives a collision-resistant object key keeping the original
// extension: <unix-millis>-<suffix>.<ext>.
func (s *service) uploadKey(fileName string) string {
	ext := strings.TrimPrefix(path.Ext(fileName), ".")
	key := fmt.Sprintf("%d-%s", s.now().UnixMilli(), s.suffix())
	if ext != "" {
		key += "." + ext
	}
	return key
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix() string {
	out := make([]byte, 6)
	for i := range out {
		out[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(out)
}
