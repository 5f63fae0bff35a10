// Package teamcms assembles the portal runtime: the bilingual content
// document, the robot/post/contact catalog, the upload pipeline, and the
// REST surface that serves them.
package teamcms

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alphire-robotics/team-cms/internal/catalog"
	catalogcmd "github.com/alphire-robotics/team-cms/internal/commands/catalog"
	contentcmd "github.com/alphire-robotics/team-cms/internal/commands/content"
	"github.com/alphire-robotics/team-cms/internal/content"
	"github.com/alphire-robotics/team-cms/internal/events"
	portalhttp "github.com/alphire-robotics/team-cms/internal/http"
	"github.com/alphire-robotics/team-cms/internal/images"
	"github.com/alphire-robotics/team-cms/internal/logging"
	"github.com/alphire-robotics/team-cms/internal/logging/console"
	"github.com/alphire-robotics/team-cms/internal/logging/gologger"
	"github.com/alphire-robotics/team-cms/internal/migrations"
	"github.com/alphire-robotics/team-cms/internal/runtimeconfig"
	"github.com/alphire-robotics/team-cms/internal/site"
	"github.com/alphire-robotics/team-cms/internal/validation"
	"github.com/alphire-robotics/team-cms/pkg/interfaces"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
)

// Config re-exports the runtime configuration for consumers of the teamcms
// package.
type Config = runtimeconfig.Config

// DefaultConfig re-exports the shipped defaults.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// ContentService exports the content service contract.
type ContentService = content.Service

// CatalogService exports the catalog service contract.
type CatalogService = catalog.Service

// ImageService exports the image service contract.
type ImageService = images.Service

// Module represents the top level portal runtime façade.
type Module struct {
	cfg      Config
	logger   interfaces.Logger
	provider interfaces.LoggerProvider
	bus      *events.Bus
	content  content.Service
	catalog  catalog.Service
	images   images.Service
	resolver *site.Resolver
	storage  images.ObjectStorage
	auth     portalhttp.Authenticator
	commands *Commands
	db       *bun.DB
}

// Commands groups the validated command handlers for hosts that dispatch
// portal mutations as messages instead of calling the services directly.
type Commands struct {
	BulkSave      *contentcmd.BulkSaveHandler
	SetField      *contentcmd.SetFieldHandler
	TrackDownload *catalogcmd.TrackDownloadHandler
	SubmitContact *catalogcmd.SubmitContactHandler
}

// Option overrides a dependency during construction.
type Option func(*Module)

// WithDB supplies the bun database handle. Without one the module runs on
// in-memory repositories, which suits tests and local preview.
func WithDB(db *bun.DB) Option {
	return func(m *Module) {
		m.db = db
	}
}

// WithObjectStorage supplies the upload backend. Without one uploads stay
// in memory.
func WithObjectStorage(storage images.ObjectStorage) Option {
	return func(m *Module) {
		m.storage = storage
	}
}

// WithLoggerProvider overrides the logger provider built from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.provider = provider
	}
}

// WithAuthenticator supplies the admin token resolver.
func WithAuthenticator(auth portalhttp.Authenticator) Option {
	return func(m *Module) {
		m.auth = auth
	}
}

// New constructs the portal module from configuration plus optional
// dependency overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg, bus: events.NewBus()}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	if m.provider == nil {
		provider, err := buildLoggerProvider(cfg)
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}
	m.logger = logging.ModuleLogger(m.provider, "teamcms")

	validator, err := validation.NewDocumentValidator()
	if err != nil {
		return nil, fmt.Errorf("teamcms: build document validator: %w", err)
	}

	cacheService, keySerializer := buildCache(cfg)

	contentOpts := []content.ServiceOption{
		content.WithLogger(logging.ContentLogger(m.provider)),
		content.WithBus(m.bus),
		content.WithValidator(validator),
		content.WithRevisionGuard(cfg.Features.RevisionGuard),
	}
	if m.db != nil {
		m.content = content.NewService(content.NewBunDocumentRepositoryWithCache(m.db, cacheService, keySerializer), contentOpts...)
	} else {
		m.content = content.NewService(content.NewMemoryDocumentRepository(), contentOpts...)
	}

	catalogOpts := []catalog.ServiceOption{
		catalog.WithLogger(logging.CatalogLogger(m.provider)),
	}
	if m.db != nil {
		m.catalog = catalog.NewService(catalog.Repositories{
			Robots:    catalog.NewBunRobotRepositoryWithCache(m.db, cacheService, keySerializer),
			Posts:     catalog.NewBunPostRepositoryWithCache(m.db, cacheService, keySerializer),
			Contacts:  catalog.NewBunContactRepository(m.db),
			Downloads: catalog.NewBunDownloadRepository(m.db),
		}, catalogOpts...)
	} else {
		m.catalog = catalog.NewService(catalog.Repositories{
			Robots:    catalog.NewMemoryRobotRepository(),
			Posts:     catalog.NewMemoryPostRepository(),
			Contacts:  catalog.NewMemoryContactRepository(),
			Downloads: catalog.NewMemoryDownloadRepository(),
		}, catalogOpts...)
	}

	if m.storage == nil {
		m.storage = images.NewMemoryObjectStorage()
	}
	imageOpts := []images.ServiceOption{
		images.WithLogger(logging.ImagesLogger(m.provider)),
	}
	if cfg.Uploads.MaxUploadSize > 0 {
		imageOpts = append(imageOpts, images.WithMaxUploadSize(cfg.Uploads.MaxUploadSize))
	}
	if cfg.Uploads.SignedURLTTL > 0 {
		imageOpts = append(imageOpts, images.WithSignedURLTTL(cfg.Uploads.SignedURLTTL))
	}
	var imageRepo images.ImageRepository
	if m.db != nil {
		imageRepo = images.NewBunImageRepository(m.db)
	} else {
		imageRepo = images.NewMemoryImageRepository()
	}
	m.images = images.NewService(m.storage, imageRepo, imageOpts...)

	m.resolver = site.NewResolver(m.content, site.WithBus(m.bus))

	if cfg.Features.Commands {
		commandLogger := logging.ModuleLogger(m.provider, "teamcms.commands")
		m.commands = &Commands{
			BulkSave:      contentcmd.NewBulkSaveHandler(m.content, commandLogger),
			SetField:      contentcmd.NewSetFieldHandler(m.content, commandLogger),
			TrackDownload: catalogcmd.NewTrackDownloadHandler(m.catalog, commandLogger),
			SubmitContact: catalogcmd.NewSubmitContactHandler(m.catalog, commandLogger),
		}
	}

	return m, nil
}

// Migrate creates any missing database tables. It is a no-op when the
// module runs on memory repositories.
func (m *Module) Migrate(ctx context.Context) error {
	if m.db == nil {
		return nil
	}
	return migrations.Run(ctx, m.db)
}

// Content returns the configured content service.
func (m *Module) Content() ContentService {
	return m.content
}

// Catalog returns the configured catalog service.
func (m *Module) Catalog() CatalogService {
	return m.catalog
}

// Images returns the configured image service.
func (m *Module) Images() ImageService {
	return m.images
}

// Site returns the public site resolver, already subscribed to content
// updates.
func (m *Module) Site() *site.Resolver {
	return m.resolver
}

// Commands returns the message handlers, or nil when Features.Commands is
// disabled.
func (m *Module) Commands() *Commands {
	return m.commands
}

// Bus returns the content event bus.
func (m *Module) Bus() *events.Bus {
	return m.bus
}

// Logger returns the root module logger.
func (m *Module) Logger() interfaces.Logger {
	return m.logger
}

// Handler builds the REST surface for the module.
func (m *Module) Handler() (http.Handler, error) {
	api := portalhttp.NewAPI(
		portalhttp.WithContentService(m.content),
		portalhttp.WithCatalogService(m.catalog),
		portalhttp.WithImageService(m.images),
		portalhttp.WithAuthenticator(m.auth),
		portalhttp.WithAdminChecker(m.cfg),
		portalhttp.WithLogger(logging.HTTPLogger(m.provider)),
	)

	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		return nil, err
	}
	return mux, nil
}

// buildCache prepares the repository read cache. A construction failure
// degrades to uncached repositories rather than failing startup.
func buildCache(cfg Config) (repocache.CacheService, repocache.KeySerializer) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	cacheCfg := repocache.DefaultConfig()
	if cfg.Cache.DefaultTTL > 0 {
		cacheCfg.TTL = cfg.Cache.DefaultTTL
	}
	service, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		return nil, nil
	}
	return service, repocache.NewDefaultKeySerializer()
}

func buildLoggerProvider(cfg Config) (interfaces.LoggerProvider, error) {
	switch cfg.Logging.Provider {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return console.NewProvider(console.Options{}), nil
	}
}
