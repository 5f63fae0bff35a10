package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/alphire-robotics/team-cms/internal/catalog"
	"github.com/alphire-robotics/team-cms/internal/content"
	"github.com/alphire-robotics/team-cms/internal/images"
	"github.com/alphire-robotics/team-cms/internal/logging"
	"github.com/alphire-robotics/team-cms/pkg/interfaces"
)

// API registers the portal endpoints on a standard mux.
type API struct {
	basePath string
	content  content.Service
	catalog  catalog.Service
	images   images.Service
	auth     Authenticator
	admins   AdminChecker
	logger   interfaces.Logger
}

// AdminChecker reports whether an authenticated email may use the admin
// endpoints.
type AdminChecker interface {
	IsAdminEmail(email string) bool
}

// Option mutates the API configuration.
type Option func(*API)

// NewAPI constructs an API instance.
func NewAPI(opts ...Option) *API {
	api := &API{
		basePath: "/api",
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/api").
func WithBasePath(path string) Option {
	return func(api *API) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithContentService wires the content document service.
func WithContentService(service content.Service) Option {
	return func(api *API) {
		api.content = service
	}
}

// WithCatalogService wires the catalog service.
func WithCatalogService(service catalog.Service) Option {
	return func(api *API) {
		api.catalog = service
	}
}

// WithImageService wires the image service.
func WithImageService(service images.Service) Option {
	return func(api *API) {
		api.images = service
	}
}

// WithAuthenticator wires token resolution for the admin guard.
func WithAuthenticator(auth Authenticator) Option {
	return func(api *API) {
		api.auth = auth
	}
}

// WithAdminChecker wires the admin allow-list.
func WithAdminChecker(admins AdminChecker) Option {
	return func(api *API) {
		api.admins = admins
	}
}

// WithLogger attaches a logger to the API.
func WithLogger(logger interfaces.Logger) Option {
	return func(api *API) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// Register attaches the portal endpoints to the provided mux.
func (api *API) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: api is nil")
	}

	base := joinPath(api.basePath, "")

	mux.HandleFunc("GET "+joinPath(base, "health"), api.handleHealth)
	api.registerContentRoutes(mux, base)
	api.registerImageRoutes(mux, base)
	api.registerCatalogRoutes(mux, base)

	return nil
}
