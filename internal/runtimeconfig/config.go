// Package runtimeconfig aggregates the knobs the portal reads at startup.
package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrDefaultLanguageUnknown       = errors.New("portal config: default language is not in the served languages")
	ErrLanguagesRequired            = errors.New("portal config: at least one language is required")
	ErrStorageDriverUnknown         = errors.New("portal config: storage driver is invalid")
	ErrStorageDSNRequired           = errors.New("portal config: storage dsn is required")
	ErrUploadsBucketRequired        = errors.New("portal config: uploads bucket is required when uploads are enabled")
	ErrUploadsEndpointRequired      = errors.New("portal config: uploads endpoint is required when uploads are enabled")
	ErrUploadsMaxSizeInvalid        = errors.New("portal config: uploads max size must be zero or positive")
	ErrAdminEmailInvalid            = errors.New("portal config: admin email is invalid")
	ErrAdvancedCacheRequiresEnabled = errors.New("portal config: cache ttl requires cache to be enabled")
	ErrLoggingProviderRequired      = errors.New("portal config: logging provider is required when logging feature is enabled")
	ErrLoggingProviderUnknown       = errors.New("portal config: logging provider is invalid")
	ErrLoggingLevelInvalid          = errors.New("portal config: logging level is invalid")
	ErrLoggingFormatInvalid         = errors.New("portal config: logging format is invalid")
)

// Config aggregates feature flags and adapter bindings for the portal.
// Fields intentionally use simple types so host applications can extend them
// later.
type Config struct {
	Enabled         bool
	DefaultLanguage string
	Languages       []string
	Server          ServerConfig
	Storage         StorageConfig
	Cache           CacheConfig
	Uploads         UploadConfig
	Admin           AdminConfig
	Features        Features
	Logging         LoggingConfig
}

// ServerConfig captures HTTP listener behaviour.
type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// StorageConfig selects the database backing the portal.
type StorageConfig struct {
	Driver string
	DSN    string
}

// CacheConfig captures read-cache behaviour for repositories.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// UploadConfig wires the object storage bucket for binary uploads.
type UploadConfig struct {
	Enabled       bool
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	MaxUploadSize int64
	SignedURLTTL  time.Duration
}

// AdminConfig captures the dashboard allow-list.
type AdminConfig struct {
	Emails []string
}

// Features toggles module functionality.
type Features struct {
	RevisionGuard bool
	Commands      bool
	Logger        bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the defaults the portal ships with.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		DefaultLanguage: "en",
		Languages:       []string{"en", "pt"},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			Driver: "sqlite",
			DSN:    "file:teamcms.db?cache=shared",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Uploads: UploadConfig{
			MaxUploadSize: 10 << 20,
			SignedURLTTL:  7 * 24 * time.Hour,
		},
		Admin: AdminConfig{},
		Features: Features{
			RevisionGuard: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if len(cfg.Languages) == 0 {
		return ErrLanguagesRequired
	}
	if !containsLanguage(cfg.Languages, cfg.DefaultLanguage) {
		return fmt.Errorf("%w: %s", ErrDefaultLanguageUnknown, cfg.DefaultLanguage)
	}
	if !isSupportedDriver(cfg.Storage.Driver) {
		return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, cfg.Storage.Driver)
	}
	if strings.TrimSpace(cfg.Storage.DSN) == "" {
		return ErrStorageDSNRequired
	}
	if !cfg.Cache.Enabled && cfg.Cache.DefaultTTL > 0 {
		return ErrAdvancedCacheRequiresEnabled
	}
	if cfg.Uploads.Enabled {
		if strings.TrimSpace(cfg.Uploads.Endpoint) == "" {
			return ErrUploadsEndpointRequired
		}
		if strings.TrimSpace(cfg.Uploads.Bucket) == "" {
			return ErrUploadsBucketRequired
		}
	}
	if cfg.Uploads.MaxUploadSize < 0 {
		return ErrUploadsMaxSizeInvalid
	}
	for _, email := range cfg.Admin.Emails {
		if !strings.Contains(email, "@") {
			return fmt.Errorf("%w: %s", ErrAdminEmailInvalid, email)
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

// IsAdminEmail reports whether email is on the dashboard allow-list. An
// empty allow-list admits nobody.
func (cfg Config) IsAdminEmail(email string) bool {
	needle := strings.ToLower(strings.TrimSpace(email))
	if needle == "" {
		return false
	}
	for _, candidate := range cfg.Admin.Emails {
		if strings.ToLower(strings.TrimSpace(candidate)) == needle {
			return true
		}
	}
	return false
}

func containsLanguage(languages []string, code string) bool {
	for _, candidate := range languages {
		if candidate == code {
			return true
		}
	}
	return false
}

func isSupportedDriver(driver string) bool {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "sqlite", "postgres":
		return true
	default:
		return false
	}
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
