package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	teamcms "github.com/alphire-robotics/team-cms"
	portalhttp "github.com/alphire-robotics/team-cms/internal/http"
	"github.com/alphire-robotics/team-cms/internal/images"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("teamcms: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := loadConfig()

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	opts := []teamcms.Option{
		teamcms.WithDB(db),
		teamcms.WithAuthenticator(buildAuthenticator()),
	}

	if cfg.Uploads.Enabled {
		storage, err := images.NewMinioStorage(images.MinioConfig{
			Endpoint:  cfg.Uploads.Endpoint,
			AccessKey: cfg.Uploads.AccessKey,
			SecretKey: cfg.Uploads.SecretKey,
			Bucket:    cfg.Uploads.Bucket,
			UseSSL:    cfg.Uploads.UseSSL,
		})
		if err != nil {
			return err
		}
		if err := storage.EnsureBucket(ctx); err != nil {
			return err
		}
		opts = append(opts, teamcms.WithObjectStorage(storage))
	}

	module, err := teamcms.New(cfg, opts...)
	if err != nil {
		return err
	}

	if err := module.Migrate(ctx); err != nil {
		return err
	}

	handler, err := module.Handler()
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		module.Logger().Info("portal listening", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	module.Logger().Info("portal shutting down")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

// loadConfig starts from the shipped defaults and applies environment
// overrides so deployments can reconfigure without a config file.
func loadConfig() teamcms.Config {
	cfg := teamcms.DefaultConfig()

	if addr := os.Getenv("TEAMCMS_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if driver := os.Getenv("TEAMCMS_DB_DRIVER"); driver != "" {
		cfg.Storage.Driver = driver
	}
	if dsn := os.Getenv("TEAMCMS_DB_DSN"); dsn != "" {
		cfg.Storage.DSN = dsn
	}
	if emails := os.Getenv("TEAMCMS_ADMIN_EMAILS"); emails != "" {
		cfg.Admin.Emails = splitList(emails)
	}
	if endpoint := os.Getenv("TEAMCMS_UPLOADS_ENDPOINT"); endpoint != "" {
		cfg.Uploads.Enabled = true
		cfg.Uploads.Endpoint = endpoint
		cfg.Uploads.AccessKey = os.Getenv("TEAMCMS_UPLOADS_ACCESS_KEY")
		cfg.Uploads.SecretKey = os.Getenv("TEAMCMS_UPLOADS_SECRET_KEY")
		cfg.Uploads.Bucket = os.Getenv("TEAMCMS_UPLOADS_BUCKET")
		cfg.Uploads.UseSSL = os.Getenv("TEAMCMS_UPLOADS_USE_SSL") == "true"
	}
	if provider := os.Getenv("TEAMCMS_LOG_PROVIDER"); provider != "" {
		cfg.Features.Logger = true
		cfg.Logging.Provider = provider
	}
	if level := os.Getenv("TEAMCMS_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}

	return cfg
}

func openDatabase(cfg teamcms.Config) (*bun.DB, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Storage.Driver)) {
	case "postgres":
		sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Storage.DSN)))
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	default:
		sqlDB, err := sql.Open("sqlite3", cfg.Storage.DSN)
		if err != nil {
			return nil, fmt.Errorf("open sqlite database: %w", err)
		}
		// SQLite serialises writes internally; a single connection avoids
		// table-lock errors under concurrent requests.
		sqlDB.SetMaxOpenConns(1)
		return bun.NewDB(sqlDB, sqlitedialect.New()), nil
	}
}

// buildAuthenticator reads TEAMCMS_ADMIN_TOKENS, a comma separated list of
// token=email pairs. Production deployments replace this with an identity
// provider behind the same interface.
func buildAuthenticator() portalhttp.Authenticator {
	raw := os.Getenv("TEAMCMS_ADMIN_TOKENS")
	tokens := map[string]string{}
	for _, pair := range splitList(raw) {
		token, email, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		tokens[strings.TrimSpace(token)] = strings.TrimSpace(email)
	}
	return portalhttp.NewStaticTokenAuthenticator(tokens)
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
