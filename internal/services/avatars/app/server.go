// Package server wires the avatars runtime and HTTP lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/louisbranch/avatars/internal/platform/assets/catalog"
	"github.com/louisbranch/avatars/internal/platform/assets/imagecdn"
	"github.com/louisbranch/avatars/internal/platform/logging"
	"github.com/louisbranch/avatars/internal/services/avatars/api/httpapi"
	"github.com/louisbranch/avatars/internal/services/avatars/identity"
	"github.com/louisbranch/avatars/internal/services/avatars/storage"
	seedsqlite "github.com/louisbranch/avatars/internal/services/avatars/storage/sqlite"
	"github.com/louisbranch/avatars/internal/tools/seed/generator"
)

const shutdownTimeout = 10 * time.Second

// Config holds the runtime settings of the avatars server.
type Config struct {
	HTTPAddr        string
	TemplateBaseURL string
	TemplateVersion string
	FallbackSeed    string
	// SeedDBPath enables the seed endpoints when set.
	SeedDBPath string
	// SeedFile, when set, replaces the stored seed generation at startup.
	SeedFile string
}

// Server hosts the avatars HTTP API and its storage lifecycle.
type Server struct {
	listener   net.Listener
	httpServer *http.Server
	store      *seedsqlite.Store
	logger     *log.Logger
}

// New creates a configured avatars server listening on cfg.HTTPAddr.
func New(ctx context.Context, cfg Config) (*Server, error) {
	logger := logging.FromContext(ctx)

	templater := imagecdn.New(cfg.TemplateBaseURL, cfg.TemplateVersion)
	if err := templater.Validate(); err != nil {
		return nil, fmt.Errorf("template base url %q: %w", cfg.TemplateBaseURL, err)
	}

	var store *seedsqlite.Store
	if path := strings.TrimSpace(cfg.SeedDBPath); path != "" {
		opened, err := openSeedStore(ctx, path)
		if err != nil {
			return nil, err
		}
		store = opened
		if file := strings.TrimSpace(cfg.SeedFile); file != "" {
			if err := importSeedFile(ctx, store, file); err != nil {
				_ = store.Close()
				return nil, err
			}
			logger.Info("seed file imported", "path", file)
		}
	} else if strings.TrimSpace(cfg.SeedFile) != "" {
		return nil, errors.New("seed file requires a seed db path")
	}

	listener, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return nil, fmt.Errorf("listen on %s: %w", cfg.HTTPAddr, err)
	}

	avatars := catalog.Avatars()
	resolverOpts := []identity.Option{
		identity.WithCatalog(avatars),
		identity.WithTemplater(templater),
	}
	if cfg.FallbackSeed != "" {
		resolverOpts = append(resolverOpts, identity.WithFallbackSeed(cfg.FallbackSeed))
	}
	handlerCfg := httpapi.Config{
		Catalog:  avatars,
		Resolver: identity.NewResolver(resolverOpts...),
		Logger:   logger,
	}
	if store != nil {
		handlerCfg.Seeds = store
	}

	return &Server{
		listener: listener,
		httpServer: &http.Server{
			Handler:           httpapi.New(handlerCfg),
			ReadHeaderTimeout: 5 * time.Second,
		},
		store:  store,
		logger: logger,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves an avatars server until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	srv, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	return srv.Serve(ctx)
}

// Serve starts the HTTP server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	s.logger.Info("avatars server listening", "addr", s.listener.Addr().String())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP: %w", err)
		}
		if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve HTTP: %w", err)
		}
		return nil
	case err := <-serveErr:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve HTTP: %w", err)
	}
}

// Close releases server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("close seed store", "err", err)
		}
	}
}

func openSeedStore(ctx context.Context, path string) (*seedsqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := seedsqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open seed sqlite store: %w", err)
	}
	return store, nil
}

func importSeedFile(ctx context.Context, store storage.SeedStore, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	doc, err := generator.LoadDocument(f)
	if err != nil {
		return fmt.Errorf("load seed file %s: %w", path, err)
	}
	if err := store.ReplaceSeed(ctx, doc.Avatars, doc.Banners); err != nil {
		return fmt.Errorf("import seed file: %w", err)
	}
	return nil
}
