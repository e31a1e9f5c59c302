// Package httpapi serves the avatar catalog, image synthesis, identity
// resolution and seed pools over HTTP JSON.
package httpapi

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/louisbranch/avatars/internal/platform/assets/catalog"
	"github.com/louisbranch/avatars/internal/services/avatars/identity"
	"github.com/louisbranch/avatars/internal/services/avatars/storage"
)

// Config wires the handler's collaborators. Nil fields fall back to the
// built-in catalog, a default resolver and no seed store.
type Config struct {
	Catalog  *catalog.Catalog
	Resolver *identity.Resolver
	Seeds    storage.SeedStore
	Logger   *log.Logger
	Rand     *rand.Rand
}

// Handler routes avatar API requests.
type Handler struct {
	catalog  *catalog.Catalog
	resolver *identity.Resolver
	seeds    storage.SeedStore
	logger   *log.Logger

	mu  sync.Mutex
	rng *rand.Rand

	mux *http.ServeMux
}

// New builds a Handler with every route registered.
func New(cfg Config) *Handler {
	h := &Handler{
		catalog:  cfg.Catalog,
		resolver: cfg.Resolver,
		seeds:    cfg.Seeds,
		logger:   cfg.Logger,
		rng:      cfg.Rand,
		mux:      http.NewServeMux(),
	}
	if h.catalog == nil {
		h.catalog = catalog.Avatars()
	}
	if h.resolver == nil {
		h.resolver = identity.NewResolver(identity.WithCatalog(h.catalog))
	}
	if h.logger == nil {
		h.logger = log.Default()
	}
	if h.rng == nil {
		h.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.handle("GET /healthz", h.handleHealth)
	h.handle("GET /v1/avatars", h.handleListAvatars)
	h.handle("GET /v1/avatars/random", h.handleRandomAvatar)
	h.handle("GET /v1/avatars/{id}", h.handleGetAvatar)
	h.handle("GET /v1/avatars/{id}/image.svg", h.handleAvatarImage)
	h.handle("GET /v1/glyphs", h.handleGlyphs)
	h.handle("POST /v1/resolve", h.handleResolve)
	h.handle("GET /v1/seed/avatars", h.handleSeedAvatars)
	h.handle("GET /v1/seed/avatars/{id}", h.handleSeedAvatar)
	h.handle("GET /v1/seed/banners", h.handleSeedBanners)
}

func (h *Handler) handle(pattern string, fn http.HandlerFunc) {
	h.mux.Handle(pattern, h.instrument(pattern, fn))
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"avatars": h.catalog.Len(),
		"seeds":   h.seeds != nil,
	})
}

func (h *Handler) pickRandom() (catalog.Descriptor, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.catalog.PickRandom(h.rng)
}
