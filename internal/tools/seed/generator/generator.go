// Package generator pre-generates pools of remotely templated avatars and
// gradient banners for seeding the catalog store.
//
// Output structure is fixed by configuration; content varies with the random
// source. Inject a seed or a *rand.Rand for reproducible runs.
package generator

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/louisbranch/avatars/internal/platform/assets/imagecdn"
	"github.com/louisbranch/avatars/internal/platform/logging"
)

const (
	// DefaultPerCategory is the number of avatars emitted per category.
	DefaultPerCategory = 50
	// DefaultBanners is the number of banners emitted.
	DefaultBanners = 220
)

// Config holds configuration for the generator.
type Config struct {
	Seed            int64
	PerCategory     int // 0 = DefaultPerCategory
	Banners         int // 0 = DefaultBanners
	TemplateBaseURL string
	TemplateVersion string
	Verbose         bool
}

// DefaultConfig returns a Config with the standard pool sizes.
func DefaultConfig() Config {
	return Config{
		PerCategory:     DefaultPerCategory,
		Banners:         DefaultBanners,
		TemplateBaseURL: imagecdn.DefaultBaseURL,
		TemplateVersion: imagecdn.DefaultVersion,
	}
}

// Option customizes a Generator.
type Option func(*Generator)

// WithRand replaces the seeded random source.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithLogger sets the progress logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Generator produces one seed Document per Run.
type Generator struct {
	config    Config
	rng       *rand.Rand
	seed      int64
	templater imagecdn.Templater
	logger    *log.Logger
}

// New creates a Generator with the given configuration.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if cfg.PerCategory < 0 {
		return nil, fmt.Errorf("per-category count must not be negative")
	}
	if cfg.Banners < 0 {
		return nil, fmt.Errorf("banner count must not be negative")
	}
	if cfg.PerCategory == 0 {
		cfg.PerCategory = DefaultPerCategory
	}
	if cfg.Banners == 0 {
		cfg.Banners = DefaultBanners
	}
	rng, seed := NewSeededRNG(cfg.Seed)
	g := &Generator{
		config:    cfg,
		rng:       rng,
		seed:      seed,
		templater: imagecdn.New(cfg.TemplateBaseURL, cfg.TemplateVersion),
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.templater.Validate(); err != nil {
		return nil, fmt.Errorf("template base url: %w", err)
	}
	return g, nil
}

// Seed returns the seed the random source was built from. It is meaningless
// when WithRand supplied the source.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Run generates the avatar and banner pools.
func (g *Generator) Run(ctx context.Context) (Document, error) {
	progress := logging.NewProgress(g.logger)
	if g.config.Verbose {
		g.logger.Info("generating seed", "seed", g.seed, "per_category", g.config.PerCategory, "banners", g.config.Banners)
	}

	avatars, err := g.generateAvatars(ctx)
	if err != nil {
		return Document{}, fmt.Errorf("generate avatars: %w", err)
	}
	banners, err := g.generateBanners(ctx)
	if err != nil {
		return Document{}, fmt.Errorf("generate banners: %w", err)
	}

	if g.config.Verbose {
		progress.Done("seed generated", "avatars", len(avatars), "banners", len(banners))
	}
	return Document{Avatars: avatars, Banners: banners}, nil
}
