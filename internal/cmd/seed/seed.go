// Package seed parses seeder flags and writes a generated seed artifact.
package seed

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	entrypoint "github.com/louisbranch/avatars/internal/platform/cmd"
	"github.com/louisbranch/avatars/internal/platform/logging"
	seedsqlite "github.com/louisbranch/avatars/internal/services/avatars/storage/sqlite"
	"github.com/louisbranch/avatars/internal/tools/seed/generator"
)

// stdoutPath selects standard output as the artifact destination.
const stdoutPath = "-"

// Config holds seed command configuration.
type Config struct {
	Out             string `env:"AVATARS_SEED_OUT" envDefault:"-"`
	DBPath          string `env:"AVATARS_SEED_DB_PATH"`
	TemplateBaseURL string `env:"AVATARS_TEMPLATE_BASE_URL" envDefault:"https://api.dicebear.com"`
	TemplateVersion string `env:"AVATARS_TEMPLATE_VERSION" envDefault:"7.x"`
	LogLevel        string `env:"AVATARS_LOG_LEVEL" envDefault:"info"`
	Seed            int64
	PerCategory     int
	Banners         int
	Verbose         bool
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Out, "out", cfg.Out, "seed JSON output path (- for stdout, empty to skip)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "seed catalog SQLite path to replace (empty to skip)")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed for reproducibility (0 = random)")
	fs.IntVar(&cfg.PerCategory, "per-category", generator.DefaultPerCategory, "avatars per category")
	fs.IntVar(&cfg.Banners, "banners", generator.DefaultBanners, "number of banners")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.PerCategory <= 0 {
		return Config{}, fmt.Errorf("per-category must be positive, got %d", cfg.PerCategory)
	}
	if cfg.Banners <= 0 {
		return Config{}, fmt.Errorf("banners must be positive, got %d", cfg.Banners)
	}
	return cfg, nil
}

// Run executes the seed command. The artifact goes to out when cfg.Out is
// "-"; progress is logged to errOut.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	level := cfg.LogLevel
	if cfg.Verbose {
		level = "debug"
	}
	logger := entrypoint.NewLogger(errOut, entrypoint.ServiceSeed, level)
	options := entrypoint.RunOptions{Logger: logger}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceSeed, options, func(ctx context.Context) error {
		return run(ctx, cfg, out)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	logger := logging.FromContext(ctx)
	outPath := strings.TrimSpace(cfg.Out)
	dbPath := strings.TrimSpace(cfg.DBPath)
	if outPath == "" && dbPath == "" {
		return fmt.Errorf("nothing to do: set -out or -db")
	}

	genCfg := generator.DefaultConfig()
	genCfg.Seed = cfg.Seed
	genCfg.Verbose = cfg.Verbose
	if cfg.PerCategory > 0 {
		genCfg.PerCategory = cfg.PerCategory
	}
	if cfg.Banners > 0 {
		genCfg.Banners = cfg.Banners
	}
	if base := strings.TrimSpace(cfg.TemplateBaseURL); base != "" {
		genCfg.TemplateBaseURL = base
	}
	if version := strings.TrimSpace(cfg.TemplateVersion); version != "" {
		genCfg.TemplateVersion = version
	}
	gen, err := generator.New(genCfg, generator.WithLogger(logger))
	if err != nil {
		return err
	}
	doc, err := gen.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("seed generated", "seed", gen.Seed(), "avatars", len(doc.Avatars), "banners", len(doc.Banners))

	if outPath != "" {
		if err := writeArtifact(outPath, out, doc); err != nil {
			return err
		}
		if outPath != stdoutPath {
			logger.Info("seed written", "path", outPath)
		}
	}
	if dbPath != "" {
		if err := storeArtifact(ctx, dbPath, doc); err != nil {
			return err
		}
		logger.Info("seed stored", "db", dbPath)
	}
	return nil
}

func writeArtifact(path string, stdout io.Writer, doc generator.Document) error {
	if path == stdoutPath {
		return generator.WriteDocument(stdout, doc)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create seed file: %w", err)
	}
	if err := generator.WriteDocument(f, doc); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close seed file: %w", err)
	}
	return nil
}

func storeArtifact(ctx context.Context, path string, doc generator.Document) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := seedsqlite.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("open seed sqlite store: %w", err)
	}
	defer store.Close()
	if err := store.ReplaceSeed(ctx, doc.Avatars, doc.Banners); err != nil {
		return fmt.Errorf("store seed: %w", err)
	}
	return nil
}
