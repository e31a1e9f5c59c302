// Package avatars parses avatars service flags and launches the service.
package avatars

import (
	"context"
	"flag"
	"io"
	"os"

	entrypoint "github.com/louisbranch/avatars/internal/platform/cmd"
	server "github.com/louisbranch/avatars/internal/services/avatars/app"
)

// Config holds avatars command configuration.
type Config struct {
	HTTPAddr        string `env:"AVATARS_HTTP_ADDR" envDefault:":8090"`
	TemplateBaseURL string `env:"AVATARS_TEMPLATE_BASE_URL" envDefault:"https://api.dicebear.com"`
	TemplateVersion string `env:"AVATARS_TEMPLATE_VERSION" envDefault:"7.x"`
	FallbackSeed    string `env:"AVATARS_FALLBACK_SEED" envDefault:"guest"`
	SeedDBPath      string `env:"AVATARS_SEED_DB_PATH"`
	SeedFile        string `env:"AVATARS_SEED_FILE"`
	LogLevel        string `env:"AVATARS_LOG_LEVEL" envDefault:"info"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.SeedDBPath, "seed-db", cfg.SeedDBPath, "seed catalog SQLite path (empty disables seed endpoints)")
	fs.StringVar(&cfg.SeedFile, "seed-file", cfg.SeedFile, "seed JSON artifact to import at startup")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the avatars HTTP API service, logging to stderr.
func Run(ctx context.Context, cfg Config) error {
	return run(ctx, cfg, os.Stderr)
}

func run(ctx context.Context, cfg Config, logOut io.Writer) error {
	logger := entrypoint.NewLogger(logOut, entrypoint.ServiceAvatars, cfg.LogLevel)
	options := entrypoint.RunOptions{Logger: logger}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceAvatars, options, func(ctx context.Context) error {
		return server.Run(ctx, server.Config{
			HTTPAddr:        cfg.HTTPAddr,
			TemplateBaseURL: cfg.TemplateBaseURL,
			TemplateVersion: cfg.TemplateVersion,
			FallbackSeed:    cfg.FallbackSeed,
			SeedDBPath:      cfg.SeedDBPath,
			SeedFile:        cfg.SeedFile,
		})
	})
}
