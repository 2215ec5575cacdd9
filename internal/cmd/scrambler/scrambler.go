// Package scrambler parses scrambler command flags and starts the service.
package scrambler

import (
	"context"
	"flag"

	entrypoint "github.com/veilnum/veilnum/internal/platform/cmd"
	server "github.com/veilnum/veilnum/internal/services/scrambler/app"
)

// Config holds scrambler command configuration.
type Config struct {
	Port       int    `env:"VEILNUM_SCRAMBLER_PORT" envDefault:"8082"`
	Addr       string `env:"VEILNUM_SCRAMBLER_ADDR"`
	BaseOffset int64  `env:"VEILNUM_SCRAMBLER_BASE_OFFSET" envDefault:"0"`
	AuditDB    string `env:"VEILNUM_SCRAMBLER_AUDIT_DB"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The scrambler server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The scrambler server listen address (overrides -port)")
	fs.Int64Var(&cfg.BaseOffset, "base-offset", cfg.BaseOffset, "Uniform shift applied to the segment walk")
	fs.StringVar(&cfg.AuditDB, "audit-db", cfg.AuditDB, "Path to the SQLite audit event store (empty disables persistence)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the scrambler API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceScrambler, func(context.Context) error {
		return server.Run(ctx, server.Options{
			Port:        cfg.Port,
			Addr:        cfg.Addr,
			BaseOffset:  cfg.BaseOffset,
			AuditDBPath: cfg.AuditDB,
		})
	})
}
