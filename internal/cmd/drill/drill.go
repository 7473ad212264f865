// Package drill parses drill command flags and starts the gRPC server.
package drill

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/mathdrill/internal/platform/cmd"
	server "github.com/louisbranch/mathdrill/internal/services/drill/app"
)

// Config holds drill command configuration.
type Config struct {
	Port        int    `env:"MATHDRILL_DRILL_PORT" envDefault:"8090"`
	Addr        string `env:"MATHDRILL_DRILL_ADDR"`
	AllowReplay bool   `env:"MATHDRILL_DRILL_ALLOW_REPLAY"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The drill server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The drill server listen address (overrides -port)")
	fs.BoolVar(&cfg.AllowReplay, "allow-replay", cfg.AllowReplay, "Honor client-supplied seeds on replay requests")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the drill gRPC service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceDrill, func(ctx context.Context) error {
		return server.Run(ctx, server.Options{
			Addr:        cfg.Addr,
			Port:        cfg.Port,
			AllowReplay: cfg.AllowReplay,
		})
	})
}
