// Package practice parses practice command flags and runs an interactive
// drill session or writes a printable worksheet.
package practice

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/mathdrill/internal/core/arith"
	entrypoint "github.com/louisbranch/mathdrill/internal/platform/cmd"
	"github.com/louisbranch/mathdrill/internal/platform/discovery"
	"github.com/louisbranch/mathdrill/internal/platform/timeouts"
	"github.com/louisbranch/mathdrill/internal/random"
	"github.com/louisbranch/mathdrill/internal/worksheet"
)

// Config holds practice command configuration.
type Config struct {
	GRPCAddr  string        `env:"MATHDRILL_DRILL_GRPC_ADDR"`
	Remote    bool          `env:"MATHDRILL_PRACTICE_REMOTE"`
	Modes     string        `env:"MATHDRILL_PRACTICE_MODES"    envDefault:"ADD,SUBTRACT"`
	Min       int           `env:"MATHDRILL_PRACTICE_MIN"      envDefault:"0"`
	Max       int           `env:"MATHDRILL_PRACTICE_MAX"      envDefault:"100"`
	Multiple  int           `env:"MATHDRILL_PRACTICE_MULTIPLE" envDefault:"1"`
	Rounds    int           `env:"MATHDRILL_PRACTICE_ROUNDS"   envDefault:"10"`
	Locale    string        `env:"MATHDRILL_PRACTICE_LOCALE"   envDefault:"en-US"`
	Seed      string        `env:"MATHDRILL_PRACTICE_SEED"`
	Worksheet string        `env:"MATHDRILL_PRACTICE_WORKSHEET"`
	Count     int           `env:"MATHDRILL_PRACTICE_COUNT"    envDefault:"20"`
	Timeout   time.Duration `env:"MATHDRILL_PRACTICE_TIMEOUT"  envDefault:"2s"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.GRPCAddr, "grpc-addr", cfg.GRPCAddr, "drill server address (empty generates locally)")
	fs.BoolVar(&cfg.Remote, "remote", cfg.Remote, "use the drill server at its in-network default address when -grpc-addr is empty")
	fs.StringVar(&cfg.Modes, "modes", cfg.Modes, "comma-separated operations: ADD, SUBTRACT")
	fs.IntVar(&cfg.Min, "min", cfg.Min, "smallest operand")
	fs.IntVar(&cfg.Max, "max", cfg.Max, "largest operand")
	fs.IntVar(&cfg.Multiple, "multiple", cfg.Multiple, "operands must be multiples of this value")
	fs.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "number of problems in an interactive session")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for prompts and feedback")
	fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "seed to replay a session (empty picks a random one)")
	fs.StringVar(&cfg.Worksheet, "worksheet", cfg.Worksheet, "write a PDF worksheet to this path instead of practicing")
	fs.IntVar(&cfg.Count, "count", cfg.Count, "number of problems on the worksheet")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "timeout per drill server request")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Remote {
		cfg.GRPCAddr = discovery.OrDefaultGRPCAddr(cfg.GRPCAddr, discovery.ServiceDrill)
	}
	return cfg, nil
}

// Run executes the practice command.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, errOut io.Writer) error {
	if in == nil {
		in = strings.NewReader("")
	}
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := log.New(errOut, "", 0)

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServicePractice, func(ctx context.Context) error {
		seed, err := parseSeed(cfg.Seed)
		if err != nil {
			return err
		}

		if cfg.Worksheet != "" {
			return writeWorksheet(ctx, cfg, seed, out)
		}

		var source problemSource
		if cfg.GRPCAddr != "" {
			remote, err := dialRemote(ctx, cfg, seed, logger)
			if err != nil {
				return err
			}
			defer remote.Close()
			source = remote
		} else {
			local, err := newLocalSource(cfg, seed)
			if err != nil {
				return err
			}
			source = local
		}
		return runSession(ctx, source, cfg.Rounds, cfg.Locale, in, out)
	})
}

// splitModes splits a comma-separated mode list, dropping blanks.
func splitModes(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func settingsFromConfig(cfg Config) (arith.Settings, error) {
	modes, err := arith.ParseOperators(splitModes(cfg.Modes))
	if err != nil {
		return arith.Settings{}, err
	}
	return arith.NewSettings(modes, arith.WithRange(cfg.Min, cfg.Max), arith.WithMultiple(cfg.Multiple))
}

// parseSeed returns nil when raw is empty.
func parseSeed(raw string) (*uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse seed %q: %w", raw, err)
	}
	return &seed, nil
}

// localSeed resolves the session seed for local generation.
func localSeed(requested *uint64) (int64, error) {
	seed, _, err := random.ResolveSeed(requested, true, random.NewSeed)
	return seed, err
}

func writeWorksheet(ctx context.Context, cfg Config, requested *uint64, out io.Writer) error {
	if cfg.GRPCAddr != "" {
		return errors.New("worksheets are generated locally; drop -grpc-addr")
	}
	settings, err := settingsFromConfig(cfg)
	if err != nil {
		return err
	}
	seed, err := localSeed(requested)
	if err != nil {
		return err
	}

	sheet, err := worksheet.Build(ctx, random.NewRand(seed), settings, cfg.Count, arith.DefaultMaxAttempts, cfg.Locale)
	if err != nil {
		return err
	}
	if err := worksheet.NewRenderer(worksheet.DefaultConfig()).WriteFile(cfg.Worksheet, sheet); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %d problems to %s (seed %d)\n", len(sheet.Problems), cfg.Worksheet, seed)
	return nil
}

func requestTimeout(cfg Config) time.Duration {
	if cfg.Timeout > 0 {
		return cfg.Timeout
	}
	return timeouts.GRPCRequest
}
