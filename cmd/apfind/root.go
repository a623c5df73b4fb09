package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hupe1980/apfind"
	"github.com/hupe1980/apfind/internal/resource"
	"github.com/hupe1980/apfind/source"
	"github.com/hupe1980/apfind/source/minio"
	"github.com/hupe1980/apfind/source/s3"
	"github.com/spf13/cobra"
)

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cfg := defaultConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:   "apfind [input]",
		Short: "Find the longest arithmetic progression in a sorted stream",
		Long: `apfind reads unsigned integers, one per line and in non-decreasing order,
and prints the longest arithmetic progression they contain as
"<length>: <v1> <v2> ...".

Values may be written in decimal, hex (0x), octal (0) or binary (0b).
The input is a local path, "-" for standard input, s3://bucket/key or
minio://bucket/key, optionally gzip, zstd or lz4 compressed.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			final := defaultConfig()
			if configPath != "" {
				if err := loadConfig(configPath, &final); err != nil {
					return err
				}
			}
			if flags.Changed("input") {
				final.Input = cfg.Input
			}
			if len(args) == 1 {
				final.Input = args[0]
			}
			if flags.Changed("blow-by-blow") {
				final.BlowByBlow = cfg.BlowByBlow
			}
			if flags.Changed("fanout") {
				final.Fanout = cfg.Fanout
			}
			if flags.Changed("memory-limit") {
				final.MemoryLimitBytes = cfg.MemoryLimitBytes
			}
			if flags.Changed("read-limit") {
				final.ReadLimitBytes = cfg.ReadLimitBytes
			}
			if flags.Changed("progress-interval") {
				final.ProgressInterval = cfg.ProgressInterval
			}
			if flags.Changed("metrics-textfile") {
				final.MetricsTextfile = cfg.MetricsTextfile
			}
			if flags.Changed("log-level") {
				final.Log.Level = cfg.Log.Level
			}
			if flags.Changed("log-format") {
				final.Log.Format = cfg.Log.Format
			}
			if flags.Changed("minio-endpoint") {
				final.MinIO.Endpoint = cfg.MinIO.Endpoint
			}
			if flags.Changed("minio-secure") {
				final.MinIO.Secure = cfg.MinIO.Secure
			}

			return execute(cmd.Context(), final, stdin, stdout, stderr)
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	f.StringVarP(&cfg.Input, "input", "i", cfg.Input, "input location")
	f.BoolVarP(&cfg.BlowByBlow, "blow-by-blow", "b", cfg.BlowByBlow, "print every improvement of the best progression")
	f.IntVar(&cfg.Fanout, "fanout", cfg.Fanout, "fan-out of the progression index")
	f.Int64Var(&cfg.MemoryLimitBytes, "memory-limit", cfg.MemoryLimitBytes, "memory limit in bytes (0 = unlimited)")
	f.Int64Var(&cfg.ReadLimitBytes, "read-limit", cfg.ReadLimitBytes, "input read limit in bytes per second (0 = unlimited)")
	f.DurationVar(&cfg.ProgressInterval, "progress-interval", cfg.ProgressInterval, "interval between progress logs (0 = off)")
	f.StringVar(&cfg.MetricsTextfile, "metrics-textfile", cfg.MetricsTextfile, "write Prometheus metrics to this file on exit")
	f.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn, error (empty disables logging)")
	f.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "log format: text or json")
	f.StringVar(&cfg.MinIO.Endpoint, "minio-endpoint", cfg.MinIO.Endpoint, "MinIO endpoint for minio:// inputs")
	f.BoolVar(&cfg.MinIO.Secure, "minio-secure", cfg.MinIO.Secure, "use TLS for MinIO")

	return cmd
}

// execute runs one apfind pass over cfg.Input, writing results to stdout
// and diagnostics to stderr.
func execute(ctx context.Context, cfg Config, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}
	logger = logger.WithInput(cfg.Input)

	mux := newMux(cfg, stdin)
	rc, err := mux.Open(ctx, cfg.Input)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	out := bufio.NewWriter(stdout)
	defer func() {
		if ferr := out.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}()

	opts := []apfind.Option{
		apfind.WithFanout(cfg.Fanout),
		apfind.WithMemoryLimit(cfg.MemoryLimitBytes),
		apfind.WithLogger(logger),
		apfind.WithProgressInterval(cfg.ProgressInterval),
	}

	var reportErr error
	if cfg.BlowByBlow {
		opts = append(opts, apfind.WithReporter(func(p apfind.Progression) {
			if _, werr := p.WriteTo(out); werr != nil && reportErr == nil {
				reportErr = werr
			}
		}))
	}

	if cfg.MetricsTextfile != "" {
		collector := newPromCollector()
		opts = append(opts, apfind.WithMetricsCollector(collector))
		defer func() {
			if werr := collector.writeTextfile(cfg.MetricsTextfile); werr != nil && err == nil {
				err = fmt.Errorf("write metrics: %w", werr)
			}
		}()
	}

	throttle := resource.NewController(resource.Config{IOLimitBytesPerSec: cfg.ReadLimitBytes})
	src := source.NewLineReader(source.Throttle(ctx, rc, throttle))

	best, err := apfind.Run(ctx, src, opts...)
	if err != nil {
		return err
	}
	if reportErr != nil {
		return reportErr
	}

	_, err = best.WriteTo(out)
	return err
}

func newLogger(cfg LogConfig, w io.Writer) (*apfind.Logger, error) {
	if cfg.Level == "" {
		return apfind.NoopLogger(), nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", cfg.Level)
	}

	hopts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		return apfind.NewLogger(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return apfind.NewLogger(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}
}

// errNoMinIOEndpoint is returned for minio:// inputs when no endpoint is set.
var errNoMinIOEndpoint = errors.New("minio endpoint not configured")

// newMux wires the object-store openers. Clients are built on first use so
// local runs never load cloud credentials.
func newMux(cfg Config, stdin io.Reader) *source.Mux {
	mux := source.NewMux()
	mux.SetStdin(stdin)

	mux.Handle("s3", source.OpenerFunc(func(ctx context.Context, name string) (io.ReadCloser, error) {
		o, err := s3.NewFromConfig(ctx)
		if err != nil {
			return nil, err
		}
		return o.Open(ctx, name)
	}))

	mux.Handle("minio", source.OpenerFunc(func(ctx context.Context, name string) (io.ReadCloser, error) {
		if cfg.MinIO.Endpoint == "" {
			return nil, errNoMinIOEndpoint
		}
		o, err := minio.New(cfg.MinIO.Endpoint, cfg.MinIO.Secure)
		if err != nil {
			return nil, err
		}
		return o.Open(ctx, name)
	}))

	return mux
}
