// Command tvrank looks up movies and series in a local copy of the IMDb
// datasets.
//
// The datasets are fetched on first use (and refreshed once they are older
// than TVRANK_MAX_AGE) into the cache directory, then loaded in parallel.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/hupe1980/tvrank"
	"github.com/hupe1980/tvrank/resource"
	"github.com/hupe1980/tvrank/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	start := time.Now()

	cfg, rest, err := loadConfig(args)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case err != nil:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if len(rest) != 2 {
		fmt.Fprintln(stderr, "Error: expected a command and one argument (see -h)")
		return 2
	}
	cmd, arg := rest[0], rest[1]
	switch cmd {
	case "title", "movies-dir", "series-dir":
	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n", cmd)
		return 2
	}

	logger := cfg.logger()

	svc, err := load(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer svc.Close()

	fmt.Fprintf(stderr, "Loaded IMDb database in %s\n", time.Since(start).Round(time.Millisecond))

	queryStart := time.Now()
	a := &app{svc: svc, out: stdout, errOut: stderr, log: logger, byYear: cfg.SortByYear}
	if err := a.run(ctx, cmd, arg); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stderr, "IMDb query took %s\n", time.Since(queryStart).Round(time.Microsecond))
	fmt.Fprintf(stderr, "Total time: %s\n", time.Since(start).Round(time.Millisecond))
	return 0
}

func load(ctx context.Context, cfg *Config, logger *tvrank.Logger) (*tvrank.Service, error) {
	src, err := newSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	st, err := storage.Open(ctx, storage.Config{
		CacheDir:    cfg.CacheDir,
		ForceUpdate: cfg.ForceUpdate,
		MaxAge:      cfg.MaxAge,
		Source:      src,
		Compression: cfg.Compression,
		Controller: resource.NewController(resource.Config{
			MemoryLimitBytes:    cfg.MemoryLimit,
			DownloadBytesPerSec: cfg.DownloadRate,
		}),
		Logger: logger.Logger,
	})
	if err != nil {
		return nil, err
	}
	// The service copies what it keeps.
	defer st.Close()

	return tvrank.Open(ctx, st, cfg.serviceOptions(logger)...)
}
