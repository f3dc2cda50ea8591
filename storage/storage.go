package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/tvrank/blobstore"
	"github.com/hupe1980/tvrank/internal/mmap"
	"github.com/hupe1980/tvrank/resource"
)

const (
	// TitlesName is the base name of the title dump.
	TitlesName = "title.basics"
	// RatingsName is the base name of the ratings dump.
	RatingsName = "title.ratings"

	// DefaultMaxAge is how long a cached dump is used before it is refreshed.
	DefaultMaxAge = 30 * 24 * time.Hour

	sourceExt = ".tsv.gz"
)

var (
	// ErrNoCacheDir is returned when Config.CacheDir is empty.
	ErrNoCacheDir = errors.New("storage: cache directory is required")
	// ErrNoSource is returned when a dump must be fetched but no source is configured.
	ErrNoSource = errors.New("storage: no source configured")
	// ErrMemoryLimit is returned when a decompressed dump does not fit the memory budget.
	ErrMemoryLimit = errors.New("storage: memory limit exceeded")
	// ErrClosed is returned by accessors after Close.
	ErrClosed = errors.New("storage: closed")
)

// Config controls where dumps are cached and how they are refreshed.
type Config struct {
	// CacheDir holds the decompressed dumps. It is created if missing.
	CacheDir string

	// ForceUpdate refetches both dumps regardless of their age.
	ForceUpdate bool

	// MaxAge is the refresh threshold. Zero means DefaultMaxAge; negative
	// never refreshes existing files.
	MaxAge time.Duration

	// Source serves "<name>.tsv.gz" blobs.
	Source blobstore.BlobStore

	// Compression selects the on-disk cache format.
	Compression Compression

	// Controller bounds downloads and in-memory buffers. May be nil.
	Controller *resource.Controller

	// Logger receives progress records. Nil discards them.
	Logger *slog.Logger
}

// Storage holds both dumps until Close.
type Storage struct {
	titles  *dump
	ratings *dump
	closed  atomic.Bool
}

// Open makes both dumps available, fetching them from cfg.Source when the
// cache is stale. The two dumps are prepared concurrently.
func Open(ctx context.Context, cfg Config) (*Storage, error) {
	if cfg.CacheDir == "" {
		return nil, ErrNoCacheDir
	}
	if cfg.MaxAge == 0 {
		cfg.MaxAge = DefaultMaxAge
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create cache dir: %w", err)
	}

	s := &Storage{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		s.titles, err = prepare(gctx, cfg, TitlesName)
		return err
	})
	g.Go(func() (err error) {
		s.ratings, err = prepare(gctx, cfg, RatingsName)
		return err
	})

	if err := g.Wait(); err != nil {
		_ = s.release()
		return nil, err
	}

	return s, nil
}

// Titles returns the title dump. The slice is valid until Close.
func (s *Storage) Titles() []byte {
	if s.closed.Load() {
		return nil
	}
	return s.titles.data
}

// Ratings returns the ratings dump. The slice is valid until Close.
func (s *Storage) Ratings() []byte {
	if s.closed.Load() {
		return nil
	}
	return s.ratings.data
}

// Close releases mappings and memory reservations. It is idempotent.
func (s *Storage) Close() error {
	if s == nil || s.closed.Swap(true) {
		return nil
	}
	return s.release()
}

func (s *Storage) release() error {
	return errors.Join(s.titles.close(), s.ratings.close())
}

// CachePath returns the cache file used for name under cfg.
func CachePath(cfg Config, name string) string {
	return filepath.Join(cfg.CacheDir, name+cfg.Compression.ext())
}

func prepare(ctx context.Context, cfg Config, name string) (*dump, error) {
	path := CachePath(cfg, name)
	log := cfg.Logger.With(slog.String("dump", name))

	stale, err := needsRefresh(path, cfg)
	if err != nil {
		return nil, err
	}

	if stale {
		if cfg.Source == nil {
			return nil, fmt.Errorf("%w: %s is missing or stale", ErrNoSource, filepath.Base(path))
		}
		start := time.Now()
		n, err := fetch(ctx, cfg, name, path)
		if err != nil {
			return nil, fmt.Errorf("storage: fetch %s: %w", name, err)
		}
		log.InfoContext(ctx, "dump fetched",
			slog.Int64("compressed_bytes", n),
			slog.Duration("duration", time.Since(start)),
		)
	} else {
		log.DebugContext(ctx, "using cached dump", slog.String("path", path))
	}

	d, err := load(ctx, path, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage: load %s: %w", name, err)
	}
	return d, nil
}

func needsRefresh(path string, cfg Config) (bool, error) {
	if cfg.ForceUpdate {
		return true, nil
	}
	fi, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return true, nil
	case err != nil:
		return false, fmt.Errorf("storage: stat %s: %w", path, err)
	}
	if cfg.MaxAge < 0 {
		return false, nil
	}
	return time.Since(fi.ModTime()) > cfg.MaxAge, nil
}

type dump struct {
	data []byte
	m    *mmap.Mapping
	held int64
	rc   *resource.Controller
}

func load(ctx context.Context, path string, cfg Config) (*dump, error) {
	if cfg.Compression == CompressionNone {
		m, err := mmap.Open(path)
		if err != nil {
			return nil, err
		}
		_ = m.Advise(mmap.AccessSequential)
		return &dump{data: m.Bytes(), m: m}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := cfg.Compression.decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", cfg.Compression, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := int64(len(data))
	if !cfg.Controller.TryAcquireMemory(n) {
		return nil, fmt.Errorf("%w: %d bytes", ErrMemoryLimit, n)
	}
	return &dump{data: data, held: n, rc: cfg.Controller}, nil
}

func (d *dump) close() error {
	if d == nil {
		return nil
	}
	d.rc.ReleaseMemory(d.held)
	d.held = 0
	d.data = nil
	if d.m != nil {
		return d.m.Close()
	}
	return nil
}
