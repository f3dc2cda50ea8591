package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/hupe1980/tvrank"
	"github.com/hupe1980/tvrank/storage"
)

// Config is read from TVRANK_* environment variables; flags override it.
type Config struct {
	CacheDir    string              `env:"CACHE_DIR"`
	ForceUpdate bool                `env:"FORCE_UPDATE" envDefault:"false"`
	MaxAge      time.Duration       `env:"MAX_AGE"      envDefault:"720h"`
	Compression storage.Compression `env:"COMPRESSION"  envDefault:"none"`
	SortByYear  bool                `env:"SORT_BY_YEAR" envDefault:"false"`

	Workers   int `env:"WORKERS"`
	BatchSize int `env:"BATCH_SIZE"`

	LogLevel  slog.Level `env:"LOG_LEVEL"  envDefault:"warn"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text"`

	// Source is one of http, local, s3 or minio.
	Source    string `env:"SOURCE"     envDefault:"http"`
	SourceURL string `env:"SOURCE_URL"`
	LocalDir  string `env:"LOCAL_DIR"`

	S3Bucket string `env:"S3_BUCKET"`
	S3Prefix string `env:"S3_PREFIX"`
	S3Region string `env:"S3_REGION"`

	MinioEndpoint  string `env:"MINIO_ENDPOINT"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY"`
	MinioSecure    bool   `env:"MINIO_SECURE" envDefault:"true"`
	MinioBucket    string `env:"MINIO_BUCKET"`
	MinioPrefix    string `env:"MINIO_PREFIX"`

	MemoryLimit  int64 `env:"MEMORY_LIMIT"`
	DownloadRate int64 `env:"DOWNLOAD_RATE"`
}

// loadConfig parses the environment, then the global flags in args. It
// returns the remaining arguments.
func loadConfig(args []string) (*Config, []string, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "TVRANK_"}); err != nil {
		return nil, nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	fs := flag.NewFlagSet("tvrank", flag.ContinueOnError)
	fs.Usage = func() { usage(fs) }
	fs.StringVar(&cfg.CacheDir, "cache-dir", cfg.CacheDir, "directory holding the dataset cache")
	fs.BoolVar(&cfg.ForceUpdate, "f", cfg.ForceUpdate, "refetch the datasets")
	fs.BoolVar(&cfg.ForceUpdate, "force-update", cfg.ForceUpdate, "refetch the datasets")
	fs.BoolVar(&cfg.SortByYear, "y", cfg.SortByYear, "sort by year/rating/title instead of rating/year/title")
	fs.BoolVar(&cfg.SortByYear, "sort-by-year", cfg.SortByYear, "sort by year/rating/title instead of rating/year/title")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "load workers (default GOMAXPROCS/2)")
	fs.StringVar(&cfg.Source, "source", cfg.Source, "dataset source: http, local, s3 or minio")
	fs.TextVar(&cfg.Compression, "compression", cfg.Compression, "cache format: none, lz4 or zstd")
	fs.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	if cfg.CacheDir == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return nil, nil, fmt.Errorf("config: no cache directory: %w", err)
		}
		cfg.CacheDir = filepath.Join(dir, "tvrank")
	}

	return cfg, fs.Args(), nil
}

func (c *Config) logger() *tvrank.Logger {
	if c.LogFormat == "json" {
		return tvrank.NewJSONLogger(c.LogLevel)
	}
	return tvrank.NewTextLogger(c.LogLevel)
}

func (c *Config) serviceOptions(logger *tvrank.Logger) []tvrank.Option {
	opts := []tvrank.Option{tvrank.WithLogger(logger)}
	if c.Workers > 0 {
		opts = append(opts, tvrank.WithWorkers(c.Workers))
	}
	if c.BatchSize > 0 {
		opts = append(opts, tvrank.WithBatchSize(c.BatchSize))
	}
	return opts
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintf(out, "Usage: tvrank [flags] <command> <arg>\n\n")
	fmt.Fprintf(out, "Commands:\n")
	fmt.Fprintf(out, "  title <TITLE | \"TITLE (YYYY)\">  lookup a single title\n")
	fmt.Fprintf(out, "  movies-dir <DIR>               lookup movie titles from a directory\n")
	fmt.Fprintf(out, "  series-dir <DIR>               lookup series titles from a directory\n\n")
	fmt.Fprintf(out, "Flags:\n")
	fs.PrintDefaults()
}
