package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"github.com/hupe1980/tvrank/resource"
)

// Downloader is implemented by sources that can fetch a whole blob faster than
// a single ranged read, such as s3.Store.
type Downloader interface {
	Download(ctx context.Context, name string, w io.WriterAt) (int64, error)
}

const progressStep = 32 << 20

// fetch downloads <name>.tsv.gz, decompresses it and atomically replaces
// the cache file at dst. It returns the compressed byte count.
func fetch(ctx context.Context, cfg Config, name, dst string) (int64, error) {
	if err := cfg.Controller.AcquireDownload(ctx); err != nil {
		return 0, err
	}
	defer cfg.Controller.ReleaseDownload()

	src, cleanup, err := openSource(ctx, cfg, name+sourceExt)
	if err != nil {
		return 0, err
	}
	defer cleanup()

	log := cfg.Logger.With(slog.String("dump", name))
	var next int64 = progressStep
	counter := resource.NewCountingReader(
		resource.NewRateLimitedReader(ctx, src, cfg.Controller),
		func(total int64) {
			if total >= next {
				log.DebugContext(ctx, "download progress", slog.Int64("bytes", total))
				next += progressStep
			}
		},
	)

	if err := writeCache(ctx, counter, dst, cfg.Compression); err != nil {
		return counter.Count(), err
	}
	return counter.Count(), nil
}

// openSource returns a reader over the compressed blob. Downloader sources
// are first spooled to a temporary file in the cache directory.
func openSource(ctx context.Context, cfg Config, blobName string) (io.Reader, func(), error) {
	if dl, ok := cfg.Source.(Downloader); ok {
		tmp, err := os.CreateTemp(cfg.CacheDir, blobName+".*.part")
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
		if _, err := dl.Download(ctx, blobName, tmp); err != nil {
			cleanup()
			return nil, nil, err
		}
		if _, err := tmp.Seek(0, io.SeekStart); err != nil {
			cleanup()
			return nil, nil, err
		}
		return tmp, cleanup, nil
	}

	blob, err := cfg.Source.Open(ctx, blobName)
	if err != nil {
		return nil, nil, err
	}
	if blob.Size() == 0 {
		_ = blob.Close()
		return nil, nil, fmt.Errorf("%s: %w", blobName, io.ErrUnexpectedEOF)
	}
	rc, err := blob.ReadRange(ctx, 0, blob.Size())
	if err != nil {
		_ = blob.Close()
		return nil, nil, err
	}
	return rc, func() {
		_ = rc.Close()
		_ = blob.Close()
	}, nil
}

func writeCache(ctx context.Context, r io.Reader, dst string, c Compression) (err error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("gunzip: %w", err)
	}
	defer zr.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), filepath.Base(dst)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w, err := c.encoder(tmp)
	if err != nil {
		return err
	}
	if _, err = io.Copy(w, &ctxReader{ctx: ctx, r: zr}); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
