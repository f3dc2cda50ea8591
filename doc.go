// Package tvrank provides an in-memory, sharded index over the IMDb dataset dumps.
//
// A Service is built once from two decompressed dumps, title.basics.tsv and
// title.ratings.tsv, and is immutable afterwards. Titles can be looked up by
// name and start year, by keywords, by genre and by identifier; ratings are
// attached to every result.
//
// # Quick Start
//
//	cacheDir, _ := os.UserCacheDir()
//	src, _ := blobstore.NewHTTPStore(blobstore.DefaultDatasetURL)
//
//	st, _ := storage.Open(ctx, storage.Config{
//		CacheDir: filepath.Join(cacheDir, "tvrank"),
//		Source:   src,
//	})
//	defer st.Close()
//
//	svc, _ := tvrank.Open(ctx, st, tvrank.WithLogLevel(slog.LevelInfo))
//	defer svc.Close()
//
//	year := uint16(1999)
//	results, _ := svc.ByTitle(ctx, imdb.Movies, "The Matrix", &year)
//
// # Loading
//
// The title dump is split into lines behind one shared cursor. Each of the
// configured workers repeatedly claims a batch of lines (200,000 by default)
// and parses it into its own private shard. Any malformed line or duplicate
// identifier aborts the whole load; no partially built Service is returned.
//
// Identifiers are only checked for uniqueness within one shard. Two rows with
// the same identifier that end up in different shards are both kept.
//
// # Querying
//
// Every query runs on all shards in parallel and the per-shard results are
// concatenated in shard order. Within a shard, results follow dump order.
// Queries never lock: shards are read-only once loading has finished.
package tvrank
