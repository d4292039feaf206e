// Package project wraps the core Indexer with a file-level cache (§4.8):
// SemanticIndex results are keyed by (file path, content hash) and kept
// warm in an LRU so repeated indexing of an unchanged file never re-parses
// it. This is the layer the CLI and the MCP server are thin consumers of.
package project

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/archlane/semindex/pkg/indexer"
	"github.com/archlane/semindex/pkg/lang"
	"github.com/archlane/semindex/pkg/parser"
	"github.com/archlane/semindex/pkg/parser/queries"
	"github.com/archlane/semindex/pkg/symbolid"
	"github.com/archlane/semindex/pkg/workpool"
)

// ErrFileNotIndexed is returned (wrapped) by Get when filePath does not
// exist on disk, so there is nothing to index.
var ErrFileNotIndexed = errors.New("project: file not indexed")

// cacheKey is the LRU key: a file is only a hit if both its path and its
// current content hash match a previously cached entry.
type cacheKey struct {
	path string
	hash uint64
}

// Config configures an Index's cache size and parallelism.
type Config struct {
	// CacheSize bounds the number of SemanticIndex entries the LRU holds.
	// Default: 1000.
	CacheSize int

	// PoolSize is the number of workers IndexAll uses. <= 0 uses
	// util.GetOptimalPoolSize() via workpool.New.
	PoolSize int
}

// DefaultConfig returns the default Index configuration.
func DefaultConfig() Config {
	return Config{CacheSize: 1000}
}

// entry is what the LRU actually stores: the path a key was cached under,
// so an eviction callback can log it without re-deriving it from the key.
type entry struct {
	path string
	si   *indexer.SemanticIndex
}

// Index is the project-wide, file-level cache over SemanticIndex results.
type Index struct {
	ix       *indexer.Indexer
	cache    *lru.Cache[cacheKey, *entry]
	byPath   map[string]cacheKey // last-known cache key per path, for Invalidate
	poolSize int
	logger   *slog.Logger
}

// New builds an Index backed by pm/qm, with cfg's cache size and pool size.
func New(pm *parser.ParserManager, qm *queries.QueryManager, cfg Config, logger *slog.Logger) (*Index, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultConfig().CacheSize
	}

	idx := &Index{
		ix:       indexer.New(pm, qm),
		byPath:   make(map[string]cacheKey),
		poolSize: cfg.PoolSize,
		logger:   logger,
	}

	cache, err := lru.NewWithEvict(cfg.CacheSize, func(key cacheKey, _ *entry) {
		logger.Debug("project index evicting", "path", key.path, "hash", key.hash)
	})
	if err != nil {
		return nil, fmt.Errorf("project: create cache: %w", err)
	}
	idx.cache = cache

	return idx, nil
}

// Get returns the SemanticIndex for filePath, reading and indexing it on a
// cache miss. Two calls with no change to the file's content between them
// return the identical *SemanticIndex (D1): the content hash is unchanged,
// so the LRU key is unchanged, so the second call is a pure cache hit.
func (idx *Index) Get(filePath string) (*indexer.SemanticIndex, error) {
	source, err := os.ReadFile(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("project: %s: %w", filePath, ErrFileNotIndexed)
	}
	if err != nil {
		return nil, fmt.Errorf("project: read %s: %w", filePath, err)
	}

	key := cacheKey{path: filePath, hash: contentHash(source)}
	if e, ok := idx.cache.Get(key); ok {
		return e.si, nil
	}

	language := lang.DetectLanguage(filePath)
	si, err := idx.ix.IndexFile(indexer.ParsedFile{
		FilePath: filePath,
		Source:   source,
		Language: language,
	}, lang.IsTSXFile(filePath))
	if err != nil {
		return nil, err
	}

	idx.cache.Add(key, &entry{path: filePath, si: si})
	idx.byPath[filePath] = key
	return si, nil
}

// Invalidate drops every cached entry for filePath regardless of content
// hash (D2: the next Get re-parses even if the bytes are unchanged). Used
// when a file is deleted or a watcher cannot cheaply tell whether content
// actually changed.
func (idx *Index) Invalidate(filePath string) {
	for _, key := range idx.cache.Keys() {
		if key.path == filePath {
			idx.cache.Remove(key)
		}
	}
	delete(idx.byPath, filePath)
}

// IndexAll indexes every path in filePaths concurrently over a workpool.Pool,
// returning one SemanticIndex per successfully indexed path (keyed by path)
// and the errors from any paths that failed, in no particular order. Each
// job is an independent Get call, so cache hits and misses interleave
// freely across the pool's workers.
func (idx *Index) IndexAll(filePaths []string) (map[string]*indexer.SemanticIndex, []error) {
	results := make(map[string]*indexer.SemanticIndex, len(filePaths))
	var errs []error

	type outcome struct {
		path string
		si   *indexer.SemanticIndex
		err  error
	}
	outcomes := make([]outcome, len(filePaths))

	pool := workpool.New(idx.poolSize)
	jobs := make([]workpool.Job, len(filePaths))
	for i, p := range filePaths {
		i, p := i, p
		jobs[i] = func(ctx context.Context) error {
			si, err := idx.Get(p)
			outcomes[i] = outcome{path: p, si: si, err: err}
			return err
		}
	}

	_ = pool.Run(context.Background(), jobs)

	for _, o := range outcomes {
		if o.err != nil {
			errs = append(errs, fmt.Errorf("project: %s: %w", o.path, o.err))
			continue
		}
		results[o.path] = o.si
	}

	return results, errs
}

// CachedFiles returns every SemanticIndex currently resident in the LRU, in
// no particular order. Used by find_symbol, which searches across whatever
// happens to be warm rather than re-reading the whole project from disk.
func (idx *Index) CachedFiles() []*indexer.SemanticIndex {
	keys := idx.cache.Keys()
	out := make([]*indexer.SemanticIndex, 0, len(keys))
	for _, k := range keys {
		if e, ok := idx.cache.Peek(k); ok {
			out = append(out, e.si)
		}
	}
	return out
}

// FindSymbol searches every cached file's SymbolsByName index for name,
// returning every matching SymbolID across the whole warm cache.
func (idx *Index) FindSymbol(name string) []symbolid.ID {
	var out []symbolid.ID
	for _, si := range idx.CachedFiles() {
		out = append(out, si.SymbolsByName[name]...)
	}
	return out
}

// Stats reports the Index's current cache occupancy.
type Stats struct {
	CachedFiles int
}

// Stats returns the Index's current cache statistics.
func (idx *Index) Stats() Stats {
	return Stats{CachedFiles: idx.cache.Len()}
}

// contentHash computes the FNV-1a hash of a file's bytes — the cache key's
// change-detection component (§4's "Ambient: SemanticIndex cache key").
func contentHash(content []byte) uint64 {
	h := fnv.New64a()
	h.Write(content)
	return h.Sum64()
}
