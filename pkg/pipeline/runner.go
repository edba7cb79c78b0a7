package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/supertile/pkg/cache"
	"github.com/matzehuels/supertile/pkg/errors"
	"github.com/matzehuels/supertile/pkg/observability"
	"github.com/matzehuels/supertile/pkg/render"
	"github.com/matzehuels/supertile/pkg/render/nodelink"
	"github.com/matzehuels/supertile/pkg/supertile"
)

// Runner executes requests against a catalog with caching.
//
// The Runner holds no per-request state, so one Runner can serve many
// goroutines.
type Runner struct {
	Catalog supertile.Catalog
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses the default keyer and a nil logger uses the default logger.
func NewRunner(cat supertile.Catalog, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Catalog: cat,
		Cache:   c,
		Keyer:   keyer,
		Logger:  logger,
	}
}

// Layout computes one request.
func (r *Runner) Layout(ctx context.Context, req supertile.Request, opts LayoutOptions) (*LayoutResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var stOpts []supertile.Option
	if opts.Paths {
		stOpts = append(stOpts, supertile.WithPaths())
	}

	key := req.Key()
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, req.Kind, key)
	start := time.Now()
	st, err := req.Compute(r.Catalog, stOpts...)
	elapsed := time.Since(start)
	hooks.OnLayoutComplete(ctx, req.Kind, key, elapsed, err)

	if err != nil {
		r.Logger.Debug("layout failed", "kind", req.Kind, "key", key, "code", errors.GetCode(err))
		return nil, err
	}
	if st.Paths != nil {
		r.Logger.Debug("computed layout", "kind", req.Kind, "key", key, "duration", elapsed, "marked", st.Paths.Marked())
	} else {
		r.Logger.Debug("computed layout", "kind", req.Kind, "key", key, "duration", elapsed)
	}
	return &LayoutResult{Request: req, Supertile: st, Duration: elapsed}, nil
}

type cachedTable struct {
	Kind    string               `json:"kind"`
	Name    string               `json:"name"`
	Entries []render.LookupEntry `json:"entries"`
}

// Table computes every request of a kind. Requests without a layout are
// recorded in the table; any other error aborts it.
func (r *Runner) Table(ctx context.Context, kindName string, opts TableOptions) (*TableResult, error) {
	opts.SetDefaults()
	kind, ok := r.Catalog.Lookup(kindName)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "unknown core kind %q", kindName)
	}

	cacheKey := r.Keyer.TableKey(kind.Name, cache.TableKeyOpts{Procedure: kind.Procedure.String()})
	if !opts.Refresh {
		if t, ok := r.cachedTable(ctx, cacheKey); ok {
			r.Logger.Debug("lookup table from cache", "kind", kind.Name)
			return &TableResult{Table: t, CacheHit: true}, nil
		}
	}

	reqs := supertile.Enumerate(kind)
	hooks := observability.Pipeline()
	hooks.OnTableStart(ctx, kind.Name, len(reqs))
	start := time.Now()

	table, err := computeTable(ctx, kind, reqs, opts.Workers)
	elapsed := time.Since(start)
	failures := 0
	if table != nil {
		failures = table.Failures()
	}
	hooks.OnTableComplete(ctx, kind.Name, failures, elapsed, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("computed lookup table",
		"kind", kind.Name,
		"requests", len(reqs),
		"failures", failures,
		"duration", elapsed)

	if data, err := json.Marshal(cachedTable{Kind: table.Kind, Name: table.Name, Entries: table.Entries}); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLTable); err == nil {
			observability.Cache().OnCacheSet(ctx, "table", len(data))
		}
	}
	return &TableResult{Table: table, Duration: elapsed}, nil
}

func (r *Runner) cachedTable(ctx context.Context, key string) (*render.LookupTable, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, "table")
		return nil, false
	}
	var c cachedTable
	if err := json.Unmarshal(data, &c); err != nil {
		observability.Cache().OnCacheMiss(ctx, "table")
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, "table")
	return &render.LookupTable{Kind: c.Kind, Name: c.Name, Entries: c.Entries}, true
}

func computeTable(ctx context.Context, kind supertile.Kind, reqs []supertile.Request, workers int) (*render.LookupTable, error) {
	entries := make([]render.LookupEntry, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			st, err := supertile.Compute(kind, req.Inputs, req.Outputs)
			e, err := render.NewEntry(req, st, err)
			if err != nil {
				return err
			}
			entries[i] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &render.LookupTable{Kind: kind.Name, Name: render.TableName(kind), Entries: entries}, nil
}

// Render draws a layout. The second result reports a cache hit.
func (r *Runner) Render(ctx context.Context, st *supertile.Supertile, opts RenderOptions) ([]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInvalidInput, err, "render options")
	}
	if opts.Paths && st.Paths == nil {
		return nil, false, errors.New(errors.ErrCodeInvalidInput, "path rendering needs a layout computed with paths")
	}

	layoutHash, err := hashLayout(st, opts.Paths)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "hash layout")
	}
	cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts())
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	format := string(opts.Format)
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()
	data, err := nodelink.Render(ctx, st, opts.Format, opts.NodelinkOptions())
	elapsed := time.Since(start)
	hooks.OnRenderComplete(ctx, format, elapsed, err)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}
	r.Logger.Debug("rendered layout", "format", format, "bytes", len(data), "duration", elapsed)

	if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return data, false, nil
}

func hashLayout(st *supertile.Supertile, paths bool) (string, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return "", err
	}
	if paths {
		data = append(data, st.Paths.String()...)
	}
	return cache.Hash(data), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
