// Package pipeline runs supertile requests for the CLI and the HTTP server.
//
// A [Runner] wraps the layout engine with the concerns the engine leaves
// out: logging, timing, observability hooks, caching and concurrency. The
// engine stays a pure function; everything with side effects lives here.
//
// # Stages
//
//  1. Layout: compute one request ([Runner.Layout])
//  2. Table: compute every request of a kind ([Runner.Table])
//  3. Render: draw a layout as DOT, SVG or PNG ([Runner.Render])
//
// Tables and images are cached; single layouts are cheap enough to always
// recompute.
//
// # Usage
//
//	runner := pipeline.NewRunner(catalog.Default(), cache, nil, logger)
//	res, err := runner.Layout(ctx, supertile.Request{
//	    Kind:    "OR",
//	    Inputs:  []ring.Position{0, 5},
//	    Outputs: []ring.Position{3},
//	}, pipeline.LayoutOptions{})
package pipeline

import (
	"fmt"
	"runtime"
	"time"

	"github.com/matzehuels/supertile/pkg/cache"
	"github.com/matzehuels/supertile/pkg/render"
	"github.com/matzehuels/supertile/pkg/render/nodelink"
	"github.com/matzehuels/supertile/pkg/supertile"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultFormat is the image format used when none is given.
const DefaultFormat = nodelink.FormatSVG

// DefaultWorkers bounds concurrent layouts while building a table.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// =============================================================================
// Options
// =============================================================================

// LayoutOptions configures [Runner.Layout].
type LayoutOptions struct {
	// Paths keeps the ring markings on the result.
	Paths bool `json:"paths,omitempty"`
}

// TableOptions configures [Runner.Table].
type TableOptions struct {
	// Workers bounds concurrent layouts; zero means DefaultWorkers.
	Workers int `json:"workers,omitempty"`

	// Refresh skips the cached table and recomputes it.
	Refresh bool `json:"refresh,omitempty"`
}

// SetDefaults fills zero fields.
func (o *TableOptions) SetDefaults() {
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
}

// RenderOptions configures [Runner.Render].
type RenderOptions struct {
	Format   nodelink.Format `json:"format,omitempty"`
	Paths    bool            `json:"paths,omitempty"`
	Detailed bool            `json:"detailed,omitempty"`
	Refresh  bool            `json:"refresh,omitempty"`
}

// ValidateAndSetDefaults checks the format and fills zero fields.
func (o *RenderOptions) ValidateAndSetDefaults() error {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	f, err := nodelink.ParseFormat(string(o.Format))
	if err != nil {
		return err
	}
	o.Format = f
	return nil
}

// ArtifactKeyOpts returns cache key options for this render.
func (o RenderOptions) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   string(o.Format),
		Paths:    o.Paths,
		Detailed: o.Detailed,
	}
}

// NodelinkOptions converts to renderer options.
func (o RenderOptions) NodelinkOptions() nodelink.Options {
	return nodelink.Options{Paths: o.Paths, Detailed: o.Detailed}
}

// =============================================================================
// Results
// =============================================================================

// LayoutResult is a computed request.
type LayoutResult struct {
	Request   supertile.Request
	Supertile *supertile.Supertile
	Duration  time.Duration
}

// TableResult is a kind's lookup table.
type TableResult struct {
	Table    *render.LookupTable
	Duration time.Duration
	CacheHit bool
}

// ValidateFormat checks that a format name is known.
func ValidateFormat(format string) error {
	if _, err := nodelink.ParseFormat(format); err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}
	return nil
}
