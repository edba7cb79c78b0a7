// Package pkg provides the libraries behind supertile, a layout tool for
// hexagonal logic supertiles.
//
// # Overview
//
// A supertile is one core gate surrounded by six ring slots. Signals enter
// and leave through the sides of the ring; supertile decides how the core is
// turned, which slots each signal crosses and which wire tile every slot
// needs. The pkg directory is organized into three areas:
//
//  1. Engine - pure layout computation ([ring], [orient], [route], [tile],
//     [wire], [supertile])
//  2. Presentation - text, lookup tables and graph images ([render],
//     [render/nodelink])
//  3. Infrastructure - kinds, caching, orchestration and HTTP ([catalog],
//     [cache], [pipeline], [server], [observability], [errors], [buildinfo])
//
// # Architecture
//
// The data flow for one request:
//
//	kind + input/output positions
//	         ↓
//	    [catalog] (resolve the kind's procedure)
//	         ↓
//	    [orient] (turn the core)
//	         ↓
//	    [route] (walk each signal around the ring)
//	         ↓
//	    [tile] + [wire] (collect ports, name the wire tile)
//	         ↓
//	    [render] (text, JSON table, DOT/SVG/PNG)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/supertile/pkg/catalog"
//	    "github.com/matzehuels/supertile/pkg/render"
//	    "github.com/matzehuels/supertile/pkg/ring"
//	    "github.com/matzehuels/supertile/pkg/supertile"
//	)
//
//	st, err := supertile.ComputeLayout(catalog.Default(), "OR",
//	    []ring.Position{0, 5}, []ring.Position{3})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(render.Reduced(st)) // OR_3, wire13, empty, empty, wire04, empty, wire02
//
// Every failure is an [errors.Error] carrying one of the layout codes
// (INVALID_REQUEST, NO_VALID_ORIENTATION, IMPOSSIBLE_ROUTING,
// UNSUPPORTED_WIRE), so callers can branch on [errors.GetCode].
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test -short ./pkg/...   # Skip Graphviz rendering
//	go test -run Example       # Examples only
//
// [ring]: https://pkg.go.dev/github.com/matzehuels/supertile/pkg/ring
// [orient]: https://pkg.go.dev/github.com/matzehuels/supertile/pkg/orient
// [route]: https://pkg.go.dev/github.com/matzehuels/supertile/pkg/route
// [tile]: https://pkg.go.dev/github.com/matzehuels/supertile/pkg/tile
// [wire]: https://pkg.go.dev/github.com/matzehuels/supertile/pkg/wire
// [supertile]: https://pkg.go.dev/github.com/matzehuels/supertile/pkg/supertile
// [render]: https://pkg.go.dev/github.com/matzehuels/supertile/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/supertile/pkg/render/nodelink
// [catalog]: https://pkg.go.dev/github.com/matzehuels/supertile/pkg/catalog
// [cache]: https://pkg.go.dev/github.com/matzehuels/supertile/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/supertile/pkg/pipeline
// [server]: https://pkg.go.dev/github.com/matzehuels/supertile/pkg/server
// [observability]: https://pkg.go.dev/github.com/matzehuels/supertile/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/supertile/pkg/errors
// [errors.Error]: https://pkg.go.dev/github.com/matzehuels/supertile/pkg/errors#Error
// [errors.GetCode]: https://pkg.go.dev/github.com/matzehuels/supertile/pkg/errors#GetCode
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/supertile/pkg/buildinfo
package pkg
