// Package render turns computed supertiles into text, JSON and images.
//
// # Overview
//
// The engine in package supertile produces plain values; this package
// presents them:
//
//   - [Reduced]: one comma separated line, "CORE_3, w0, ..., w5"
//   - [Picture] and [GateRows]: the hexagon diagram and its gate table
//   - [Paths]: the hexagon with every routed signal traced by glyph
//   - [Explanation]: the slot and connection naming reference
//   - [LookupTable]: every request of a kind, in the direction naming used
//     by downstream placement tools
//
// Graph images live in the [nodelink] subpackage, which renders a supertile
// through Graphviz:
//
//	dot := nodelink.ToDOT(st, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [nodelink]: github.com/matzehuels/supertile/pkg/render/nodelink
package render
