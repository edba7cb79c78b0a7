// Package nodelink renders a supertile as a Graphviz node-link diagram.
//
// # Overview
//
// The core sits in the middle with the six ring slots pinned around it in
// hexagon order, slot 0 to the north-east. Each slot node is labelled with
// its wire tile. Edges follow the sub-ports: core edges join a slot to the
// core, ring edges join neighbouring slots and outward edges leave the
// supertile.
//
// # Usage
//
//	st, _ := supertile.ComputeLayout(cat, "OR", []ring.Position{0, 5}, []ring.Position{3}, supertile.WithPaths())
//	dot := nodelink.ToDOT(st, nodelink.Options{Paths: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// With [Options].Paths set and ring markings present, each routed signal is
// drawn in its own colour; unmarked sub-ports stay grey.
//
// # Dependencies
//
// Rendering uses [github.com/goccy/go-graphviz], which embeds Graphviz as
// WebAssembly, so no system binaries are needed for SVG or PNG output.
package nodelink
