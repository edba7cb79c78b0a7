package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/supertile/pkg/render"
	"github.com/matzehuels/supertile/pkg/ring"
	"github.com/matzehuels/supertile/pkg/supertile"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Paths colours edges by the signal routed through them. It needs a
	// supertile computed with [supertile.WithPaths].
	Paths bool

	// Detailed adds gate port lists to node labels.
	Detailed bool
}

const (
	slotRadius    = 2.0
	outwardRadius = 3.4
	idleColor     = "grey70"
)

var signalColors = map[ring.Signal]string{
	ring.Input1:  "#1f77b4",
	ring.Input2:  "#2ca02c",
	ring.Output1: "#d62728",
}

// angle of a slot's centre in degrees, slot 0 at north-east going clockwise.
func angle(p ring.Position) float64 { return 60 - 60*float64(p) }

func pos(p ring.Position, radius float64) string {
	rad := angle(p) * math.Pi / 180
	return fmt.Sprintf("%.3f,%.3f!", radius*math.Cos(rad), radius*math.Sin(rad))
}

func slotID(p ring.Position) string    { return "slot" + strconv.Itoa(int(p)) }
func outwardID(p ring.Position) string { return "out" + strconv.Itoa(int(p)) }

// ToDOT converts a supertile to Graphviz DOT. Node positions are pinned, so
// the result must be laid out with neato, which the graph selects itself.
func ToDOT(st *supertile.Supertile, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=hexagon, style=filled, fillcolor=white, fontsize=14, width=1.2, height=1.05, fixedsize=true];\n")
	buf.WriteString("  edge [penwidth=2];\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  core [label=%q, pos=\"0,0!\", fillcolor=\"#fff3c4\"];\n", coreLabel(st, opts.Detailed))
	for p := ring.Position(0); p < ring.Size; p++ {
		fmt.Fprintf(&buf, "  %s [label=%q, pos=%q];\n", slotID(p), slotLabel(st, p, opts.Detailed), pos(p, slotRadius))
		fmt.Fprintf(&buf, "  %s [shape=point, width=0.08, label=\"\", pos=%q];\n", outwardID(p), pos(p, outwardRadius))
	}

	buf.WriteString("\n")
	var marks *ring.Ring
	if opts.Paths {
		marks = st.Paths
	}
	for p := ring.Position(0); p < ring.Size; p++ {
		writeEdge(&buf, "core", slotID(p), marks, p, ring.SubCore)
		writeEdge(&buf, slotID(p), slotID(p.Clockwise()), marks, p, ring.SubRing)
		writeEdge(&buf, slotID(p), outwardID(p), marks, p, ring.SubOutward)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeEdge(buf *bytes.Buffer, from, to string, marks *ring.Ring, p ring.Position, sp ring.SubPort) {
	color, style := idleColor, "dashed"
	if marks != nil {
		if c, ok := signalColors[marks.At(p, sp)]; ok {
			color, style = c, "solid"
		}
	}
	fmt.Fprintf(buf, "  %s -- %s [color=%q, style=%s];\n", from, to, color, style)
}

func coreLabel(st *supertile.Supertile, detailed bool) string {
	label := render.CoreName(st)
	if detailed {
		label += gatePorts(st.Core)
	}
	return label
}

func slotLabel(st *supertile.Supertile, p ring.Position, detailed bool) string {
	g := st.Wires[p]
	label := fmt.Sprintf("(%d)\n%s", p, g.Name)
	if detailed && len(g.Inputs) > 0 {
		label += gatePorts(g)
	}
	return label
}

func gatePorts(g supertile.Gate) string {
	return fmt.Sprintf("\nin: %s\nout: %s", render.Positions(g.Inputs), render.Positions(g.Outputs))
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := renderFormat(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// Format names an image format accepted by [Render].
type Format string

const (
	FormatDOT Format = "dot"
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat reads a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatDOT, FormatSVG, FormatPNG:
		return f, nil
	}
	return "", fmt.Errorf("unknown image format %q (want dot, svg or png)", s)
}

// Render produces the supertile diagram in the given format.
func Render(ctx context.Context, st *supertile.Supertile, format Format, opts Options) ([]byte, error) {
	dot := ToDOT(st, opts)
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return RenderSVG(ctx, dot)
	case FormatPNG:
		return RenderPNG(ctx, dot)
	}
	return nil, fmt.Errorf("unknown image format %q", format)
}
