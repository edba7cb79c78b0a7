package render

import (
	"fmt"
	"strings"

	"github.com/matzehuels/supertile/pkg/ring"
)

// pathsTemplate draws the hexagon with one %c per sub-port crossing. The
// crossings are listed in template order by pathsCells.
var pathsTemplate = []string{
	`         ˍ---¯¯¯-%c-ˍ ˍ---¯¯¯---ˍ`,
	`        |           |           |`,
	`        |    (5)    %c    (0)    %c`,
	`        |           |           |`,
	`   ˍ-%c-¯ ¯-%c-ˍ ˍ-%c-¯ ¯-%c-ˍ ˍ-%c-¯ ¯---ˍ`,
	`  |           |           |           |`,
	`  |    (4)    %c   (Core)  %c    (1)    |`,
	`  |           |           |           |`,
	`   ¯---ˍ ˍ-%c-¯ ¯-%c-ˍ ˍ-%c-¯ ¯-%c-ˍ ˍ-%c-¯`,
	`        |           |           |`,
	`        %c    (3)    %c    (2)    |`,
	`        |           |           |`,
	`         ¯---ˍˍˍ---¯ ¯-%c-ˍˍˍ---¯`,
}

type cell struct {
	pos  ring.Position
	port ring.SubPort
	none rune
}

// Horizontal borders show '-' when unmarked, vertical ones '|'.
var pathsCells = []cell{
	{5, ring.SubOutward, '-'},
	{5, ring.SubRing, '|'}, {0, ring.SubOutward, '|'},
	{4, ring.SubOutward, '-'}, {4, ring.SubRing, '-'}, {5, ring.SubCore, '-'}, {0, ring.SubCore, '-'}, {0, ring.SubRing, '-'},
	{4, ring.SubCore, '|'}, {1, ring.SubCore, '|'},
	{3, ring.SubRing, '-'}, {3, ring.SubCore, '-'}, {2, ring.SubCore, '-'}, {1, ring.SubRing, '-'}, {1, ring.SubOutward, '-'},
	{3, ring.SubOutward, '|'}, {2, ring.SubRing, '|'},
	{2, ring.SubOutward, '-'},
}

const pathsLegend = `I  first input
i  second input
O  output
`

// Paths draws the hexagon with every marked sub-port replaced by the glyph
// of the signal crossing it. A nil ring draws the bare hexagon.
func Paths(r *ring.Ring) string {
	args := make([]any, len(pathsCells))
	for i, c := range pathsCells {
		g := c.none
		if r != nil {
			if sg, ok := r.At(c.pos, c.port).Glyph(); ok {
				g = sg
			}
		}
		args[i] = g
	}
	var b strings.Builder
	fmt.Fprintf(&b, strings.Join(pathsTemplate, "\n"), args...)
	b.WriteString("\n\n")
	b.WriteString(pathsLegend)
	return b.String()
}
