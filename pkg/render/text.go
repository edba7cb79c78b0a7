package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/supertile/pkg/ring"
	"github.com/matzehuels/supertile/pkg/supertile"
	"github.com/matzehuels/supertile/pkg/wire"
)

// CoreName is the core's name with its output position appended ("OR_3").
// Wire cores keep their plain code since the code already fixes both ends.
func CoreName(st *supertile.Supertile) string {
	name := st.Core.Name
	if wire.IsWire(name) || len(st.Core.Outputs) != 1 {
		return name
	}
	return name + "_" + strconv.Itoa(int(st.Core.Outputs[0]))
}

// Reduced renders the layout as "core, w0, w1, w2, w3, w4, w5".
func Reduced(st *supertile.Supertile) string {
	parts := make([]string, 0, 1+ring.Size)
	parts = append(parts, CoreName(st))
	for _, g := range st.Wires {
		parts = append(parts, g.Name)
	}
	return strings.Join(parts, ", ")
}

// Positions renders positions as space separated digits.
func Positions(ps []ring.Position) string {
	s := make([]string, len(ps))
	for i, p := range ps {
		s[i] = strconv.Itoa(int(p))
	}
	return strings.Join(s, " ")
}

// GateHeaders are the column titles of [GateRows].
var GateHeaders = []string{"Position", "Name", "Inputs", "Outputs"}

// GateRows lists the core and all six wire gates as table rows.
func GateRows(st *supertile.Supertile) [][]string {
	rows := make([][]string, 0, 1+ring.Size)
	rows = append(rows, []string{"(Core)", st.Core.Name, Positions(st.Core.Inputs), Positions(st.Core.Outputs)})
	for i, g := range st.Wires {
		rows = append(rows, []string{fmt.Sprintf("(%d)", i), g.Name, Positions(g.Inputs), Positions(g.Outputs)})
	}
	return rows
}

const picture = `         ˍ---¯¯¯---ˍ ˍ---¯¯¯---ˍ
        |           |           |
        |    (5)    |    (0)    |
        |           |           |
   ˍ---¯ ¯---ˍ ˍ---¯ ¯---ˍ ˍ---¯ ¯---ˍ
  |           |           |           |
  |    (4)    |   (Core)  |    (1)    |
  |           |           |           |
   ¯---ˍ ˍ---¯ ¯---ˍ ˍ---¯ ¯---ˍ ˍ---¯
        |           |           |
        |    (3)    |    (2)    |
        |           |           |
         ¯---ˍˍˍ---¯ ¯---ˍˍˍ---¯
`

// Picture is the plain hexagon diagram naming the seven slots.
func Picture() string { return picture }

// Layout renders the hexagon next to a plain gate table, one gate per line.
func Layout(st *supertile.Supertile) string {
	rows := GateRows(st)
	table := make([]string, 0, len(rows)+3)
	table = append(table, "", fmt.Sprintf("  %-10s| %-10s| %-10s| %-10s", GateHeaders[0], GateHeaders[1], GateHeaders[2], GateHeaders[3]))
	table = append(table, "  "+strings.Repeat("-", 10)+"|"+strings.Repeat("-", 11)+"|"+strings.Repeat("-", 11)+"|"+strings.Repeat("-", 11))
	for _, r := range rows {
		table = append(table, fmt.Sprintf("  %-10s| %-10s| %-10s| %-10s", r[0], r[1], r[2], r[3]))
	}
	return sideBySide(strings.Split(strings.TrimRight(picture, "\n"), "\n"), table, 40)
}

func sideBySide(left, right []string, width int) string {
	var b strings.Builder
	n := max(len(left), len(right))
	for i := 0; i < n; i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		b.WriteString(l)
		if r != "" {
			if pad := width - len([]rune(l)); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			b.WriteString(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

const explanation = `Supertile layout:

         ˍ---¯¯¯-A-ˍ ˍ---¯¯¯---ˍ                  A
        |           |           |                /
        |    (5)    B    (0)    A             (5) -- B -- (0) -- A
        |           |           |            /   \       /   \
   ˍ-A-¯ ¯-B-ˍ ˍ-C-¯ ¯-C-ˍ ˍ-B-¯ ¯---ˍ      A     B     C     C     B
  |           |           |           |      \   /       \   /       \
  |    (4)    C   (Core)  C    (1)    |       (4) -- C --(Core)- C -- (1)
  |           |           |           |          \       /   \       /   \
   ¯---ˍ ˍ-B-¯ ¯-C-ˍ ˍ-C-¯ ¯-B-ˍ ˍ-A-¯            B     C     C     B     A
        |           |           |                  \   /       \   /
        A    (3)    B    (2)    |              A -- (3) -- B -- (2)
        |           |           |                              /
         ¯---ˍˍˍ---¯ ¯-A-ˍˍˍ---¯                              A

Slots are numbered clockwise from north-east (0) to north-west (5).

Connections:
  A  leaves the supertile (outward port)
  B  joins two neighbouring slots (ring port)
  C  joins a slot to the core (core port)

Wire tiles are named after the global port identifiers they bridge:
wire03 connects identifiers 0 and 3, wire14_23 carries two wires.
`

// Explanation describes the slot numbering and connection classes.
func Explanation() string { return explanation }
