package wire

import (
	"fmt"
	"sort"
	"strings"

	"github.com/matzehuels/supertile/pkg/errors"
	"github.com/matzehuels/supertile/pkg/ring"
)

// Code names a wire tile: "empty", a simple wire such as "wire03", or a
// compound wire such as "wire14_23".
type Code string

// Empty is the tile with no wire at all.
const Empty Code = "empty"

// Link is an unordered pair of distinct global port identifiers, stored
// with the smaller identifier first.
type Link [2]ring.Position

// NewLink builds a normalized link.
func NewLink(a, b ring.Position) Link {
	if b < a {
		a, b = b, a
	}
	return Link{a, b}
}

// Code returns the simple wire code for the link.
func (l Link) Code() Code { return Code(fmt.Sprintf("wire%d%d", l[0], l[1])) }

// simple maps each of the 15 links to its code.
var simple = func() map[Link]Code {
	m := make(map[Link]Code, 15)
	for a := ring.Position(0); a < ring.Size; a++ {
		for b := a + 1; b < ring.Size; b++ {
			l := Link{a, b}
			m[l] = l.Code()
		}
	}
	return m
}()

// compoundNames is the whitelist of two-wire tiles. The first six carry a
// straight wire, the last six two bent ones. Their physical tiles have not
// all been built yet.
var compoundNames = []Code{
	"wire14_23", "wire25_34", "wire03_45", "wire14_05", "wire25_01", "wire03_12",
	"wire12_34", "wire23_45", "wire34_05", "wire45_01", "wire05_12", "wire01_23",
}

type codePair [2]Code

func newCodePair(a, b Code) codePair {
	if b < a {
		a, b = b, a
	}
	return codePair{a, b}
}

// splitCompound returns the two simple codes of a compound name, in the
// order the name lists them.
func splitCompound(c Code) (Code, Code) {
	parts := strings.SplitN(strings.TrimPrefix(string(c), "wire"), "_", 2)
	return "wire" + Code(parts[0]), "wire" + Code(parts[1])
}

// compound maps a pair of simple codes to its whitelisted compound code.
var compound = func() map[codePair]Code {
	m := make(map[codePair]Code, len(compoundNames))
	for _, c := range compoundNames {
		m[newCodePair(splitCompound(c))] = c
	}
	return m
}()

// links parses the global identifiers out of every known code.
var links = func() map[Code][]Link {
	m := make(map[Code][]Link, len(simple)+len(compoundNames)+1)
	m[Empty] = nil
	for l, c := range simple {
		m[c] = []Link{l}
	}
	for _, c := range compoundNames {
		a, b := splitCompound(c)
		m[c] = []Link{parseSimple(a), parseSimple(b)}
	}
	return m
}()

func parseSimple(c Code) Link {
	s := strings.TrimPrefix(string(c), "wire")
	return NewLink(ring.Position(s[0]-'0'), ring.Position(s[1]-'0'))
}

// Links returns the global identifier pairs a code bridges, or nil for
// empty and unknown codes.
func (c Code) Links() []Link { return links[c] }

// Known reports whether c is empty, one of the 15 simple codes or one of
// the 12 whitelisted compound codes.
func (c Code) Known() bool {
	_, ok := links[c]
	return ok
}

// Simple reports whether c bridges exactly one pair of ports.
func (c Code) Simple() bool { return len(links[c]) == 1 }

// Compound reports whether c is a whitelisted two-wire tile.
func (c Code) Compound() bool { return len(links[c]) == 2 }

// IsWire reports whether a gate name denotes a pure wire rather than logic.
func IsWire(name string) bool {
	return strings.Contains(name, "wire") || strings.Contains(name, "WIRE")
}

// Combine looks up the compound code for two simple codes.
func Combine(a, b Code) (Code, error) {
	if !a.Simple() || !b.Simple() {
		return "", errors.New(errors.ErrCodeInternal, "cannot combine %s and %s", a, b)
	}
	c, ok := compound[newCodePair(a, b)]
	if !ok {
		return "", errors.New(errors.ErrCodeUnsupportedWire, "wire type not yet implemented: %s + %s", a, b)
	}
	return c, nil
}

// Lookup finds the code bridging in[i] with out[i] for each i. Zero links
// give [Empty], one gives a simple code, two give a compound code.
func Lookup(in, out []ring.Position) (Code, error) {
	if len(in) != len(out) {
		return "", errors.New(errors.ErrCodeInternal, "wire lookup with %d inputs and %d outputs", len(in), len(out))
	}
	codes := make([]Code, len(in))
	for i := range in {
		if !in[i].Valid() || !out[i].Valid() || in[i] == out[i] {
			return "", errors.New(errors.ErrCodeInternal, "no wire connects %d to %d", in[i], out[i])
		}
		codes[i] = simple[NewLink(in[i], out[i])]
	}
	switch len(codes) {
	case 0:
		return Empty, nil
	case 1:
		return codes[0], nil
	case 2:
		return Combine(codes[0], codes[1])
	}
	return "", errors.New(errors.ErrCodeUnsupportedWire, "a tile holds at most two wires, got %d", len(codes))
}

// All returns every known code: empty, the simple codes in order, then the
// compound codes in whitelist order.
func All() []Code {
	out := []Code{Empty}
	simples := make([]Code, 0, len(simple))
	for _, c := range simple {
		simples = append(simples, c)
	}
	sort.Slice(simples, func(i, j int) bool { return simples[i] < simples[j] })
	out = append(out, simples...)
	return append(out, compoundNames...)
}

// External returns the direction based name of a code used by lookup table
// consumers, e.g. "NORTH_EAST_EAST_WIRE" for wire01 and
// "EAST_WEST_AND_SOUTH_EAST_SOUTH_WEST_WIRE" for wire14_23. Empty maps to "".
func External(c Code) string {
	ls := c.Links()
	if len(ls) == 0 {
		return ""
	}
	parts := make([]string, len(ls))
	for i, l := range ls {
		parts[i] = l[0].Direction() + "_" + l[1].Direction()
	}
	return strings.Join(parts, "_AND_") + "_WIRE"
}
