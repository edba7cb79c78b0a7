// Package orient selects how the Y-shaped core gate sits inside the ring.
//
// An [Orientation] binds the core's output and its two inputs to ring
// positions. The canonical table holds the six rotations of the upright
// core (output o, inputs o+2 and o+3). [Resolve] looks a request up in that
// table:
//
//   - [Strict] requires the request to match a row exactly (output and the
//     unordered input pair). Order-sensitive kinds use it.
//   - [BestEffort] never fails. Every output position has a fallback
//     orientation and a short list of input pairs that select an alternate
//     one, so that the routed paths never cross.
//
// Both modes are table lookups; nothing is searched at call time.
package orient

import (
	"fmt"

	"github.com/matzehuels/supertile/pkg/errors"
	"github.com/matzehuels/supertile/pkg/ring"
)

// Mode selects how strictly a request must match the orientation table.
type Mode uint8

const (
	Strict Mode = iota
	BestEffort
)

func (m Mode) String() string {
	if m == BestEffort {
		return "best-effort"
	}
	return "strict"
}

// ParseMode converts a catalog string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "strict":
		return Strict, nil
	case "best-effort", "besteffort", "best_effort":
		return BestEffort, nil
	}
	return Strict, errors.New(errors.ErrCodeInvalidFormat, "unknown orientation mode %q", s)
}

// Orientation places the core's ports on the ring. In1 < In2 always holds
// for table entries.
type Orientation struct {
	Output ring.Position
	In1    ring.Position
	In2    ring.Position
}

// Inputs returns both input positions in order.
func (o Orientation) Inputs() [2]ring.Position { return [2]ring.Position{o.In1, o.In2} }

// Matches reports whether o has the given output and unordered input pair.
func (o Orientation) Matches(inputs [2]ring.Position, output ring.Position) bool {
	if o.Output != output {
		return false
	}
	return (o.In1 == inputs[0] && o.In2 == inputs[1]) || (o.In1 == inputs[1] && o.In2 == inputs[0])
}

// Rotate turns the orientation n slots clockwise.
func (o Orientation) Rotate(n int) Orientation {
	return sorted(o.Output.Step(n), o.In1.Step(n), o.In2.Step(n))
}

// Reflect mirrors the orientation across the axis between slots 5|0 and 2|3.
func (o Orientation) Reflect() Orientation {
	m := func(p ring.Position) ring.Position { return ring.Normalize(ring.Size - 1 - int(p)) }
	return sorted(m(o.Output), m(o.In1), m(o.In2))
}

func (o Orientation) String() string {
	return fmt.Sprintf("out %d, in %d/%d", o.Output, o.In1, o.In2)
}

func sorted(out, a, b ring.Position) Orientation {
	if b < a {
		a, b = b, a
	}
	return Orientation{Output: out, In1: a, In2: b}
}

// upright is the core with its output at south-west and inputs at
// north-east and north-west.
var upright = Orientation{Output: 3, In1: 0, In2: 5}

// Table lists the six orientations, indexed by output position.
var Table = func() [ring.Size]Orientation {
	var t [ring.Size]Orientation
	for k := 0; k < ring.Size; k++ {
		o := upright.Rotate(k)
		t[o.Output] = o
	}
	return t
}()

// The four orientations best-effort resolution chooses between.
var (
	orientA = upright           // out 3, in 0/5
	orientB = upright.Reflect() // out 2, in 0/5
	orientD = upright.Rotate(3) // out 0, in 2/3
	orientC = orientD.Reflect() // out 5, in 2/3
)

type pairKey [2]ring.Position

func key(a, b ring.Position) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a, b}
}

// choice is the best-effort rule for one requested output position.
type choice struct {
	fallback  Orientation
	alternate Orientation
	pairs     map[pairKey]bool
}

// bestEffort is indexed by the requested output. Pairs not listed resolve to
// the fallback, including the ambiguous ones where either orientation works
// ({0,2} for output 1, {3,5} for output 4).
var bestEffort = [ring.Size]choice{
	0: {fallback: orientD, alternate: orientB, pairs: pairs(key(4, 5))},
	1: {fallback: orientB, alternate: orientD, pairs: pairs(key(2, 4), key(3, 4), key(2, 3), key(2, 5), key(3, 5))},
	2: {fallback: orientB, alternate: orientD, pairs: pairs(key(3, 4))},
	3: {fallback: orientA, alternate: orientC, pairs: pairs(key(1, 2))},
	4: {fallback: orientA, alternate: orientC, pairs: pairs(key(1, 2), key(1, 3), key(0, 2), key(0, 3), key(2, 3))},
	5: {fallback: orientC, alternate: orientA, pairs: pairs(key(0, 1))},
}

func pairs(keys ...pairKey) map[pairKey]bool {
	m := make(map[pairKey]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}

// Resolve picks the core orientation for a 2-in/1-out request.
func Resolve(inputs [2]ring.Position, output ring.Position, mode Mode) (Orientation, error) {
	if !output.Valid() || !inputs[0].Valid() || !inputs[1].Valid() {
		return Orientation{}, errors.New(errors.ErrCodeInvalidRequest, "positions must be in 0-%d", ring.Size-1)
	}

	switch mode {
	case Strict:
		if o := Table[output]; o.Matches(inputs, output) {
			return o, nil
		}
		return Orientation{}, errors.New(errors.ErrCodeNoValidOrientation,
			"no core orientation connects inputs %d/%d to output %d", inputs[0], inputs[1], output)
	case BestEffort:
		c := bestEffort[output]
		if c.pairs[key(inputs[0], inputs[1])] {
			return c.alternate, nil
		}
		return c.fallback, nil
	}
	return Orientation{}, errors.New(errors.ErrCodeInternal, "unknown orientation mode %d", mode)
}
