// Package ring models the six peripheral slots of a hexagonal supertile.
//
// Positions run clockwise from 0 (north-east) to 5 (north-west); all
// arithmetic is modulo [Size]. Each slot owns three sub-ports:
//
//	core     faces the central logic gate
//	ring     faces the next clockwise slot (segment i -> i+1 belongs to slot i)
//	outward  faces the outside of the supertile
//
// A [Ring] is a plain value. It is created per layout computation, written
// by the router and read by the tile aggregator, so nothing here is shared
// between goroutines.
//
//	  5    0
//	4  Core  1
//	  3    2
package ring

import (
	"fmt"
	"strings"

	"github.com/matzehuels/supertile/pkg/errors"
)

// Size is the number of slots on the ring.
const Size = 6

// Position identifies a ring slot, 0..5 clockwise.
type Position int

// Normalize maps any integer onto the ring, handling negative values.
func Normalize(k int) Position {
	k %= Size
	if k < 0 {
		k += Size
	}
	return Position(k)
}

// Valid reports whether p is a ring position.
func (p Position) Valid() bool { return p >= 0 && p < Size }

// Step moves n slots clockwise (n may be negative).
func (p Position) Step(n int) Position { return Normalize(int(p) + n) }

// Clockwise returns the next slot clockwise.
func (p Position) Clockwise() Position { return p.Step(1) }

// CounterClockwise returns the previous slot.
func (p Position) CounterClockwise() Position { return p.Step(-1) }

// Opposite returns the diametrically opposite slot.
func (p Position) Opposite() Position { return p.Step(Size / 2) }

// Walk steps one slot in direction d.
func (p Position) Walk(d Direction) Position {
	if d == CounterClockwise {
		return p.CounterClockwise()
	}
	return p.Clockwise()
}

var compass = [Size]string{"NE", "E", "SE", "SW", "W", "NW"}

// Compass returns the short compass name of the slot ("NE", "E", ...).
func (p Position) Compass() string {
	if !p.Valid() {
		return "?"
	}
	return compass[p]
}

var compassLong = [Size]string{"NORTH_EAST", "EAST", "SOUTH_EAST", "SOUTH_WEST", "WEST", "NORTH_WEST"}

// Direction returns the upper snake case direction name used in lookup
// table exports, e.g. "NORTH_EAST".
func (p Position) Direction() string {
	if !p.Valid() {
		return "UNKNOWN"
	}
	return compassLong[p]
}

func (p Position) String() string { return fmt.Sprintf("%d", int(p)) }

// Distance is the clockwise step count from one slot to another, 0..5.
func Distance(from, to Position) int {
	return int(Normalize(int(to) - int(from)))
}

// Direction is a traversal sense around the ring.
type Direction uint8

const (
	Clockwise Direction = iota
	CounterClockwise
)

func (d Direction) String() string {
	if d == CounterClockwise {
		return "counter-clockwise"
	}
	return "clockwise"
}

// Signal tags a sub-port with the path crossing it.
type Signal uint8

const (
	Unassigned Signal = iota
	Input1
	Input2
	Output1
)

func (s Signal) String() string {
	switch s {
	case Input1:
		return "input1"
	case Input2:
		return "input2"
	case Output1:
		return "output1"
	default:
		return "unassigned"
	}
}

// Glyph is the single character used by path diagrams: I, i, O or 0 for none.
func (s Signal) Glyph() (rune, bool) {
	switch s {
	case Input1:
		return 'I', true
	case Input2:
		return 'i', true
	case Output1:
		return 'O', true
	}
	return 0, false
}

// SubPort indexes the three sub-ports of a slot.
type SubPort uint8

const (
	SubCore SubPort = iota
	SubRing
	SubOutward
)

func (s SubPort) String() string {
	switch s {
	case SubCore:
		return "core"
	case SubRing:
		return "ring"
	case SubOutward:
		return "outward"
	}
	return "unknown"
}

// Slot holds the signal on each of a slot's sub-ports.
type Slot [3]Signal

// Empty reports whether no sub-port of the slot is marked.
func (s Slot) Empty() bool {
	return s[SubCore] == Unassigned && s[SubRing] == Unassigned && s[SubOutward] == Unassigned
}

// Ring is the marking state of all six slots. The zero value is an
// unmarked ring.
type Ring [Size]Slot

// At returns the signal on one sub-port.
func (r *Ring) At(p Position, sp SubPort) Signal {
	return r[p][sp]
}

// Mark writes sig onto a sub-port. Marking a sub-port already carrying a
// different signal fails with IMPOSSIBLE_ROUTING; re-marking with the same
// signal is a no-op.
func (r *Ring) Mark(p Position, sp SubPort, sig Signal) error {
	if !p.Valid() {
		return errors.New(errors.ErrCodeInvalidRequest, "position %d out of range", int(p))
	}
	cur := r[p][sp]
	if cur != Unassigned && cur != sig {
		return errors.New(errors.ErrCodeImpossibleRouting,
			"slot %d %s port already carries %s, cannot route %s", int(p), sp, cur, sig)
	}
	r[p][sp] = sig
	return nil
}

// Marked counts the marked sub-ports across the ring.
func (r *Ring) Marked() int {
	n := 0
	for _, s := range r {
		for _, sig := range s {
			if sig != Unassigned {
				n++
			}
		}
	}
	return n
}

// String renders the markings as "0:[core ring outward] ..." for debugging.
func (r *Ring) String() string {
	var b strings.Builder
	for i, s := range r {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d:[", i)
		for j, sig := range s {
			if j > 0 {
				b.WriteByte(' ')
			}
			if g, ok := sig.Glyph(); ok {
				b.WriteRune(g)
			} else {
				b.WriteByte('-')
			}
		}
		b.WriteByte(']')
	}
	return b.String()
}
