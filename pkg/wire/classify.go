// Package wire names the tile each ring slot needs.
//
// Every slot sees four of the six global port identifiers: local port p of
// slot s is global identifier (p + s + 1) mod 6. A slot's port pairs are
// translated to global identifiers and looked up in a fixed codebook of 15
// simple wires and 12 whitelisted compound wires. Anything else is reported
// as UNSUPPORTED_WIRE instead of being approximated.
package wire

import (
	"fmt"

	"github.com/matzehuels/supertile/pkg/errors"
	"github.com/matzehuels/supertile/pkg/ring"
	"github.com/matzehuels/supertile/pkg/tile"
)

// Global converts a slot-local port into its global identifier.
func Global(slot ring.Position, p tile.Port) ring.Position {
	return ring.Normalize(int(p) + int(slot) + 1)
}

// Local converts a global identifier back into the local port of slot. ok is
// false when the slot has no port with that identifier.
func Local(slot ring.Position, g ring.Position) (tile.Port, bool) {
	p := ring.Distance(slot.Clockwise(), g)
	if p > int(tile.RingIn) {
		return 0, false
	}
	return tile.Port(p), true
}

// Tile is a classified slot. In[i] and Out[i] are the two ends of wire i,
// expressed as global identifiers.
type Tile struct {
	Code Code
	In   []ring.Position
	Out  []ring.Position
}

// Classify names the tile for slot given its port pairs from
// [tile.Aggregate]. The first port of each pair becomes the wire's input.
func Classify(slot ring.Position, pairs []tile.Pair) (Tile, error) {
	if len(pairs) > 2 {
		return Tile{}, errors.New(errors.ErrCodeImpossibleRouting, "slot %d needs %d wires", int(slot), len(pairs))
	}
	t := Tile{
		In:  make([]ring.Position, 0, len(pairs)),
		Out: make([]ring.Position, 0, len(pairs)),
	}
	for _, p := range pairs {
		t.In = append(t.In, Global(slot, p[0]))
		t.Out = append(t.Out, Global(slot, p[1]))
	}
	code, err := Lookup(t.In, t.Out)
	if err != nil {
		return Tile{}, fmt.Errorf("slot %d: %w", int(slot), err)
	}
	t.Code = code
	return t, nil
}
