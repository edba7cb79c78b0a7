// Package tile groups the marked ports of one ring slot into wires.
package tile

import (
	"fmt"

	"github.com/matzehuels/supertile/pkg/errors"
	"github.com/matzehuels/supertile/pkg/ring"
)

// Port is a slot-local port number. Numbering runs clockwise around the
// slot starting from the outside of the supertile.
type Port uint8

const (
	Outward Port = 0 // outward sub-port of the slot
	RingOut Port = 1 // ring sub-port of the slot (towards slot+1)
	Core    Port = 2 // core sub-port of the slot
	RingIn  Port = 3 // ring sub-port of slot-1
)

func (p Port) String() string {
	switch p {
	case Outward:
		return "outward"
	case RingOut:
		return "ring-out"
	case Core:
		return "core"
	case RingIn:
		return "ring-in"
	}
	return fmt.Sprintf("port(%d)", uint8(p))
}

// Pair is two ports of a slot bridged by one wire. The first port is the one
// met first in discovery order (ring-in, core, ring-out, outward).
type Pair [2]Port

// discovery is the order ports are inspected in.
var discovery = [4]Port{RingIn, Core, RingOut, Outward}

// signalAt reads the signal behind a local port of slot.
func signalAt(r *ring.Ring, slot ring.Position, p Port) ring.Signal {
	switch p {
	case Outward:
		return r.At(slot, ring.SubOutward)
	case RingOut:
		return r.At(slot, ring.SubRing)
	case Core:
		return r.At(slot, ring.SubCore)
	case RingIn:
		return r.At(slot.CounterClockwise(), ring.SubRing)
	}
	return ring.Unassigned
}

// group is one signal's ports inside a slot.
type group struct {
	sig   ring.Signal
	ports []Port
}

// Aggregate returns the wires slot must carry: zero, one or two port pairs in
// the order their signals were first seen. A signal touching a single port
// (dangling) or more than two ports, or a third signal in the slot
// (overcrowded), fails with IMPOSSIBLE_ROUTING.
func Aggregate(r *ring.Ring, slot ring.Position) ([]Pair, error) {
	if !slot.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "slot %d out of range", int(slot))
	}

	var groups []group
	for _, p := range discovery {
		sig := signalAt(r, slot, p)
		if sig == ring.Unassigned {
			continue
		}
		i := indexOf(groups, sig)
		if i < 0 {
			if len(groups) == 2 {
				return nil, errors.New(errors.ErrCodeImpossibleRouting,
					"overcrowded tile: slot %d carries a third signal %s", int(slot), sig)
			}
			groups = append(groups, group{sig: sig})
			i = len(groups) - 1
		}
		if len(groups[i].ports) == 2 {
			return nil, errors.New(errors.ErrCodeImpossibleRouting,
				"overcrowded tile: %s touches more than two ports of slot %d", sig, int(slot))
		}
		groups[i].ports = append(groups[i].ports, p)
	}

	pairs := make([]Pair, 0, len(groups))
	for _, g := range groups {
		if len(g.ports) != 2 {
			return nil, errors.New(errors.ErrCodeImpossibleRouting,
				"dangling wire: %s touches only the %s port of slot %d", g.sig, g.ports[0], int(slot))
		}
		pairs = append(pairs, Pair{g.ports[0], g.ports[1]})
	}
	return pairs, nil
}

func indexOf(groups []group, sig ring.Signal) int {
	for i, g := range groups {
		if g.sig == sig {
			return i
		}
	}
	return -1
}
