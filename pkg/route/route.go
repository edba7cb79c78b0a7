// Package route threads signals around the ring.
//
// A path starts at the core-facing sub-port of one slot and ends at the
// outward sub-port of another. [Direction] picks the shorter way round; when
// both ways are equally long the position of a second path decides, so that
// two paths never share a ring segment. [Mark] writes the path's signal onto
// every sub-port it crosses.
package route

import (
	"github.com/matzehuels/supertile/pkg/ring"
)

// Direction returns the traversal direction from start to end. anchor is the
// start of another path already placed (or about to be placed) on the ring;
// it only matters when start and end are opposite each other.
//
// A zero-length path (start == end) is reported as clockwise.
func Direction(start, end, anchor ring.Position) ring.Direction {
	d := ring.Distance(start, end)
	switch {
	case d < ring.Size/2:
		return ring.Clockwise
	case d > ring.Size/2:
		return ring.CounterClockwise
	case anchor == start.Clockwise():
		return ring.CounterClockwise
	default:
		return ring.Clockwise
	}
}

// Segments lists the ring sub-ports (by owning slot) a path from start to end
// crosses in direction dir. Clockwise paths cross the segments owned by
// start..end-1; counter-clockwise paths cross those owned by start-1..end.
func Segments(start, end ring.Position, dir ring.Direction) []ring.Position {
	if start == end {
		return nil
	}
	var segs []ring.Position
	if dir == ring.Clockwise {
		for p := start; p != end; p = p.Clockwise() {
			segs = append(segs, p)
		}
		return segs
	}
	p := start
	for {
		p = p.CounterClockwise()
		segs = append(segs, p)
		if p == end {
			return segs
		}
	}
}

// Path is one routed signal.
type Path struct {
	Signal    ring.Signal
	Start     ring.Position
	End       ring.Position
	Direction ring.Direction
}

// Segments lists the ring sub-ports the path crosses.
func (p Path) Segments() []ring.Position { return Segments(p.Start, p.End, p.Direction) }

// Mark writes sig onto the core sub-port of start, the outward sub-port of
// end, and every ring sub-port between them.
func Mark(r *ring.Ring, sig ring.Signal, start, end ring.Position, dir ring.Direction) error {
	if err := r.Mark(start, ring.SubCore, sig); err != nil {
		return err
	}
	if err := r.Mark(end, ring.SubOutward, sig); err != nil {
		return err
	}
	for _, p := range Segments(start, end, dir) {
		if err := r.Mark(p, ring.SubRing, sig); err != nil {
			return err
		}
	}
	return nil
}

// Route chooses a direction and marks the path in one step.
func Route(r *ring.Ring, sig ring.Signal, start, end, anchor ring.Position) (Path, error) {
	p := Path{Signal: sig, Start: start, End: end, Direction: Direction(start, end, anchor)}
	if err := Mark(r, sig, start, end, p.Direction); err != nil {
		return Path{}, err
	}
	return p, nil
}

// PairInputs matches the core's input ports with the requested external
// inputs. Both lists are scanned starting at output and walking in dir; the
// n-th core input met is paired with the n-th requested input met. Walking
// the same way for both sides keeps the two input paths from crossing.
func PairInputs(output ring.Position, dir ring.Direction, core, requested [2]ring.Position) (coreIns, reqIns [2]ring.Position) {
	return walkOrder(output, dir, core), walkOrder(output, dir, requested)
}

func walkOrder(from ring.Position, dir ring.Direction, set [2]ring.Position) [2]ring.Position {
	var out [2]ring.Position
	n := 0
	p := from
	for i := 0; i < ring.Size && n < 2; i++ {
		if p == set[0] || p == set[1] {
			out[n] = p
			n++
		}
		p = p.Walk(dir)
	}
	return out
}
