package supertile

import (
	"strconv"
	"strings"

	"github.com/matzehuels/supertile/pkg/ring"
)

// Request is one layout request.
type Request struct {
	Kind    string          `json:"kind"`
	Inputs  []ring.Position `json:"inputs"`
	Outputs []ring.Position `json:"outputs"`
}

// Key identifies the request's positions in lookup tables: outputs first,
// then inputs, as digits ("305" for output 3 with inputs 0 and 5).
func (r Request) Key() string {
	var b strings.Builder
	for _, p := range r.Outputs {
		b.WriteString(strconv.Itoa(int(p)))
	}
	for _, p := range r.Inputs {
		b.WriteString(strconv.Itoa(int(p)))
	}
	return b.String()
}

// Compute runs the request against cat.
func (r Request) Compute(cat Catalog, opts ...Option) (*Supertile, error) {
	return ComputeLayout(cat, r.Kind, r.Inputs, r.Outputs, opts...)
}

// Enumerate lists every distinct request for a kind's procedure:
//
//   - two-input kinds: each output with each unordered input pair, inputs
//     ascending (60 requests)
//   - wire-through kinds: each input greater than the output (15 requests)
//   - sinks: each input (6 requests)
func Enumerate(kind Kind) []Request {
	var reqs []Request
	switch kind.Procedure {
	case StrictY, BestEffortY:
		for out := ring.Position(0); out < ring.Size; out++ {
			for in1 := ring.Position(0); in1 < ring.Size; in1++ {
				if in1 == out {
					continue
				}
				for in2 := in1 + 1; in2 < ring.Size; in2++ {
					if in2 == out {
						continue
					}
					reqs = append(reqs, Request{
						Kind:    kind.Name,
						Inputs:  []ring.Position{in1, in2},
						Outputs: []ring.Position{out},
					})
				}
			}
		}
	case WireThrough:
		for out := ring.Position(0); out < ring.Size; out++ {
			for in := out + 1; in < ring.Size; in++ {
				reqs = append(reqs, Request{
					Kind:    kind.Name,
					Inputs:  []ring.Position{in},
					Outputs: []ring.Position{out},
				})
			}
		}
	case Sink:
		for in := ring.Position(0); in < ring.Size; in++ {
			reqs = append(reqs, Request{Kind: kind.Name, Inputs: []ring.Position{in}})
		}
	}
	return reqs
}
