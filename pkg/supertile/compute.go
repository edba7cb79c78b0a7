package supertile

import (
	"github.com/matzehuels/supertile/pkg/errors"
	"github.com/matzehuels/supertile/pkg/orient"
	"github.com/matzehuels/supertile/pkg/ring"
	"github.com/matzehuels/supertile/pkg/route"
	"github.com/matzehuels/supertile/pkg/tile"
	"github.com/matzehuels/supertile/pkg/wire"
)

// ComputeLayout validates a request, resolves coreKind through cat and
// computes the layout.
//
// Positions are checked before the kind is looked up, so overlapping
// positions are reported even for unknown kinds.
func ComputeLayout(cat Catalog, coreKind string, inputs, outputs []ring.Position, opts ...Option) (*Supertile, error) {
	if err := errors.ValidatePositions(inputs, outputs, ring.Size); err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, errors.New(errors.ErrCodeInternal, "no catalog")
	}
	kind, ok := cat.Lookup(coreKind)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "unknown core kind %q", coreKind)
	}
	return Compute(kind, inputs, outputs, opts...)
}

// Compute lays out an already resolved kind.
func Compute(kind Kind, inputs, outputs []ring.Position, opts ...Option) (*Supertile, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := errors.ValidatePositions(inputs, outputs, ring.Size); err != nil {
		return nil, err
	}
	wantIn, wantOut := kind.Procedure.Arity()
	if len(inputs) != wantIn || len(outputs) != wantOut {
		return nil, errors.New(errors.ErrCodeInvalidRequest,
			"core kind %s takes %d inputs and %d outputs, got %d and %d",
			kind.Name, wantIn, wantOut, len(inputs), len(outputs))
	}

	var (
		r    ring.Ring
		core Gate
		err  error
	)
	switch kind.Procedure {
	case StrictY, BestEffortY:
		core, err = placeY(&r, kind, [2]ring.Position{inputs[0], inputs[1]}, outputs[0])
	case WireThrough:
		core, err = placeWire(&r, inputs[0], outputs[0])
	case Sink:
		core, err = placeSink(&r, inputs[0])
	default:
		err = errors.New(errors.ErrCodeInternal, "core kind %s has unknown procedure %d", kind.Name, kind.Procedure)
	}
	if err != nil {
		return nil, err
	}

	st := &Supertile{Kind: kind.Name, Core: core}
	for s := ring.Position(0); s < ring.Size; s++ {
		pairs, err := tile.Aggregate(&r, s)
		if err != nil {
			return nil, err
		}
		t, err := wire.Classify(s, pairs)
		if err != nil {
			return nil, err
		}
		st.Wires[s] = Gate{Name: string(t.Code), Inputs: t.In, Outputs: t.Out}
	}
	if o.keepPaths {
		paths := r
		st.Paths = &paths
	}
	return st, nil
}

// placeY orients a two-input core and routes the output, then both inputs.
func placeY(r *ring.Ring, kind Kind, inputs [2]ring.Position, output ring.Position) (Gate, error) {
	o, err := orient.Resolve(inputs, output, kind.Procedure.Mode())
	if err != nil {
		return Gate{}, err
	}

	out, err := route.Route(r, ring.Output1, o.Output, output, o.Output.Clockwise())
	if err != nil {
		return Gate{}, err
	}

	coreIns, reqIns := route.PairInputs(output, out.Direction, o.Inputs(), inputs)
	if _, err := route.Route(r, ring.Input1, coreIns[0], reqIns[0], coreIns[1]); err != nil {
		return Gate{}, err
	}
	if _, err := route.Route(r, ring.Input2, coreIns[1], reqIns[1], coreIns[0]); err != nil {
		return Gate{}, err
	}

	return Gate{
		Name:    kind.Name,
		Inputs:  []ring.Position{o.In1, o.In2},
		Outputs: []ring.Position{o.Output},
	}, nil
}

// placeWire builds a core that is a plain wire from in to out. Both signals
// enter and leave through their own slot, so no ring segment is used.
func placeWire(r *ring.Ring, in, out ring.Position) (Gate, error) {
	code, err := wire.Lookup([]ring.Position{in}, []ring.Position{out})
	if err != nil {
		return Gate{}, err
	}
	if err := route.Mark(r, ring.Output1, out, out, ring.Clockwise); err != nil {
		return Gate{}, err
	}
	if err := route.Mark(r, ring.Input1, in, in, ring.Clockwise); err != nil {
		return Gate{}, err
	}
	return Gate{Name: string(code), Inputs: []ring.Position{in}, Outputs: []ring.Position{out}}, nil
}

// placeSink builds a core absorbing the signal at in. Its unused output sits
// opposite the input so the core classifies as a straight wire.
func placeSink(r *ring.Ring, in ring.Position) (Gate, error) {
	code, err := wire.Lookup([]ring.Position{in}, []ring.Position{in.Opposite()})
	if err != nil {
		return Gate{}, err
	}
	if err := route.Mark(r, ring.Input1, in, in, ring.Clockwise); err != nil {
		return Gate{}, err
	}
	return Gate{Name: string(code), Inputs: []ring.Position{in}, Outputs: []ring.Position{in.Opposite()}}, nil
}
