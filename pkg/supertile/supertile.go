package supertile

import (
	"strings"

	"github.com/matzehuels/supertile/pkg/errors"
	"github.com/matzehuels/supertile/pkg/orient"
	"github.com/matzehuels/supertile/pkg/ring"
)

// Gate is a named gate bound to ring positions. For wire gates the
// positions are global port identifiers and In[i] connects to Out[i].
type Gate struct {
	Name    string          `json:"name"`
	Inputs  []ring.Position `json:"inputs"`
	Outputs []ring.Position `json:"outputs"`
}

// Supertile is a finished layout: the core gate and the wire gate of every
// ring slot, indexed by position.
type Supertile struct {
	Kind  string          `json:"kind"`
	Core  Gate            `json:"core"`
	Wires [ring.Size]Gate `json:"wires"`

	// Paths holds the ring markings when requested with [WithPaths].
	Paths *ring.Ring `json:"-"`
}

// Procedure is the routing procedure a core kind uses.
type Procedure uint8

const (
	StrictY Procedure = iota
	BestEffortY
	WireThrough
	Sink
)

var procedureNames = map[Procedure]string{
	StrictY:     "strict",
	BestEffortY: "best-effort",
	WireThrough: "wire",
	Sink:        "sink",
}

func (p Procedure) String() string {
	if s, ok := procedureNames[p]; ok {
		return s
	}
	return "unknown"
}

// ParseProcedure converts a catalog string into a Procedure. Y procedures
// are named by their orientation mode.
func ParseProcedure(s string) (Procedure, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case procedureNames[WireThrough]:
		return WireThrough, nil
	case procedureNames[Sink]:
		return Sink, nil
	}
	m, err := orient.ParseMode(s)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unknown procedure %q (want strict, best-effort, wire or sink)", s)
	}
	if m == orient.BestEffort {
		return BestEffortY, nil
	}
	return StrictY, nil
}

// Arity returns the number of inputs and outputs the procedure routes.
func (p Procedure) Arity() (inputs, outputs int) {
	switch p {
	case StrictY, BestEffortY:
		return 2, 1
	case WireThrough:
		return 1, 1
	case Sink:
		return 1, 0
	}
	return 0, 0
}

// Mode returns the orientation mode of a Y procedure.
func (p Procedure) Mode() orient.Mode {
	if p == BestEffortY {
		return orient.BestEffort
	}
	return orient.Strict
}

// Kind is a named core gate kind.
type Kind struct {
	Name        string
	Procedure   Procedure
	Description string
}

// Catalog resolves core kind names. Lookups are case-insensitive.
type Catalog interface {
	Lookup(name string) (Kind, bool)
}

type options struct {
	keepPaths bool
}

// Option configures a layout computation.
type Option func(*options)

// WithPaths keeps the ring markings in [Supertile.Paths] for path tracing.
func WithPaths() Option {
	return func(o *options) { o.keepPaths = true }
}
