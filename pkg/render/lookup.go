package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/supertile/pkg/errors"
	"github.com/matzehuels/supertile/pkg/supertile"
	"github.com/matzehuels/supertile/pkg/wire"
)

// LookupEntry is one request of a lookup table. Exactly one of Tiles and
// Code is set.
type LookupEntry struct {
	Key     string   `json:"key"`
	Tiles   []string `json:"tiles,omitempty"`
	Code    string   `json:"code,omitempty"`
	Message string   `json:"message,omitempty"`
}

// Failed reports whether the request had no layout.
func (e LookupEntry) Failed() bool { return e.Code != "" }

// LookupTable collects the layouts of every request of one kind, named in
// compass directions.
type LookupTable struct {
	Kind    string
	Name    string
	Entries []LookupEntry
}

// TableName is the top-level key of a kind's lookup document, for example
// "2in1outSAMPLE_supertile_layouts".
func TableName(kind supertile.Kind) string {
	in, out := kind.Procedure.Arity()
	return fmt.Sprintf("%din%dout%s_supertile_layouts", in, out, kind.Name)
}

// CoreExternal names a core in the lookup vocabulary: two-input cores by the
// direction of their output, wire cores by their wire name.
func CoreExternal(g supertile.Gate) string {
	if wire.IsWire(g.Name) {
		return wire.External(wire.Code(g.Name))
	}
	if len(g.Outputs) == 1 {
		return g.Outputs[0].Direction()
	}
	return g.Name
}

// LookupRow is the core followed by the six wire tiles, all in external
// names.
func LookupRow(st *supertile.Supertile) []string {
	row := make([]string, 0, 1+len(st.Wires))
	row = append(row, CoreExternal(st.Core))
	for _, g := range st.Wires {
		row = append(row, wire.External(wire.Code(g.Name)))
	}
	return row
}

// NewEntry builds an entry from one computed request. Errors that are not
// layout failures are returned instead of recorded.
func NewEntry(req supertile.Request, st *supertile.Supertile, err error) (LookupEntry, error) {
	e := LookupEntry{Key: req.Key()}
	if err != nil {
		if !errors.IsLayoutFailure(err) {
			return e, err
		}
		e.Code = string(errors.GetCode(err))
		e.Message = errors.UserMessage(err)
		return e, nil
	}
	e.Tiles = LookupRow(st)
	return e, nil
}

// Failures counts the entries without a layout.
func (t *LookupTable) Failures() int {
	n := 0
	for _, e := range t.Entries {
		if e.Failed() {
			n++
		}
	}
	return n
}

type failure struct {
	Key     string `json:"key"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MarshalJSON writes the table as {"<name>": [{"<key>": [...]}, ...],
// "failures": [...]}. Layouts keep the order of Entries, which is request
// enumeration order rather than any hash-indexed slot order.
func (t *LookupTable) MarshalJSON() ([]byte, error) {
	layouts := make([]map[string][]string, 0, len(t.Entries))
	failures := make([]failure, 0)
	for _, e := range t.Entries {
		if e.Failed() {
			failures = append(failures, failure{Key: e.Key, Code: e.Code, Message: e.Message})
			continue
		}
		layouts = append(layouts, map[string][]string{e.Key: e.Tiles})
	}
	return json.Marshal(map[string]any{
		t.Name:     layouts,
		"failures": failures,
	})
}

// WriteJSON writes the table as indented JSON.
func (t *LookupTable) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}
