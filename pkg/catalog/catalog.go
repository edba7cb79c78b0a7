// Package catalog maps core kind names to layout procedures.
//
// A catalog is a TOML document with one [[kind]] table per core kind:
//
//	[[kind]]
//	name = "XOR"
//	procedure = "best-effort"
//	description = "XOR gate, inputs are interchangeable"
//
// The built-in catalog ships inside the binary. [Load] layers a user file on
// top of it; a user entry with an existing name replaces the built-in one.
package catalog

import (
	_ "embed"
	stderrors "errors"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/supertile/pkg/errors"
	"github.com/matzehuels/supertile/pkg/supertile"
)

//go:embed default.toml
var defaultTOML []byte

type file struct {
	Kinds []entry `toml:"kind"`
}

type entry struct {
	Name        string `toml:"name"`
	Procedure   string `toml:"procedure"`
	Description string `toml:"description"`
}

// Catalog is a set of core kinds keyed by upper-case name. It is safe for
// concurrent lookups once built.
type Catalog struct {
	kinds map[string]supertile.Kind
}

var _ supertile.Catalog = (*Catalog)(nil)

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{kinds: make(map[string]supertile.Kind)}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultTOML)
	if err != nil {
		panic("catalog: built-in catalog is invalid: " + err.Error())
	}
	return c
}

// Parse reads a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse catalog")
	}
	c := New()
	for _, e := range f.Kinds {
		p, err := supertile.ParseProcedure(e.Procedure)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "kind %q", e.Name)
		}
		if err := c.Add(supertile.Kind{Name: e.Name, Procedure: p, Description: e.Description}); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Load returns the built-in catalog extended by the file at path. An empty
// path returns the built-in catalog alone.
func Load(path string) (*Catalog, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "catalog %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read catalog %s", path)
	}
	user, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "catalog %s", path)
	}
	c.Merge(user)
	return c, nil
}

// Add registers a kind, replacing any kind with the same name.
func (c *Catalog) Add(k supertile.Kind) error {
	if err := errors.ValidateKindName(k.Name); err != nil {
		return err
	}
	k.Name = strings.ToUpper(k.Name)
	c.kinds[k.Name] = k
	return nil
}

// Merge copies every kind of other into c, replacing kinds with equal names.
func (c *Catalog) Merge(other *Catalog) {
	for name, k := range other.kinds {
		c.kinds[name] = k
	}
}

// Lookup finds a kind by name, ignoring case.
func (c *Catalog) Lookup(name string) (supertile.Kind, bool) {
	k, ok := c.kinds[strings.ToUpper(strings.TrimSpace(name))]
	return k, ok
}

// Kinds lists all kinds, two-input kinds first, then by name.
func (c *Catalog) Kinds() []supertile.Kind {
	out := make([]supertile.Kind, 0, len(c.kinds))
	for _, k := range c.kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		ai, _ := out[i].Procedure.Arity()
		aj, _ := out[j].Procedure.Arity()
		if ai != aj {
			return ai > aj
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Names lists kind names in [Catalog.Kinds] order.
func (c *Catalog) Names() []string {
	kinds := c.Kinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.Name
	}
	return out
}

// Len is the number of kinds.
func (c *Catalog) Len() int { return len(c.kinds) }
