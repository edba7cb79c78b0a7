package wire_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/supertile/pkg/errors"
	"github.com/matzehuels/supertile/pkg/ring"
	"github.com/matzehuels/supertile/pkg/tile"
	"github.com/matzehuels/supertile/pkg/wire"
)

func TestCodebookSize(t *testing.T) {
	simple, compound := 0, 0
	for _, c := range wire.All() {
		require.True(t, c.Known(), c)
		switch {
		case c.Simple():
			simple++
		case c.Compound():
			compound++
		default:
			assert.Equal(t, wire.Empty, c)
		}
	}
	assert.Equal(t, 15, simple)
	assert.Equal(t, 12, compound)
}

func TestGlobalLocal(t *testing.T) {
	assert.Equal(t, ring.Position(1), wire.Global(0, tile.Outward))
	assert.Equal(t, ring.Position(3), wire.Global(0, tile.Core))
	assert.Equal(t, ring.Position(0), wire.Global(5, tile.Outward))
	assert.Equal(t, ring.Position(2), wire.Global(4, tile.RingIn))

	for s := ring.Position(0); s < ring.Size; s++ {
		for p := tile.Outward; p <= tile.RingIn; p++ {
			got, ok := wire.Local(s, wire.Global(s, p))
			require.True(t, ok)
			assert.Equal(t, p, got)
		}
		// Each slot misses exactly two identifiers: its own and the previous one.
		_, ok := wire.Local(s, s)
		assert.False(t, ok)
		_, ok = wire.Local(s, s.CounterClockwise())
		assert.False(t, ok)
	}
}

func TestClassifyEmpty(t *testing.T) {
	for s := ring.Position(0); s < ring.Size; s++ {
		got, err := wire.Classify(s, nil)
		require.NoError(t, err)
		assert.Equal(t, wire.Empty, got.Code)
		assert.Empty(t, got.In)
		assert.Empty(t, got.Out)
	}
}

func TestClassifySinglePairIsAlwaysSimple(t *testing.T) {
	ports := []tile.Port{tile.Outward, tile.RingOut, tile.Core, tile.RingIn}
	for s := ring.Position(0); s < ring.Size; s++ {
		for _, a := range ports {
			for _, b := range ports {
				if a == b {
					continue
				}
				got, err := wire.Classify(s, []tile.Pair{{a, b}})
				require.NoError(t, err)
				assert.True(t, got.Code.Simple(), "slot %d %v-%v gave %s", s, a, b, got.Code)
				assert.Equal(t, []ring.Position{wire.Global(s, a)}, got.In)
				assert.Equal(t, []ring.Position{wire.Global(s, b)}, got.Out)
			}
		}
	}
}

func TestClassifyScenarioSlots(t *testing.T) {
	tests := []struct {
		slot    ring.Position
		pairs   []tile.Pair
		want    wire.Code
		in, out []ring.Position
	}{
		{0, []tile.Pair{{tile.Core, tile.Outward}}, "wire13", []ring.Position{3}, []ring.Position{1}},
		{3, []tile.Pair{{tile.Core, tile.Outward}}, "wire04", []ring.Position{0}, []ring.Position{4}},
		{5, []tile.Pair{{tile.Core, tile.Outward}}, "wire02", []ring.Position{2}, []ring.Position{0}},
		{1, []tile.Pair{{tile.RingIn, tile.RingOut}}, "wire35", []ring.Position{5}, []ring.Position{3}},
		{0, []tile.Pair{{tile.RingIn, tile.Outward}, {tile.Core, tile.RingOut}}, "wire14_23", []ring.Position{4, 3}, []ring.Position{1, 2}},
		{0, []tile.Pair{{tile.RingIn, tile.Core}, {tile.RingOut, tile.Outward}}, "wire12_34", []ring.Position{4, 2}, []ring.Position{3, 1}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("slot%d_%s", tt.slot, tt.want), func(t *testing.T) {
			got, err := wire.Classify(tt.slot, tt.pairs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Code)
			assert.Equal(t, tt.in, got.In)
			assert.Equal(t, tt.out, got.Out)
		})
	}
}

func TestClassifyCrossingWiresUnsupported(t *testing.T) {
	// In every slot the pairing {outward, core} + {ring-out, ring-in} crosses.
	for s := ring.Position(0); s < ring.Size; s++ {
		_, err := wire.Classify(s, []tile.Pair{{tile.Core, tile.Outward}, {tile.RingIn, tile.RingOut}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeUnsupportedWire), "slot %d: %v", s, err)
	}
}

func TestClassifyTooManyPairs(t *testing.T) {
	pairs := []tile.Pair{{tile.Core, tile.Outward}, {tile.RingIn, tile.RingOut}, {tile.Core, tile.RingIn}}
	_, err := wire.Classify(0, pairs)
	assert.True(t, errors.Is(err, errors.ErrCodeImpossibleRouting))
}

// Round trip every code: its links are placed in a slot that can host them,
// classified, and must come back as the same code with the same identifiers.
//
// The compound tiles are whitelisted but not all have been built physically;
// this only checks the naming is self-consistent, not that they can be made.
func TestRoundTrip(t *testing.T) {
	for _, code := range wire.All() {
		if code == wire.Empty {
			continue
		}
		t.Run(string(code), func(t *testing.T) {
			links := code.Links()
			slot, pairs, ok := host(links)
			require.True(t, ok, "no slot can host %s", code)

			got, err := wire.Classify(slot, pairs)
			require.NoError(t, err)
			assert.Equal(t, code, got.Code)

			for i, l := range links {
				assert.Equal(t, l, wire.NewLink(got.In[i], got.Out[i]))
			}

			again, err := wire.Lookup(got.In, got.Out)
			require.NoError(t, err)
			assert.Equal(t, code, again)
		})
	}
}

// host finds a slot whose four ports cover every identifier in links.
func host(links []wire.Link) (ring.Position, []tile.Pair, bool) {
	for s := ring.Position(0); s < ring.Size; s++ {
		pairs := make([]tile.Pair, 0, len(links))
		ok := true
		for _, l := range links {
			a, okA := wire.Local(s, l[0])
			b, okB := wire.Local(s, l[1])
			if !okA || !okB {
				ok = false
				break
			}
			pairs = append(pairs, tile.Pair{a, b})
		}
		if ok {
			return s, pairs, true
		}
	}
	return 0, nil, false
}

func TestLookup(t *testing.T) {
	c, err := wire.Lookup(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, wire.Empty, c)

	c, err = wire.Lookup([]ring.Position{4}, []ring.Position{0})
	require.NoError(t, err)
	assert.Equal(t, wire.Code("wire04"), c)

	c, err = wire.Lookup([]ring.Position{3, 5}, []ring.Position{2, 4})
	require.NoError(t, err)
	assert.Equal(t, wire.Code("wire23_45"), c)

	_, err = wire.Lookup([]ring.Position{1, 2}, []ring.Position{3, 4})
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupportedWire))

	_, err = wire.Lookup([]ring.Position{1}, []ring.Position{1})
	assert.Error(t, err)
}

func TestExternal(t *testing.T) {
	tests := map[wire.Code]string{
		wire.Empty:  "",
		"wire01":    "NORTH_EAST_EAST_WIRE",
		"wire14":    "EAST_WEST_WIRE",
		"wire35":    "SOUTH_WEST_NORTH_WEST_WIRE",
		"wire14_23": "EAST_WEST_AND_SOUTH_EAST_SOUTH_WEST_WIRE",
		"wire34_05": "SOUTH_WEST_WEST_AND_NORTH_EAST_NORTH_WEST_WIRE",
		"wire25_01": "SOUTH_EAST_NORTH_WEST_AND_NORTH_EAST_EAST_WIRE",
	}
	for code, want := range tests {
		assert.Equal(t, want, wire.External(code), code)
	}
}

func TestIsWire(t *testing.T) {
	assert.True(t, wire.IsWire("wire04"))
	assert.True(t, wire.IsWire("WIRE"))
	assert.False(t, wire.IsWire("OR"))
}

func ExampleClassify() {
	// Slot 0 passes a signal from the core straight out of the supertile.
	t, err := wire.Classify(0, []tile.Pair{{tile.Core, tile.Outward}})
	if err != nil {
		panic(err)
	}
	fmt.Println(t.Code, t.In, t.Out)
	// Output: wire13 [3] [1]
}
