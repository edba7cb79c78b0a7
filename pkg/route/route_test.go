package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/supertile/pkg/errors"
	"github.com/matzehuels/supertile/pkg/ring"
	"github.com/matzehuels/supertile/pkg/route"
)

func TestDirectionIgnoresAnchorUnlessOpposite(t *testing.T) {
	for s := ring.Position(0); s < ring.Size; s++ {
		for e := ring.Position(0); e < ring.Size; e++ {
			d := ring.Distance(s, e)
			if d == 0 || d == 3 {
				continue
			}
			want := ring.CounterClockwise
			if d < 3 {
				want = ring.Clockwise
			}
			for a := ring.Position(0); a < ring.Size; a++ {
				assert.Equal(t, want, route.Direction(s, e, a), "start %d end %d anchor %d", s, e, a)
			}
		}
	}
}

func TestDirectionOppositeSplitsByAnchor(t *testing.T) {
	for s := ring.Position(0); s < ring.Size; s++ {
		e := s.Opposite()
		left := route.Direction(s, e, s.Clockwise())
		right := route.Direction(s, e, s.CounterClockwise())
		require.NotEqual(t, left, right, "start %d", s)
		assert.Equal(t, ring.CounterClockwise, left)

		var r ring.Ring
		require.NoError(t, route.Mark(&r, ring.Input1, s, e, left))
		for _, p := range route.Segments(s, e, right) {
			assert.Equal(t, ring.Unassigned, r.At(p, ring.SubRing), "segment %d shared", p)
		}
	}
}

func TestDirectionZeroLength(t *testing.T) {
	assert.Equal(t, ring.Clockwise, route.Direction(2, 2, 3))
}

func TestSegments(t *testing.T) {
	tests := []struct {
		name       string
		start, end ring.Position
		dir        ring.Direction
		want       []ring.Position
	}{
		{"same slot", 4, 4, ring.Clockwise, nil},
		{"cw one step", 0, 1, ring.Clockwise, []ring.Position{0}},
		{"cw wraps", 5, 1, ring.Clockwise, []ring.Position{5, 0}},
		{"ccw one step", 1, 0, ring.CounterClockwise, []ring.Position{0}},
		{"ccw wraps", 1, 4, ring.CounterClockwise, []ring.Position{0, 5, 4}},
		{"cw half", 0, 3, ring.Clockwise, []ring.Position{0, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, route.Segments(tt.start, tt.end, tt.dir))
		})
	}
}

func TestMark(t *testing.T) {
	var r ring.Ring
	require.NoError(t, route.Mark(&r, ring.Output1, 2, 4, ring.Clockwise))

	assert.Equal(t, ring.Output1, r.At(2, ring.SubCore))
	assert.Equal(t, ring.Output1, r.At(4, ring.SubOutward))
	assert.Equal(t, ring.Output1, r.At(2, ring.SubRing))
	assert.Equal(t, ring.Output1, r.At(3, ring.SubRing))
	assert.Equal(t, ring.Unassigned, r.At(4, ring.SubRing))
	assert.Equal(t, 4, r.Marked())
}

func TestMarkCollision(t *testing.T) {
	var r ring.Ring
	require.NoError(t, route.Mark(&r, ring.Input1, 0, 2, ring.Clockwise))
	err := route.Mark(&r, ring.Input2, 1, 3, ring.Clockwise)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeImpossibleRouting))
}

func TestRoute(t *testing.T) {
	var r ring.Ring
	p, err := route.Route(&r, ring.Input2, 5, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, ring.CounterClockwise, p.Direction)
	assert.Equal(t, []ring.Position{4, 3, 2}, p.Segments())
}

func TestPairInputs(t *testing.T) {
	tests := []struct {
		name      string
		output    ring.Position
		dir       ring.Direction
		core      [2]ring.Position
		requested [2]ring.Position
		wantCore  [2]ring.Position
		wantReq   [2]ring.Position
	}{
		{
			name:   "identity",
			output: 3, dir: ring.Clockwise,
			core: [2]ring.Position{0, 5}, requested: [2]ring.Position{5, 0},
			wantCore: [2]ring.Position{5, 0}, wantReq: [2]ring.Position{5, 0},
		},
		{
			name:   "counter-clockwise walk",
			output: 3, dir: ring.CounterClockwise,
			core: [2]ring.Position{0, 5}, requested: [2]ring.Position{1, 4},
			wantCore: [2]ring.Position{0, 5}, wantReq: [2]ring.Position{1, 4},
		},
		{
			name:   "walk includes start",
			output: 2, dir: ring.Clockwise,
			core: [2]ring.Position{2, 3}, requested: [2]ring.Position{4, 0},
			wantCore: [2]ring.Position{2, 3}, wantReq: [2]ring.Position{4, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, r := route.PairInputs(tt.output, tt.dir, tt.core, tt.requested)
			assert.Equal(t, tt.wantCore, c)
			assert.Equal(t, tt.wantReq, r)
		})
	}
}
