package potential_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/brushfire"
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/potential"
)

const (
	f = grid.Free
	o = grid.Obstacle
)

func mustGrid(t *testing.T, cells [][]grid.State, conn grid.Connectivity) *grid.OccupancyGrid {
	t.Helper()
	g, err := grid.NewOccupancyGrid(cells, conn)
	require.NoError(t, err)

	return g
}

func mustClearance(t *testing.T, g *grid.OccupancyGrid) *grid.DistanceField {
	t.Helper()
	df, err := brushfire.Compute(g)
	require.NoError(t, err)

	return df
}

func uAt(t *testing.T, fl *potential.Field, r, c int) float64 {
	t.Helper()
	u, err := fl.At(grid.Cell{Row: r, Col: c})
	require.NoError(t, err)

	return u
}

//----------------------------------------------------------------------------//
// Options
//----------------------------------------------------------------------------//

func TestBuild_OptionValidation(t *testing.T) {
	g := mustGrid(t, [][]grid.State{{f, o}}, grid.Conn4)
	clearance := mustClearance(t, g)
	goal := grid.Cell{Row: 0, Col: 0}

	cases := []struct {
		name   string
		mutate func(*potential.Options)
		err    error
	}{
		{"ZeroAttractiveGain", func(o *potential.Options) { o.AttractiveGain = 0 }, potential.ErrNonPositiveGain},
		{"NegativeAttractiveGain", func(o *potential.Options) { o.AttractiveGain = -1 }, potential.ErrNonPositiveGain},
		{"ZeroRepulsiveGain", func(o *potential.Options) { o.RepulsiveGain = 0 }, potential.ErrNonPositiveGain},
		{"ZeroRadius", func(o *potential.Options) { o.InfluenceRadius = 0 }, potential.ErrNonPositiveRadius},
		{"NegativeRadius", func(o *potential.Options) { o.InfluenceRadius = -2 }, potential.ErrNonPositiveRadius},
		{"UnknownMetric", func(o *potential.Options) { o.Metric = potential.Metric(42) }, potential.ErrUnknownMetric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := potential.DefaultOptions()
			tc.mutate(&opts)
			_, err := potential.Build(g, goal, clearance, opts)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestMetric_String(t *testing.T) {
	assert.Equal(t, "Euclidean", potential.Euclidean.String())
	assert.Equal(t, "Manhattan", potential.Manhattan.String())
	assert.Equal(t, "Topological", potential.Topological.String())
	assert.Equal(t, "Metric(42)", potential.Metric(42).String())
}

//----------------------------------------------------------------------------//
// BuildAttractive
//----------------------------------------------------------------------------//

func TestBuildAttractive_Validation(t *testing.T) {
	g := mustGrid(t, [][]grid.State{{f, o}}, grid.Conn4)

	_, err := potential.BuildAttractive(nil, grid.Cell{}, 1, potential.Euclidean)
	assert.ErrorIs(t, err, potential.ErrNilGrid)

	_, err = potential.BuildAttractive(g, grid.Cell{Row: 0, Col: 0}, 0, potential.Euclidean)
	assert.ErrorIs(t, err, potential.ErrNonPositiveGain)

	_, err = potential.BuildAttractive(g, grid.Cell{Row: 0, Col: 1}, 1, potential.Euclidean)
	assert.ErrorIs(t, err, potential.ErrInvalidGoal, "goal on obstacle")

	_, err = potential.BuildAttractive(g, grid.Cell{Row: 3, Col: 0}, 1, potential.Euclidean)
	assert.ErrorIs(t, err, potential.ErrInvalidGoal, "goal out of bounds")
}

// TestBuildAttractive_Metrics pins U_att = 0.5·ξ·d² per metric at hand-
// checked cells. Euclidean and Manhattan ignore the wall; Topological
// routes around it.
func TestBuildAttractive_Metrics(t *testing.T) {
	g := mustGrid(t, [][]grid.State{
		{f, o, f},
		{f, o, f},
		{f, f, f},
	}, grid.Conn4)
	goal := grid.Cell{Row: 0, Col: 0}
	const xi = 2.0

	t.Run("Euclidean", func(t *testing.T) {
		fl, err := potential.BuildAttractive(g, goal, xi, potential.Euclidean)
		require.NoError(t, err)
		assert.Equal(t, 0.0, uAt(t, fl, 0, 0))
		// d((2,2),goal) = sqrt(8) -> 0.5*2*8 = 8
		assert.InDelta(t, 8.0, uAt(t, fl, 2, 2), 1e-12)
		assert.True(t, math.IsInf(uAt(t, fl, 0, 1), 1), "obstacle holds +Inf")
	})

	t.Run("Manhattan", func(t *testing.T) {
		fl, err := potential.BuildAttractive(g, goal, xi, potential.Manhattan)
		require.NoError(t, err)
		// d((2,2),goal) = 4 -> 0.5*2*16 = 16
		assert.Equal(t, 16.0, uAt(t, fl, 2, 2))
		// The wall does not matter to Manhattan: d((0,2),goal) = 2 -> 4
		assert.Equal(t, 4.0, uAt(t, fl, 0, 2))
	})

	t.Run("Topological", func(t *testing.T) {
		fl, err := potential.BuildAttractive(g, goal, xi, potential.Topological)
		require.NoError(t, err)
		// Around the wall: (0,2) is 6 steps from goal -> 0.5*2*36 = 36
		assert.Equal(t, 36.0, uAt(t, fl, 0, 2))
		assert.Equal(t, 0.0, uAt(t, fl, 0, 0))
	})
}

// TestBuildAttractive_TopologicalUnreachable: free cells sealed off from
// the goal hold +Inf — no finite attraction can lead them anywhere.
func TestBuildAttractive_TopologicalUnreachable(t *testing.T) {
	g := mustGrid(t, [][]grid.State{{f, o, f}}, grid.Conn4)

	fl, err := potential.BuildAttractive(g, grid.Cell{Row: 0, Col: 0}, 1, potential.Topological)
	require.NoError(t, err)
	assert.True(t, math.IsInf(uAt(t, fl, 0, 2), 1))
}

//----------------------------------------------------------------------------//
// BuildRepulsive
//----------------------------------------------------------------------------//

func TestBuildRepulsive_Validation(t *testing.T) {
	g := mustGrid(t, [][]grid.State{{f, o}}, grid.Conn4)
	clearance := mustClearance(t, g)

	_, err := potential.BuildRepulsive(nil, clearance, 1, 1)
	assert.ErrorIs(t, err, potential.ErrNilGrid)

	_, err = potential.BuildRepulsive(g, nil, 1, 1)
	assert.ErrorIs(t, err, potential.ErrNilClearance)

	_, err = potential.BuildRepulsive(g, clearance, -1, 1)
	assert.ErrorIs(t, err, potential.ErrNonPositiveGain)

	_, err = potential.BuildRepulsive(g, clearance, 1, 0)
	assert.ErrorIs(t, err, potential.ErrNonPositiveRadius)

	other := mustGrid(t, [][]grid.State{{f}}, grid.Conn4)
	_, err = potential.BuildRepulsive(other, clearance, 1, 1)
	assert.ErrorIs(t, err, potential.ErrFieldMismatch)
}

// TestBuildRepulsive_Formula pins U_rep on a 1×4 corridor with an obstacle
// at one end: clearance 1,2,3 under Conn4, radius Q=2.
func TestBuildRepulsive_Formula(t *testing.T) {
	g := mustGrid(t, [][]grid.State{{o, f, f, f}}, grid.Conn4)
	clearance := mustClearance(t, g)
	const eta, q = 8.0, 2.0

	fl, err := potential.BuildRepulsive(g, clearance, eta, q)
	require.NoError(t, err)

	assert.True(t, math.IsInf(uAt(t, fl, 0, 0), 1), "obstacle is impassable")
	// D=1: 0.5*8*(1/1 - 1/2)^2 = 1
	assert.InDelta(t, 1.0, uAt(t, fl, 0, 1), 1e-12)
	// D=2=Q: influence boundary contributes zero
	assert.Equal(t, 0.0, uAt(t, fl, 0, 2))
	// D=3 > Q: no influence
	assert.Equal(t, 0.0, uAt(t, fl, 0, 3))
}

// TestBuildRepulsive_ObstacleFree: Unreachable clearance means maximal
// clearance, hence zero repulsion everywhere.
func TestBuildRepulsive_ObstacleFree(t *testing.T) {
	g := mustGrid(t, [][]grid.State{{f, f}}, grid.Conn4)
	clearance := mustClearance(t, g)

	fl, err := potential.BuildRepulsive(g, clearance, 100, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, uAt(t, fl, 0, 0))
	assert.Equal(t, 0.0, uAt(t, fl, 0, 1))
}

// TestBuildRepulsive_ZeroClearanceFreeCell: a caller-supplied field that
// reports zero clearance on a free cell marks it impassable rather than
// dividing by zero.
func TestBuildRepulsive_ZeroClearanceFreeCell(t *testing.T) {
	g := mustGrid(t, [][]grid.State{{f, f}}, grid.Conn4)
	// Seed the "clearance" BFS from a free cell so that cell reads 0.
	clearance, err := g.DistanceFrom([]grid.Cell{{Row: 0, Col: 0}}, nil)
	require.NoError(t, err)

	fl, err := potential.BuildRepulsive(g, clearance, 1, 2)
	require.NoError(t, err)
	assert.True(t, math.IsInf(uAt(t, fl, 0, 0), 1))
}

//----------------------------------------------------------------------------//
// Build
//----------------------------------------------------------------------------//

// TestBuild_Superposition: the total field is the elementwise sum of its
// two components.
func TestBuild_Superposition(t *testing.T) {
	g := mustGrid(t, [][]grid.State{
		{o, f, f, f, f},
	}, grid.Conn4)
	clearance := mustClearance(t, g)
	goal := grid.Cell{Row: 0, Col: 4}
	opts := potential.Options{AttractiveGain: 2, RepulsiveGain: 8, InfluenceRadius: 2, Metric: potential.Manhattan}

	total, err := potential.Build(g, goal, clearance, opts)
	require.NoError(t, err)
	att, err := potential.BuildAttractive(g, goal, opts.AttractiveGain, opts.Metric)
	require.NoError(t, err)
	rep, err := potential.BuildRepulsive(g, clearance, opts.RepulsiveGain, opts.InfluenceRadius)
	require.NoError(t, err)

	for c := 0; c < g.Width(); c++ {
		want := uAt(t, att, 0, c) + uAt(t, rep, 0, c)
		got := uAt(t, total, 0, c)
		if math.IsInf(want, 1) {
			assert.True(t, math.IsInf(got, 1), "col %d", c)
		} else {
			assert.Equal(t, want, got, "col %d", c)
		}
	}
}

func TestBuild_Idempotent(t *testing.T) {
	g := mustGrid(t, [][]grid.State{
		{f, f, o, f},
		{f, o, f, f},
		{f, f, f, f},
	}, grid.Conn8)
	clearance := mustClearance(t, g)
	goal := grid.Cell{Row: 2, Col: 3}

	a, err := potential.Build(g, goal, clearance, potential.DefaultOptions())
	require.NoError(t, err)
	b, err := potential.Build(g, goal, clearance, potential.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, a, b, "rebuild must be bit-identical")
}

func TestField_MaxFinite(t *testing.T) {
	g := mustGrid(t, [][]grid.State{{o, f, f}}, grid.Conn4)
	clearance := mustClearance(t, g)

	fl, err := potential.BuildRepulsive(g, clearance, 8, 2)
	require.NoError(t, err)
	// Finite values are {1, 0}; the obstacle's +Inf is ignored.
	assert.Equal(t, 1.0, fl.MaxFinite())
}
