package rank

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var animals = []string{
	"Dog cat bird.",
	"Sheep dog cat.",
	"Horse cow fish.",
	"Horse cat lizard.",
	"Lizard dragon bird.",
}

func TestRunPageRank(t *testing.T) {
	r, err := NewRanker()
	require.NoError(t, err)

	res, err := r.Run(units(animals...))
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Less(t, res.Iterations, 20)
	assert.Equal(t, 5, res.Len())
	assert.InDelta(t, 1.0, res.Sum(), 1e-6)

	best, ok := res.Max()
	require.True(t, ok)
	assert.Equal(t, "Horse cat lizard.", best.Unit.Text)

	score, ok := res.Score(NewUnit("Horse cat lizard.", 3, ""))
	require.True(t, ok)
	assert.Equal(t, best.Score, score)

	for _, s := range res.Ranked {
		assert.GreaterOrEqual(t, s.Score, 0.0)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	r, err := NewRanker()
	require.NoError(t, err)

	first, err := r.Run(units(animals...))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := r.Run(units(animals...))
		require.NoError(t, err)
		assert.Equal(t, first.Iterations, again.Iterations)
		for j := range first.Ranked {
			assert.Equal(t, first.Ranked[j].Score, again.Ranked[j].Score)
		}
	}
}

func TestIsolatedNodeGetsBaseline(t *testing.T) {
	r, err := NewRanker(WithIsolated(true))
	require.NoError(t, err)

	res, err := r.Run(units(append(animals[:len(animals):len(animals)], "Zebra yak owl.")...))
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Equal(t, 6, res.Len())

	score, ok := res.Score(NewUnit("Zebra yak owl.", 5, ""))
	require.True(t, ok)
	assert.InDelta(t, (1-DefaultDamping)/6, score, 1e-12)
}

func TestRunWithoutConvergence(t *testing.T) {
	r, err := NewRanker(WithMaxIterations(1))
	require.NoError(t, err)

	res, err := r.Run(units(animals...))
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, 5, res.Len())
}

func TestRunEmptyGraph(t *testing.T) {
	r, err := NewRanker()
	require.NoError(t, err)

	tests := []struct {
		name  string
		units []Unit
	}{
		{name: "no units", units: nil},
		{name: "single unit", units: units("Dog cat bird.")},
		{name: "nothing in common", units: units("Dog cat bird.", "Horse cow fish.")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Run(tt.units)
			assert.True(t, errors.Is(err, ErrEmptyGraph))
		})
	}
}

func TestSolveEmptyGraph(t *testing.T) {
	_, err := DefaultSolver().Solve(NewGraph())
	assert.ErrorIs(t, err, ErrEmptyGraph)
}

func TestNewRankerValidatesOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{name: "damping zero", opt: WithDamping(0)},
		{name: "damping one", opt: WithDamping(1)},
		{name: "negative tolerance", opt: WithTolerance(-1)},
		{name: "zero iterations", opt: WithMaxIterations(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRanker(tt.opt)
			assert.ErrorIs(t, err, ErrInvalidOption)
		})
	}

	r, err := NewRanker(WithDamping(0.5), WithTolerance(1e-6), WithMaxIterations(10))
	require.NoError(t, err)
	assert.Equal(t, Solver{Damping: 0.5, Tolerance: 1e-6, MaxIterations: 10}, r.Solver())
}

func TestFilterTop(t *testing.T) {
	r, err := NewRanker()
	require.NoError(t, err)
	res, err := r.Run(units(animals...))
	require.NoError(t, err)

	top := FilterTop(res, 0.75)
	require.Len(t, top, 2)
	assert.Equal(t, "Horse cat lizard.", top[0].Unit.Text)
	assert.Equal(t, "Dog cat bird.", top[1].Unit.Text)

	assert.Len(t, FilterTop(res, 0), 5)
	assert.Len(t, FilterTop(res, 1), 1, "percentile is clamped to the last index")
	assert.Len(t, FilterTop(res, -3), 5)

	for _, p := range []float64{0.2, 0.4, 0.6, 0.8} {
		got := FilterTop(res, p)
		assert.Less(t, len(got), res.Len(), "percentile %v", p)
	}
}

func TestFilterTopKeepsTies(t *testing.T) {
	r, err := NewRanker()
	require.NoError(t, err)
	res, err := r.Run(units("alpha beta", "alpha gamma"))
	require.NoError(t, err)
	require.Equal(t, 2, res.Len())

	assert.Len(t, FilterTop(res, 0.75), 2)
}

func TestFilterTopEmpty(t *testing.T) {
	assert.Nil(t, FilterTop(nil, 0.5))
	assert.Nil(t, FilterTop(&Result{}, 0.5))
}
