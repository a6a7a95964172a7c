package rank

import (
	"math"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func units(texts ...string) []Unit {
	out := make([]Unit, len(texts))
	for i, text := range texts {
		out[i] = NewUnit(text, i, "")
	}
	return out
}

func TestAddEdgeRejectsInvalidEdges(t *testing.T) {
	a := NewUnit("Dog cat bird.", 0, "")
	b := NewUnit("Sheep dog cat.", 1, "")

	tests := []struct {
		name   string
		from   Unit
		to     Unit
		weight float64
	}{
		{name: "self loop", from: a, to: a, weight: 1},
		{name: "self loop by text", from: a, to: NewUnit("Dog cat bird.", 5, "other"), weight: 1},
		{name: "zero weight", from: a, to: b, weight: 0},
		{name: "negative weight", from: a, to: b, weight: -1},
		{name: "NaN weight", from: a, to: b, weight: math.NaN()},
		{name: "infinite weight", from: a, to: b, weight: math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGraph()
			err := g.AddEdge(tt.from, tt.to, tt.weight)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidEdge))

			edgeErr, ok := errors.Into[*InvalidEdgeError](err)
			require.True(t, ok)
			assert.Equal(t, tt.from.Key(), edgeErr.From)
			assert.Equal(t, 0, g.Len(), "rejected edge must not register nodes")
		})
	}
}

func TestGraphEdges(t *testing.T) {
	u := units("Dog cat bird.", "Sheep dog cat.", "Horse cow fish.")
	g := NewGraph()

	require.NoError(t, g.AddEdge(u[0], u[1], 2))
	assert.Equal(t, 2.0, g.EdgeWeight(u[0], u[1]))
	assert.Equal(t, 2.0, g.EdgeWeight(u[1], u[0]), "edges are undirected")
	assert.Equal(t, 0.0, g.EdgeWeight(u[0], u[2]), "missing node reads as zero")
	assert.Equal(t, 0.0, g.EdgeWeight(u[2], u[0]))

	// 上書き
	require.NoError(t, g.AddEdge(u[1], u[0], 3))
	assert.Equal(t, 3.0, g.EdgeWeight(u[0], u[1]))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, g.Len())

	g.AddNode(u[2])
	assert.Equal(t, 3, g.Len())
	assert.Empty(t, g.Neighbors(u[2]))

	g.Clear()
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 0.0, g.EdgeWeight(u[0], u[1]))
}

func TestNeighborsOrderIsStable(t *testing.T) {
	u := units("a b", "c d", "e f", "g h")
	g := NewGraph()
	require.NoError(t, g.AddEdge(u[0], u[3], 1))
	require.NoError(t, g.AddEdge(u[0], u[1], 2))
	require.NoError(t, g.AddEdge(u[0], u[2], 3))

	for i := 0; i < 5; i++ {
		nbs := g.Neighbors(u[0])
		require.Len(t, nbs, 3)
		assert.Equal(t, u[3].Key(), nbs[0].Unit.Key())
		assert.Equal(t, u[1].Key(), nbs[1].Unit.Key())
		assert.Equal(t, u[2].Key(), nbs[2].Unit.Key())
	}

	edges := g.Edges()
	require.Len(t, edges, 3)
	for _, e := range edges {
		assert.Equal(t, u[0].Key(), e.From.Key())
	}
}

func TestBuildGraph(t *testing.T) {
	r, err := NewRanker()
	require.NoError(t, err)

	g := r.BuildGraph(units("Dog cat bird.", "Sheep dog cat.", "Horse cow fish."))
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 1, g.EdgeCount())

	u := units("Dog cat bird.", "Sheep dog cat peacock.", "Horse cow fish dog chicken.")
	g = r.BuildGraph(u)
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Greater(t, g.EdgeWeight(u[0], u[1]), g.EdgeWeight(u[0], u[2]))

	for _, e := range g.Edges() {
		assert.Greater(t, e.Weight, 0.0)
	}
}

func TestBuildGraphCollapsesDuplicates(t *testing.T) {
	r, err := NewRanker()
	require.NoError(t, err)

	g := r.BuildGraph(units("Dog cat bird.", "Dog cat bird.", "Sheep dog cat."))
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestBuildGraphTokenizesLiteralUnits(t *testing.T) {
	r, err := NewRanker()
	require.NoError(t, err)

	u := []Unit{{Text: "Dog cat bird."}, {Text: "Sheep dog cat.", OriginalIndex: 1}, NewUnit("Horse cat lizard.", 2, "")}
	g := r.BuildGraph(u)
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 3, g.EdgeCount())
	assert.InDelta(t, 2/(2*math.Log10(3)), g.EdgeWeight(u[0], u[1]), 1e-9)
	assert.Zero(t, u[0].Length(), "caller's slice is left as is")

	res, err := r.Run(u)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Len())
}

func TestBuildGraphIsolated(t *testing.T) {
	r, err := NewRanker(WithIsolated(true))
	require.NoError(t, err)

	u := units("Dog cat bird.", "Sheep dog cat.", "Horse cow fish.", "And that is not it.")
	g := r.BuildGraph(u)
	assert.Equal(t, 3, g.Len(), "empty units never become nodes")
	assert.True(t, g.Has(u[2]))
	assert.False(t, g.Has(u[3]))
}
