package rank

import (
	"math"
	"sort"
)

// Graph is a weighted undirected graph whose nodes are units keyed by text.
//
// A Graph is not safe for concurrent mutation; every ranking run builds
// its own.
type Graph struct {
	nodes map[string]*node
	order []string
	edges int
}

type node struct {
	unit  Unit
	index int
	adj   map[string]float64
}

// Neighbor is an adjacent node and the weight of the connecting edge.
type Neighbor struct {
	Unit   Unit
	Weight float64
}

// Edge is an undirected edge reported once, From being the earlier node.
type Edge struct {
	From   Unit
	To     Unit
	Weight float64
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*node)}
}

// AddNode registers u without edges. A node with the same text keeps its
// first unit.
func (g *Graph) AddNode(u Unit) {
	g.ensure(u)
}

func (g *Graph) ensure(u Unit) *node {
	if n, ok := g.nodes[u.Key()]; ok {
		return n
	}
	n := &node{unit: u, index: len(g.order), adj: make(map[string]float64)}
	g.nodes[u.Key()] = n
	g.order = append(g.order, u.Key())
	return n
}

// AddEdge inserts or overwrites the undirected edge between from and to.
func (g *Graph) AddEdge(from, to Unit, weight float64) error {
	if from.Key() == to.Key() {
		return &InvalidEdgeError{From: from.Key(), To: to.Key(), Weight: weight, Reason: "self loop"}
	}
	if !(weight > 0) || math.IsInf(weight, 0) {
		return &InvalidEdgeError{From: from.Key(), To: to.Key(), Weight: weight, Reason: "weight must be positive and finite"}
	}

	a := g.ensure(from)
	b := g.ensure(to)
	if _, exists := a.adj[b.unit.Key()]; !exists {
		g.edges++
	}
	a.adj[b.unit.Key()] = weight
	b.adj[a.unit.Key()] = weight
	return nil
}

// EdgeWeight returns the weight between from and to, or 0 when there is
// no such edge or either node is absent.
func (g *Graph) EdgeWeight(from, to Unit) float64 {
	n, ok := g.nodes[from.Key()]
	if !ok {
		return 0
	}
	return n.adj[to.Key()]
}

// Clear removes every node and edge.
func (g *Graph) Clear() {
	g.nodes = make(map[string]*node)
	g.order = nil
	g.edges = 0
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.order)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Has reports whether u is a node of g.
func (g *Graph) Has(u Unit) bool {
	_, ok := g.nodes[u.Key()]
	return ok
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []Unit {
	out := make([]Unit, len(g.order))
	for i, key := range g.order {
		out[i] = g.nodes[key].unit
	}
	return out
}

// Neighbors returns the neighbours of u ordered by node insertion, so the
// order is the same on every call.
func (g *Graph) Neighbors(u Unit) []Neighbor {
	n, ok := g.nodes[u.Key()]
	if !ok {
		return nil
	}
	out := make([]Neighbor, 0, len(n.adj))
	for key, w := range n.adj {
		out = append(out, Neighbor{Unit: g.nodes[key].unit, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		return g.nodes[out[i].Unit.Key()].index < g.nodes[out[j].Unit.Key()].index
	})
	return out
}

// Edges returns every edge once, ordered by (From, To) insertion index.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for _, key := range g.order {
		n := g.nodes[key]
		for _, nb := range g.Neighbors(n.unit) {
			if g.nodes[nb.Unit.Key()].index > n.index {
				out = append(out, Edge{From: n.unit, To: nb.Unit, Weight: nb.Weight})
			}
		}
	}
	return out
}

// adjacency は各ノードの隣接インデックスと重みを挿入順で返す
func (g *Graph) adjacency() ([][]int, [][]float64) {
	idx := make([][]int, len(g.order))
	wts := make([][]float64, len(g.order))
	for i, key := range g.order {
		for _, nb := range g.Neighbors(g.nodes[key].unit) {
			idx[i] = append(idx[i], g.nodes[nb.Unit.Key()].index)
			wts[i] = append(wts[i], nb.Weight)
		}
	}
	return idx, wts
}
