package rank

import (
	"math"
)

const (
	DefaultDamping       = 0.85
	DefaultTolerance     = 1e-4
	DefaultMaxIterations = 100
)

// Solver runs PageRank over a graph snapshot.
type Solver struct {
	Damping       float64
	Tolerance     float64
	MaxIterations int
}

// DefaultSolver returns a solver with damping 0.85, tolerance 1e-4 and
// at most 100 iterations.
func DefaultSolver() Solver {
	return Solver{
		Damping:       DefaultDamping,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Scored is a unit with its PageRank score.
type Scored struct {
	Unit  Unit
	Score float64
}

// Result holds the scores of one run.
type Result struct {
	// Ranked lists every graph node in graph order.
	Ranked     []Scored
	Iterations int
	Converged  bool

	index map[string]int
}

// Score returns the score of u.
func (r *Result) Score(u Unit) (float64, bool) {
	if r == nil {
		return 0, false
	}
	i, ok := r.index[u.Key()]
	if !ok {
		return 0, false
	}
	return r.Ranked[i].Score, true
}

// Len returns the number of scored units.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Ranked)
}

// Max returns the highest scored unit; the earliest node wins ties.
func (r *Result) Max() (Scored, bool) {
	if r.Len() == 0 {
		return Scored{}, false
	}
	best := r.Ranked[0]
	for _, s := range r.Ranked[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	return best, true
}

// Sum returns the total score mass.
func (r *Result) Sum() float64 {
	sum := 0.0
	if r == nil {
		return sum
	}
	for _, s := range r.Ranked {
		sum += s.Score
	}
	return sum
}

// Solve computes PageRank scores for every node of g.
func (s Solver) Solve(g *Graph) (*Result, error) {
	n := g.Len()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	adj, wts := g.adjacency()
	outWeight := make([]float64, n)
	for i := range adj {
		for _, w := range wts[i] {
			outWeight[i] += w
		}
	}

	nf := float64(n)
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1 / nf
	}
	next := make([]float64, n)
	base := (1 - s.Damping) / nf

	iterations := 0
	converged := false
	for iterations < s.MaxIterations {
		iterations++
		maxDelta := 0.0
		for v := 0; v < n; v++ {
			sum := 0.0
			for k, u := range adj[v] {
				// 重みゼロのノードは他へ寄与しない
				if outWeight[u] > 0 {
					sum += scores[u] * wts[v][k] / outWeight[u]
				}
			}
			next[v] = base + s.Damping*sum
			if d := math.Abs(next[v] - scores[v]); d > maxDelta {
				maxDelta = d
			}
		}
		scores, next = next, scores
		if maxDelta < s.Tolerance {
			converged = true
			break
		}
	}

	res := &Result{
		Ranked:     make([]Scored, n),
		Iterations: iterations,
		Converged:  converged,
		index:      make(map[string]int, n),
	}
	for i, u := range g.Nodes() {
		res.Ranked[i] = Scored{Unit: u, Score: scores[i]}
		res.index[u.Key()] = i
	}
	return res, nil
}
