package rank

import (
	"context"
	"math"
	"slices"
	"sort"

	"github.com/go-faster/errors"
)

// Option configures a Ranker.
type Option func(*Ranker) error

// WithDamping sets the PageRank damping factor, in (0, 1).
func WithDamping(d float64) Option {
	return func(r *Ranker) error {
		if !(d > 0 && d < 1) {
			return errors.Wrapf(ErrInvalidOption, "damping %g out of (0, 1)", d)
		}
		r.solver.Damping = d
		return nil
	}
}

// WithTolerance sets the convergence tolerance.
func WithTolerance(t float64) Option {
	return func(r *Ranker) error {
		if !(t > 0) || math.IsInf(t, 0) {
			return errors.Wrapf(ErrInvalidOption, "tolerance %g must be positive", t)
		}
		r.solver.Tolerance = t
		return nil
	}
}

// WithMaxIterations caps the number of solver iterations.
func WithMaxIterations(n int) Option {
	return func(r *Ranker) error {
		if n <= 0 {
			return errors.Wrapf(ErrInvalidOption, "max iterations %d must be positive", n)
		}
		r.solver.MaxIterations = n
		return nil
	}
}

// WithIsolated keeps units that share no word with any other unit as
// nodes without edges. They then score exactly (1-d)/N.
func WithIsolated(keep bool) Option {
	return func(r *Ranker) error {
		r.keepIsolated = keep
		return nil
	}
}

// Ranker builds the similarity graph of a unit sequence and ranks it.
type Ranker struct {
	solver       Solver
	keepIsolated bool
}

// NewRanker returns a ranker using the default solver unless overridden.
func NewRanker(opts ...Option) (*Ranker, error) {
	r := &Ranker{solver: DefaultSolver()}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Solver returns the solver settings in use.
func (r *Ranker) Solver() Solver {
	return r.solver
}

// BuildGraph returns a fresh graph with an edge for every pair of units
// whose similarity is positive. This is O(N²) in the number of units.
// Units built as literals are tokenized with the default tokenizer.
func (r *Ranker) BuildGraph(units []Unit) *Graph {
	units = tokenized(units)
	g := NewGraph()
	for i, a := range units {
		if r.keepIsolated && a.Length() > 0 {
			g.AddNode(a)
		}
		for _, b := range units[i+1:] {
			if a.Key() == b.Key() {
				continue
			}
			if sim := Similarity(a, b); sim > 0 {
				// 類似度 > 0 かつ i != j なので AddEdge は失敗しない
				_ = g.AddEdge(a, b, sim)
			}
		}
	}
	return g
}

// tokenized は語集合を持たない Unit だけを既定のトークナイザで作り直す
func tokenized(units []Unit) []Unit {
	var out []Unit
	for i, u := range units {
		if u.words != nil {
			continue
		}
		if out == nil {
			out = slices.Clone(units)
		}
		out[i] = NewUnit(u.Text, u.OriginalIndex, u.PageID)
	}
	if out == nil {
		return units
	}
	return out
}

// Run builds the graph and solves it.
func (r *Ranker) Run(units []Unit) (*Result, error) {
	return r.RunContext(context.Background(), units)
}

// RunContext is Run with the iteration count recorded on ctx's meter.
func (r *Ranker) RunContext(ctx context.Context, units []Unit) (*Result, error) {
	g := r.BuildGraph(units)
	res, err := r.solver.Solve(g)
	if err != nil {
		return nil, err
	}
	recordRun(ctx, g, res)
	return res, nil
}

// FilterTop discards the bottom percentile of scores and returns the rest,
// highest first. Every unit tied with the cutoff score is kept.
func FilterTop(result *Result, percentile float64) []Scored {
	count := result.Len()
	if count == 0 {
		return nil
	}

	sorted := make([]float64, count)
	for i, s := range result.Ranked {
		sorted[i] = s.Score
	}
	sort.Float64s(sorted)

	idx := int(math.Floor(float64(count) * percentile))
	if idx < 0 {
		idx = 0
	}
	if idx > count-1 {
		idx = count - 1
	}
	cutoff := sorted[idx]

	var out []Scored
	for _, s := range result.Ranked {
		if s.Score >= cutoff {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
