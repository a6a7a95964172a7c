package textrank

import (
	"context"

	"github.com/yacchi/textrank/internal/rank"
	"github.com/yacchi/textrank/internal/segment"
	"github.com/yacchi/textrank/internal/summary"
)

type (
	// Unit is one sentence or chunk with its normalized word set.
	// Build units with NewUnit or Tokenizer.NewUnit; a Unit literal has an
	// empty word set and never gets an edge.
	Unit = rank.Unit
	// Result holds the PageRank scores of one run.
	Result = rank.Result
	// Scored is a unit with its PageRank score.
	Scored = rank.Scored
	// Tokenizer turns text into normalized word sets.
	Tokenizer = rank.Tokenizer
	// TokenizerOption configures a Tokenizer.
	TokenizerOption = rank.TokenizerOption
	// Ranker builds the similarity graph and runs PageRank over it.
	Ranker = rank.Ranker
	// RankerOption configures a Ranker.
	RankerOption = rank.Option
	// Graph is the undirected weighted similarity graph.
	Graph = rank.Graph
	// Edge is one weighted edge of a Graph.
	Edge = rank.Edge
	// Neighbor is one adjacent node of a Graph node.
	Neighbor = rank.Neighbor
	// InvalidEdgeError describes a rejected Graph.AddEdge call.
	InvalidEdgeError = rank.InvalidEdgeError
	// Options controls one summarization run.
	Options = summary.Options
	// Summary is the result of one summarization run.
	Summary = summary.Summary
	// Sentence is one extracted sentence of a Summary.
	Sentence = summary.Sentence
	// Page is one raw-text document.
	Page = segment.Page
	// ChunkedPage is a document already split into chunks by the caller.
	ChunkedPage = segment.ChunkedPage
)

// Ranking methods.
const (
	MethodTextRank = summary.MethodTextRank
	MethodLexRank  = summary.MethodLexRank
)

var (
	// ErrEmptyGraph is returned when no two sentences share a word.
	ErrEmptyGraph = rank.ErrEmptyGraph
	// ErrInvalidOption is wrapped when an option is out of range.
	ErrInvalidOption = rank.ErrInvalidOption
	// ErrInvalidEdge matches the error Graph.AddEdge returns for a self loop
	// or a weight that is not positive and finite.
	ErrInvalidEdge = rank.ErrInvalidEdge
)

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return summary.DefaultOptions()
}

// Summarize summarizes a single raw-text document.
func Summarize(ctx context.Context, text string, opts Options) (*Summary, error) {
	return summary.Summarize(ctx, text, opts)
}

// SummarizePages summarizes several documents as one corpus.
func SummarizePages(ctx context.Context, pages []Page, opts Options) (*Summary, error) {
	return summary.SummarizePages(ctx, pages, opts)
}

// SummarizeChunks summarizes pages whose units were chunked by the caller.
func SummarizeChunks(ctx context.Context, pages []ChunkedPage, opts Options) (*Summary, error) {
	return summary.SummarizeChunks(ctx, pages, opts)
}

// Text returns at most n sentences of text in document order, joined by a
// space. Text with nothing to rank yields "".
func Text(ctx context.Context, text string, n int) (string, error) {
	return summary.Text(ctx, text, n)
}

// NewUnit builds a unit with the default tokenizer.
func NewUnit(text string, originalIndex int, pageID string) Unit {
	return rank.NewUnit(text, originalIndex, pageID)
}

// Dedup keeps the first unit of each text, preserving order.
func Dedup(units []Unit) []Unit {
	return rank.Dedup(units)
}

// NewTokenizer returns a tokenizer. Without options it drops the default
// English stopwords and does no stemming.
func NewTokenizer(opts ...TokenizerOption) *Tokenizer {
	return rank.NewTokenizer(opts...)
}

// WithStopwords replaces the stopword list.
func WithStopwords(words ...string) TokenizerOption {
	return rank.WithStopwords(words...)
}

// WithStemming stems words with the snowball stemmer for lang.
func WithStemming(lang string) TokenizerOption {
	return rank.WithStemming(lang)
}

// DefaultStopwords returns a copy of the built-in English stopwords.
func DefaultStopwords() []string {
	return rank.DefaultStopwords()
}

// NewRanker returns a ranker with damping 0.85, tolerance 1e-4 and at most
// 100 iterations unless overridden.
func NewRanker(opts ...RankerOption) (*Ranker, error) {
	return rank.NewRanker(opts...)
}

// WithDamping sets the PageRank damping factor.
func WithDamping(d float64) RankerOption {
	return rank.WithDamping(d)
}

// WithTolerance sets the convergence threshold.
func WithTolerance(t float64) RankerOption {
	return rank.WithTolerance(t)
}

// WithMaxIterations caps the number of PageRank iterations.
func WithMaxIterations(n int) RankerOption {
	return rank.WithMaxIterations(n)
}

// WithIsolated keeps units without any edge as graph nodes.
func WithIsolated(keep bool) RankerOption {
	return rank.WithIsolated(keep)
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return rank.NewGraph()
}

// Similarity is the number of shared words normalized by the log lengths of
// both word sets.
func Similarity(a, b Unit) float64 {
	return rank.Similarity(a, b)
}

// FilterTop discards the bottom percentile of scores and returns the rest,
// highest first.
func FilterTop(result *Result, percentile float64) []Scored {
	return rank.FilterTop(result, percentile)
}
