// Package summary composes segmentation, tokenization and ranking into
// extractive summaries.
package summary

import (
	"context"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/go-faster/errors"
	"github.com/ramenjuniti/lexrankmmr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/yacchi/textrank/internal/debug"
	"github.com/yacchi/textrank/internal/rank"
	"github.com/yacchi/textrank/internal/segment"
)

const tracerName = "github.com/yacchi/textrank/internal/summary"

// LexRankMMRに渡す文の最小文字数。短すぎる文はTF-IDFベクトルがゼロになりエラーになる
const minLexRankRunes = 5

// lexRankZeroVectors はLexRankMMRが類似度を計算できない入力に返すエラーメッセージ
const lexRankZeroVectors = "should not be null"

// Sentence is one extracted unit.
type Sentence struct {
	Text   string
	Score  float64
	PageID string
	Index  int

	// position in the input across all pages
	position int
}

// Summary is the result of one summarization run.
type Summary struct {
	Method     string
	Sentences  []Sentence
	TotalUnits int
	Nodes      int
	Iterations int
	Converged  bool
}

// Text joins the summary sentences with a single space.
func (s *Summary) Text() string {
	if s == nil {
		return ""
	}
	texts := make([]string, len(s.Sentences))
	for i, sentence := range s.Sentences {
		texts[i] = sentence.Text
	}
	return strings.Join(texts, " ")
}

// Pipeline holds the configured collaborators of a run. It is safe to reuse
// across runs; every run builds its own graph.
type Pipeline struct {
	opts      Options
	segmenter segment.Segmenter
	tokenizer *rank.Tokenizer
	ranker    *rank.Ranker
}

// NewPipeline validates opts and builds the segmenter, tokenizer and ranker.
func NewPipeline(opts Options) (*Pipeline, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	tag, err := segment.ParseLocale(opts.Locale)
	if err != nil {
		return nil, err
	}
	seg, err := segment.New(opts.Locale)
	if err != nil {
		return nil, err
	}

	tokOpts := []rank.TokenizerOption{
		rank.WithLanguage(tag),
		rank.WithStopwords(opts.Stopwords...),
	}
	base, _ := tag.Base()
	if base.String() == "ja" {
		tokOpts = append(tokOpts, rank.WithSplitter(segment.JapaneseWords))
	}
	if opts.Stem {
		if lang, ok := stemLanguages[base.String()]; ok {
			tokOpts = append(tokOpts, rank.WithStemming(lang))
		} else {
			debug.Log("stemming not available", "locale", opts.Locale)
		}
	}

	ranker, err := rank.NewRanker(
		rank.WithDamping(opts.Damping),
		rank.WithTolerance(opts.Tolerance),
		rank.WithMaxIterations(opts.MaxIterations),
		rank.WithIsolated(opts.IncludeIsolated),
	)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		opts:      opts,
		segmenter: seg,
		tokenizer: rank.NewTokenizer(tokOpts...),
		ranker:    ranker,
	}, nil
}

// Options returns the validated options of p.
func (p *Pipeline) Options() Options {
	return p.opts
}

// Units segments pages into deduplicated units.
func (p *Pipeline) Units(pages []segment.Page) []rank.Unit {
	if p.opts.Normalize {
		cleaned := make([]segment.Page, len(pages))
		for i, page := range pages {
			cleaned[i] = segment.Page{ID: page.ID, Text: normalizeText(page.Text)}
		}
		pages = cleaned
	}
	return rank.Dedup(segment.Units(pages, p.segmenter, p.tokenizer))
}

// ChunkUnits turns pre-chunked pages into deduplicated units.
func (p *Pipeline) ChunkUnits(pages []segment.ChunkedPage) []rank.Unit {
	return rank.Dedup(segment.ChunkUnits(pages, p.tokenizer))
}

// Graph builds the similarity graph of units.
func (p *Pipeline) Graph(units []rank.Unit) *rank.Graph {
	return p.ranker.BuildGraph(units)
}

// Rank scores every unit with TextRank.
func (p *Pipeline) Rank(ctx context.Context, units []rank.Unit) (*rank.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, err := p.ranker.RunContext(ctx, units)
	if err != nil {
		return nil, err
	}
	debug.Log("pagerank finished",
		"units", len(units),
		"nodes", res.Len(),
		"iterations", res.Iterations,
		"converged", res.Converged,
	)
	return res, nil
}

// Summarize extracts the top units with the configured method.
func (p *Pipeline) Summarize(ctx context.Context, units []rank.Unit) (_ *Summary, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "summary.Summarize")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(
		attribute.String("textrank.method", p.opts.Method),
		attribute.Int("textrank.units", len(units)),
	)

	var s *Summary
	switch p.opts.Method {
	case MethodLexRank:
		s, err = p.lexRank(ctx, units)
	default:
		s, err = p.textRank(ctx, units)
	}
	if err != nil {
		return nil, err
	}
	s.Method = p.opts.Method
	s.TotalUnits = len(units)

	if p.opts.Order == OrderDocument {
		sort.SliceStable(s.Sentences, func(i, j int) bool {
			return s.Sentences[i].position < s.Sentences[j].position
		})
	}

	span.SetAttributes(
		attribute.Int("textrank.nodes", s.Nodes),
		attribute.Int("textrank.sentences", len(s.Sentences)),
		attribute.Bool("textrank.converged", s.Converged),
	)
	return s, nil
}

func (p *Pipeline) textRank(ctx context.Context, units []rank.Unit) (*Summary, error) {
	res, err := p.Rank(ctx, units)
	if err != nil {
		return nil, err
	}

	positions := positionsOf(units)
	top := rank.FilterTop(res, 1-p.opts.Fraction)
	if n := p.opts.MaxSentences; n > 0 && len(top) > n {
		top = top[:n]
	}

	sentences := make([]Sentence, len(top))
	for i, scored := range top {
		sentences[i] = Sentence{
			Text:     scored.Unit.Text,
			Score:    scored.Score,
			PageID:   scored.Unit.PageID,
			Index:    scored.Unit.OriginalIndex,
			position: positions[scored.Unit.Key()],
		}
	}
	return &Summary{
		Sentences:  sentences,
		Nodes:      res.Len(),
		Iterations: res.Iterations,
		Converged:  res.Converged,
	}, nil
}

func (p *Pipeline) lexRank(ctx context.Context, units []rank.Unit) (*Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// LexRankMMRは「。」で文を区切るため、文中の「。」は空白に置き換えて渡す
	byLine := make(map[string]int, len(units))
	var lines []string
	for i, u := range units {
		line := strings.TrimSpace(strings.ReplaceAll(strings.TrimRight(u.Text, "。"), "。", " "))
		if utf8.RuneCountInString(line) < minLexRankRunes {
			continue
		}
		if _, dup := byLine[line]; dup {
			continue
		}
		byLine[line] = i
		lines = append(lines, line)
	}
	// 1文だけでは文同士の類似度を計算できない
	if len(lines) < 2 {
		return nil, rank.ErrEmptyGraph
	}

	n := int(math.Ceil(float64(len(lines)) * p.opts.Fraction))
	if limit := p.opts.MaxSentences; limit > 0 && n > limit {
		n = limit
	}
	n = min(max(n, 1), len(lines))

	data, err := lexrankmmr.New(
		lexrankmmr.MaxLines(n),
		lexrankmmr.MaxCharacters(100000),
	)
	if err != nil {
		return nil, errors.Wrap(err, "initialize lexrankmmr")
	}
	if err := data.Summarize(strings.Join(lines, "。") + "。"); err != nil {
		// 語を共有する文がないと類似度行列がゼロになりエラーになる
		if strings.Contains(err.Error(), lexRankZeroVectors) {
			return nil, errors.Wrap(rank.ErrEmptyGraph, err.Error())
		}
		return nil, errors.Wrap(err, "lexrank summarization")
	}

	var sentences []Sentence
	for _, picked := range data.LineLimitedSummary {
		i, ok := byLine[strings.TrimSpace(strings.TrimSuffix(picked.Sentence, "。"))]
		if !ok {
			continue
		}
		u := units[i]
		sentences = append(sentences, Sentence{
			Text:     u.Text,
			PageID:   u.PageID,
			Index:    u.OriginalIndex,
			position: i,
		})
	}
	debug.Log("lexrank finished", "lines", len(lines), "picked", len(sentences))

	return &Summary{
		Sentences: sentences,
		Nodes:     len(lines),
		Converged: true,
	}, nil
}

func positionsOf(units []rank.Unit) map[string]int {
	positions := make(map[string]int, len(units))
	for i, u := range units {
		if _, ok := positions[u.Key()]; !ok {
			positions[u.Key()] = i
		}
	}
	return positions
}

// Summarize summarizes a single raw-text document.
func Summarize(ctx context.Context, text string, opts Options) (*Summary, error) {
	return SummarizePages(ctx, []segment.Page{{Text: text}}, opts)
}

// SummarizePages summarizes several raw-text documents as one corpus.
func SummarizePages(ctx context.Context, pages []segment.Page, opts Options) (*Summary, error) {
	p, err := NewPipeline(opts)
	if err != nil {
		return nil, err
	}
	return p.Summarize(ctx, p.Units(pages))
}

// SummarizeChunks summarizes pre-chunked pages.
func SummarizeChunks(ctx context.Context, pages []segment.ChunkedPage, opts Options) (*Summary, error) {
	p, err := NewPipeline(opts)
	if err != nil {
		return nil, err
	}
	return p.Summarize(ctx, p.ChunkUnits(pages))
}

// Text summarises text into at most n sentences in document order.
// Text that yields no ranked units returns "".
func Text(ctx context.Context, text string, n int) (string, error) {
	if n <= 0 || strings.TrimSpace(text) == "" {
		return "", nil
	}
	opts := DefaultOptions()
	opts.Fraction = 1
	opts.MaxSentences = n

	s, err := Summarize(ctx, text, opts)
	if err != nil {
		if errors.Is(err, rank.ErrEmptyGraph) {
			return "", nil
		}
		return "", err
	}
	return s.Text(), nil
}
