package cmdutil

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/go-faster/jx"
	"github.com/spf13/pflag"

	"github.com/yacchi/textrank/internal/config"
	"github.com/yacchi/textrank/internal/segment"
	"github.com/yacchi/textrank/internal/summary"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadPages(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "Dog cat bird.")
	b := writeFile(t, dir, "b.txt", "Horse cow fish.")

	tests := []struct {
		name        string
		args        []string
		stdin       string
		pagePerFile bool
		want        []segment.Page
	}{
		{
			name:  "stdin",
			stdin: "Sheep dog cat.",
			want:  []segment.Page{{Text: "Sheep dog cat."}},
		},
		{
			name: "files joined",
			args: []string{a, b},
			want: []segment.Page{{Text: "Dog cat bird.\n\nHorse cow fish."}},
		},
		{
			name:        "page per file",
			args:        []string{a, "-"},
			stdin:       "Sheep dog cat.",
			pagePerFile: true,
			want: []segment.Page{
				{ID: "a.txt", Text: "Dog cat bird."},
				{ID: StdinPageID, Text: "Sheep dog cat."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadPages(tt.args, strings.NewReader(tt.stdin), tt.pagePerFile)
			if err != nil {
				t.Fatalf("ReadPages() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadPages() = %+v, want %+v", got, tt.want)
			}
		})
	}

	if _, err := ReadPages([]string{filepath.Join(dir, "missing.txt")}, nil, false); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadChunks(t *testing.T) {
	dir := t.TempDir()
	yamlFile := writeFile(t, dir, "chunks.yaml", "pages:\n  - id: \"0123\"\n    chunks: [\"Dog cat bird\"]\n")

	got, err := ReadChunks([]string{yamlFile, "-"}, strings.NewReader(`{"pages":[{"id":"4567","chunks":["Horse cow fish"]}]}`))
	if err != nil {
		t.Fatalf("ReadChunks() error = %v", err)
	}
	want := []segment.ChunkedPage{
		{ID: "0123", Chunks: []string{"Dog cat bird"}},
		{ID: "4567", Chunks: []string{"Horse cow fish"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadChunks() = %+v, want %+v", got, want)
	}
}

var sample = &summary.Summary{
	Method:     summary.MethodTextRank,
	TotalUnits: 5,
	Nodes:      5,
	Iterations: 17,
	Converged:  true,
	Sentences: []summary.Sentence{
		{Text: "Dog cat bird.", Score: 0.27, Index: 0},
		{Text: "Horse cat lizard.", Score: 0.29, PageID: "p1", Index: 3},
	},
}

func TestSummaryJSONRoundTrip(t *testing.T) {
	var e jx.Encoder
	EncodeSummary(&e, sample)

	got, err := DecodeSummary(e.Bytes())
	if err != nil {
		t.Fatalf("DecodeSummary() error = %v", err)
	}
	if !reflect.DeepEqual(got, sample) {
		t.Errorf("DecodeSummary() = %+v, want %+v", got, sample)
	}

	if _, err := DecodeSummary([]byte(`{"sentences": 3}`)); err == nil {
		t.Error("expected error for malformed summary")
	}
}

func TestOutputJSON(t *testing.T) {
	encode := func(e *jx.Encoder) { EncodeSummary(e, sample) }

	var plain bytes.Buffer
	if err := OutputJSON(&plain, encode, JSONOutputOptions{}); err != nil {
		t.Fatalf("OutputJSON() error = %v", err)
	}
	if !strings.HasPrefix(plain.String(), `{"method":"textrank","total_units":5,`) {
		t.Errorf("OutputJSON() = %s", plain.String())
	}
	if !strings.HasSuffix(plain.String(), "}\n") {
		t.Error("OutputJSON() should end with a newline")
	}

	var filtered bytes.Buffer
	if err := OutputJSON(&filtered, encode, JSONOutputOptions{JQFilter: ".sentences[1].text"}); err != nil {
		t.Fatalf("OutputJSON() with jq error = %v", err)
	}
	if got := strings.TrimSpace(filtered.String()); got != "Horse cat lizard." {
		t.Errorf("jq output = %q, want %q", got, "Horse cat lizard.")
	}

	if err := OutputJSON(&bytes.Buffer{}, encode, JSONOutputOptions{JQFilter: ".["}); err == nil {
		t.Error("expected error for invalid jq filter")
	}
}

func TestRankFlagsApply(t *testing.T) {
	var flags RankFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Register(fs)
	if err := fs.Parse([]string{"--fraction", "0.5", "--stopword", "dog", "--stopword", "cat", "--no-normalize"}); err != nil {
		t.Fatal(err)
	}

	opts := summary.DefaultOptions()
	opts.Damping = 0.9
	opts.Stopwords = []string{"bird"}
	flags.Apply(fs, &opts)

	if opts.Fraction != 0.5 {
		t.Errorf("Fraction = %v, want 0.5", opts.Fraction)
	}
	if opts.Damping != 0.9 {
		t.Errorf("Damping = %v, want 0.9 (unchanged flag must not override)", opts.Damping)
	}
	if !reflect.DeepEqual(opts.Stopwords, []string{"bird", "dog", "cat"}) {
		t.Errorf("Stopwords = %q", opts.Stopwords)
	}
	if opts.Normalize {
		t.Error("Normalize = true, want false")
	}
}

func TestSummaryOptions(t *testing.T) {
	cfg := &config.ResolvedConfig{
		Rank:    config.ResolvedRank{Damping: 0.8, Tolerance: 1e-5, MaxIterations: 50, IncludeIsolated: true},
		Summary: config.ResolvedSummary{Method: "lexrank", Fraction: 0.3, MaxSentences: 4, Normalize: true, Order: "score"},
		Segment: config.ResolvedSegment{Locale: "ja", Stopwords: []string{"x"}, Stem: true},
	}
	want := summary.Options{
		Method: "lexrank", Fraction: 0.3, MaxSentences: 4, Order: "score", Normalize: true,
		Damping: 0.8, Tolerance: 1e-5, MaxIterations: 50, IncludeIsolated: true,
		Locale: "ja", Stopwords: []string{"x"}, Stem: true,
	}
	if got := SummaryOptions(cfg); !reflect.DeepEqual(got, want) {
		t.Errorf("SummaryOptions() = %+v, want %+v", got, want)
	}
}

func TestCachedSummary(t *testing.T) {
	cfg := &config.ResolvedCache{Enabled: true, Dir: t.TempDir(), TTL: 60}
	pages := []segment.Page{{Text: "Dog cat bird. Horse cat lizard."}}
	key := SummaryCacheKey(summary.DefaultOptions(), false, pages, nil)

	calls := 0
	compute := func() (*summary.Summary, error) {
		calls++
		return sample, nil
	}

	for i := 0; i < 2; i++ {
		got, err := CachedSummary(cfg, false, key, compute)
		if err != nil {
			t.Fatalf("CachedSummary() error = %v", err)
		}
		if !reflect.DeepEqual(got, sample) {
			t.Errorf("CachedSummary() = %+v", got)
		}
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}

	if _, err := CachedSummary(cfg, true, key, compute); err != nil || calls != 2 {
		t.Errorf("--no-cache should recompute: calls=%d err=%v", calls, err)
	}

	other := summary.DefaultOptions()
	other.Fraction = 0.5
	if SummaryCacheKey(other, false, pages, nil) == key {
		t.Error("cache key should depend on options")
	}
}

func TestSummaryCacheKeyLists(t *testing.T) {
	pages := []segment.Page{{Text: "Dog cat bird. Horse cat lizard."}}
	keyFor := func(stopwords []string) string {
		opts := summary.DefaultOptions()
		opts.Stopwords = stopwords
		return SummaryCacheKey(opts, false, pages, nil)
	}

	tests := []struct {
		name string
		a, b []string
	}{
		{name: "comma inside stopword", a: []string{"a,b"}, b: []string{"a", "b"}},
		{name: "empty stopword", a: []string{""}, b: nil},
		{name: "split point", a: []string{"ab", "c"}, b: []string{"a", "bc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if keyFor(tt.a) == keyFor(tt.b) {
				t.Errorf("SummaryCacheKey(%q) == SummaryCacheKey(%q)", tt.a, tt.b)
			}
		})
	}

	a := []segment.ChunkedPage{{ID: "1", Chunks: []string{"x\x01y"}}}
	b := []segment.ChunkedPage{{ID: "1", Chunks: []string{"x", "y"}}}
	if SummaryCacheKey(summary.DefaultOptions(), true, nil, a) == SummaryCacheKey(summary.DefaultOptions(), true, nil, b) {
		t.Error("chunk boundaries should change the cache key")
	}
}
