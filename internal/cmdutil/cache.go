package cmdutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/go-faster/jx"

	"github.com/yacchi/textrank/internal/cache"
	"github.com/yacchi/textrank/internal/config"
	"github.com/yacchi/textrank/internal/debug"
	"github.com/yacchi/textrank/internal/segment"
	"github.com/yacchi/textrank/internal/summary"
)

// cacheVersion はキャッシュ形式が変わったら上げる
const cacheVersion = "v2"

// SummaryCacheKey は入力と要約オプションからキャッシュキーを作る
func SummaryCacheKey(opts summary.Options, chunked bool, pages []segment.Page, chunks []segment.ChunkedPage) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%v|%d|%s|%v|%v|%v|%d|%v|%s|%v|%v\x00",
		cacheVersion,
		opts.Method, opts.Fraction, opts.MaxSentences, opts.Order, opts.Normalize,
		opts.Damping, opts.Tolerance, opts.MaxIterations, opts.IncludeIsolated,
		opts.Locale, opts.Stem, chunked,
	)
	// 可変長の値は長さを前置して区切り文字を含む値どうしが衝突しないようにする
	writeStrings(h, opts.Stopwords)
	for _, p := range pages {
		writeStrings(h, []string{p.ID, p.Text})
	}
	for _, p := range chunks {
		writeStrings(h, []string{p.ID})
		writeStrings(h, p.Chunks)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func writeStrings(w io.Writer, values []string) {
	fmt.Fprintf(w, "%d:", len(values))
	for _, v := range values {
		fmt.Fprintf(w, "%d:%s", len(v), v)
	}
}

// CachedSummary はキャッシュがあればそれを返し、なければ compute の結果を保存して返す
// キャッシュの読み書きに失敗しても要約自体は続行する
func CachedSummary(cfg *config.ResolvedCache, noCache bool, key string, compute func() (*summary.Summary, error)) (*summary.Summary, error) {
	if noCache || !cfg.Enabled {
		return compute()
	}

	dir, err := cfg.GetCacheDir()
	if err != nil {
		debug.Log("cache disabled", "error", err)
		return compute()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		debug.Log("cache disabled", "error", err)
		return compute()
	}

	if data, ok, err := fc.Get(key); err == nil && ok {
		if s, err := DecodeSummary(data); err == nil {
			debug.Log("cache hit", "key", key)
			return s, nil
		}
	}

	s, err := compute()
	if err != nil {
		return nil, err
	}

	var e jx.Encoder
	EncodeSummary(&e, s)
	if err := fc.Set(key, e.Bytes(), cfg.TTLDuration()); err != nil {
		debug.Log("cache write failed", "error", err)
	}
	return s, nil
}
