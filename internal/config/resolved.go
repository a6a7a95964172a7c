package config

import (
	"os"
	"time"
)

// ResolvedConfig は全レイヤーをマージし、デフォルト適用後の設定
// 全フィールドは具体的な値を持つ
// jubakoのmaterializationはJSONを使用するため、jsonタグが必須
type ResolvedConfig struct {
	Rank    ResolvedRank    `json:"rank"`
	Summary ResolvedSummary `json:"summary"`
	Segment ResolvedSegment `json:"segment"`
	Display ResolvedDisplay `json:"display"`
	Cache   ResolvedCache   `json:"cache"`
}

// ResolvedRank はPageRankの設定
// env: ディレクティブで環境変数からの自動マッピングを定義
type ResolvedRank struct {
	Damping         float64 `json:"damping" jubako:"/rank/damping,env:RANK_DAMPING"`
	Tolerance       float64 `json:"tolerance" jubako:"/rank/tolerance,env:RANK_TOLERANCE"`
	MaxIterations   int     `json:"max_iterations" jubako:"/rank/max_iterations,env:RANK_MAX_ITERATIONS"`
	IncludeIsolated bool    `json:"include_isolated" jubako:"/rank/include_isolated,env:RANK_INCLUDE_ISOLATED"`
}

// ResolvedSummary は要約の設定
type ResolvedSummary struct {
	Method       string  `json:"method" jubako:"/summary/method,env:SUMMARY_METHOD"`
	Fraction     float64 `json:"fraction" jubako:"/summary/fraction,env:SUMMARY_FRACTION"`
	MaxSentences int     `json:"max_sentences" jubako:"/summary/max_sentences,env:SUMMARY_MAX_SENTENCES"`
	Normalize    bool    `json:"normalize" jubako:"/summary/normalize,env:SUMMARY_NORMALIZE"`
	Order        string  `json:"order" jubako:"/summary/order,env:SUMMARY_ORDER"`
}

// ResolvedSegment は文分割と単語抽出の設定
type ResolvedSegment struct {
	Locale    string   `json:"locale" jubako:"/segment/locale,env:SEGMENT_LOCALE"`
	Stopwords []string `json:"stopwords" jubako:"/segment/stopwords,env:SEGMENT_STOPWORDS"`
	Stem      bool     `json:"stem" jubako:"/segment/stem,env:SEGMENT_STEM"`
}

// ResolvedDisplay は表示設定
type ResolvedDisplay struct {
	Output string `json:"output" jubako:"/display/output,env:DISPLAY_OUTPUT"`
	Color  string `json:"color" jubako:"/display/color,env:DISPLAY_COLOR"`
}

// ResolvedCache はマージ済みのキャッシュ設定
type ResolvedCache struct {
	Enabled bool   `json:"enabled" jubako:"/cache/enabled,env:CACHE_ENABLED"`
	Dir     string `json:"dir" jubako:"/cache/dir,env:CACHE_DIR"`
	TTL     int    `json:"ttl" jubako:"/cache/ttl,env:CACHE_TTL"`
}

// GetCacheDir returns the cache directory.
// If Dir is not specified, it returns the default cache directory.
func (c *ResolvedCache) GetCacheDir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	return defaultCacheDir()
}

// TTLDuration はTTLをtime.Durationで返す
func (c *ResolvedCache) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

// envShortcuts はよく使う設定の環境変数ショートカット
// TEXTRANK_METHOD などの省略形を TEXTRANK_SUMMARY_METHOD の完全形式に展開する
var envShortcuts = map[string]string{
	"TEXTRANK_METHOD":    "TEXTRANK_SUMMARY_METHOD",
	"TEXTRANK_FRACTION":  "TEXTRANK_SUMMARY_FRACTION",
	"TEXTRANK_LOCALE":    "TEXTRANK_SEGMENT_LOCALE",
	"TEXTRANK_STOPWORDS": "TEXTRANK_SEGMENT_STOPWORDS",
	"TEXTRANK_OUTPUT":    "TEXTRANK_DISPLAY_OUTPUT",
	"TEXTRANK_COLOR":     "TEXTRANK_DISPLAY_COLOR",
}

// expandEnvShortcuts は環境変数のショートカットを展開した環境変数リストを返す
// 完全形式が既に設定されている場合は、完全形式を優先する
func expandEnvShortcuts() []string {
	envs := os.Environ()

	for shortKey, fullKey := range envShortcuts {
		if value := os.Getenv(shortKey); value != "" {
			if os.Getenv(fullKey) == "" {
				envs = append(envs, fullKey+"="+value)
			}
		}
	}

	return envs
}
