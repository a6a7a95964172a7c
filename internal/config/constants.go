package config

import (
	_ "embed"
)

// レイヤー名定数
const (
	LayerDefaults = "defaults"
	LayerUser     = "user"
	LayerProject  = "project"
	LayerEnv      = "env"
	LayerArgs     = "args"
)

// 設定パス（JSON Pointer）
const (
	PathRankDamping         = "/rank/damping"
	PathRankTolerance       = "/rank/tolerance"
	PathRankMaxIterations   = "/rank/max_iterations"
	PathRankIncludeIsolated = "/rank/include_isolated"
	PathSummaryMethod       = "/summary/method"
	PathSummaryFraction     = "/summary/fraction"
	PathSummaryMaxSentences = "/summary/max_sentences"
	PathSummaryNormalize    = "/summary/normalize"
	PathSummaryOrder        = "/summary/order"
	PathSegmentLocale       = "/segment/locale"
	PathSegmentStopwords    = "/segment/stopwords"
	PathSegmentStem         = "/segment/stem"
	PathDisplayOutput       = "/display/output"
	PathDisplayColor        = "/display/color"
	PathCacheEnabled        = "/cache/enabled"
	PathCacheDir            = "/cache/dir"
	PathCacheTTL            = "/cache/ttl"
)

// EnvPrefix は環境変数のプレフィックス
const EnvPrefix = "TEXTRANK_"

//go:embed defaults.yaml
var defaultConfigYAML []byte
