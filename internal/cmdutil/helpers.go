package cmdutil

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacchi/textrank/internal/config"
	"github.com/yacchi/textrank/internal/rank"
	"github.com/yacchi/textrank/internal/summary"
	"github.com/yacchi/textrank/internal/ui"
)

// GetConfigStore はConfigStoreを取得する
// グローバルフラグはrootCmd.PersistentPreRunEで適用済み
func GetConfigStore(cmd *cobra.Command) (*config.Store, error) {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return cfg, nil
}

// SummaryOptions は解決済み設定から要約オプションを組み立てる
func SummaryOptions(cfg *config.ResolvedConfig) summary.Options {
	return summary.Options{
		Method:          cfg.Summary.Method,
		Fraction:        cfg.Summary.Fraction,
		MaxSentences:    cfg.Summary.MaxSentences,
		Order:           cfg.Summary.Order,
		Normalize:       cfg.Summary.Normalize,
		Damping:         cfg.Rank.Damping,
		Tolerance:       cfg.Rank.Tolerance,
		MaxIterations:   cfg.Rank.MaxIterations,
		IncludeIsolated: cfg.Rank.IncludeIsolated,
		Locale:          cfg.Segment.Locale,
		Stopwords:       cfg.Segment.Stopwords,
		Stem:            cfg.Segment.Stem,
	}
}

// RankFlags はランキング系コマンド共通のフラグ
// 指定されたフラグのみ設定値を上書きする
type RankFlags struct {
	Fraction      float64
	MaxSentences  int
	Order         string
	Damping       float64
	Tolerance     float64
	MaxIterations int
	Isolated      bool
	Stopwords     []string
	Stem          bool
	NoNormalize   bool
}

// Register はフラグを登録する
func (f *RankFlags) Register(fs *pflag.FlagSet) {
	fs.Float64Var(&f.Fraction, "fraction", summary.DefaultFraction, "Share of sentences to keep (0 < f <= 1)")
	fs.IntVarP(&f.MaxSentences, "max-sentences", "n", 0, "Maximum number of sentences (0 = unlimited)")
	fs.StringVar(&f.Order, "order", summary.OrderDocument, "Output order: document, score")
	fs.Float64Var(&f.Damping, "damping", 0.85, "PageRank damping factor (0 < d < 1)")
	fs.Float64Var(&f.Tolerance, "tolerance", 1e-4, "Convergence tolerance")
	fs.IntVar(&f.MaxIterations, "max-iterations", 100, "Maximum PageRank iterations")
	fs.BoolVar(&f.Isolated, "isolated", false, "Keep sentences that share no word with any other sentence")
	fs.StringSliceVar(&f.Stopwords, "stopword", nil, "Additional stopword (repeatable)")
	fs.BoolVar(&f.Stem, "stem", false, "Stem words before comparing sentences")
	fs.BoolVar(&f.NoNormalize, "no-normalize", false, "Do not strip markdown and URLs before segmentation")
}

// Apply は明示的に指定されたフラグで opts を上書きする
func (f *RankFlags) Apply(fs *pflag.FlagSet, opts *summary.Options) {
	if fs.Changed("fraction") {
		opts.Fraction = f.Fraction
	}
	if fs.Changed("max-sentences") {
		opts.MaxSentences = f.MaxSentences
	}
	if fs.Changed("order") {
		opts.Order = f.Order
	}
	if fs.Changed("damping") {
		opts.Damping = f.Damping
	}
	if fs.Changed("tolerance") {
		opts.Tolerance = f.Tolerance
	}
	if fs.Changed("max-iterations") {
		opts.MaxIterations = f.MaxIterations
	}
	if fs.Changed("isolated") {
		opts.IncludeIsolated = f.Isolated
	}
	if fs.Changed("stopword") {
		opts.Stopwords = append(append([]string(nil), opts.Stopwords...), f.Stopwords...)
	}
	if fs.Changed("stem") {
		opts.Stem = f.Stem
	}
	if fs.Changed("no-normalize") {
		opts.Normalize = !f.NoNormalize
	}
}

// ResolveOptions は設定とフラグから要約オプションを組み立てる
func ResolveOptions(cmd *cobra.Command, flags *RankFlags) (summary.Options, error) {
	cfg, err := GetConfigStore(cmd)
	if err != nil {
		return summary.Options{}, err
	}
	opts := SummaryOptions(cfg.Resolved())
	flags.Apply(cmd.Flags(), &opts)
	return opts, nil
}

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// OutputFormat は display.output（-o フラグ適用済み）から出力形式を決める
// --jq が指定されている場合は常に json
func OutputFormat(cmd *cobra.Command, cfg *config.Store) (string, error) {
	if jq, _ := cmd.Flags().GetString("jq"); jq != "" {
		return FormatJSON, nil
	}
	format := strings.ToLower(strings.TrimSpace(cfg.Display().Output))
	switch format {
	case "":
		return FormatText, nil
	case FormatText, FormatTable, FormatJSON:
		return format, nil
	default:
		return "", errors.Wrapf(rank.ErrInvalidOption, "output %q must be text, table or json", format)
	}
}

// JSONOptions は --jq フラグからJSON出力オプションを作る
// 端末への出力時のみ整形する
func JSONOptions(cmd *cobra.Command) JSONOutputOptions {
	jq, _ := cmd.Flags().GetString("jq")
	return JSONOutputOptions{
		JQFilter: jq,
		Pretty:   ui.IsColorEnabled(),
	}
}
