package cmd

import (
	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"github.com/yacchi/jubako"

	configcmd "github.com/yacchi/textrank/internal/cmd/config"
	"github.com/yacchi/textrank/internal/cmd/graph"
	rankcmd "github.com/yacchi/textrank/internal/cmd/rank"
	"github.com/yacchi/textrank/internal/cmd/summarize"
	"github.com/yacchi/textrank/internal/config"
	"github.com/yacchi/textrank/internal/debug"
	"github.com/yacchi/textrank/internal/ui"
)

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "textrank",
	Short: "textrank - extractive summarization from the command line",
	Long: `textrank picks the most central sentences of a text.

Sentences are linked by the words they share and ranked with PageRank,
or with LexRank + MMR when --method lexrank is given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// デバッグモードの有効化
		if debugFlag, _ := cmd.Flags().GetBool("debug"); debugFlag {
			debug.Enable()
		}

		ctx := cmd.Context()
		cfg, err := config.Load(ctx)
		if err != nil {
			return &ConfigError{Err: err}
		}

		// グローバルフラグを取得してArgsレイヤーに適用
		var setOptions []jubako.SetOption
		if method, _ := cmd.Flags().GetString("method"); method != "" {
			setOptions = append(setOptions, jubako.String(config.PathSummaryMethod, method))
		}
		if locale, _ := cmd.Flags().GetString("locale"); locale != "" {
			setOptions = append(setOptions, jubako.String(config.PathSegmentLocale, locale))
		}
		if output, _ := cmd.Flags().GetString("output"); output != "" {
			setOptions = append(setOptions, jubako.String(config.PathDisplayOutput, output))
		}
		if color, _ := cmd.Flags().GetString("color"); color != "" {
			setOptions = append(setOptions, jubako.String(config.PathDisplayColor, color))
		}
		if len(setOptions) > 0 {
			if err := cfg.SetFlagsLayer(setOptions); err != nil {
				return &ConfigError{Err: errors.Wrap(err, "apply flags")}
			}
		}

		// カラー設定
		if err := ui.ApplyColorMode(cfg.Display().Color); err != nil {
			return &ConfigError{Err: err}
		}
		debug.Log("config loaded",
			"user", cfg.GetUserConfigPath(),
			"project", cfg.GetProjectConfigPath(),
		)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// グローバルフラグ
	rootCmd.PersistentFlags().String("method", "", "Ranking method (textrank, lexrank)")
	rootCmd.PersistentFlags().String("locale", "", "Locale of the input text (e.g. en, ja)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (text, table, json)")
	rootCmd.PersistentFlags().String("jq", "", "Filter JSON output using a jq expression")
	rootCmd.PersistentFlags().String("color", "", "Color output (auto, always, never)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Do not read or write the summary cache")
	rootCmd.PersistentFlags().Bool("chunks", false, "Input is a YAML/JSON chunk file")
	rootCmd.PersistentFlags().Bool("page-per-file", false, "Treat every input file as its own page")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	// サブコマンド登録
	rootCmd.AddCommand(summarize.SummarizeCmd)
	rootCmd.AddCommand(rankcmd.RankCmd)
	rootCmd.AddCommand(graph.GraphCmd)
	rootCmd.AddCommand(configcmd.ConfigCmd)
}
