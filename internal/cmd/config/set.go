package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/yacchi/textrank/internal/config"
	"github.com/yacchi/textrank/internal/ui"
)

var (
	setGlobal  bool
	setProject bool
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

By default, saves to user config (~/.config/textrank/config.yaml).
Use --project to save to project config (.textrank.yaml in project root).

Examples:
  textrank config set summary.fraction 0.3
  textrank config set segment.locale ja
  textrank config set --project segment.stopwords gator,lorem`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	setCmd.Flags().BoolVarP(&setGlobal, "global", "g", false, "Save to user config (default)")
	setCmd.Flags().BoolVarP(&setProject, "project", "p", false, "Save to project config (.textrank.yaml)")
	setCmd.MarkFlagsMutuallyExclusive("global", "project")
}

func runSet(c *cobra.Command, args []string) error {
	key := args[0]

	ctx := c.Context()
	cfg, err := config.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	// 既存の値の型に合わせて変換する
	value := parseConfigValue(args[1], cfg.Get(key))

	// 書き込み先の決定と保存
	if setProject {
		projectRoot, err := resolveProjectRoot(cfg)
		if err != nil {
			return err
		}
		configPath := config.GetProjectConfigPathForRoot(projectRoot)
		ui.Info("Writing to project config: %s", configPath)
		cfg.SetProjectConfigPath(configPath)

		if err := cfg.SetToLayer(config.LayerProject, key, value); err != nil {
			return err
		}
	} else {
		if err := cfg.Set(key, value); err != nil {
			return err
		}
	}

	if err := cfg.Save(ctx); err != nil {
		return errors.Wrap(err, "save config")
	}

	ui.Success("Set %s = %v", key, value)
	return nil
}

// parseConfigValue は文字列を現在の値と同じ型に変換する
// 現在の値がない場合は真偽値と数値を推測する
func parseConfigValue(value string, current any) any {
	value = strings.TrimSpace(value)

	switch current.(type) {
	case []any, []string:
		items := []any{}
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				items = append(items, part)
			}
		}
		return items
	case string:
		return value
	}

	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}

// resolveProjectRoot はプロジェクトルートを解決する
// 自動検出できない場合はカレントディレクトリを使うか確認する
func resolveProjectRoot(cfg *config.Store) (string, error) {
	// 1. 既存のプロジェクト設定または.gitを探す
	root, err := cfg.GetProjectRoot()
	if err != nil {
		return "", errors.Wrap(err, "find project root")
	}
	if root != "" {
		return root, nil
	}

	// 2. 見つからない場合はカレントディレクトリを使うか確認する
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "get current directory")
	}
	ok, err := ui.Confirm("Could not detect project root. Use "+cwd+"?", true)
	if err != nil {
		return "", errors.Wrap(err, "prompt")
	}
	if !ok {
		return "", errors.New("project root not selected")
	}
	return cwd, nil
}
