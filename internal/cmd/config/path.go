package config

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/yacchi/textrank/internal/config"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	RunE:  runPath,
}

func runPath(c *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.Context())
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	out := c.OutOrStdout()

	// ユーザー設定ファイル
	fmt.Fprintf(out, "Config:  %s\n", cfg.GetUserConfigPath())

	// プロジェクトローカル設定
	if projectPath := cfg.GetProjectConfigPath(); projectPath != "" {
		fmt.Fprintf(out, "Project: %s\n", projectPath)
	}

	// キャッシュディレクトリ
	if cacheDir, err := cfg.Cache().GetCacheDir(); err == nil {
		fmt.Fprintf(out, "Cache:   %s\n", cacheDir)
	}

	return nil
}
