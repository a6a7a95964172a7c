package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yacchi/textrank/internal/config"
)

var (
	listAllFlag  bool
	listYAMLFlag bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configuration values",
	Long: `List configuration values.

By default, shows only modified values (non-default).
Use --all to show all configuration values including defaults.
Use --yaml to print the values as a YAML document that can be saved as
a config file.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listAllFlag, "all", "a", false, "Show all configuration values including defaults")
	listCmd.Flags().BoolVar(&listYAMLFlag, "yaml", false, "Print values as YAML")
}

type listEntry struct {
	path         string
	value        any
	layer        string
	defaultValue any
}

func runList(c *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.Context())
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	// Walk でフィルタリングしながら収集（ソート済み）
	var entries []listEntry
	cfg.Walk(func(e config.WalkEntry) bool {
		// --all でない場合、defaults レイヤーの値はスキップ
		if !listAllFlag && e.Layer == config.LayerDefaults {
			return true
		}
		entries = append(entries, listEntry{
			path:         e.Path,
			value:        e.Value,
			layer:        e.Layer,
			defaultValue: e.DefaultValue,
		})
		return true
	})

	out := c.OutOrStdout()
	if listYAMLFlag {
		return writeYAML(out, entries)
	}

	// 設定ファイルのパスを表示
	if userPath := cfg.GetUserConfigPath(); userPath != "" {
		fmt.Fprintf(out, "# User config: %s\n", userPath)
	}
	if projectPath := cfg.GetProjectConfigPath(); projectPath != "" {
		fmt.Fprintf(out, "# Project config: %s\n", projectPath)
	}

	maxWidth := 0
	for _, e := range entries {
		maxWidth = max(maxWidth, len(fmt.Sprintf("%s=%v", e.path, e.value)))
	}

	// 縦位置を揃えて出力
	for _, e := range entries {
		line := fmt.Sprintf("%s=%v", e.path, e.value)
		comment := e.layer
		if e.defaultValue != nil {
			if def := fmt.Sprintf("%v", e.defaultValue); def != fmt.Sprintf("%v", e.value) {
				comment = fmt.Sprintf("%s, default: %s", e.layer, def)
			}
		}
		fmt.Fprintf(out, "%-*s  # %s\n", maxWidth, line, comment)
	}

	if len(entries) == 0 {
		if listAllFlag {
			fmt.Fprintln(out, "No configuration values found.")
		} else {
			fmt.Fprintln(out, "No modified configuration values.")
			fmt.Fprintln(out, "Use --all to show all configuration values including defaults.")
		}
	}

	return nil
}

// writeYAML はドット区切りのエントリをネストしたYAMLとして出力する
func writeYAML(w io.Writer, entries []listEntry) error {
	doc := map[string]any{}
	for _, e := range entries {
		parts := strings.Split(e.path, ".")
		node := doc
		for _, p := range parts[:len(parts)-1] {
			child, ok := node[p].(map[string]any)
			if !ok {
				child = map[string]any{}
				node[p] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = e.value
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode yaml")
	}
	return enc.Close()
}
