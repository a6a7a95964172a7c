package config

import (
	"github.com/spf13/cobra"
)

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Get and set configuration options.

Values are resolved from, in increasing priority:
  defaults, ~/.config/textrank/config.yaml, .textrank.yaml,
  TEXTRANK_* environment variables and command line flags.`,
}

func init() {
	ConfigCmd.AddCommand(getCmd)
	ConfigCmd.AddCommand(setCmd)
	ConfigCmd.AddCommand(listCmd)
	ConfigCmd.AddCommand(pathCmd)
	ConfigCmd.AddCommand(initCmd)
}
