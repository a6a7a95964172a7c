package config

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/yacchi/textrank/internal/config"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a configuration value.

Examples:
  textrank config get summary.fraction
  textrank config get segment.locale
  textrank config get rank.damping`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(c *cobra.Command, args []string) error {
	key := args[0]

	cfg, err := config.Load(c.Context())
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	value := cfg.Get(key)
	if value == nil {
		return errors.Errorf("unknown config key: %s", key)
	}

	fmt.Fprintln(c.OutOrStdout(), value)
	return nil
}
