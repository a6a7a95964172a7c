package config

import (
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/yacchi/textrank/internal/config"
	"github.com/yacchi/textrank/internal/segment"
	"github.com/yacchi/textrank/internal/summary"
	"github.com/yacchi/textrank/internal/ui"
)

var initProject bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration interactively",
	Long: `Ask for the most common settings and save them.

By default, saves to user config (~/.config/textrank/config.yaml).
Use --project to save to project config (.textrank.yaml in project root).`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initProject, "project", "p", false, "Save to project config (.textrank.yaml)")
}

func runInit(c *cobra.Command, _ []string) error {
	ctx := c.Context()
	cfg, err := config.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	current := cfg.Resolved()

	method, err := ui.Select("Ranking method:", []string{summary.MethodTextRank, summary.MethodLexRank}, current.Summary.Method)
	if err != nil {
		return err
	}
	locale, err := ui.Input("Locale of your documents:", current.Segment.Locale, validateLocale)
	if err != nil {
		return err
	}
	fraction, err := ui.Input("Share of sentences to keep (0 < f <= 1):",
		strconv.FormatFloat(current.Summary.Fraction, 'f', -1, 64), survey.Required, validateFraction)
	if err != nil {
		return err
	}
	output, err := ui.Select("Default output:", []string{"text", "table", "json"}, current.Display.Output)
	if err != nil {
		return err
	}

	layerName := config.LayerUser
	if initProject {
		root, err := resolveProjectRoot(cfg)
		if err != nil {
			return err
		}
		cfg.SetProjectConfigPath(config.GetProjectConfigPathForRoot(root))
		layerName = config.LayerProject
	}

	f, _ := strconv.ParseFloat(fraction, 64)
	values := map[string]any{
		"summary.method":   method,
		"segment.locale":   locale,
		"summary.fraction": f,
		"display.output":   output,
	}
	for key, value := range values {
		if err := cfg.SetToLayer(layerName, key, value); err != nil {
			return errors.Wrapf(err, "set %s", key)
		}
	}
	if err := cfg.Save(ctx); err != nil {
		return errors.Wrap(err, "save config")
	}

	path := cfg.GetUserConfigPath()
	if initProject {
		path = cfg.GetProjectConfigPath()
	}
	ui.Success("Saved configuration to %s", path)
	return nil
}

func validateLocale(ans any) error {
	s, _ := ans.(string)
	_, err := segment.ParseLocale(s)
	return err
}

func validateFraction(ans any) error {
	s, _ := ans.(string)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 || f > 1 {
		return errors.Errorf("%q is not a number in (0, 1]", s)
	}
	return nil
}
