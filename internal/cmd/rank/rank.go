package rank

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"

	"github.com/yacchi/textrank/internal/cmdutil"
	"github.com/yacchi/textrank/internal/rank"
	"github.com/yacchi/textrank/internal/summary"
	"github.com/yacchi/textrank/internal/ui"
)

var RankCmd = &cobra.Command{
	Use:   "rank [file...]",
	Short: "Score every sentence with TextRank",
	Long: `Score every sentence with TextRank and list them from highest to lowest.

Sentences that share no word with any other sentence are not part of the
graph and are omitted unless --isolated is given. With --top only the
sentences above the 1 - fraction percentile are listed.

Examples:
  textrank rank article.txt
  textrank rank --top --fraction 0.3 article.txt
  textrank rank -o json --jq '.units[0]' article.txt`,
	RunE: runRank,
}

var (
	rankFlags cmdutil.RankFlags
	rankTop   bool
)

func init() {
	rankFlags.Register(RankCmd.Flags())
	RankCmd.Flags().BoolVar(&rankTop, "top", false, "Only list sentences above the 1 - fraction percentile")
}

func runRank(c *cobra.Command, args []string) error {
	cfg, err := cmdutil.GetConfigStore(c)
	if err != nil {
		return err
	}
	opts, err := cmdutil.ResolveOptions(c, &rankFlags)
	if err != nil {
		return err
	}
	format, err := cmdutil.OutputFormat(c, cfg)
	if err != nil {
		return err
	}
	if opts.Method == summary.MethodLexRank {
		ui.Warning("rank always uses textrank; --method lexrank is ignored")
	}

	in, err := cmdutil.ReadInput(c, args)
	if err != nil {
		return err
	}
	p, err := summary.NewPipeline(opts)
	if err != nil {
		return err
	}

	res, err := p.Rank(c.Context(), in.Units(p))
	if err != nil {
		return err
	}
	if !res.Converged {
		ui.Warning("PageRank did not converge after %d iterations; scores are approximate", res.Iterations)
	}

	// percentile 0 は全ノードをスコア順に返す
	percentile := 0.0
	if rankTop {
		percentile = 1 - p.Options().Fraction
	}
	scored := rank.FilterTop(res, percentile)

	out := c.OutOrStdout()
	switch format {
	case cmdutil.FormatJSON:
		return cmdutil.OutputJSON(out, func(e *jx.Encoder) {
			cmdutil.EncodeRanking(e, res, scored)
		}, cmdutil.JSONOptions(c))
	case cmdutil.FormatTable:
		outputTable(out, scored)
	default:
		outputText(out, scored)
	}
	return nil
}

func outputText(w io.Writer, scored []rank.Scored) {
	for _, s := range scored {
		fmt.Fprintf(w, "%.4f\t%s\n", s.Score, s.Unit.Text)
	}
}

func outputTable(w io.Writer, scored []rank.Scored) {
	var maxScore float64
	if len(scored) > 0 {
		maxScore = scored[0].Score
	}

	table := ui.NewTable("RANK", "SCORE", "PAGE", "INDEX", "SENTENCE")
	table.SetMaxWidth(4, 80)
	for i, s := range scored {
		page := s.Unit.PageID
		if page == "" {
			page = "-"
		}
		table.AddRow(
			strconv.Itoa(i+1),
			ui.ScoreColor(s.Score, maxScore, strconv.FormatFloat(s.Score, 'f', 4, 64)),
			page,
			strconv.Itoa(s.Unit.OriginalIndex),
			s.Unit.Text,
		)
	}
	table.RenderWithColor(w, ui.IsColorEnabled())
}
