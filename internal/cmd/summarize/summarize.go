package summarize

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"

	"github.com/yacchi/textrank/internal/cmdutil"
	"github.com/yacchi/textrank/internal/debug"
	"github.com/yacchi/textrank/internal/summary"
	"github.com/yacchi/textrank/internal/ui"
)

var SummarizeCmd = &cobra.Command{
	Use:     "summarize [file...]",
	Aliases: []string{"sum"},
	Short:   "Summarize text",
	Long: `Summarize files or standard input by extracting the most central sentences.

Multiple files are joined into one document unless --page-per-file is given.
Use "-" to read standard input alongside files.

Examples:
  textrank summarize README.md
  cat article.txt | textrank summarize --fraction 0.3
  textrank summarize -n 3 --order score chapter*.txt
  textrank summarize --chunks pages.yaml -o json --jq '.sentences[].text'
  textrank summarize --locale ja --method lexrank novel.txt`,
	RunE: runSummarize,
}

var rankFlags cmdutil.RankFlags

func init() {
	rankFlags.Register(SummarizeCmd.Flags())
}

func runSummarize(c *cobra.Command, args []string) error {
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

	in, err := cmdutil.ReadInput(c, args)
	if err != nil {
		return err
	}

	p, err := summary.NewPipeline(opts)
	if err != nil {
		return err
	}

	noCache, _ := c.Flags().GetBool("no-cache")
	s, err := cmdutil.CachedSummary(cfg.Cache(), noCache, in.CacheKey(p.Options()), func() (*summary.Summary, error) {
		units := in.Units(p)
		debug.Log("input segmented", "units", len(units), "chunked", in.Chunked)
		return p.Summarize(c.Context(), units)
	})
	if err != nil {
		return err
	}

	if !s.Converged {
		ui.Warning("PageRank did not converge after %d iterations; scores are approximate", s.Iterations)
	}

	out := c.OutOrStdout()
	switch format {
	case cmdutil.FormatJSON:
		return cmdutil.OutputJSON(out, func(e *jx.Encoder) {
			cmdutil.EncodeSummary(e, s)
		}, cmdutil.JSONOptions(c))
	case cmdutil.FormatTable:
		outputTable(out, s)
	default:
		outputText(out, s)
	}
	return nil
}

func outputText(w io.Writer, s *summary.Summary) {
	for _, sentence := range s.Sentences {
		fmt.Fprintln(w, sentence.Text)
	}
}

func outputTable(w io.Writer, s *summary.Summary) {
	var maxScore float64
	for _, sentence := range s.Sentences {
		maxScore = max(maxScore, sentence.Score)
	}

	table := ui.NewTable("PAGE", "INDEX", "SCORE", "SENTENCE")
	table.SetMaxWidth(3, 80)
	for _, sentence := range s.Sentences {
		page := sentence.PageID
		if page == "" {
			page = "-"
		}
		score := "-"
		if s.Method == summary.MethodTextRank {
			score = ui.ScoreColor(sentence.Score, maxScore, strconv.FormatFloat(sentence.Score, 'f', 4, 64))
		}
		table.AddRow(page, strconv.Itoa(sentence.Index), score, sentence.Text)
	}
	table.RenderWithColor(w, ui.IsColorEnabled())

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %d of %d sentences (%s", ui.Bold("Summary"), len(s.Sentences), s.TotalUnits, s.Method)
	if s.Method == summary.MethodTextRank {
		fmt.Fprintf(w, ", %d iterations", s.Iterations)
	}
	fmt.Fprintln(w, ")")
}
