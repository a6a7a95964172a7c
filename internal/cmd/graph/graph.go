package graph

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

var GraphCmd = &cobra.Command{
	Use:   "graph [file...]",
	Short: "Show the sentence similarity graph",
	Long: `Show the nodes and weighted edges of the sentence similarity graph.

Two sentences are linked when they share at least one word. The weight is
the number of shared words normalized by the log lengths of both sentences.

Examples:
  textrank graph article.txt
  textrank graph -o json article.txt | jq '.edges | length'`,
	RunE: runGraph,
}

var rankFlags cmdutil.RankFlags

func init() {
	rankFlags.Register(GraphCmd.Flags())
}

func runGraph(c *cobra.Command, args []string) error {
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

	g := p.Graph(in.Units(p))
	if g.Len() == 0 {
		return rank.ErrEmptyGraph
	}

	out := c.OutOrStdout()
	switch format {
	case cmdutil.FormatJSON:
		return cmdutil.OutputJSON(out, func(e *jx.Encoder) {
			cmdutil.EncodeGraph(e, g)
		}, cmdutil.JSONOptions(c))
	case cmdutil.FormatTable:
		outputTable(out, g)
	default:
		outputText(out, g)
	}
	return nil
}

func nodeIDs(g *rank.Graph) ([]rank.Unit, map[string]int) {
	nodes := g.Nodes()
	ids := make(map[string]int, len(nodes))
	for i, u := range nodes {
		ids[u.Key()] = i
	}
	return nodes, ids
}

func outputText(w io.Writer, g *rank.Graph) {
	nodes, ids := nodeIDs(g)
	fmt.Fprintf(w, "%d nodes, %d edges\n\n", g.Len(), g.EdgeCount())
	for i, u := range nodes {
		fmt.Fprintf(w, "[%d] %s\n", i, u.Text)
	}
	fmt.Fprintln(w)
	for _, e := range g.Edges() {
		fmt.Fprintf(w, "[%d] -- [%d]  %.4f\n", ids[e.From.Key()], ids[e.To.Key()], e.Weight)
	}
}

func outputTable(w io.Writer, g *rank.Graph) {
	nodes, ids := nodeIDs(g)

	table := ui.NewTable("ID", "DEGREE", "WORDS", "SENTENCE")
	table.SetMaxWidth(3, 80)
	for i, u := range nodes {
		table.AddRow(
			strconv.Itoa(i),
			strconv.Itoa(len(g.Neighbors(u))),
			strconv.Itoa(u.Length()),
			u.Text,
		)
	}
	table.RenderWithColor(w, ui.IsColorEnabled())
	fmt.Fprintln(w)

	var maxWeight float64
	for _, e := range g.Edges() {
		maxWeight = max(maxWeight, e.Weight)
	}
	edges := ui.NewTable("FROM", "TO", "WEIGHT")
	for _, e := range g.Edges() {
		edges.AddRow(
			strconv.Itoa(ids[e.From.Key()]),
			strconv.Itoa(ids[e.To.Key()]),
			ui.ScoreColor(e.Weight, maxWeight, strconv.FormatFloat(e.Weight, 'f', 4, 64)),
		)
	}
	edges.RenderWithColor(w, ui.IsColorEnabled())
}
