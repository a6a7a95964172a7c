package cmdutil

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/yacchi/textrank/internal/rank"
	"github.com/yacchi/textrank/internal/summary"
)

// EncodeSummary writes s as a JSON object.
func EncodeSummary(e *jx.Encoder, s *summary.Summary) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("method", func(e *jx.Encoder) { e.Str(s.Method) })
		e.Field("total_units", func(e *jx.Encoder) { e.Int(s.TotalUnits) })
		e.Field("nodes", func(e *jx.Encoder) { e.Int(s.Nodes) })
		e.Field("iterations", func(e *jx.Encoder) { e.Int(s.Iterations) })
		e.Field("converged", func(e *jx.Encoder) { e.Bool(s.Converged) })
		e.Field("sentences", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, sentence := range s.Sentences {
					e.Obj(func(e *jx.Encoder) {
						e.Field("text", func(e *jx.Encoder) { e.Str(sentence.Text) })
						e.Field("score", func(e *jx.Encoder) { e.Float64(sentence.Score) })
						e.Field("page_id", func(e *jx.Encoder) { e.Str(sentence.PageID) })
						e.Field("index", func(e *jx.Encoder) { e.Int(sentence.Index) })
					})
				}
			})
		})
	})
}

// DecodeSummary reads a summary written by EncodeSummary.
func DecodeSummary(data []byte) (*summary.Summary, error) {
	var s summary.Summary
	err := jx.DecodeBytes(data).Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "method":
			s.Method, err = d.Str()
		case "total_units":
			s.TotalUnits, err = d.Int()
		case "nodes":
			s.Nodes, err = d.Int()
		case "iterations":
			s.Iterations, err = d.Int()
		case "converged":
			s.Converged, err = d.Bool()
		case "sentences":
			err = d.Arr(func(d *jx.Decoder) error {
				var sentence summary.Sentence
				if err := d.Obj(func(d *jx.Decoder, key string) error {
					var err error
					switch key {
					case "text":
						sentence.Text, err = d.Str()
					case "score":
						sentence.Score, err = d.Float64()
					case "page_id":
						sentence.PageID, err = d.Str()
					case "index":
						sentence.Index, err = d.Int()
					default:
						err = d.Skip()
					}
					return err
				}); err != nil {
					return err
				}
				s.Sentences = append(s.Sentences, sentence)
				return nil
			})
		default:
			err = d.Skip()
		}
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode summary")
	}
	return &s, nil
}

// EncodeRanking writes scored units with their 1-based rank.
func EncodeRanking(e *jx.Encoder, res *rank.Result, scored []rank.Scored) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("nodes", func(e *jx.Encoder) { e.Int(res.Len()) })
		e.Field("iterations", func(e *jx.Encoder) { e.Int(res.Iterations) })
		e.Field("converged", func(e *jx.Encoder) { e.Bool(res.Converged) })
		e.Field("units", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for i, s := range scored {
					e.Obj(func(e *jx.Encoder) {
						e.Field("rank", func(e *jx.Encoder) { e.Int(i + 1) })
						e.Field("text", func(e *jx.Encoder) { e.Str(s.Unit.Text) })
						e.Field("score", func(e *jx.Encoder) { e.Float64(s.Score) })
						e.Field("page_id", func(e *jx.Encoder) { e.Str(s.Unit.PageID) })
						e.Field("index", func(e *jx.Encoder) { e.Int(s.Unit.OriginalIndex) })
					})
				}
			})
		})
	})
}

// EncodeGraph writes the nodes and undirected edges of g. Edges refer to
// nodes by their position in the node list.
func EncodeGraph(e *jx.Encoder, g *rank.Graph) {
	nodes := g.Nodes()
	ids := make(map[string]int, len(nodes))
	for i, u := range nodes {
		ids[u.Key()] = i
	}

	e.Obj(func(e *jx.Encoder) {
		e.Field("nodes", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for i, u := range nodes {
					e.Obj(func(e *jx.Encoder) {
						e.Field("id", func(e *jx.Encoder) { e.Int(i) })
						e.Field("text", func(e *jx.Encoder) { e.Str(u.Text) })
						e.Field("page_id", func(e *jx.Encoder) { e.Str(u.PageID) })
						e.Field("index", func(e *jx.Encoder) { e.Int(u.OriginalIndex) })
						e.Field("words", func(e *jx.Encoder) {
							e.Arr(func(e *jx.Encoder) {
								for _, w := range u.Words() {
									e.Str(w)
								}
							})
						})
					})
				}
			})
		})
		e.Field("edges", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, edge := range g.Edges() {
					e.Obj(func(e *jx.Encoder) {
						e.Field("from", func(e *jx.Encoder) { e.Int(ids[edge.From.Key()]) })
						e.Field("to", func(e *jx.Encoder) { e.Int(ids[edge.To.Key()]) })
						e.Field("weight", func(e *jx.Encoder) { e.Float64(edge.Weight) })
					})
				}
			})
		})
	})
}
