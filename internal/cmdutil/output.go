package cmdutil

import (
	"bytes"
	"io"

	"github.com/cli/go-gh/v2/pkg/jq"
	"github.com/go-faster/jx"

	"github.com/yacchi/textrank/internal/ui"
)

// JSONOutputOptions holds options for JSON output with optional jq filtering.
type JSONOutputOptions struct {
	JQFilter string // jq filter expression
	Pretty   bool   // Pretty-print output
}

// OutputJSON encodes a document with encode and writes it to w, applying
// the jq filter when one is given.
func OutputJSON(w io.Writer, encode func(e *jx.Encoder), opts JSONOutputOptions) error {
	var e jx.Encoder
	if opts.Pretty && opts.JQFilter == "" {
		e.SetIdent(2)
	}
	encode(&e)

	if opts.JQFilter != "" {
		return applyJQFilter(w, e.Bytes(), opts.JQFilter, opts.Pretty)
	}

	if _, err := w.Write(e.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// applyJQFilter applies a jq filter to JSON data.
func applyJQFilter(w io.Writer, jsonBytes []byte, filter string, colorize bool) error {
	input := bytes.NewReader(jsonBytes)
	useColor := colorize && ui.IsColorEnabled()
	return jq.EvaluateFormatted(input, w, filter, "  ", useColor)
}
