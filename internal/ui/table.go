package ui

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/width"
)

// Table はテーブル出力
type Table struct {
	headers  []string
	rows     [][]string
	maxWidth map[int]int
}

// NewTable は新しいテーブルを作成する
func NewTable(headers ...string) *Table {
	return &Table{
		headers:  headers,
		rows:     make([][]string, 0),
		maxWidth: make(map[int]int),
	}
}

// SetMaxWidth は指定カラムの最大表示幅を設定する。超えた分は "…" で切り詰める
func (t *Table) SetMaxWidth(col, w int) {
	t.maxWidth[col] = w
}

// AddRow は行を追加する
func (t *Table) AddRow(values ...string) {
	for i, v := range values {
		if w, ok := t.maxWidth[i]; ok {
			values[i] = Truncate(v, w)
		}
	}
	t.rows = append(t.rows, values)
}

// Len は行数を返す
func (t *Table) Len() int {
	return len(t.rows)
}

// Render はテーブルを出力する
func (t *Table) Render(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, strings.Join(t.headers, "\t"))
	for _, row := range t.rows {
		_, _ = fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	_ = tw.Flush()
}

// RenderWithColor は色付きでテーブルを出力する
// ANSIエスケープシーケンスと全角文字を考慮してカラム幅を揃える
func (t *Table) RenderWithColor(w io.Writer, colorEnabled bool) {
	if !colorEnabled {
		t.Render(w)
		return
	}

	colWidths := t.calculateColumnWidths()

	// ヘッダー出力（太字）
	for i, h := range t.headers {
		if i > 0 {
			_, _ = fmt.Fprint(w, "  ")
		}
		_, _ = fmt.Fprint(w, padRight(Bold(h), colWidths[i], displayWidth(h)))
	}
	_, _ = fmt.Fprintln(w)

	for _, row := range t.rows {
		for i, cell := range row {
			if i > 0 {
				_, _ = fmt.Fprint(w, "  ")
			}
			// 最終カラムはパディングしない
			if i < len(colWidths) && i < len(row)-1 {
				_, _ = fmt.Fprint(w, padRight(cell, colWidths[i], displayWidth(cell)))
			} else {
				_, _ = fmt.Fprint(w, cell)
			}
		}
		_, _ = fmt.Fprintln(w)
	}
}

// calculateColumnWidths は各カラムの最大表示幅を計算する
func (t *Table) calculateColumnWidths() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = displayWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], displayWidth(cell))
			}
		}
	}
	return widths
}

// ansiEscapeRegex はANSIエスケープシーケンスにマッチする正規表現
var ansiEscapeRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// displayWidth はANSIエスケープシーケンスを除いた表示幅を返す
// 全角文字は幅2としてカウント
func displayWidth(s string) int {
	n := 0
	for _, r := range ansiEscapeRegex.ReplaceAllString(s, "") {
		n += runeWidth(r)
	}
	return n
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// Truncate は表示幅が w を超える文字列を切り詰める
func Truncate(s string, w int) string {
	if w <= 0 || displayWidth(s) <= w {
		return s
	}
	var b strings.Builder
	n := 0
	for _, r := range s {
		rw := runeWidth(r)
		if n+rw > w-1 {
			break
		}
		b.WriteRune(r)
		n += rw
	}
	b.WriteString("…")
	return b.String()
}

// padRight は文字列を指定幅まで右側にスペースでパディングする
// currentWidth は現在の表示幅（ANSIエスケープシーケンスを除いた幅）
func padRight(s string, targetWidth, currentWidth int) string {
	if currentWidth >= targetWidth {
		return s
	}
	return s + strings.Repeat(" ", targetWidth-currentWidth)
}
