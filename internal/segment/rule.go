package segment

import (
	"strings"
	"unicode"
)

// RuleSegmenter splits on sentence terminators (. ! ? and their
// full-width forms) and on blank lines. Numbered list markers such as
// "1. " do not end a sentence.
type RuleSegmenter struct{}

// Segment implements Segmenter.
func (RuleSegmenter) Segment(text string) []string {
	var out []string
	for _, para := range paragraphs(text) {
		out = append(out, splitLine(para)...)
	}
	return out
}

func isTerminator(r rune) bool {
	switch r {
	case '.', '!', '?', '。', '！', '？', '｡':
		return true
	}
	return false
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '}', '”', '’', '」', '』', '）':
		return true
	}
	return false
}

// isFullWidth は後続の空白なしで文を終端できる終端記号
func isFullWidth(r rune) bool {
	return r == '。' || r == '！' || r == '？' || r == '｡'
}

// isListMarker は行頭の "1." のような番号かどうかを判定する
func isListMarker(runes []rune, dot int) bool {
	if dot == 0 {
		return false
	}
	for _, r := range runes[:dot] {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func splitLine(line string) []string {
	runes := []rune(line)
	var out []string
	var current strings.Builder

	emit := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			out = append(out, s)
		}
		current.Reset()
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)
		if !isTerminator(r) || (r == '.' && isListMarker(runes, i)) {
			continue
		}

		j := i + 1
		for j < len(runes) && isTerminator(runes[j]) {
			current.WriteRune(runes[j])
			j++
		}
		for j < len(runes) && isCloser(runes[j]) {
			current.WriteRune(runes[j])
			j++
		}
		i = j - 1

		// 半角の終端記号は空白か行末が続く場合のみ文末とみなす（"3.14" など）
		if !isFullWidth(r) && j < len(runes) && !unicode.IsSpace(runes[j]) {
			continue
		}
		emit()
	}
	emit()
	return out
}
