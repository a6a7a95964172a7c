package summary

import (
	"regexp"
	"strings"
)

var (
	// Markdownの見出し、リスト、引用などの記号を除去するための正規表現
	// 行頭の #, *, -, > を削除（改行はまたがない）
	reMarkdownHead = regexp.MustCompile(`(?m)^[ \t#\*\->]+`)

	// 強調記号 **, __, ~~ を削除
	reMarkdownDeco = regexp.MustCompile(`[\*~_]{2,}`)

	// URLを除去
	reURL = regexp.MustCompile(`https?://[\w!?/+\-_~=;.,*&@#$%()'[\\\]]+`)

	// コードフェンス（```lang など）の行を除去
	reCodeFence = regexp.MustCompile("(?m)^[ \t]*`{3,}.*$")

	// 記号のみの行判定（英数字・ひらがな・カタカナ・漢字が含まれていない）
	reSymbolOnly = regexp.MustCompile(`^[[:punct:][:space:]]*$`)
)

// normalizeText removes markdown decoration, URLs and symbol-only lines.
// Line structure is kept so blank lines still separate paragraphs.
func normalizeText(text string) string {
	text = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(text)

	text = reURL.ReplaceAllString(text, "")
	text = reCodeFence.ReplaceAllString(text, "")
	text = reMarkdownHead.ReplaceAllString(text, "")
	text = reMarkdownDeco.ReplaceAllString(text, "")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		// 記号のみの行は空行（段落区切り）として扱う
		if reSymbolOnly.MatchString(line) {
			line = ""
		}
		lines[i] = line
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
