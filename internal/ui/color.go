package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"golang.org/x/term"
)

var (
	colorEnabled = true

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func init() {
	// 色が使えるかチェック
	colorEnabled = isTerminal(os.Stdout) && os.Getenv("NO_COLOR") == ""
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// SetColorEnabled は色の有効/無効を設定する
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// IsColorEnabled は色が有効かどうかを返す
func IsColorEnabled() bool {
	return colorEnabled
}

// ApplyColorMode は display.color の値（auto / always / never）を反映する
func ApplyColorMode(mode string) error {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		colorEnabled = isTerminal(os.Stdout) && os.Getenv("NO_COLOR") == ""
	case "always":
		colorEnabled = true
	case "never":
		colorEnabled = false
	default:
		return errors.Errorf("invalid color mode %q (want auto, always or never)", mode)
	}
	return nil
}

// SetOutput はメッセージの出力先を差し替える（テスト用）
// nil は標準出力 / 標準エラー出力に戻す
func SetOutput(out, errOut io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	blue   = "\033[34m"
	cyan   = "\033[36m"
	gray   = "\033[90m"
)

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + reset
}

// Bold は太字にする
func Bold(s string) string { return paint(bold, s) }

// Red は赤色にする
func Red(s string) string { return paint(red, s) }

// Green は緑色にする
func Green(s string) string { return paint(green, s) }

// Yellow は黄色にする
func Yellow(s string) string { return paint(yellow, s) }

// Blue は青色にする
func Blue(s string) string { return paint(blue, s) }

// Cyan はシアン色にする
func Cyan(s string) string { return paint(cyan, s) }

// Gray はグレーにする
func Gray(s string) string { return paint(gray, s) }

// ScoreColor は最大スコアに対する相対値で色分けする
func ScoreColor(score, max float64, s string) string {
	if max <= 0 {
		return s
	}
	switch ratio := score / max; {
	case ratio >= 0.66:
		return Green(s)
	case ratio >= 0.33:
		return Yellow(s)
	default:
		return Gray(s)
	}
}

// Success は成功メッセージを出力する
func Success(format string, args ...any) {
	fmt.Fprintf(stdout, Green("✓ ")+format+"\n", args...)
}

// Error はエラーメッセージを出力する
func Error(format string, args ...any) {
	fmt.Fprintf(stderr, Red("✗ ")+format+"\n", args...)
}

// Warning は警告メッセージを出力する
// JSON出力を汚さないよう標準エラーに出す
func Warning(format string, args ...any) {
	fmt.Fprintf(stderr, Yellow("! ")+format+"\n", args...)
}

// Info は情報メッセージを出力する
func Info(format string, args ...any) {
	fmt.Fprintf(stdout, Blue("ℹ ")+format+"\n", args...)
}
