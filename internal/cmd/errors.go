package cmd

import (
	"github.com/go-faster/errors"

	"github.com/yacchi/textrank/internal/cmdutil"
	"github.com/yacchi/textrank/internal/rank"
	"github.com/yacchi/textrank/internal/segment"
	"github.com/yacchi/textrank/internal/summary"
	"github.com/yacchi/textrank/internal/ui"
)

// ExitCode はエラーの終了コード
type ExitCode int

const (
	ExitOK      ExitCode = 0
	ExitError   ExitCode = 1
	ExitUsage   ExitCode = 2
	ExitNoInput ExitCode = 3
	ExitConfig  ExitCode = 4
)

// ConfigError は設定の読み込みや適用の失敗を表す
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return "config: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// HandleError はエラーを処理して適切なメッセージを表示する
func HandleError(err error) ExitCode {
	code := exitCodeOf(err)
	switch code {
	case ExitOK:
	case ExitNoInput:
		ui.Error("Nothing to summarize: no sentences share a word.")
	default:
		ui.Error("%v", err)
	}
	return code
}

func exitCodeOf(err error) ExitCode {
	if err == nil {
		return ExitOK
	}

	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return ExitConfig
	}

	switch {
	case errors.Is(err, rank.ErrEmptyGraph):
		return ExitNoInput
	case errors.Is(err, cmdutil.ErrNoInput),
		errors.Is(err, rank.ErrInvalidOption),
		errors.Is(err, summary.ErrUnknownMethod),
		errors.Is(err, segment.ErrUnsupportedLocale):
		return ExitUsage
	}
	return ExitError
}
