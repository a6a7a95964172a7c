// Package debug provides a process-wide debug logger switched on by the
// --debug flag.
package debug

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	enabled bool
	mu      sync.RWMutex
	logger  *log.Logger
)

func init() {
	// デフォルトは無効
	logger = newLogger(os.Stderr)
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "textrank",
	})
}

// Enable はデバッグモードを有効化する
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable はデバッグモードを無効化する
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled はデバッグモードが有効かどうかを返す
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetOutput はログの出力先を差し替える（テスト用）
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w)
}

// Log はデバッグモード時にログを出力する
func Log(msg string, keyvals ...any) {
	mu.RLock()
	on, l := enabled, logger
	mu.RUnlock()
	if !on {
		return
	}
	l.Debug(msg, keyvals...)
}

// Logf はデバッグモード時にフォーマットされたログを出力する
func Logf(format string, args ...any) {
	mu.RLock()
	on, l := enabled, logger
	mu.RUnlock()
	if !on {
		return
	}
	l.Debugf(format, args...)
}
