package debug

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLogOnlyWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		Disable()
		SetOutput(os.Stderr)
	})

	Log("hidden", "units", 3)
	if buf.Len() != 0 {
		t.Errorf("Log wrote %q while disabled", buf.String())
	}

	Enable()
	if !IsEnabled() {
		t.Fatal("IsEnabled() = false after Enable")
	}
	Log("ranked", "units", 3)
	Logf("iterations=%d", 17)

	out := buf.String()
	for _, want := range []string{"ranked", "units=3", "iterations=17"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}
