package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/yacchi/jubako"
)

// isolate はユーザー設定とプロジェクト設定を一時ディレクトリに切り替える
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	for _, key := range []string{
		"TEXTRANK_METHOD", "TEXTRANK_SUMMARY_METHOD",
		"TEXTRANK_LOCALE", "TEXTRANK_SEGMENT_LOCALE",
	} {
		// t.Setenv で復元を登録してから未設定にする
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Chdir(t.TempDir())
	ResetConfig()
	t.Cleanup(ResetConfig)
	return home
}

func loadStore(t *testing.T) *Store {
	t.Helper()
	store, err := newConfigStore()
	if err != nil {
		t.Fatalf("newConfigStore failed: %v", err)
	}
	if err := store.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	return store
}

func TestDefaultConfig(t *testing.T) {
	isolate(t)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	resolved := cfg.Resolved()
	if resolved.Summary.Method != "textrank" {
		t.Errorf("Summary.Method = %q, want %q", resolved.Summary.Method, "textrank")
	}
	if resolved.Summary.Fraction != 0.2 {
		t.Errorf("Summary.Fraction = %v, want %v", resolved.Summary.Fraction, 0.2)
	}
	if resolved.Summary.Order != "document" || !resolved.Summary.Normalize {
		t.Errorf("Summary = %+v, want document order with normalization", resolved.Summary)
	}
	if resolved.Rank.Damping != 0.85 || resolved.Rank.Tolerance != 0.0001 || resolved.Rank.MaxIterations != 100 {
		t.Errorf("Rank = %+v", resolved.Rank)
	}
	if resolved.Rank.IncludeIsolated {
		t.Error("Rank.IncludeIsolated should default to false")
	}
	if resolved.Segment.Locale != "en" || resolved.Segment.Stem {
		t.Errorf("Segment = %+v", resolved.Segment)
	}
	if resolved.Display.Output != "text" || resolved.Display.Color != "auto" {
		t.Errorf("Display = %+v", resolved.Display)
	}
	if !resolved.Cache.Enabled || resolved.Cache.TTL != 86400 {
		t.Errorf("Cache = %+v", resolved.Cache)
	}

	again, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if again != cfg {
		t.Error("Load() should return the cached store")
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("TEXTRANK_SUMMARY_METHOD", "lexrank")
	t.Setenv("TEXTRANK_RANK_MAX_ITERATIONS", "50")
	t.Setenv("TEXTRANK_CACHE_ENABLED", "false")

	store := loadStore(t)

	if got := store.Summary().Method; got != "lexrank" {
		t.Errorf("Summary.Method = %q, want %q", got, "lexrank")
	}
	if got := store.Rank().MaxIterations; got != 50 {
		t.Errorf("Rank.MaxIterations = %d, want 50", got)
	}
	if store.Cache().Enabled {
		t.Error("Cache.Enabled = true, want false")
	}
}

func TestEnvShortcuts(t *testing.T) {
	isolate(t)
	t.Setenv("TEXTRANK_LOCALE", "ja")

	store := loadStore(t)
	if got := store.Segment().Locale; got != "ja" {
		t.Errorf("Segment.Locale = %q, want %q", got, "ja")
	}
}

func TestEnvShortcutsPriority(t *testing.T) {
	isolate(t)
	// 完全形式が設定されている場合は、ショートカットより優先
	t.Setenv("TEXTRANK_METHOD", "lexrank")
	t.Setenv("TEXTRANK_SUMMARY_METHOD", "textrank")

	store := loadStore(t)
	if got := store.Summary().Method; got != "textrank" {
		t.Errorf("Summary.Method = %q, want %q (full form should take priority)", got, "textrank")
	}
}

func TestSetFlagsLayer(t *testing.T) {
	isolate(t)
	t.Setenv("TEXTRANK_SEGMENT_LOCALE", "fr")

	store := loadStore(t)
	if err := store.SetFlagsLayer([]jubako.SetOption{
		jubako.String(PathSegmentLocale, "ja"),
		jubako.String(PathDisplayOutput, "json"),
	}); err != nil {
		t.Fatalf("SetFlagsLayer failed: %v", err)
	}

	if got := store.Segment().Locale; got != "ja" {
		t.Errorf("Segment.Locale = %q, want %q (flags override env)", got, "ja")
	}
	if got := store.Display().Output; got != "json" {
		t.Errorf("Display.Output = %q, want %q", got, "json")
	}
}

func TestProjectConfig(t *testing.T) {
	isolate(t)
	if err := os.WriteFile(DefaultProjectConfigFile, []byte("summary:\n  order: score\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := loadStore(t)
	if got := store.Summary().Order; got != "score" {
		t.Errorf("Summary.Order = %q, want %q", got, "score")
	}
	if got := store.Summary().Method; got != "textrank" {
		t.Errorf("Summary.Method = %q, want default %q", got, "textrank")
	}
	if root, err := store.GetProjectRoot(); err != nil || root == "" {
		t.Errorf("GetProjectRoot() = %q, %v", root, err)
	}
}

func TestSetAndSave(t *testing.T) {
	home := isolate(t)
	if err := os.MkdirAll(filepath.Join(home, AppName), 0o755); err != nil {
		t.Fatal(err)
	}

	store := loadStore(t)
	if want := filepath.Join(home, AppName, "config.yaml"); store.GetUserConfigPath() != want {
		t.Errorf("GetUserConfigPath() = %q, want %q", store.GetUserConfigPath(), want)
	}

	if err := store.Set("summary.fraction", 0.5); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Save(context.Background()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded := loadStore(t)
	if got := reloaded.Summary().Fraction; got != 0.5 {
		t.Errorf("Summary.Fraction after reload = %v, want 0.5", got)
	}
}

func TestGetAndWalk(t *testing.T) {
	isolate(t)
	store := loadStore(t)

	if got := store.Get("summary.method"); got != "textrank" {
		t.Errorf("Get(summary.method) = %v, want textrank", got)
	}
	if got := store.Get("no.such.key"); got != nil {
		t.Errorf("Get(no.such.key) = %v, want nil", got)
	}

	entries := map[string]WalkEntry{}
	store.Walk(func(entry WalkEntry) bool {
		entries[entry.Path] = entry
		return true
	})

	fraction, ok := entries["summary.fraction"]
	if !ok {
		t.Fatalf("Walk did not visit summary.fraction; got %d entries", len(entries))
	}
	if fraction.Layer != LayerDefaults {
		t.Errorf("summary.fraction layer = %q, want %q", fraction.Layer, LayerDefaults)
	}
	if fmt.Sprint(fraction.DefaultValue) != "0.2" {
		t.Errorf("summary.fraction default = %v, want 0.2", fraction.DefaultValue)
	}
}

func TestPointerConversion(t *testing.T) {
	tests := []struct {
		dot     string
		pointer string
	}{
		{dot: "summary.fraction", pointer: "/summary/fraction"},
		{dot: "cache.ttl", pointer: "/cache/ttl"},
	}
	for _, tt := range tests {
		if got := DotToPointer(tt.dot); got != tt.pointer {
			t.Errorf("DotToPointer(%q) = %q, want %q", tt.dot, got, tt.pointer)
		}
		if got := PointerToDot(tt.pointer); got != tt.dot {
			t.Errorf("PointerToDot(%q) = %q, want %q", tt.pointer, got, tt.dot)
		}
	}
}

func TestFindGitRoot(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "docs", "notes")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, ".git"), []byte("gitdir: elsewhere\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(nested)

	got, err := findGitRoot()
	if err != nil {
		t.Fatalf("findGitRoot() error = %v", err)
	}
	if got != root {
		t.Errorf("findGitRoot() = %q, want %q", got, root)
	}

	if path := GetProjectConfigPathForRoot(root); path != filepath.Join(root, DefaultProjectConfigFile) {
		t.Errorf("GetProjectConfigPathForRoot() = %q", path)
	}
	yml := filepath.Join(root, ".textrank.yml")
	if err := os.WriteFile(yml, []byte("summary:\n  fraction: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if path := GetProjectConfigPathForRoot(root); path != yml {
		t.Errorf("GetProjectConfigPathForRoot() = %q, want %q", path, yml)
	}
}
