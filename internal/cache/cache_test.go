package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}

	data := []byte(`{"method":"textrank","sentences":[{"text":"Horse cat lizard."}]}`)
	if err := c.Set("key", data, time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok, err := c.Get("key")
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v; want hit", ok, err)
	}
	if string(got) != string(data) {
		t.Errorf("Get() = %s, want %s", got, data)
	}

	if _, ok, _ := c.Get("other"); ok {
		t.Error("Get(other) should miss")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	if err := c.Set("key", []byte(`1`), time.Minute); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get("key"); !ok {
		t.Fatal("expected hit before expiry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok, _ := c.Get("key"); ok {
		t.Error("expected miss after expiry")
	}
	if _, err := os.Stat(c.getFilePath("key")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed")
	}
}

func TestFileCacheInvalidData(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set("key", []byte(`{not json`), time.Hour); err == nil {
		t.Error("Set should reject invalid JSON")
	}

	// 壊れたファイルはミス扱い
	if err := os.WriteFile(c.getFilePath("broken"), []byte("garbage"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := c.Get("broken"); ok || err != nil {
		t.Errorf("Get(broken) = %v, %v; want miss without error", ok, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	if c.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", c.Dir(), dir)
	}
	if err := c.Set("key", []byte(`true`), time.Hour); err != nil {
		t.Fatal(err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Clear should remove the cache directory")
	}
}
