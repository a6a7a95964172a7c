// Package cache stores computed summaries on disk keyed by their inputs.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Cache はキャッシュインターフェース
type Cache interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, data []byte, ttl time.Duration) error
	Clear() error
}

// FileCache はファイルベースのキャッシュ実装
// 値はJSONとしてエンベロープ {"expires_at": ..., "data": ...} に格納する
type FileCache struct {
	dir string
	now func() time.Time
}

// NewFileCache は新しいFileCacheを作成する
// dirが空の場合はユーザーのキャッシュディレクトリを使用する
func NewFileCache(dir string) (*FileCache, error) {
	if dir == "" {
		userCacheDir, err := os.UserCacheDir()
		if err != nil {
			return nil, errors.Wrap(err, "get user cache dir")
		}
		dir = filepath.Join(userCacheDir, "textrank")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrap(err, "create cache dir")
	}

	return &FileCache{dir: dir, now: time.Now}, nil
}

// Dir はキャッシュディレクトリを返す
func (c *FileCache) Dir() string {
	return c.dir
}

func (c *FileCache) getFilePath(key string) string {
	hash := sha256.Sum256([]byte(key))
	filename := hex.EncodeToString(hash[:]) + ".json"
	return filepath.Join(c.dir, filename)
}

// Get はキャッシュを取得する
// キャッシュが存在し、有効期限内であれば data と true を返す
// キャッシュが存在しない、壊れている、または期限切れの場合は false と nil を返す
func (c *FileCache) Get(key string) ([]byte, bool, error) {
	path := c.getFilePath(key)

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var (
		expiresAt time.Time
		data      jx.Raw
	)
	err = jx.DecodeBytes(raw).Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "expires_at":
			s, err := d.Str()
			if err != nil {
				return err
			}
			expiresAt, err = time.Parse(time.RFC3339Nano, s)
			return err
		case "data":
			v, err := d.Raw()
			if err != nil {
				return err
			}
			data = append(jx.Raw(nil), v...)
			return nil
		default:
			return d.Skip()
		}
	})
	if err != nil || data == nil {
		// デコードエラーならキャッシュ無効扱い
		return nil, false, nil
	}

	if c.now().After(expiresAt) {
		// 期限切れならファイルを削除する
		_ = os.Remove(path)
		return nil, false, nil
	}

	return data, true, nil
}

// Set はキャッシュを保存する。data は JSON でなければならない
func (c *FileCache) Set(key string, data []byte, ttl time.Duration) error {
	if !jx.Valid(data) {
		return errors.New("cache data is not valid JSON")
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("expires_at", func(e *jx.Encoder) {
			e.Str(c.now().Add(ttl).UTC().Format(time.RFC3339Nano))
		})
		e.Field("data", func(e *jx.Encoder) {
			e.Raw(data)
		})
	})

	return os.WriteFile(c.getFilePath(key), e.Bytes(), 0600)
}

// Clear はキャッシュディレクトリを削除する
func (c *FileCache) Clear() error {
	return os.RemoveAll(c.dir)
}
