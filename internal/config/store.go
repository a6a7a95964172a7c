package config

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/yacchi/jubako"
	"github.com/yacchi/jubako/format/yaml"
	"github.com/yacchi/jubako/layer"
	"github.com/yacchi/jubako/layer/env"
	"github.com/yacchi/jubako/layer/mapdata"
	"github.com/yacchi/jubako/source/bytes"
	"github.com/yacchi/jubako/source/fs"
)

// Store は設定のレイヤー管理を行うjubakoベースの実装
type Store struct {
	mu sync.RWMutex

	// メインの設定ストア
	store *jubako.Store[ResolvedConfig]

	// プロジェクト設定ファイルのパス
	projectConfigPath string
}

// newConfigStore は新しいConfigStoreを作成する
// すべてのレイヤーを静的に追加する。ファイルが存在しない場合は空として扱う。
func newConfigStore() (*Store, error) {
	store := jubako.New[ResolvedConfig]()

	// Layer 1: Defaults (embedded YAML)
	if err := store.Add(
		layer.New(
			LayerDefaults,
			bytes.FromString(string(defaultConfigYAML)),
			yaml.New(),
		),
		jubako.WithReadOnly(),
		jubako.WithNoWatch(),
	); err != nil {
		return nil, err
	}

	// Layer 2: User config (~/.config/textrank/config.yaml)
	userConfigPath, err := configPath()
	if err != nil {
		return nil, err
	}
	if err := store.Add(
		layer.New(
			LayerUser,
			fs.New(userConfigPath),
			yaml.New(),
		),
		jubako.WithOptional(),
	); err != nil {
		return nil, err
	}

	// Layer 3: Project config (.textrank.yaml)
	// 見つかったらそのパス、なければカレントディレクトリの .textrank.yaml をデフォルト
	projectConfigPath, _ := findProjectConfigPath()
	if projectConfigPath == "" {
		projectConfigPath = DefaultProjectConfigFile
	}
	if err := store.Add(
		layer.New(
			LayerProject,
			fs.New(projectConfigPath),
			yaml.New(),
		),
		jubako.WithOptional(),
	); err != nil {
		return nil, err
	}

	// Layer 4: Environment variables
	// jubako タグの env: ディレクティブからスキーマを生成する
	if err := store.Add(
		env.NewWithAutoSchema(LayerEnv, EnvPrefix,
			env.WithEnvironFunc(expandEnvShortcuts),
		),
		jubako.WithReadOnly(),
	); err != nil {
		return nil, err
	}

	// Layer 5: Command-line flags
	// 静的に空のレイヤーを追加。SetFlagsLayer で値を設定
	if err := store.Add(
		mapdata.New(LayerArgs, nil),
	); err != nil {
		return nil, err
	}

	return &Store{
		store:             store,
		projectConfigPath: projectConfigPath,
	}, nil
}

// LoadAll は全レイヤーを読み込んでConfigを構築する
func (s *Store) LoadAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load(ctx)
}

// SetFlagsLayer はコマンドラインフラグからのオーバーライドを設定する
func (s *Store) SetFlagsLayer(options []jubako.SetOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Set(LayerArgs, options...)
}

// Reload は設定を再読み込みする
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Reload(ctx)
}

// ====================
// アクセサ（読み取り）
// ====================

// Resolved は解決済み設定を返す
func (s *Store) Resolved() *ResolvedConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resolved := s.store.Get()
	return &resolved
}

// Rank はPageRank設定を取得する
func (s *Store) Rank() *ResolvedRank {
	return &s.Resolved().Rank
}

// Summary は要約設定を取得する
func (s *Store) Summary() *ResolvedSummary {
	return &s.Resolved().Summary
}

// Segment は文分割設定を取得する
func (s *Store) Segment() *ResolvedSegment {
	return &s.Resolved().Segment
}

// Display は表示設定を取得する
func (s *Store) Display() *ResolvedDisplay {
	return &s.Resolved().Display
}

// Cache はキャッシュ設定を取得する
func (s *Store) Cache() *ResolvedCache {
	return &s.Resolved().Cache
}

// GetProjectConfigPath はプロジェクト設定ファイルのパスを返す
func (s *Store) GetProjectConfigPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projectConfigPath
}

// GetUserConfigPath はユーザー設定ファイルのパスを返す
func (s *Store) GetUserConfigPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if info := s.store.GetLayerInfo(LayerUser); info != nil {
		return info.Path()
	}
	return ""
}

// GetProjectRoot はプロジェクトルートディレクトリを返す
// プロジェクト設定ファイルのパスからディレクトリを取得し、
// 見つからない場合は .git を検索する
func (s *Store) GetProjectRoot() (string, error) {
	s.mu.RLock()
	projectPath := s.projectConfigPath
	s.mu.RUnlock()

	if projectPath != "" && filepath.IsAbs(projectPath) {
		return filepath.Dir(projectPath), nil
	}
	return findGitRoot()
}

// SetProjectConfigPath はプロジェクト設定ファイルのパスを設定する
func (s *Store) SetProjectConfigPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projectConfigPath = path
}

// ====================
// セッター（書き込み）
// ====================

// Set はドット区切りのキーで値を設定する（ユーザーレイヤー）
func (s *Store) Set(key string, value any) error {
	return s.SetToLayer(LayerUser, key, value)
}

// SetToLayer は指定レイヤーに値を設定する（CLIコマンド用）
func (s *Store) SetToLayer(layerName, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.SetTo(layer.Name(layerName), DotToPointer(key), value)
}

// Save は更新があったレイヤーを保存する
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Save(ctx)
}

// ====================
// CLIコマンド用メソッド
// ====================

// Get は指定キーの値を取得する（CLIコマンド用）
// 存在しないキーは nil を返す
func (s *Store) Get(key string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rv := s.store.GetAt(DotToPointer(key))
	if rv.Exists {
		return rv.Value
	}
	return nil
}

// WalkEntry は Walk で返されるエントリ情報
type WalkEntry struct {
	Path         string // ドット区切りのパス
	Value        any    // 解決済みの値
	Layer        string // 値の出所となるレイヤー名
	DefaultValue any    // デフォルト値（存在しない場合は nil）
}

// WalkFunc は Walk で使用するコールバック関数の型
type WalkFunc func(entry WalkEntry) bool

// Walk は全設定パスをイテレートする
// fn が false を返すとイテレーションを停止する
func (s *Store) Walk(fn WalkFunc) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.store.Walk(func(ctx jubako.WalkContext) bool {
		rv := ctx.Value()
		if !rv.Exists {
			return true
		}
		layerName := ""
		if rv.Layer != nil {
			layerName = string(rv.Layer.Name())
		}

		var defaultValue any
		for _, v := range ctx.AllValues() {
			if v.Layer != nil && string(v.Layer.Name()) == LayerDefaults {
				defaultValue = v.Value
				break
			}
		}

		// /summary/fraction → summary.fraction
		return fn(WalkEntry{
			Path:         PointerToDot(ctx.Path),
			Value:        rv.Value,
			Layer:        layerName,
			DefaultValue: defaultValue,
		})
	})
}

// ====================
// グローバルストア管理
// ====================

var (
	globalStore   *Store
	globalStoreMu sync.RWMutex
)

// Load はグローバル設定ストアを初期化してロードする
// すでにロード済みの場合は既存のストアを返す
func Load(ctx context.Context) (*Store, error) {
	globalStoreMu.Lock()
	defer globalStoreMu.Unlock()

	if globalStore != nil {
		return globalStore, nil
	}

	store, err := newConfigStore()
	if err != nil {
		return nil, err
	}

	if err := store.LoadAll(ctx); err != nil {
		return nil, err
	}

	globalStore = store
	return globalStore, nil
}

// ResetConfig はグローバル設定ストアをリセットする（テスト用）
func ResetConfig() {
	globalStoreMu.Lock()
	defer globalStoreMu.Unlock()
	globalStore = nil
}
