package config

import (
	"os"
	"path/filepath"
)

// ProjectConfigFiles は検索するファイル名の優先順
var ProjectConfigFiles = []string{
	".textrank.yaml",
	".textrank.yml",
}

// DefaultProjectConfigFile はデフォルトのプロジェクト設定ファイル名
const DefaultProjectConfigFile = ".textrank.yaml"

// walkUp はカレントディレクトリからルートまで match を適用し、
// 最初に見つかった結果を返す。見つからなければ "" を返す
func walkUp(match func(dir string) (string, bool)) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if found, ok := match(dir); ok {
			return found, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// configFileIn は dir にあるプロジェクト設定ファイルを返す
func configFileIn(dir string) (string, bool) {
	for _, name := range ProjectConfigFiles {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// findProjectConfigPath は .textrank.yaml を上位ディレクトリに向かって探す
func findProjectConfigPath() (string, error) {
	return walkUp(configFileIn)
}

// findGitRoot は .git を持つ最も近いディレクトリを返す
// worktree では .git はファイルになる
func findGitRoot() (string, error) {
	return walkUp(func(dir string) (string, bool) {
		_, err := os.Stat(filepath.Join(dir, ".git"))
		return dir, err == nil
	})
}

// GetProjectConfigPathForRoot は root のプロジェクト設定ファイルパスを返す
// まだ存在しない場合は .textrank.yaml
func GetProjectConfigPathForRoot(root string) string {
	if path, ok := configFileIn(root); ok {
		return path
	}
	return filepath.Join(root, DefaultProjectConfigFile)
}
