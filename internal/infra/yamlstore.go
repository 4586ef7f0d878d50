package infra

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// YAMLStore は YAML ファイルの読み書きを担う。設定ファイルと測定データの両方で使う。
type YAMLStore interface {
	// Read はファイルを読み込み dest にデシリアライズする。
	// ファイルが存在しない場合はエラーを返さず、dest は変更されない。
	Read(path string, dest interface{}) error

	// Write はデータを YAML としてファイルに書き込む。
	// 親ディレクトリが存在しない場合は作成する。パーミッションは 0600。
	Write(path string, data interface{}) error

	// Exists はファイルが存在するかを返す。
	Exists(path string) bool
}

type yamlStore struct{}

// NewYAMLStore は YAMLStore の実装を返す。
func NewYAMLStore() YAMLStore {
	return &yamlStore{}
}

func (s *yamlStore) Read(path string, dest interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (s *yamlStore) Write(path string, data interface{}) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	buf, err := yaml.Marshal(data)
	if err != nil {
		return err
	}

	// 同じディレクトリの一時ファイルに書いてからリネームする。
	// CLI と TUI が同じデータファイルを書き換えるため一時ファイル名は毎回変える。
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

func (s *yamlStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
