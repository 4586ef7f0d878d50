package infra

import (
	"os"
	"path/filepath"
	"strings"
)

// homeDir はカレントユーザーのホームディレクトリを返す。
// os.UserHomeDir が失敗した場合は HOME 環境変数にフォールバックする。
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.Getenv("HOME")
	}
	return home
}

// ExpandTilde は先頭の "~" をホームディレクトリに展開する。
// "~user" 形式には対応しない。
func ExpandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home := homeDir()
	if home == "" {
		return "", os.ErrNotExist
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
