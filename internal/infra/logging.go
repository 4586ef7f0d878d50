package infra

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ousiassllc/transwatch/internal/core"
)

// ParseLogLevel は設定のログレベル文字列を slog.Level に変換する。未知の値は Info。
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger はログ設定に従って slog.Logger を生成する。
// ファイルが指定されていればローテーション付きで書き込み、
// ディレクトリを作成できない場合は fallback に出力する。
// 戻り値の io.Closer は終了時に呼ぶ。
func NewLogger(cfg core.LogConfig, fallback io.Writer) (*slog.Logger, io.Closer) {
	opts := &slog.HandlerOptions{Level: ParseLogLevel(cfg.Level)}

	logPath := cfg.File
	if expanded, err := ExpandTilde(logPath); err == nil {
		logPath = expanded
	}

	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0700); err == nil {
			w := &lumberjack.Logger{
				Filename:   logPath,
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAgeDays,
				Compress:   cfg.Compress,
				LocalTime:  true,
			}
			return slog.New(slog.NewTextHandler(w, opts)), w
		}
	}

	// ファイルに書き込めない場合は fallback に出力
	if fallback == nil {
		fallback = os.Stderr
	}
	return slog.New(slog.NewTextHandler(fallback, opts)), nopCloser{}
}
