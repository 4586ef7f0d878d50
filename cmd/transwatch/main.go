package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ousiassllc/transwatch/internal/cli"
	"github.com/ousiassllc/transwatch/internal/core"
	"github.com/ousiassllc/transwatch/internal/infra"
)

func main() {
	configDir, args := cli.ParseGlobalFlags()
	configDir = cli.ResolveConfigDir(configDir)

	closer := setupLogging(configDir)
	defer closer()

	if len(args) == 0 {
		cli.RunHelp(configDir, nil)
		return
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "rul":
		cli.RunRUL(configDir, rest)
	case "fdd":
		cli.RunFDD(configDir, rest)
	case "add":
		cli.RunAdd(configDir, rest)
	case "delete", "rm":
		cli.RunDelete(configDir, rest)
	case "history", "ls":
		cli.RunHistory(configDir, rest)
	case "status", "st":
		cli.RunStatus(configDir, rest)
	case "config":
		cli.RunConfig(configDir, rest)
	case "tui":
		cli.RunTUI(configDir, rest)
	case "help", "-h", "--help":
		cli.RunHelp(configDir, rest)
	case "version", "--version":
		cli.RunVersion(configDir, rest)
	default:
		fmt.Fprintf(os.Stderr, "不明なコマンド: %s\n\n", cmd)
		cli.RunHelp(configDir, nil)
		os.Exit(1)
	}
}

// setupLogging は設定ファイルのログ設定を適用し、終了時に呼ぶ関数を返す。
func setupLogging(configDir string) func() {
	configMgr := core.NewConfigManager(infra.NewYAMLStore(), configDir)
	cfg, err := configMgr.LoadConfig()
	if err != nil {
		// 設定ファイルが読めない場合はデフォルト設定を使用
		c := core.DefaultConfig()
		cfg = &c
	}

	logger, closer := infra.NewLogger(cfg.Log, os.Stderr)
	slog.SetDefault(logger)
	return func() { _ = closer.Close() }
}
