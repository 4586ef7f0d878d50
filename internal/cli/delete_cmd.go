package cli

import (
	"fmt"
	"io"
	"os"
)

// RunDelete は delete サブコマンドを実行する。
func RunDelete(configDir string, args []string) {
	e := mustLoadEnv(configDir)
	if err := runDelete(e, args, os.Stdout); err != nil {
		exitError("%v", err)
	}
}

func runDelete(e *env, args []string, w io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("測定値 ID を指定してください: transwatch delete <id>")
	}

	h, err := e.openHistory()
	if err != nil {
		return err
	}

	id := args[0]
	if err := h.Delete(id); err != nil {
		return err
	}

	fmt.Fprintf(w, "測定値 '%s' を削除しました\n", id)
	return nil
}
