package atoms

import (
	"fmt"

	"github.com/ousiassllc/transwatch/internal/tui"
)

// RenderGas は溶存ガス濃度を "H2 30.0" の形式で描画する。
func RenderGas(name string, ppm float64) string {
	return tui.MutedStyle.Render(name) + " " + tui.TextStyle.Render(fmt.Sprintf("%.1f", ppm))
}

// RenderTemperature は温度を描画する。未測定の場合は "-"。
func RenderTemperature(celsius *float64) string {
	if celsius == nil {
		return tui.MutedStyle.Render("-")
	}
	return tui.TextStyle.Render(fmt.Sprintf("%.1f°C", *celsius))
}
