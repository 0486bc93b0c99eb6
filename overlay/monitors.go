package overlay

import (
	"strconv"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/StuckAtPrototype/KeyVisualizer/config"
)

// selectedMonitor resolves a screen_selection value ("primary" or
// "screen_N") to a monitor, falling back to the primary.
func selectedMonitor(selection string) *glfw.Monitor {
	if strings.HasPrefix(selection, "screen_") {
		idx, err := strconv.Atoi(strings.TrimPrefix(selection, "screen_"))
		if err == nil {
			monitors := glfw.GetMonitors()
			if idx >= 0 && idx < len(monitors) {
				return monitors[idx]
			}
		}
	}
	return glfw.GetPrimaryMonitor()
}

// stripGeometry computes the key strip window's position and width on the
// configured monitor.
func stripGeometry(cfg config.Config, height int) (x, y, w int) {
	gx, gy, gw, gh := 0, 0, 1920, 1080 // fallback
	if m := selectedMonitor(cfg.ScreenSelection); m != nil {
		gx, gy, gw, gh = m.GetWorkarea()
	}

	w = gw - 200

	switch cfg.PositionH {
	case "left":
		x = gx + cfg.MarginHorizontal + 20
	case "right":
		x = gx + gw - w - cfg.MarginHorizontal - 20
	default:
		x = gx + (gw-w)/2 + cfg.MarginHorizontal
	}

	switch cfg.PositionV {
	case "top":
		y = gy + cfg.MarginBottom
	default:
		y = gy + gh - height - cfg.MarginBottom
	}
	return
}

// virtualScreen is the bounding box of all monitors, for the click-spot
// layer.
func virtualScreen() (x, y, w, h int) {
	monitors := glfw.GetMonitors()
	if len(monitors) == 0 {
		return 0, 0, 1920, 1080
	}

	minX, minY := 1<<30, 1<<30
	maxX, maxY := -(1 << 30), -(1 << 30)
	for _, m := range monitors {
		mx, my := m.GetPos()
		mode := m.GetVideoMode()
		if mode == nil {
			continue
		}
		if mx < minX {
			minX = mx
		}
		if my < minY {
			minY = my
		}
		if mx+mode.Width > maxX {
			maxX = mx + mode.Width
		}
		if my+mode.Height > maxY {
			maxY = my + mode.Height
		}
	}
	if maxX <= minX || maxY <= minY {
		return 0, 0, 1920, 1080
	}
	return minX, minY, maxX - minX, maxY - minY
}
