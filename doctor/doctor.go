// Package doctor runs environment diagnostics for the overlay.
package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/StuckAtPrototype/KeyVisualizer/autostart"
	"github.com/StuckAtPrototype/KeyVisualizer/config"
	"github.com/StuckAtPrototype/KeyVisualizer/hook"
	"github.com/StuckAtPrototype/KeyVisualizer/hotkey"
	"github.com/StuckAtPrototype/KeyVisualizer/log"
)

// Run executes the diagnostic checks and returns an exit code (0=all
// pass, 1=any fail).
func Run() int {
	fmt.Println("KeyVisualizer doctor - system diagnostics")
	fmt.Println("=========================================")

	allPass := true

	if !checkConfigStore() {
		allPass = false
	}
	if !checkLogDir() {
		allPass = false
	}
	if !checkDisplay() {
		allPass = false
	}
	if !checkInputHook() {
		allPass = false
	}
	if !checkHotkey() {
		allPass = false
	}
	checkAutostart()

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
		return 0
	}
	fmt.Println("Some checks failed. See details above.")
	return 1
}

func checkConfigStore() bool {
	fmt.Println()
	fmt.Println("[1/5] Config store")

	dir, err := config.Dir()
	if err != nil {
		fmt.Printf("  FAIL: cannot resolve config directory: %v\n", err)
		return false
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("  FAIL: cannot create %s: %v\n", dir, err)
		return false
	}

	probe := filepath.Join(dir, ".doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		fmt.Printf("  FAIL: %s is not writable: %v\n", dir, err)
		return false
	}
	os.Remove(probe)

	fmt.Printf("  PASS: %s is writable\n", dir)
	return true
}

func checkLogDir() bool {
	fmt.Println()
	fmt.Println("[2/5] Log directory")

	dir, err := log.ResolveDir("")
	if err != nil {
		fmt.Printf("  FAIL: cannot resolve log directory: %v\n", err)
		return false
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("  FAIL: cannot create %s: %v\n", dir, err)
		return false
	}

	fmt.Printf("  PASS: %s\n", dir)
	return true
}

func checkDisplay() bool {
	fmt.Println()
	fmt.Println("[3/5] Display environment")

	if runtime.GOOS == "linux" {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			fmt.Println("  FAIL: neither DISPLAY nor WAYLAND_DISPLAY is set")
			return false
		}
		if os.Getenv("WAYLAND_DISPLAY") != "" && os.Getenv("DISPLAY") == "" {
			fmt.Println("  PASS: Wayland session (overlay click-through may be limited)")
			return true
		}
	}

	fmt.Println("  PASS: display available")
	return true
}

func checkInputHook() bool {
	fmt.Println()
	fmt.Println("[4/5] Input hook")
	fmt.Println("Press any key or mouse button...")

	capture := hook.NewCapture()
	capture.Start()
	defer capture.Stop()

	select {
	case ev := <-capture.Events():
		fmt.Printf("  PASS: captured %q\n", ev.Label)
		return true
	case <-time.After(10 * time.Second):
		fmt.Println("  FAIL: timeout waiting for input (check accessibility/input permissions)")
		return false
	}
}

func checkHotkey() bool {
	fmt.Println()
	fmt.Println("[5/5] Pause hotkey")

	combo := config.Load(mustConfigPath()).PauseHotkey
	msg, err := hotkey.Diagnose(combo)
	if err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		return false
	}
	fmt.Printf("  PASS: %s\n", msg)
	return true
}

func checkAutostart() {
	fmt.Println()
	if autostart.Enabled() {
		fmt.Println("Start at login: enabled")
	} else {
		fmt.Println("Start at login: disabled")
	}
}

func mustConfigPath() string {
	path, err := config.Path()
	if err != nil {
		return ""
	}
	return path
}
