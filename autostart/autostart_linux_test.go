//go:build linux

package autostart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnableDisableCycle(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if Enabled() {
		t.Fatal("enabled before Enable")
	}
	if err := Enable(); err != nil {
		t.Fatal(err)
	}
	if !Enabled() {
		t.Fatal("not enabled after Enable")
	}

	path, err := desktopPath()
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	exe, _ := os.Executable()
	if !strings.Contains(string(data), "Exec="+exe) {
		t.Errorf("desktop entry missing Exec line: %s", data)
	}

	if err := Disable(); err != nil {
		t.Fatal(err)
	}
	if Enabled() {
		t.Fatal("still enabled after Disable")
	}
}

func TestDisableWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "fresh"))
	if err := Disable(); err != nil {
		t.Fatal(err)
	}
}
