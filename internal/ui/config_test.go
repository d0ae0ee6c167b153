package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/timesynx/internal/config"
)

func TestRunConfigInteractiveCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	var out bytes.Buffer

	if err := runConfigInteractive(strings.NewReader("n\n"), &out, path); err != nil {
		t.Fatalf("runConfigInteractive() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if !strings.Contains(out.String(), "business_start   = 9") {
		t.Fatalf("output missing current config:\n%s", out.String())
	}
}

func TestRunConfigInteractiveEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	input := strings.Join([]string{
		"y",
		"10",            // business start
		"18",            // business end
		"",              // min overlap
		"",              // max windows
		"true",          // 24h
		"Europe/Madrid", // home timezone
		"",              // share base url
		"",              // db path
		"latte",         // theme
	}, "\n") + "\n"

	var out bytes.Buffer
	if err := runConfigInteractive(strings.NewReader(input), &out, path); err != nil {
		t.Fatalf("runConfigInteractive() error = %v\n%s", err, out.String())
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Hours.BusinessStart != 10 || cfg.Hours.BusinessEnd != 18 {
		t.Errorf("hours = %d-%d, want 10-18", cfg.Hours.BusinessStart, cfg.Hours.BusinessEnd)
	}
	if cfg.Hours.MinOverlap != 2 || cfg.Hours.MaxWindows != 3 {
		t.Errorf("overlap settings changed: %+v", cfg.Hours)
	}
	if !cfg.Display.Use24h || cfg.Display.HomeTimezone != "Europe/Madrid" {
		t.Errorf("display = %+v", cfg.Display)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("theme = %q, want latte", cfg.UI.Theme)
	}
}

func TestRunConfigInteractiveRejectsInvalidHours(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	input := "y\n17\n9\n\n\n\n\n\n\n\n"

	var out bytes.Buffer
	err := runConfigInteractive(strings.NewReader(input), &out, path)
	if err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Fatalf("error = %v, want invalid config", err)
	}
}
