package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestRootCommandMetadata(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd is nil")
	}
	if rootCmd.Use != "focusboard" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "focusboard")
	}

	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	if !names["version"] {
		t.Errorf("missing version subcommand, have %v", names)
	}
}

func TestVersionCommandOutput(t *testing.T) {
	buf := new(bytes.Buffer)
	versionCmd.SetOut(buf)
	versionCmd.Run(versionCmd, nil)
	if !strings.Contains(buf.String(), "focusboard") {
		t.Fatalf("version output = %q", buf.String())
	}
}

func TestBuildRuntimeConfigLayersViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("work_minutes", 50)
	viper.Set("db_path", "custom.db")
	viper.Set("desktop_notifications", true)

	cfg := buildRuntimeConfig()
	if cfg.WorkMinutes != 50 {
		t.Fatalf("work minutes = %d", cfg.WorkMinutes)
	}
	if cfg.DatabasePath != "custom.db" {
		t.Fatalf("db path = %q", cfg.DatabasePath)
	}
	if !cfg.DesktopNotifications {
		t.Fatal("desktop notifications should be enabled")
	}
	if cfg.ShortBreakMinutes != 5 || cfg.LongBreakMinutes != 15 {
		t.Fatalf("untouched values should keep defaults: %+v", cfg)
	}
}
