package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Report.Format != "table" || cfg.Watch.PollInterval != "2s" || cfg.Chart.Width != "900px" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_OverridesKeepOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[report]
format = "csv"
totals = true

[colors]
Alice = "red"
"0" = "grey"

[watch]
min_interval = "1s"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Report.Format != "csv" || !cfg.Report.Totals {
		t.Errorf("report = %+v", cfg.Report)
	}
	if cfg.Colors["Alice"] != "red" || cfg.Colors["0"] != "grey" {
		t.Errorf("colors = %v", cfg.Colors)
	}
	if d, _ := cfg.Watch.MinDuration(); d != time.Second {
		t.Errorf("min interval = %v, want 1s", d)
	}
	if d, _ := cfg.Watch.PollDuration(); d != 2*time.Second {
		t.Errorf("poll interval = %v, want default 2s", d)
	}
	if cfg.Chart.Title != "Troops per player" {
		t.Errorf("chart title lost its default: %q", cfg.Chart.Title)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad format":   "[report]\nformat = \"xml\"\n",
		"bad duration": "[watch]\npoll_interval = \"soon\"\n",
		"bad toml":     "[report\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Report.Focus = "Bob"
	cfg.Colors["Infinity"] = "green"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if back.Report.Focus != "Bob" || back.Colors["Infinity"] != "green" {
		t.Errorf("round trip lost values: %+v", back)
	}
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/custom.toml")
	p, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if p != "/tmp/custom.toml" {
		t.Errorf("DefaultPath() = %q", p)
	}
}

func TestSetLogLevel(t *testing.T) {
	saved := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(saved)

	cases := map[string]zerolog.Level{
		"":         zerolog.WarnLevel,
		"debug":    zerolog.DebugLevel,
		" INFO ":   zerolog.InfoLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"off":      zerolog.Disabled,
		"verbose!": zerolog.WarnLevel,
	}
	for in, want := range cases {
		SetLogLevel(in)
		if got := zerolog.GlobalLevel(); got != want {
			t.Errorf("SetLogLevel(%q) -> %v, want %v", in, got, want)
		}
	}
}
