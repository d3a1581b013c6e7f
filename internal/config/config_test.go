package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Log.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Log.Level)
	}
	if cfg.Query.YearsBack != 1 || cfg.Query.YearsForward != 1 {
		t.Errorf("default query window = %d/%d, want 1/1", cfg.Query.YearsBack, cfg.Query.YearsForward)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	tmp := t.TempDir()
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no config file failed: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `log:
  file: /tmp/sino-calendar.log
  level: debug
calendar:
  extra_rules_file: /tmp/rules.json
query:
  years_back: 2
  years_forward: 3
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.File != "/tmp/sino-calendar.log" || cfg.Log.Level != "debug" {
		t.Errorf("log config = %+v", cfg.Log)
	}
	if cfg.Calendar.ExtraRulesFile != "/tmp/rules.json" {
		t.Errorf("extra_rules_file = %q", cfg.Calendar.ExtraRulesFile)
	}
	if cfg.Query.YearsBack != 2 || cfg.Query.YearsForward != 3 {
		t.Errorf("query window = %d/%d, want 2/3", cfg.Query.YearsBack, cfg.Query.YearsForward)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with an explicit missing path succeeded, want error")
	}
}

func TestLoadInvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: loud\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load with a bad log level succeeded, want error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty level", func(c *Config) { c.Log.Level = "" }, false},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"negative back", func(c *Config) { c.Query.YearsBack = -1 }, true},
		{"negative forward", func(c *Config) { c.Query.YearsForward = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultYears(t *testing.T) {
	q := QueryConfig{YearsBack: 1, YearsForward: 1}
	got := q.DefaultYears(2025)
	want := []int{2024, 2025, 2026}
	if len(got) != len(want) {
		t.Fatalf("DefaultYears = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DefaultYears[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	zero := QueryConfig{}
	if got := zero.DefaultYears(2025); len(got) != 1 || got[0] != 2025 {
		t.Errorf("zero-window DefaultYears = %v, want [2025]", got)
	}
}
