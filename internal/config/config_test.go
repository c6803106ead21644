package config

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/hallward/usher/internal/ledger"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}
	if cfg.Theater.FirstRow != "A" {
		t.Errorf("Theater.FirstRow = %q, want %q", cfg.Theater.FirstRow, "A")
	}
	if cfg.Theater.LastRow != "T" {
		t.Errorf("Theater.LastRow = %q, want %q", cfg.Theater.LastRow, "T")
	}
	if cfg.Theater.RowSize != 8 {
		t.Errorf("Theater.RowSize = %d, want 8", cfg.Theater.RowSize)
	}
	if cfg.State.Path != "reservations.txt" {
		t.Errorf("State.Path = %q, want %q", cfg.State.Path, "reservations.txt")
	}
	if cfg.Logging.Level != "WARN" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "WARN")
	}
	if cfg.Logging.Dir != "" {
		t.Errorf("Logging.Dir = %q, want empty", cfg.Logging.Dir)
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name    string
		theater TheaterConfig
		want    ledger.Layout
	}{
		{
			"defaults",
			TheaterConfig{FirstRow: "A", LastRow: "T", RowSize: 8},
			ledger.Layout{FirstRow: 'A', LastRow: 'T', RowSize: 8},
		},
		{
			"small hall",
			TheaterConfig{FirstRow: "A", LastRow: "D", RowSize: 12},
			ledger.Layout{FirstRow: 'A', LastRow: 'D', RowSize: 12},
		},
		{
			"empty rows fall back",
			TheaterConfig{FirstRow: "", LastRow: "T", RowSize: 8},
			ledger.DefaultLayout,
		},
		{
			"multi-char row falls back",
			TheaterConfig{FirstRow: "AA", LastRow: "T", RowSize: 8},
			ledger.DefaultLayout,
		},
		{
			"reversed range falls back",
			TheaterConfig{FirstRow: "T", LastRow: "A", RowSize: 8},
			ledger.DefaultLayout,
		},
		{
			"zero row size falls back",
			TheaterConfig{FirstRow: "A", LastRow: "T", RowSize: 0},
			ledger.DefaultLayout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Theater: tt.theater}
			if got := cfg.Layout(); got != tt.want {
				t.Errorf("Layout() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSetDefaultsAndLoad(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() with only defaults = %+v, want %+v", cfg, Default())
	}
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()
	viper.Set("state.path", "/tmp/seats.txt")
	viper.Set("logging.level", "DEBUG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.State.Path != "/tmp/seats.txt" {
		t.Errorf("State.Path = %q, want override", cfg.State.Path)
	}
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Logging.Level = %q, want DEBUG", cfg.Logging.Level)
	}
	// Untouched keys keep their defaults.
	if cfg.Theater.RowSize != 8 {
		t.Errorf("Theater.RowSize = %d, want 8", cfg.Theater.RowSize)
	}
}

func TestConfigDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	if got := ConfigDir(); got != "/tmp/xdg/usher" {
		t.Errorf("ConfigDir() = %q, want %q", got, "/tmp/xdg/usher")
	}
}
