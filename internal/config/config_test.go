package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Calendar.UnitsPerHour != 3 {
		t.Errorf("expected units_per_hour 3, got %v", cfg.Calendar.UnitsPerHour)
	}
	if cfg.Calendar.MonthOverflow != "clamp" {
		t.Errorf("expected month_overflow clamp, got %s", cfg.Calendar.MonthOverflow)
	}
	if cfg.Calendar.DefaultView != "week" {
		t.Errorf("expected default_view week, got %s", cfg.Calendar.DefaultView)
	}
	if cfg.User.Handle == "" {
		t.Error("expected a non-empty default handle")
	}
	if cfg.Storage.DBPath == "" {
		t.Error("expected a non-empty default db_path")
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.Calendar.UnitsPerHour != 3 {
		t.Errorf("expected default units_per_hour, got %v", cfg.Calendar.UnitsPerHour)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[user]
handle = "frosti"

[calendar]
units_per_hour = 4.0
month_overflow = "skip"
default_view = "day"

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.User.Handle != "frosti" {
		t.Errorf("expected handle frosti, got %s", cfg.User.Handle)
	}
	if cfg.Calendar.UnitsPerHour != 4 {
		t.Errorf("expected units_per_hour 4, got %v", cfg.Calendar.UnitsPerHour)
	}
	if cfg.Calendar.MonthOverflow != "skip" {
		t.Errorf("expected month_overflow skip, got %s", cfg.Calendar.MonthOverflow)
	}
	if cfg.Calendar.DefaultView != "day" {
		t.Errorf("expected default_view day, got %s", cfg.Calendar.DefaultView)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[user]
handle = "frosti"

[calendar]
default_view = "month"

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set env vars
	t.Setenv("PLANPAL_HANDLE", "ida")
	t.Setenv("PLANPAL_UNITS_PER_HOUR", "2.5")
	t.Setenv("PLANPAL_DB_PATH", "/tmp/other.db")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.User.Handle != "ida" {
		t.Errorf("expected handle ida from env, got %s", cfg.User.Handle)
	}
	if cfg.Storage.DBPath != "/tmp/other.db" {
		t.Errorf("expected db_path /tmp/other.db from env, got %s", cfg.Storage.DBPath)
	}
	// Env should override default
	if cfg.Calendar.UnitsPerHour != 2.5 {
		t.Errorf("expected units_per_hour 2.5 from env, got %v", cfg.Calendar.UnitsPerHour)
	}
	// File value should be kept when no env override
	if cfg.Calendar.DefaultView != "month" {
		t.Errorf("expected default_view month from file, got %s", cfg.Calendar.DefaultView)
	}
}

func TestValidate_InvalidOverflow(t *testing.T) {
	cfg := Default()
	cfg.Calendar.MonthOverflow = "wrap"

	err := cfg.Validate()
	if err == nil {
		t.Error("expected validation error for invalid month_overflow")
	}
}

func TestValidate_InvalidView(t *testing.T) {
	cfg := Default()
	cfg.Calendar.DefaultView = "fortnight"

	err := cfg.Validate()
	if err == nil {
		t.Error("expected validation error for invalid default_view")
	}
}

func TestValidate_NonPositiveUnits(t *testing.T) {
	cfg := Default()
	cfg.Calendar.UnitsPerHour = 0

	err := cfg.Validate()
	if err == nil {
		t.Error("expected validation error for units_per_hour 0")
	}
}

func TestValidate_InvalidTheme(t *testing.T) {
	cfg := Default()
	cfg.UI.Theme = "solarized"

	err := cfg.Validate()
	if err == nil {
		t.Error("expected validation error for unknown theme")
	}
}

func TestValidate_EmptyHandle(t *testing.T) {
	cfg := Default()
	cfg.User.Handle = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected validation error for empty handle")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test.db", filepath.Join(home, "test.db")},
		{"/absolute/path.db", "/absolute/path.db"},
		{"relative/path.db", "relative/path.db"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	cfg := Default()
	cfg.User.Handle = "frosti"
	cfg.Calendar.DefaultView = "work-week"
	cfg.Calendar.MonthOverflow = "skip"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.User.Handle != "frosti" {
		t.Errorf("expected handle frosti, got %s", loaded.User.Handle)
	}
	if loaded.Calendar.DefaultView != "work-week" {
		t.Errorf("expected default_view work-week, got %s", loaded.Calendar.DefaultView)
	}
	if loaded.Calendar.MonthOverflow != "skip" {
		t.Errorf("expected month_overflow skip, got %s", loaded.Calendar.MonthOverflow)
	}
}
