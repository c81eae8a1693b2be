package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNewSettings_Defaults(t *testing.T) {
	s := NewSettings()

	if s.Version != 1 {
		t.Errorf("Version = %d, want 1", s.Version)
	}
	if s.PiholeHost() != "" {
		t.Errorf("PiholeHost() = %q, want empty", s.PiholeHost())
	}
	if s.ScanTimeout() != 10 {
		t.Errorf("ScanTimeout() = %d, want 10", s.ScanTimeout())
	}
}

func TestSettings_SetPiholeHost(t *testing.T) {
	s := NewSettings()
	s.SetPiholeHost("192.168.1.100")
	if s.PiholeHost() != "192.168.1.100" {
		t.Errorf("PiholeHost() = %q, want 192.168.1.100", s.PiholeHost())
	}

	// Setting on a zero-value struct allocates the prefs
	var zero Settings
	zero.SetPiholeHost("pi.hole")
	if zero.PiholeHost() != "pi.hole" {
		t.Errorf("PiholeHost() = %q, want pi.hole", zero.PiholeHost())
	}
}

func TestSettings_ScanTimeoutFallback(t *testing.T) {
	var zero Settings
	if zero.ScanTimeout() != 10 {
		t.Errorf("ScanTimeout() = %d, want default 10", zero.ScanTimeout())
	}

	s := NewSettings()
	s.Scan.Timeout = -1
	if s.ScanTimeout() != 10 {
		t.Errorf("ScanTimeout() = %d, want default 10 for non-positive value", s.ScanTimeout())
	}

	s.Scan.Timeout = 30
	if s.ScanTimeout() != 30 {
		t.Errorf("ScanTimeout() = %d, want 30", s.ScanTimeout())
	}
}

func TestGetConfigDir_RespectsXDGConfigHome(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME is not used on Windows")
	}
	if runtime.GOOS == "darwin" {
		t.Skip("macOS always uses $HOME/.config")
	}

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	want := filepath.Join(tmpDir, "netscene")
	if dir != want {
		t.Errorf("GetConfigDir() = %s, want %s", dir, want)
	}
}

func TestSave_WritesAtomicSecureFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on Windows")
	}

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	s := NewSettings()
	s.SetPiholeHost("192.168.1.100")
	if err := s.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 0600", perm)
	}

	// No leftover temp file
	if _, err := os.Stat(configPath + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind after save")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("saved config did not parse as YAML: %v", err)
	}
	if loaded.Version != 1 {
		t.Errorf("Version = %d, want 1", loaded.Version)
	}
	if loaded.PiholeHost() != "192.168.1.100" {
		t.Errorf("PiholeHost() = %q, want 192.168.1.100", loaded.PiholeHost())
	}

	// The password must never appear in the file
	if strings.Contains(strings.ToLower(string(data)), "password:") {
		t.Error("config file contains a password field")
	}
}

func TestLoadSettingsFromDisk_MissingFileReturnsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	s, err := loadSettingsFromDisk()
	if err != nil {
		t.Fatalf("loadSettingsFromDisk() error = %v", err)
	}
	if s.Version != 1 || s.PiholeHost() != "" {
		t.Errorf("expected fresh defaults, got %+v", s)
	}
}

func TestLoadSettingsFromDisk_RejectsUnknownVersion(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	dir := filepath.Join(tmpDir, "netscene")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	content := "version: 2\npihole:\n  host: 192.168.1.100\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := loadSettingsFromDisk(); err == nil {
		t.Fatal("expected error for unsupported config version, got nil")
	}
}
