package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	t.Setenv("TAIXIU_DATA_DIR", "")
	paths := DefaultPaths()

	if paths.ConfigDir == "" {
		t.Error("ConfigDir is empty")
	}
	if paths.DataDir == "" {
		t.Error("DataDir is empty")
	}

	if !filepath.IsAbs(paths.ConfigDir) {
		t.Errorf("ConfigDir should be absolute: %s", paths.ConfigDir)
	}
	if !filepath.IsAbs(paths.DataDir) {
		t.Errorf("DataDir should be absolute: %s", paths.DataDir)
	}
}

func TestDefaultPaths_XDG(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG test not applicable on Windows")
	}

	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	t.Setenv("TAIXIU_DATA_DIR", "")

	paths := DefaultPaths()

	if paths.ConfigDir != "/custom/config/taixiu" {
		t.Errorf("ConfigDir should respect XDG_CONFIG_HOME: %s", paths.ConfigDir)
	}
	if paths.DataDir != "/custom/data/taixiu" {
		t.Errorf("DataDir should respect XDG_DATA_HOME: %s", paths.DataDir)
	}
}

func TestDefaultPaths_DataDirOverride(t *testing.T) {
	t.Setenv("TAIXIU_DATA_DIR", "/srv/taixiu")

	paths := DefaultPaths()
	if paths.DataDir != "/srv/taixiu" {
		t.Errorf("DataDir = %s, want /srv/taixiu", paths.DataDir)
	}
}

func TestPathHelpers(t *testing.T) {
	paths := &Paths{ConfigDir: "/cfg", DataDir: "/data"}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"config file", paths.ConfigFile(), filepath.Join("/cfg", "config.yaml")},
		{"default history", paths.HistoryFile(""), filepath.Join("/data", "taixiu_history.json")},
		{"named history", paths.HistoryFile("mine.json"), filepath.Join("/data", "mine.json")},
		{"database", paths.DatabaseFile(), filepath.Join("/data", "history.db")},
		{"log file", paths.LogFile(), filepath.Join("/data", "logs", "taixiu.log")},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %s, want %s", tt.name, tt.got, tt.want)
		}
	}
}

func TestEnsureDirectories(t *testing.T) {
	tmp := t.TempDir()
	paths := &Paths{
		ConfigDir: filepath.Join(tmp, "config"),
		DataDir:   filepath.Join(tmp, "data"),
	}

	if err := paths.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories() error = %v", err)
	}

	for _, dir := range []string{paths.ConfigDir, paths.DataDir, paths.LogDir()} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Errorf("directory %s not created: %v", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
		if !strings.HasPrefix(dir, tmp) {
			t.Errorf("%s escaped the temp dir", dir)
		}
	}
}
