// Package config provides configuration management for taixiu.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Paths holds all the path configurations for taixiu.
type Paths struct {
	// ConfigDir is the directory for configuration files (~/.config/taixiu)
	ConfigDir string

	// DataDir is the directory for the history and exports (~/.local/share/taixiu)
	DataDir string
}

// DefaultPaths returns the default paths based on XDG Base Directory spec.
// On Windows, it uses %APPDATA% instead.
func DefaultPaths() *Paths {
	home := homeDir()

	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(home, "AppData", "Local")
		}

		return withDataOverride(&Paths{
			ConfigDir: filepath.Join(appData, "taixiu"),
			DataDir:   filepath.Join(localAppData, "taixiu"),
		})
	}

	// Unix-like systems follow XDG Base Directory spec
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}

	return withDataOverride(&Paths{
		ConfigDir: filepath.Join(configHome, "taixiu"),
		DataDir:   filepath.Join(dataHome, "taixiu"),
	})
}

// withDataOverride applies TAIXIU_DATA_DIR.
func withDataOverride(p *Paths) *Paths {
	if dir := os.Getenv("TAIXIU_DATA_DIR"); dir != "" {
		p.DataDir = dir
	}
	return p
}

// ConfigFile returns the path to the main configuration file.
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.ConfigDir, "config.yaml")
}

// HistoryFile returns the path of the JSON history artifact.
func (p *Paths) HistoryFile(name string) string {
	if name == "" {
		name = DefaultHistoryFileName
	}
	return filepath.Join(p.DataDir, name)
}

// DatabaseFile returns the path to the SQLite history database.
func (p *Paths) DatabaseFile() string {
	return filepath.Join(p.DataDir, "history.db")
}

// LogDir returns the path to the log directory.
func (p *Paths) LogDir() string {
	return filepath.Join(p.DataDir, "logs")
}

// LogFile returns the path to the log file used while the board is open.
func (p *Paths) LogFile() string {
	return filepath.Join(p.LogDir(), "taixiu.log")
}

// EnsureDirectories creates all necessary directories.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.ConfigDir,
		p.DataDir,
		p.LogDir(),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return nil
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback
		if runtime.GOOS == "windows" {
			return os.Getenv("USERPROFILE")
		}
		return os.Getenv("HOME")
	}
	return home
}
