package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user directories
const AppName = "tilegrid"

// Host answers the questions directory lookup asks of the operating system.
type Host interface {
	OS() string
	Getenv(key string) string
	Home() (string, error)
}

type osHost struct{}

func (osHost) OS() string               { return runtime.GOOS }
func (osHost) Getenv(key string) string { return os.Getenv(key) }
func (osHost) Home() (string, error)    { return os.UserHomeDir() }

// DefaultHost is the running process's host; tests swap it out.
var DefaultHost Host = osHost{}

// ConfigDir returns the directory holding config.toml
func ConfigDir() string {
	return ConfigDirFor(DefaultHost)
}

// ConfigDirFor resolves the config directory for h
func ConfigDirFor(h Host) string {
	switch h.OS() {
	case "windows":
		// %APPDATA%\tilegrid\
		appData := h.Getenv("APPDATA")
		if appData == "" {
			return ""
		}
		return filepath.Join(appData, AppName)
	case "darwin":
		// ~/Library/Application Support/tilegrid/
		home, err := h.Home()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", AppName)
	default: // linux, etc.
		// $XDG_CONFIG_HOME/tilegrid/ or ~/.config/tilegrid/
		if xdg := h.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName)
		}
		home, err := h.Home()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".config", AppName)
	}
}

// UserCacheDir returns the application cache directory for state and logs
func UserCacheDir() string {
	return UserCacheDirFor(DefaultHost)
}

// UserCacheDirFor resolves the cache directory for h
func UserCacheDirFor(h Host) string {
	switch h.OS() {
	case "windows":
		// %LOCALAPPDATA%\tilegrid\
		localAppData := h.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			home, _ := h.Home()
			return filepath.Join(home, "."+AppName)
		}
		return filepath.Join(localAppData, AppName)
	case "darwin":
		// ~/Library/Caches/tilegrid/
		home, _ := h.Home()
		return filepath.Join(home, "Library", "Caches", AppName)
	default:
		// ~/.cache/tilegrid/
		home, _ := h.Home()
		return filepath.Join(home, ".cache", AppName)
	}
}

// StateDBPath returns the path to the SQLite state database
func StateDBPath() string {
	cacheDir := UserCacheDir()
	_ = os.MkdirAll(cacheDir, 0755)
	return filepath.Join(cacheDir, "state.db")
}

// LogFilePath returns the default log file path
func LogFilePath() string {
	return filepath.Join(UserCacheDir(), AppName+".log")
}
