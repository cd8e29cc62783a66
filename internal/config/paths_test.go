package config

import (
	"errors"
	"path/filepath"
	"testing"
)

// fakeHost is a Host with fixed answers
type fakeHost struct {
	os      string
	env     map[string]string
	home    string
	homeErr error
}

func (p fakeHost) OS() string               { return p.os }
func (p fakeHost) Getenv(key string) string { return p.env[key] }
func (p fakeHost) Home() (string, error) {
	return p.home, p.homeErr
}

func TestConfigDirFor(t *testing.T) {
	tests := []struct {
		name string
		host fakeHost
		want string
	}{
		{
			name: "linux",
			host: fakeHost{os: "linux", home: "/home/u"},
			want: filepath.Join("/home/u", ".config", "tilegrid"),
		},
		{
			name: "linux xdg",
			host: fakeHost{os: "linux", env: map[string]string{"XDG_CONFIG_HOME": "/xdg"}, home: "/home/u"},
			want: filepath.Join("/xdg", "tilegrid"),
		},
		{
			name: "linux no home",
			host: fakeHost{os: "linux", homeErr: errors.New("no home")},
			want: "",
		},
		{
			name: "darwin",
			host: fakeHost{os: "darwin", home: "/Users/u"},
			want: filepath.Join("/Users/u", "Library", "Application Support", "tilegrid"),
		},
		{
			name: "windows",
			host: fakeHost{os: "windows", env: map[string]string{"APPDATA": "C:/AppData"}},
			want: filepath.Join("C:/AppData", "tilegrid"),
		},
		{
			name: "windows no appdata",
			host: fakeHost{os: "windows"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConfigDirFor(tt.host); got != tt.want {
				t.Errorf("ConfigDirFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserCacheDirFor(t *testing.T) {
	tests := []struct {
		name string
		host fakeHost
		want string
	}{
		{
			name: "linux",
			host: fakeHost{os: "linux", home: "/home/u"},
			want: filepath.Join("/home/u", ".cache", "tilegrid"),
		},
		{
			name: "darwin",
			host: fakeHost{os: "darwin", home: "/Users/u"},
			want: filepath.Join("/Users/u", "Library", "Caches", "tilegrid"),
		},
		{
			name: "windows",
			host: fakeHost{os: "windows", env: map[string]string{"LOCALAPPDATA": "C:/Local"}},
			want: filepath.Join("C:/Local", "tilegrid"),
		},
		{
			name: "windows fallback",
			host: fakeHost{os: "windows", home: "C:/Users/u"},
			want: filepath.Join("C:/Users/u", ".tilegrid"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserCacheDirFor(tt.host); got != tt.want {
				t.Errorf("UserCacheDirFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLogFilePath(t *testing.T) {
	if got := filepath.Base(LogFilePath()); got != "tilegrid.log" {
		t.Errorf("LogFilePath() base = %q, want tilegrid.log", got)
	}
}

func TestStateDBPath(t *testing.T) {
	if got := filepath.Base(StateDBPath()); got != "state.db" {
		t.Errorf("StateDBPath() base = %q, want state.db", got)
	}
}
