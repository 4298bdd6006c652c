package paths

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// AppName is the directory and file stem used under ~/.config. dsesh reads
// the same file as Sesh so existing configurations keep working.
const AppName = "sesh"

// ErrNoHome is returned when the config file cannot be located because the
// user's home directory is unknown.
var ErrNoHome = errors.New("could not locate sesh config")

// HomeDir returns the current user's home directory, or false if it cannot be
// determined.
func HomeDir() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", false
	}
	return home, true
}

// Expand resolves a leading ~ in path against the current user's home
// directory. Any other input is returned unchanged.
func Expand(path string) string {
	home, ok := HomeDir()
	return expandWith(path, home, ok)
}

func expandWith(path, home string, ok bool) string {
	if !ok {
		return path
	}
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	default:
		return path
	}
}

// ConfigDir returns ~/.config/sesh.
func ConfigDir() (string, error) {
	home, ok := HomeDir()
	if !ok {
		return "", ErrNoHome
	}
	return filepath.Join(home, ".config", AppName), nil
}

// ConfigFile returns the fixed location of the top-level config file,
// ~/.config/sesh/sesh.toml.
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName+".toml"), nil
}
