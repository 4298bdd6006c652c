package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/SBDJUK/dsesh/session"
)

// ErrExists is returned by WriteStarter when the target file already exists
// and overwrite was not requested.
var ErrExists = errors.New("config file already exists")

const starterHeader = `# dsesh session configuration.
#
# Other files can be pulled in with:
#   import = ["work.toml", "~/dotfiles/sesh/personal.toml"]
# Relative imports are resolved against the directory of this file.

`

// StarterDocument is the config written by WriteStarter.
func StarterDocument() Document {
	return Document{
		Session: []session.Session{
			{
				Name:           "home",
				Path:           "~",
				StartupCommand: "tmux new-session -A -s home",
			},
		},
	}
}

// WriteStarter writes StarterDocument to path, creating parent directories.
func WriteStarter(path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("%w: %s", ErrExists, path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(starterHeader)
	if err := toml.NewEncoder(&buf).Encode(StarterDocument()); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
