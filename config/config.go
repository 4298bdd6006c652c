package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/SBDJUK/dsesh/paths"
	"github.com/SBDJUK/dsesh/session"
	"github.com/charmbracelet/log"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Document is the schema of a single config file.
type Document struct {
	Import  []string          `mapstructure:"import" toml:"import,omitempty"`
	Session []session.Session `mapstructure:"session" toml:"session,omitempty"`
}

// Load reads the config file at path and every file it imports, returning
// the merged sessions. Imported sessions come first, in import order, followed
// by the file's own sessions. Each physical file contributes at most once per
// call, so import cycles terminate.
func Load(path string) ([]session.Session, error) {
	l := &loader{visited: make(map[string]struct{})}
	return l.load(path)
}

// LoadRegistry is Load wrapped in a session.Registry.
func LoadRegistry(path string) (*session.Registry, error) {
	sessions, err := Load(path)
	if err != nil {
		return nil, err
	}
	return session.NewRegistry(sessions), nil
}

type loader struct {
	visited map[string]struct{}
}

func (l *loader) load(path string) ([]session.Session, error) {
	canonical, err := canonicalize(path)
	if err != nil {
		return nil, err
	}

	if _, seen := l.visited[canonical]; seen {
		log.Debug("skipping already loaded config", "path", canonical)
		return nil, nil
	}
	l.visited[canonical] = struct{}{}

	log.Debug("loading config", "path", canonical)

	doc, err := readDocument(canonical)
	if err != nil {
		return nil, err
	}

	var sessions []session.Session
	dir := filepath.Dir(canonical)
	for _, imp := range doc.Import {
		importPath := paths.Expand(imp)
		if !filepath.IsAbs(importPath) {
			importPath = filepath.Join(dir, importPath)
		}

		imported, err := l.load(importPath)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, imported...)
	}

	return append(sessions, doc.Session...), nil
}

// canonicalize returns the absolute, symlink-resolved form of path. It fails
// if path does not exist.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve config path %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve config path %s: %w", path, err)
	}
	return resolved, nil
}

// readDocument parses one file as TOML regardless of its extension.
func readDocument(path string) (*Document, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := checkKeyCase(path); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	var raw rawDocument
	if err := v.Unmarshal(&raw, strictDecoding); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	doc, err := raw.document()
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return doc, nil
}

// strictDecoding turns off viper's weak typing so that a string "import" or a
// numeric name is rejected instead of coerced. Field names must match exactly.
func strictDecoding(c *mapstructure.DecoderConfig) {
	c.WeaklyTypedInput = false
	c.DecodeHook = nil
	c.MatchName = func(mapKey, fieldName string) bool { return mapKey == fieldName }
}

// rawDocument mirrors Document with pointer fields, so an absent key (nil)
// can be told apart from an empty value.
type rawDocument struct {
	Import  []string     `mapstructure:"import"`
	Session []rawSession `mapstructure:"session"`
}

type rawSession struct {
	Name           *string `mapstructure:"name"`
	Path           *string `mapstructure:"path"`
	StartupCommand *string `mapstructure:"startup_command"`
}

func (r *rawDocument) document() (*Document, error) {
	doc := &Document{Import: r.Import}
	for i, rs := range r.Session {
		if rs.Name == nil || *rs.Name == "" {
			return nil, fmt.Errorf("session %d: missing field `name`", i+1)
		}
		if rs.StartupCommand == nil {
			return nil, fmt.Errorf("session '%s': missing field `startup_command`", *rs.Name)
		}

		s := session.Session{Name: *rs.Name, StartupCommand: *rs.StartupCommand}
		if rs.Path != nil {
			s.Path = *rs.Path
		}
		doc.Session = append(doc.Session, s)
	}
	return doc, nil
}

var (
	topLevelKeys = map[string]bool{"import": true, "session": true}
	sessionKeys  = map[string]bool{"name": true, "path": true, "startup_command": true}
)

// checkKeyCase rejects keys that match a schema key only when case is
// ignored. viper lowercases every key it reads, so NAME would otherwise be
// taken for name.
func checkKeyCase(path string) error {
	var raw map[string]any
	md, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return err
	}

	for _, key := range md.Keys() {
		last := key[len(key)-1]
		lower := strings.ToLower(last)
		if lower == last {
			continue
		}

		switch {
		case len(key) == 1 && topLevelKeys[lower]:
		case len(key) == 2 && key[0] == "session" && sessionKeys[lower]:
		default:
			continue
		}
		return fmt.Errorf("unknown key `%s` (keys are case-sensitive, expected `%s`)", key, lower)
	}
	return nil
}
