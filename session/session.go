package session

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by lookups that match no session.
var ErrNotFound = errors.New("No such session")

// Session is a named working directory plus the shell command that starts it.
type Session struct {
	Name           string `mapstructure:"name" toml:"name" json:"name" yaml:"name"`
	Path           string `mapstructure:"path" toml:"path,omitempty" json:"path,omitempty" yaml:"path,omitempty"`
	StartupCommand string `mapstructure:"startup_command" toml:"startup_command" json:"startup_command" yaml:"startup_command"`
}

// Registry holds sessions in the order they were loaded: imports first,
// depth-first, then each file's own sessions. Names need not be unique.
type Registry struct {
	sessions []Session
}

// NewRegistry wraps an ordered session list.
func NewRegistry(sessions []Session) *Registry {
	return &Registry{sessions: sessions}
}

// All returns every session in registry order.
func (r *Registry) All() []Session {
	return r.sessions
}

// Len reports the number of registered sessions.
func (r *Registry) Len() int {
	return len(r.sessions)
}

// Filter returns the sessions whose name contains filter, ignoring case.
// An empty filter matches everything.
func (r *Registry) Filter(filter string) []Session {
	needle := strings.ToLower(filter)

	var matches []Session
	for _, s := range r.sessions {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			matches = append(matches, s)
		}
	}
	return matches
}

// List returns the names of the sessions matched by Filter.
func (r *Registry) List(filter string) []string {
	matches := r.Filter(filter)
	names := make([]string, 0, len(matches))
	for _, s := range matches {
		names = append(names, s.Name)
	}
	return names
}

// Find returns the first session whose trimmed name equals the trimmed query.
func (r *Registry) Find(name string) (Session, bool) {
	name = strings.TrimSpace(name)
	for _, s := range r.sessions {
		if strings.TrimSpace(s.Name) == name {
			return s, true
		}
	}
	return Session{}, false
}
