package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/SBDJUK/dsesh/paths"
	"github.com/charmbracelet/log"
)

// DefaultShell interprets startup commands.
const DefaultShell = "sh"

// Launcher runs a session's startup command in the foreground.
type Launcher struct {
	Shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Getwd resolves the fallback working directory. Defaults to os.Getwd.
	Getwd func() (string, error)
}

// NewLauncher returns a Launcher attached to the given streams.
func NewLauncher(stdin io.Reader, stdout, stderr io.Writer) *Launcher {
	return &Launcher{
		Shell:  DefaultShell,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Getwd:  os.Getwd,
	}
}

// Connect prints the connecting indicator and runs the session's startup
// command, blocking until it exits. The child's exit status is not
// interpreted; only a failure to start it is returned.
func (l *Launcher) Connect(s Session) error {
	fmt.Fprintf(l.Stderr, "→ %s\n", s.Name)

	dir, err := l.workingDir(s)
	if err != nil {
		return err
	}

	shell := l.Shell
	if shell == "" {
		shell = DefaultShell
	}

	log.Debug("launching session", "name", s.Name, "dir", dir, "shell", shell)

	cmd := exec.Command(shell, "-c", s.StartupCommand)
	cmd.Dir = dir
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.Debug("session command exited", "name", s.Name, "code", exitErr.ExitCode())
			return nil
		}
		return fmt.Errorf("failed to start session '%s': %w", s.Name, err)
	}

	return nil
}

// workingDir returns the session path with ~ expanded, or the current
// directory when the session has no path.
func (l *Launcher) workingDir(s Session) (string, error) {
	if s.Path != "" {
		return paths.Expand(s.Path), nil
	}

	getwd := l.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}

	dir, err := getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine current directory: %w", err)
	}
	return dir, nil
}
