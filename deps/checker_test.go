package deps

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGetDependencies(t *testing.T) {
	deps := GetDependencies()

	byCommand := make(map[string]Dependency)
	for _, dep := range deps {
		byCommand[dep.Command] = dep

		if dep.Description == "" {
			t.Errorf("dependency %s missing description", dep.Name)
		}
		if dep.InstallHint == "" {
			t.Errorf("dependency %s missing install hint", dep.Name)
		}
	}

	if sh, ok := byCommand["sh"]; !ok || !sh.Required {
		t.Error("sh should be listed as a required dependency")
	} else if sh.VersionFlag != "" {
		t.Errorf("sh has no portable version option, got VersionFlag %q", sh.VersionFlag)
	}
	if tmux, ok := byCommand["tmux"]; !ok || tmux.Required {
		t.Error("tmux should be listed as an optional dependency")
	}
}

func TestCheckDependency(t *testing.T) {
	tests := []struct {
		name        string
		dep         Dependency
		wantAvail   bool
		wantVersion string
	}{
		{
			name:      "shell_is_available",
			dep:       Dependency{Name: "Shell", Command: "sh", Required: true},
			wantAvail: true,
		},
		{
			name:        "version_flag_is_passed",
			dep:         Dependency{Name: "Echo", Command: "echo", VersionFlag: "v1.2"},
			wantAvail:   true,
			wantVersion: "v1.2",
		},
		{
			name:      "nonexistent_command",
			dep:       Dependency{Name: "Fake", Command: "dsesh-command-that-does-not-exist"},
			wantAvail: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckDependency(tt.dep)

			if result.Available != tt.wantAvail {
				t.Errorf("CheckDependency() available = %v, want %v", result.Available, tt.wantAvail)
			}
			if result.Dependency.Name != tt.dep.Name {
				t.Errorf("CheckDependency() name = %v, want %v", result.Dependency.Name, tt.dep.Name)
			}
			if result.Version != tt.wantVersion {
				t.Errorf("CheckDependency() version = %q, want %q", result.Version, tt.wantVersion)
			}
			if !tt.wantAvail && result.Error == nil {
				t.Error("CheckDependency() for unavailable command should return error")
			}
		})
	}
}

func TestCheckAllDependencies(t *testing.T) {
	results := CheckAllDependencies()
	deps := GetDependencies()

	if len(results) != len(deps) {
		t.Fatalf("CheckAllDependencies() returned %d results, want %d", len(results), len(deps))
	}
	for i, result := range results {
		if result.Dependency.Name != deps[i].Name {
			t.Errorf("result %d is %s, want %s", i, result.Dependency.Name, deps[i].Name)
		}
	}
}

func TestPrintResults(t *testing.T) {
	results := []CheckResult{
		{Dependency: Dependency{Name: "Shell", Command: "sh", Required: true, Description: "runs commands"}, Available: true},
		{
			Dependency: Dependency{Name: "Tmux", Command: "tmux", Description: "multiplexer", InstallHint: "brew install tmux"},
			Error:      errors.New("not found"),
		},
	}

	var buf bytes.Buffer
	PrintResults(&buf, results)
	out := buf.String()

	for _, want := range []string{"✓ Shell - runs commands", "✗ Tmux - multiplexer", "└─ brew install tmux", "Missing optional dependencies: Tmux"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\nGot:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Missing required") {
		t.Errorf("no required dependency is missing\nGot:\n%s", out)
	}
}

func TestPrintResultsAllAvailable(t *testing.T) {
	results := []CheckResult{
		{Dependency: Dependency{Name: "Shell", Command: "sh", Required: true, Description: "runs commands"}, Available: true, Version: "dash 0.5"},
	}

	var buf bytes.Buffer
	PrintResults(&buf, results)

	if !strings.Contains(buf.String(), "✓ Shell (dash 0.5) - runs commands") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "All dependencies are available") {
		t.Errorf("expected success summary:\n%s", buf.String())
	}
}
