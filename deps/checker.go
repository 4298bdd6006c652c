package deps

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/SBDJUK/dsesh/session"
	"github.com/SBDJUK/dsesh/version"
)

type Dependency struct {
	Name        string
	Command     string
	Required    bool
	VersionFlag string // empty when the command has no version option
	Description string
	InstallHint string
}

type CheckResult struct {
	Dependency Dependency
	Available  bool
	Version    string
	Error      error
}

// GetDependencies returns the list of dependencies to check
func GetDependencies() []Dependency {
	return []Dependency{
		{
			Name:        "Shell",
			Command:     session.DefaultShell,
			Required:    true,
			Description: "Interprets each session's startup_command",
			InstallHint: "Install a POSIX shell and make sure it is on PATH as 'sh'",
		},
		{
			Name:        "Tmux",
			Command:     "tmux",
			Required:    false,
			VersionFlag: "-V",
			Description: "Terminal multiplexer most startup commands attach to",
			InstallHint: "Install with your package manager, e.g. brew install tmux",
		},
	}
}

// CheckDependency checks if a single dependency is available
func CheckDependency(dep Dependency) CheckResult {
	result := CheckResult{Dependency: dep}

	if _, err := exec.LookPath(dep.Command); err != nil {
		result.Error = err
		return result
	}
	result.Available = true

	if dep.VersionFlag == "" {
		return result
	}

	// A missing version is not a failure.
	output, err := exec.Command(dep.Command, dep.VersionFlag).Output()
	if err == nil {
		lines := strings.Split(string(output), "\n")
		result.Version = strings.TrimSpace(lines[0])
	}

	return result
}

// CheckAllDependencies checks all dependencies and returns results
func CheckAllDependencies() []CheckResult {
	deps := GetDependencies()
	results := make([]CheckResult, len(deps))

	for i, dep := range deps {
		results[i] = CheckDependency(dep)
	}

	return results
}

// PrintResults writes a human-readable report of results to w
func PrintResults(w io.Writer, results []CheckResult) {
	var missingRequired, missingOptional []string

	fmt.Fprintf(w, "Dependency Check (%s):\n", version.Get().String())
	fmt.Fprintln(w, "=================")

	for _, result := range results {
		status := "✓"
		if !result.Available {
			status = "✗"
			if result.Dependency.Required {
				missingRequired = append(missingRequired, result.Dependency.Name)
			} else {
				missingOptional = append(missingOptional, result.Dependency.Name)
			}
		}

		fmt.Fprintf(w, "%s %s", status, result.Dependency.Name)
		if result.Available && result.Version != "" {
			fmt.Fprintf(w, " (%s)", result.Version)
		}
		fmt.Fprintf(w, " - %s\n", result.Dependency.Description)

		if !result.Available {
			fmt.Fprintf(w, "  └─ %s\n", result.Dependency.InstallHint)
		}
	}

	fmt.Fprintln(w)

	if len(missingRequired) > 0 {
		fmt.Fprintf(w, "⚠️  Missing required dependencies: %s\n", strings.Join(missingRequired, ", "))
		fmt.Fprintln(w, "   Sessions cannot be launched.")
	}

	if len(missingOptional) > 0 {
		fmt.Fprintf(w, "ℹ️  Missing optional dependencies: %s\n", strings.Join(missingOptional, ", "))
		fmt.Fprintln(w, "   Startup commands that call them will fail.")
	}

	if len(missingRequired) == 0 && len(missingOptional) == 0 {
		fmt.Fprintln(w, "✅ All dependencies are available!")
	}
}
