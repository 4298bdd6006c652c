package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/SBDJUK/dsesh/version"
	"github.com/charmbracelet/lipgloss"
)

var (
	bannerTitleStyle   = lipgloss.NewStyle().Bold(true)
	bannerUsageStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	bannerCommandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

type bannerCommand struct {
	name    string
	summary string
}

var bannerCommands = []bannerCommand{
	{"connect", "Connect to the given session"},
	{"list", "List sessions"},
	{"pick", "Choose a session interactively"},
	{"init", "Write a starter config"},
	{"check", "Check system dependencies"},
	{"version", "Show version information"},
}

func printBanner(w io.Writer) {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n", bannerTitleStyle.Render("dsesh v"+strings.TrimPrefix(version.Version, "v")))
	b.WriteString("\ndsesh is a terminal session manager designed to be compatible with Sesh TOML configurations.\n")
	fmt.Fprintf(&b, "\nUSAGE:\n  %s\n", bannerUsageStyle.Render("dsesh [command]"))
	b.WriteString("\nCOMMANDS:\n")
	for _, c := range bannerCommands {
		// Pad before styling so escape codes do not skew the column.
		fmt.Fprintf(&b, "  %s %s\n", bannerCommandStyle.Render(fmt.Sprintf("%-10s", c.name)), c.summary)
	}

	fmt.Fprintln(w, b.String())
}
