package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version represents the Version of the group_tool binary, should be set via ldflags -X
	Version string

	// Date represents the Date of when the group_tool binary was build, should be set via ldflags -X
	Date string

	// Commit represents the Commit-hash from which the group_tool binary was build, should be set via ldflags -X
	Commit string
)

// buildDate returns Date, or "unknown" for binaries built without ldflags.
func buildDate() string {
	if Date == "" {
		return "unknown"
	}
	return Date
}

// VersionLine is what -V prints.
func VersionLine(name string) string {
	return fmt.Sprintf("%s (built %s)\n", name, buildDate())
}

// PropagateVersion makes -V work on cmd and every command below it.
func PropagateVersion(cmd *cobra.Command, line string) {
	cmd.Version = line
	cmd.SetVersionTemplate(line)
	for _, child := range cmd.Commands() {
		PropagateVersion(child, line)
	}
}

//nolint:golint-sl // CLI user output
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Shows version information",
		Args:  cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Version: %s\n", Version)
			_, _ = fmt.Fprintf(out, "Date:    %s\n", buildDate())
			_, _ = fmt.Fprintf(out, "Commit:  %s\n", Commit)
		},
	}
}
