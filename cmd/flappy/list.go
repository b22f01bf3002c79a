package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var renderersCmd = &cobra.Command{
	Use:   "renderers",
	Short: "List all available renderers",
	Long:  `Shows every renderer registered in the binary. 'flappy play' tries them in the configured order.`,
	Args:  cobra.NoArgs,
	Run:   runRenderers,
}

func runRenderers(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	renderers := registry.List()

	if len(renderers) == 0 {
		fmt.Fprintln(out, "No renderers available.")
		return
	}

	fmt.Fprintln(out, "Available renderers:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, r := range renderers {
		if len(r.ID) > maxIDLen {
			maxIDLen = len(r.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, r := range renderers {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, r.ID, r.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'flappy play --renderer <id>' to pick one.")
}
