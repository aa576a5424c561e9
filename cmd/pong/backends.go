package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List all available backends",
	Long:  `Shows every frontend the game can run on.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		writeBackends(cmd.OutOrStdout(), registry.List())
	},
}

func writeBackends(w io.Writer, backends []registry.BackendInfo) {
	if len(backends) == 0 {
		fmt.Fprintln(w, "No backends available.")
		return
	}

	fmt.Fprintln(w, "Available backends:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, b := range backends {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, b := range backends {
		fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, b.Name, b.Description)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pong play --backend <name>' to play on a backend.")
}
