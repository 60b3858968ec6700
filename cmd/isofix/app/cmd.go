// Package app assembles the isofix command tree: fixture generation and
// fixture verification over unlabeled multigraph pairs.
package app

import (
	"github.com/spf13/cobra"
)

// New builds the root command with both subcommands attached.
func New() *cobra.Command {
	maincmd := &cobra.Command{
		Use:   "isofix <cmd> <args>",
		Short: "generate and verify unlabeled multigraph isomorphism fixtures",
		Long: `
isofix produces pairs of unlabeled undirected multigraphs with a declared
relationship (isomorphic, non-isomorphic, subgraph-isomorphic or not), and
re-verifies such fixtures by brute-force recomputation of canonical
signatures, isomorphism sets, and subgraph embeddings.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	maincmd.AddCommand(NewGenerate())
	maincmd.AddCommand(NewVerify())

	return maincmd
}
