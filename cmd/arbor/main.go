// Package main implements the arbor CLI for building and querying
// hierarchical trees declared in YAML manifests.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version information
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arbor",
	Short: "Query hierarchical trees declared in YAML manifests",
	Long: `arbor builds in-memory trees from YAML manifests and answers two
questions about them: the aggregate metric of any subtree, and which nodes
under a subtree satisfy a predicate.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
}
