package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/arbor/internal/manifest"
)

// checkCmd validates manifests without building trees.
var checkCmd = &cobra.Command{
	Use:   "check <manifest>...",
	Short: "Validate manifests",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	var failed bool
	for _, path := range args {
		if _, err := manifest.Load(path); err != nil {
			failed = true
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
	}
	if failed {
		return fmt.Errorf("validation failed")
	}
	return nil
}
