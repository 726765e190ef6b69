package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/arbor/internal/hierarchy"
	"github.com/fyrsmithlabs/arbor/internal/manifest"
)

var sumAt string

// sumCmd computes the aggregate metric of a tree or subtree.
var sumCmd = &cobra.Command{
	Use:   "sum <manifest>",
	Short: "Compute the aggregate metric of a tree",
	Long: `Compute the aggregate metric of the tree declared in a manifest.

Examples:
  # Whole tree
  arbor sum tree.yaml

  # A subtree, named by its path from the root
  arbor sum tree.yaml --at root/sub`,
	Args: cobra.ExactArgs(1),
	RunE: runSum,
}

func init() {
	sumCmd.Flags().StringVar(&sumAt, "at", "", "path of the subtree to aggregate (default: whole tree)")
}

func runSum(cmd *cobra.Command, args []string) error {
	root, err := buildTree(args[0])
	if err != nil {
		return err
	}

	node := root
	if sumAt != "" {
		node, err = hierarchy.Resolve(root, hierarchy.Path(strings.Split(sumAt, "/")))
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), node.Metric())
	return nil
}

// buildTree loads a manifest and builds its tree.
func buildTree(path string) (hierarchy.Node, error) {
	spec, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	return spec.Build()
}
