package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/arbor/internal/hierarchy"
)

var (
	findName         string
	findNameContains string
	findMinMetric    int64
	findLeafOnly     bool
	findSep          string
)

// findCmd searches a tree by predicate and prints matching paths.
var findCmd = &cobra.Command{
	Use:   "find <manifest>",
	Short: "Search a tree and print matching paths",
	Long: `Search the tree declared in a manifest. Filters combine with AND;
with no filters every node matches. Paths print in depth-first order,
following the manifest's declaration order.

Examples:
  # All nodes named "c"
  arbor find tree.yaml --name c

  # Leaves whose value is at least 3, dot-separated output
  arbor find tree.yaml --leaf-only --min-metric 3 --sep .`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().StringVar(&findName, "name", "", "match nodes with exactly this name")
	findCmd.Flags().StringVar(&findNameContains, "name-contains", "", "match nodes whose name contains this substring")
	findCmd.Flags().Int64Var(&findMinMetric, "min-metric", 0, "match nodes whose aggregate metric is at least this")
	findCmd.Flags().BoolVar(&findLeafOnly, "leaf-only", false, "match only terminal nodes")
	findCmd.Flags().StringVar(&findSep, "sep", "/", "separator used to join path names")
}

func runFind(cmd *cobra.Command, args []string) error {
	root, err := buildTree(args[0])
	if err != nil {
		return err
	}

	pred := findPredicate(cmd)
	paths, err := root.Find(pred)
	if err != nil {
		return err
	}

	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p.Join(findSep))
	}
	return nil
}

// findPredicate assembles the predicate from the command's flags.
func findPredicate(cmd *cobra.Command) hierarchy.Predicate {
	var preds []hierarchy.Predicate
	if findName != "" {
		preds = append(preds, hierarchy.NameEquals(findName))
	}
	if findNameContains != "" {
		preds = append(preds, hierarchy.NameContains(findNameContains))
	}
	if cmd.Flags().Changed("min-metric") {
		preds = append(preds, hierarchy.MetricAtLeast(findMinMetric))
	}
	if findLeafOnly {
		preds = append(preds, hierarchy.IsLeaf())
	}
	if len(preds) == 0 {
		return hierarchy.NameContains("")
	}
	return hierarchy.And(preds...)
}
