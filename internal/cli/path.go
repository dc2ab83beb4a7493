package cli

import (
	"strings"

	"github.com/spf13/cobra"

	ferrors "github.com/matzehuels/forcegraph/pkg/errors"
)

// pathCommand creates the path command for shortest-path queries.
func (c *CLI) pathCommand() *cobra.Command {
	var graphPath string

	cmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Find the shortest path between two nodes",
		Long: `Find the shortest path between two nodes.

The path command runs an unweighted breadth-first search over the graph's
edges and prints the node ids along a shortest route. Ties break toward
nodes added earlier, so repeated queries give the same answer.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.newSim(graphPath)
			if err != nil {
				return err
			}

			from, to := args[0], args[1]
			path, ok := s.ShortestPath(from, to)
			if !ok {
				return ferrors.New(ferrors.ErrCodePathNotFound, "no path between %s and %s", from, to)
			}

			printSuccess("%s", strings.Join(path, " "+iconArrow+" "))
			printDetail("%d hops", len(path)-1)
			return nil
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "graph JSON file (default: demo graph)")

	return cmd
}
