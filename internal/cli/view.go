package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// viewCommand creates the view command for the interactive terminal host.
func (c *CLI) viewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [graph.json]",
		Short: "Explore a graph interactively in the terminal",
		Long: `Explore a graph interactively in the terminal.

The view command hosts the simulation in a full-screen terminal UI. The
physics loop runs continuously; the mouse drives the same interaction
machine the HTTP host uses:

  - drag a node to pin it under the cursor
  - drag the background to pan
  - scroll to zoom toward the cursor
  - double-click a node to focus its neighborhood, double-click the
    background to clear the focus

Keys: f fits the layout to the window, r resets pan and zoom, q quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			s, err := c.newSim(path)
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				newViewModel(s),
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
				tea.WithContext(cmd.Context()),
			)
			_, err = p.Run()
			return err
		},
	}

	return cmd
}
