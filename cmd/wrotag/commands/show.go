package commands

import "github.com/spf13/cobra"

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show <group>",
		Short:   "Print the unminified files and minified bundles of a group",
		Args:    cobra.ExactArgs(1),
		PreRunE: c.configure,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.ShowGroup(cmd.Context(), args[0])
		},
	}
}
