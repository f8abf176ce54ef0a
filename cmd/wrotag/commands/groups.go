package commands

import "github.com/spf13/cobra"

func (c *CLI) newGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "groups",
		Short:   "List the groups of the model with their minified bundles",
		Args:    cobra.NoArgs,
		PreRunE: c.configure,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ListGroups(cmd.Context())
		},
	}
}
