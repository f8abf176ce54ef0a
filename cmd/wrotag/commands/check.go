package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Load the cache and report how minified bundles were matched",
		Args:    cobra.NoArgs,
		PreRunE: c.configure,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := c.app.Check(cmd.Context())
			if err != nil {
				return err
			}
			failUnmatched, _ := cmd.Flags().GetBool("fail-unmatched")
			if failUnmatched && stats.Unmatched > 0 {
				return zerr.With(zerr.New("minified files without a group"), "count", fmt.Sprint(stats.Unmatched))
			}
			return nil
		},
	}
	cmd.Flags().Bool("fail-unmatched", false, "Exit with an error when a minified file matches no group")
	return cmd
}
