package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func initCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database file if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Opening the store in the root command already bootstrapped it.
			if _, err := o.app.Store.Load(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Database ready at %s (%s)\n", o.app.Store.Path(), o.app.Store.Algorithm())
			return nil
		},
	}
}
