package cmd

import (
	"ccv/config"
	"ccv/config/models"

	"github.com/spf13/cobra"
)

func newGlobalCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "global <name>",
		Short: "Set the global environment",
		Long:  "Set the environment used by `ccv shell` and `ccv sync` when no name is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			err := opts.manager().Update(func(store *models.Store) (bool, error) {
				return true, config.Activate(store, name)
			})
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Global environment set to '%s'", name)
			return nil
		},
	}
}
