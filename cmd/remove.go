package cmd

import (
	"ccv/config"
	"ccv/config/models"
	"ccv/internal/prompt"

	"github.com/spf13/cobra"
)

func newRemoveCmd(opts *rootOptions) *cobra.Command {
	var yes bool

	removeCmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an environment",
		Long: `Remove an environment after confirmation. Removing the global environment
also clears the global setting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			cm := opts.manager()

			store, err := cm.Load()
			if err != nil {
				return err
			}
			// unconfirmed removal only checks existence
			if _, err := config.Remove(store, name, false); err != nil {
				return err
			}

			confirmed := yes
			if !confirmed {
				p := prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr())
				if confirmed, err = p.Confirm("Remove environment '"+name+"'?", false); err != nil {
					return err
				}
			}
			if !confirmed {
				printInfo(cmd.OutOrStdout(), "Cancelled")
				return nil
			}

			var result config.RemoveResult
			err = cm.Update(func(store *models.Store) (bool, error) {
				var err error
				result, err = config.Remove(store, name, true)
				return err == nil, err
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSuccess(out, "Environment '%s' removed", name)
			if result.ClearedGlobal {
				printWarn(out, "'%s' was the global environment; no global environment is set now", name)
			}
			return nil
		},
	}

	removeCmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return removeCmd
}
