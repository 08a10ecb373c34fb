package cmd

import (
	"fmt"

	"ccv/config"
	"ccv/internal/utils"

	"github.com/spf13/cobra"
)

func newEnvsCmd(opts *rootOptions) *cobra.Command {
	var verbose bool

	envsCmd := &cobra.Command{
		Use:     "envs",
		Aliases: []string{"list", "ls"},
		Short:   "List environments",
		Long:    "List all environments in alphabetical order. The global environment is marked with *.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.manager().Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			names, ok := config.List(store)
			if !ok {
				fmt.Fprintln(out, "No environments configured")
				fmt.Fprintln(out, dimStyle.Render("Use ccv create <name> to create one"))
				return nil
			}

			fmt.Fprintln(out, "Available environments:")
			for _, name := range names {
				marker := " "
				label := name
				if name == store.GlobalEnv {
					marker = "*"
					label = nameStyle.Render(name)
				}
				fmt.Fprintf(out, "%s %s\n", marker, label)

				if verbose {
					profile := store.Environments[name]
					for _, key := range profile.SortedKeys() {
						fmt.Fprintf(out, "    %s=%s\n", key, utils.DisplayValue(key, profile.Variables[key]))
					}
				}
			}

			if store.HasGlobal() {
				fmt.Fprintln(out, dimStyle.Render("\n* global environment"))
			}
			return nil
		},
	}

	envsCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show variables (tokens masked)")
	return envsCmd
}
