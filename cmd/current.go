package cmd

import (
	"fmt"
	"os"

	"ccv/config"
	"ccv/internal/shell"
	"ccv/internal/utils"

	"github.com/spf13/cobra"
)

func newCurrentCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the environment in effect",
		Long: `Show the environment loaded in this shell (` + shell.SessionVar + `), or the
global environment when the shell has none.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.manager().Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			session := os.Getenv(shell.SessionVar)
			name := config.CurrentName(store, session)
			if name == "" {
				fmt.Fprintln(out, "No environment active")
				fmt.Fprintln(out, dimStyle.Render("Use ccv global <name> to set one"))
				return nil
			}

			source := "global"
			if session != "" {
				source = "session"
			}
			fmt.Fprintf(out, "%s (%s)\n", nameStyle.Render(name), source)

			profile, exists := store.GetProfile(name)
			if !exists {
				printWarn(out, "environment '%s' is no longer in %s", name, opts.manager().GetConfigPath())
				return nil
			}
			for _, key := range profile.SortedKeys() {
				fmt.Fprintf(out, "    %s=%s\n", key, utils.DisplayValue(key, profile.Variables[key]))
			}
			return nil
		},
	}
}
