package cmd

import (
	claudesync "ccv/config/sync"
	"ccv/internal/tui"

	"github.com/spf13/cobra"
)

func newPickCmd(opts *rootOptions) *cobra.Command {
	var settingsPath string

	pickCmd := &cobra.Command{
		Use:   "pick",
		Short: "Browse environments interactively",
		Long: `Open a full-screen list of environments. enter sets the global environment,
s syncs it to Claude Code settings, a opens a form for a new environment,
d removes one after confirmation and q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if settingsPath == "" {
				settingsPath = claudesync.DefaultSettingsPath()
			}
			return tui.Run(opts.manager(), settingsPath)
		},
	}

	pickCmd.Flags().StringVar(&settingsPath, "settings", "", "path to Claude Code settings.json used by s")
	return pickCmd
}
