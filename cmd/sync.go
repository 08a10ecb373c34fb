package cmd

import (
	"fmt"

	"ccv/config"
	claudesync "ccv/config/sync"

	"github.com/spf13/cobra"
)

func newSyncCmd(opts *rootOptions) *cobra.Command {
	var (
		settingsPath string
		clearEnv     bool
		restore      bool
		dryRun       bool
	)

	syncCmd := &cobra.Command{
		Use:   "sync [name]",
		Short: "Write an environment into Claude Code settings",
		Long: `Write an environment's variables into the env block of Claude Code's
settings.json (default ~/.claude/settings.json). ANTHROPIC_* keys are
replaced. Other variables of the environment overwrite env entries of the
same name; every other setting is preserved. A backup is taken first.

  ccv sync             # global environment
  ccv sync work        # a named environment
  ccv sync --clear     # remove ANTHROPIC_* keys
  ccv sync --restore   # roll back to the latest backup`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if settingsPath == "" {
				settingsPath = claudesync.DefaultSettingsPath()
			}
			out := cmd.OutOrStdout()
			syncOpts := claudesync.SyncOptions{DryRun: dryRun, CreateBackup: true}

			switch {
			case restore:
				if err := claudesync.Restore(settingsPath); err != nil {
					return err
				}
				printSuccess(out, "Restored %s from the latest backup", settingsPath)
				return nil

			case clearEnv:
				content, err := claudesync.Apply(settingsPath, nil, syncOpts)
				if err != nil {
					return err
				}
				if dryRun {
					fmt.Fprintln(out, content)
					return nil
				}
				printSuccess(out, "Removed ANTHROPIC_* settings from %s", settingsPath)
				return nil
			}

			store, err := opts.manager().Load()
			if err != nil {
				return err
			}
			var explicit string
			if len(args) == 1 {
				explicit = args[0]
			}
			name, profile, err := config.ResolveActive(store, explicit)
			if err != nil {
				return err
			}

			content, err := claudesync.Apply(settingsPath, profile.Variables, syncOpts)
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Fprintln(out, content)
				return nil
			}
			printSuccess(out, "Synced '%s' to %s", name, settingsPath)
			return nil
		},
	}

	flags := syncCmd.Flags()
	flags.StringVar(&settingsPath, "settings", "", "path to Claude Code settings.json")
	flags.BoolVar(&clearEnv, "clear", false, "remove ANTHROPIC_* keys instead of writing an environment")
	flags.BoolVar(&restore, "restore", false, "restore settings.json from the latest backup")
	flags.BoolVar(&dryRun, "dry-run", false, "print the resulting settings without writing")
	syncCmd.MarkFlagsMutuallyExclusive("clear", "restore")
	syncCmd.MarkFlagsMutuallyExclusive("dry-run", "restore")

	return syncCmd
}
