package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"ccv/config"
	"ccv/internal/shell"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newShellCmd(opts *rootOptions) *cobra.Command {
	var (
		dialectName string
		hook        bool
		spawn       bool
	)

	shellCmd := &cobra.Command{
		Use:   "shell [name]",
		Short: "Print export statements for an environment",
		Long: `Print statements that set an environment's variables, for use with eval:

  eval "$(ccv shell)"          # global environment
  eval "$(ccv shell work)"     # a named environment

With --exec a new shell is started with the variables set instead.
With --hook ccv prints a line to add to your shell startup file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dialect := shell.Detect()
			if dialectName != "" {
				d, err := shell.ParseDialect(dialectName)
				if err != nil {
					return err
				}
				dialect = d
			}

			if hook {
				fmt.Fprint(cmd.OutOrStdout(), shell.HookSnippet(dialect))
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

			if spawn {
				env, err := shell.Environ(os.Environ(), name, profile)
				if err != nil {
					return err
				}
				return execShell(cmd, name, env)
			}

			script, err := shell.Render(name, profile, dialect)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), script)
			log.Info("rendered environment", "name", name, "shell", dialect)
			return nil
		},
	}

	shellCmd.Flags().StringVarP(&dialectName, "shell", "s", "", "shell syntax: bash, zsh, sh, fish or powershell (default from $SHELL)")
	shellCmd.Flags().BoolVar(&hook, "hook", false, "print a startup-file line that loads the global environment")
	shellCmd.Flags().BoolVar(&spawn, "exec", false, "start a new shell with the environment set")
	shellCmd.MarkFlagsMutuallyExclusive("hook", "exec")

	return shellCmd
}

// execShell runs $SHELL (or sh) as a child with env and returns when it exits
func execShell(cmd *cobra.Command, name string, env []string) error {
	program := os.Getenv("SHELL")
	if program == "" {
		program = "sh"
	}

	printSuccess(cmd.ErrOrStderr(), "Environment '%s' activated", name)
	printInfo(cmd.ErrOrStderr(), "Starting %s, exit to return", program)

	child := exec.Command(program)
	child.Env = env
	child.Stdin = cmd.InOrStdin()
	child.Stdout = cmd.OutOrStdout()
	child.Stderr = cmd.ErrOrStderr()
	if err := child.Run(); err != nil {
		return fmt.Errorf("shell %s: %w", program, err)
	}
	return nil
}
