package cmd

import (
	"ccv/config"
	"ccv/config/models"
	"ccv/internal/prompt"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newCreateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new environment interactively",
		Long: `Create a new environment. ccv asks for the base URL, auth token, model and
fast model in that order, then whether the new environment should become the
global one. Answers are stored verbatim.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm := opts.manager()
			p := prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr())

			var name string
			if len(args) == 1 {
				name = args[0]
			} else {
				var err error
				if name, err = p.Ask("Environment name"); err != nil {
					return err
				}
			}

			store, err := cm.Load()
			if err != nil {
				return err
			}
			if err := config.CheckAvailable(store, name); err != nil {
				return err
			}

			answers, err := p.CollectProfile()
			if err != nil {
				return err
			}

			err = cm.Update(func(store *models.Store) (bool, error) {
				return true, config.Create(store, name, answers.Variables, answers.SetActive)
			})
			if err != nil {
				return err
			}
			log.Info("environment created", "name", name, "path", cm.GetConfigPath())

			out := cmd.OutOrStdout()
			printSuccess(out, "Environment '%s' created", name)
			if answers.SetActive {
				printInfo(out, "'%s' is now the global environment", name)
			}
			return nil
		},
	}
}
