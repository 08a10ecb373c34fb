package cmd

import (
	"fmt"
	"strings"

	"ccv/config"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version information
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo sets the version information
func SetVersionInfo(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		date = d
	}
}

const (
	configFileFlag = "config-file"
	logLevelFlag   = "log-level"
	envPrefix      = "CCV"
)

// rootOptions carries the settings shared by every subcommand
type rootOptions struct {
	v *viper.Viper
}

func (o *rootOptions) configPath() string {
	return o.v.GetString(configFileFlag)
}

func (o *rootOptions) manager() *config.Manager {
	return config.NewConfigManager(o.configPath())
}

// setupLogging routes logs to the command's error stream so stdout stays
// clean for `eval "$(ccv shell)"`
func (o *rootOptions) setupLogging(cmd *cobra.Command) error {
	level, err := log.ParseLevel(o.v.GetString(logLevelFlag))
	if err != nil {
		return fmt.Errorf("invalid --%s: %w", logLevelFlag, err)
	}
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(level)
	log.Debug("resolved config file", "path", o.manager().GetConfigPath())
	return nil
}

// NewRootCmd builds the ccv command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "ccv",
		Short: "Manage claude-code environment profiles",
		Long: `ccv manages named sets of claude-code API variables (endpoint, auth token,
model and fast model) stored in ~/.claude-code-env.toml.

Create environments interactively, pick a global one, and load it into a
shell with: eval "$(ccv shell)"`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setupLogging(cmd)
		},
	}

	rootCmd.SetVersionTemplate(`ccv {{.Version}}
Commit: ` + commit + `
Date: ` + date + `
`)

	flags := rootCmd.PersistentFlags()
	flags.StringP(configFileFlag, "c", "", "path to the environments file (default ~/.claude-code-env.toml)")
	flags.String(logLevelFlag, "warn", "log level (debug, info, warn, error)")

	opts.v.SetEnvPrefix(envPrefix)
	opts.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	opts.v.AutomaticEnv()
	if err := opts.v.BindPFlags(flags); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(
		newCreateCmd(opts),
		newRemoveCmd(opts),
		newGlobalCmd(opts),
		newEnvsCmd(opts),
		newShellCmd(opts),
		newCurrentCmd(opts),
		newSyncCmd(opts),
		newPickCmd(opts),
	)

	return rootCmd
}

// Execute executes the root command
func Execute() error {
	return NewRootCmd().Execute()
}
