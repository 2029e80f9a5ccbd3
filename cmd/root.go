package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/clinterp/clinterp/core"
	"github.com/clinterp/clinterp/core/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(afero.NewOsFs(), cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		// No config on disk; run with the built-in defaults.
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clinterp",
	Short: "A minimal interactive command interpreter.",
	Long: `clinterp reads semicolon-separated commands from standard input and
dispatches them to a small fixed set of filesystem verbs: mkdir, cd,
touch and rm -rf. A line of "exit" ends the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		sh, err := core.NewShell(configuration, os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer sh.Close()

		return sh.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
