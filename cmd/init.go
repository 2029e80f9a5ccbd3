package cmd

import (
	"log"

	"github.com/clinterp/clinterp/core/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// initCmd materializes the default configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration into the config directory.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr(), "", 0)

		_, err := config.Initialize(afero.NewOsFs(), cfgPath, logger)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
