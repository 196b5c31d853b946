package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/domain-showcase/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize showcase configuration with an interactive wizard",
	Long:  `Runs an interactive wizard for the site title, registrar link, paging and port, and writes the answers to the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
