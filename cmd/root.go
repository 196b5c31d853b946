package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/domain-showcase/internal/config"
	"github.com/ziadkadry99/domain-showcase/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Landing page for a portfolio of domains for sale",
	Long: `Showcase serves a landing page that lists domains for sale as cards.
Visitors filter the cards by category, reveal them a page at a time, and
open dialogs for domain details, the FAQ, the blog and a contact form.
The same page can be exported as a static site.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(logging.New(os.Stderr, verbose))
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
