package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/domain-showcase/internal/browse"
	"github.com/ziadkadry99/domain-showcase/internal/catalog"
	"github.com/ziadkadry99/domain-showcase/internal/report"
)

var (
	listCategory string
	listPages    int
	listFormat   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the domains a visitor would see",
	Long: `Applies a category filter and a number of "load more" steps, then prints
the visible domains as a text table or a markdown report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listFormat != "text" && listFormat != "markdown" {
			return fmt.Errorf("unknown format %q (want text or markdown)", listFormat)
		}

		s, err := loadSite()
		if err != nil {
			return err
		}
		if !s.index.Has(listCategory) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: no category %q, nothing will match\n", listCategory)
		}

		ctrl := browse.New(s.index, s.cfg.Catalog.PageSize)
		ctrl.Restore(listCategory, listPages)
		r := report.New(s.index, ctrl, s.labels, s.cfg.Site.DefaultPrice)

		if listFormat == "markdown" {
			return report.WriteMarkdown(cmd.OutOrStdout(), r)
		}
		return report.WriteText(cmd.OutOrStdout(), r)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", catalog.All, "category to filter by")
	listCmd.Flags().IntVarP(&listPages, "pages", "p", 1, "number of pages to reveal")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "text", "output format: text or markdown")
	rootCmd.AddCommand(listCmd)
}
