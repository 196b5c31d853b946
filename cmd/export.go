package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/domain-showcase/internal/export"
	"github.com/ziadkadry99/domain-showcase/internal/progress"
)

var (
	exportOutput     string
	exportBase       string
	exportContactURL string
	exportWorkers    int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the landing page as a static site",
	Long: `Renders every category page, every "load more" step and every blog post
to HTML, copies the page assets and writes a domains.json index.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSite()
		if err != nil {
			return err
		}

		outputDir := s.cfg.OutputDir
		if exportOutput != "" {
			outputDir = exportOutput
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		e := export.New(s.index, s.renderer, export.Options{
			OutputDir:  outputDir,
			PageSize:   s.cfg.Catalog.PageSize,
			Base:       exportBase,
			ContactURL: exportContactURL,
			Workers:    exportWorkers,
			Reporter:   progress.NewReporter(os.Stderr, "Exporting"),
		})
		res, err := e.Export(ctx)
		if err != nil {
			return fmt.Errorf("exporting site: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d pages and %d posts to %s\n", res.Pages, res.Posts, outputDir)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output directory (overrides output_dir)")
	exportCmd.Flags().StringVar(&exportBase, "base", "/", "URL path the site is published under")
	exportCmd.Flags().StringVar(&exportContactURL, "contact-url", "", "endpoint for the contact form (default /api/contact)")
	exportCmd.Flags().IntVar(&exportWorkers, "workers", 4, "pages rendered concurrently")
	rootCmd.AddCommand(exportCmd)
}
