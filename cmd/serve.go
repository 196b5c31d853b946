package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/domain-showcase/internal/contact"
	"github.com/ziadkadry99/domain-showcase/internal/metrics"
	"github.com/ziadkadry99/domain-showcase/internal/web"
)

var (
	servePort     int
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page and its JSON API",
	Long:  `Starts the HTTP server with the landing page, the domain API, the contact endpoint and Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSite()
		if err != nil {
			return err
		}

		port := s.cfg.Server.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}
		allowAll := s.cfg.Server.AllowAllOrigins || serveAllowAll

		logger := slog.Default()
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		srv := web.New(web.Config{
			Port:     port,
			PageSize: s.cfg.Catalog.PageSize,
			AllowAll: allowAll,
		}, web.Deps{
			Index:    s.index,
			Renderer: s.renderer,
			Inbox: contact.NewInbox(contact.Options{
				RatePerMinute: s.cfg.Contact.RatePerMinute,
				Burst:         s.cfg.Contact.Burst,
				Retain:        s.cfg.Contact.Retain,
				MaxMessage:    s.cfg.Contact.MaxMessage,
				Logger:        logger,
			}),
			Metrics:  metrics.New(reg),
			Gatherer: reg,
			Logger:   logger,
		})

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ln, err := net.Listen("tcp", srv.Addr())
		if err != nil {
			return fmt.Errorf("listening on %s: %w", srv.Addr(), err)
		}

		fmt.Fprintf(os.Stderr, "showcase v%s serving %d domains in %d categories\n", Version, s.index.Len(), len(s.index.Categories()))
		return srv.Run(ctx, ln)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "HTTP port (overrides server.port)")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all-origins", false, "allow CORS requests from any origin")
	rootCmd.AddCommand(serveCmd)
}
