package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Zachkp/motionfolio/internal/config"
	"github.com/Zachkp/motionfolio/internal/content"
	"github.com/Zachkp/motionfolio/internal/server"
)

var addr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long:  `Starts the HTTP server. Configuration comes from the environment (and a .env file when present); --addr overrides HOST and PORT.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		gin.SetMode(cfg.GinMode)

		catalog, err := content.Load()
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		srv, err := server.New(server.Options{Config: cfg, Catalog: catalog})
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}

		listen := cfg.Addr()
		if addr != "" {
			listen = addr
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx, listen)
	},
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HOST and PORT")
	rootCmd.AddCommand(serveCmd)
}
