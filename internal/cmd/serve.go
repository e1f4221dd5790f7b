package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"runlet/internal/authorize"
	"runlet/internal/config"
	"runlet/internal/logging"
	"runlet/internal/route"
	"runlet/internal/runner"
	"runlet/internal/server"
)

// shutdownTimeout bounds graceful shutdown of in-flight requests.
const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the trigger agent",
	Long: `Start the HTTP agent and serve trigger requests until interrupted.

The agent listens on the configured port (default 8080), creates the scripts
directory if it does not exist, and executes one script per request with a
hard timeout. Press Ctrl-C or send SIGTERM to stop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log := logging.New(cfg.Log.File, cfg.Log.Level)
		defer func() { _ = log.Sync() }()

		if err := config.EnsureScriptsDir(cfg); err != nil {
			return err
		}

		srv := server.New(
			cfg.Port(),
			authorize.NewAllowlist(cfg.AllowRules()),
			route.NewResolver(cfg.Scripts.Dir),
			runner.New(cfg.Timeout()),
			log,
		)
		if err := srv.Start(); err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop

		log.Info("shutting down", zap.Duration("grace", shutdownTimeout))
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
