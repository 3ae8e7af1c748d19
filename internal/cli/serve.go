package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/compass/internal/adapters/otel"
	"github.com/emiliopalmerini/compass/internal/adapters/turso"
	"github.com/emiliopalmerini/compass/internal/config"
	"github.com/emiliopalmerini/compass/internal/database"
	"github.com/emiliopalmerini/compass/internal/migrate"
	"github.com/emiliopalmerini/compass/internal/ports"
	"github.com/emiliopalmerini/compass/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the journal server",
	Long: `Start the journal API server.

Examples:
  compass serve              # Start on default port 8080
  compass serve --port 3000  # Start on port 3000`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadServer()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.NewTurso(cfg.Database.URL, cfg.Database.AuthToken)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := migrate.RunAll(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	var metrics ports.MetricsExporter
	otelCfg := otel.LoadConfig()
	if otelCfg.Enabled {
		exporter, err := otel.NewExporter(ctx, otelCfg)
		if err != nil {
			return fmt.Errorf("failed to initialize metrics exporter: %w", err)
		}
		metrics = exporter
	} else {
		metrics = otel.NewNoOpExporter()
	}
	defer func() { _ = metrics.Close(context.Background()) }()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	server := web.NewServer(
		servePort,
		cfg.DefaultUser,
		turso.NewLogRepository(db),
		turso.NewConfigRepository(db),
		metrics,
	)
	return server.Start(ctx)
}
