package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/compass/internal/adapters/turso"
	"github.com/emiliopalmerini/compass/internal/config"
	"github.com/emiliopalmerini/compass/internal/database"
	"github.com/emiliopalmerini/compass/internal/domain"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a weekly report as JSON",
	Long: `Aggregate one ISO week of log documents and print the report.

Examples:
  compass report                      # Current week for the default user
  compass report --week 2025-W35      # Specific week
  compass report --user alice         # Another user's documents`,
	RunE: runReport,
}

var (
	reportWeek string
	reportUser string
)

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&reportWeek, "week", "w", "", "ISO week to report on (YYYY-Www), defaults to the current week")
	reportCmd.Flags().StringVarP(&reportUser, "user", "u", "", "User whose documents to report on, defaults to the configured default user")
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	now := time.Now()

	cfg, err := config.LoadServer()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	user := reportUser
	if user == "" {
		user = cfg.DefaultUser
	}

	week := reportWeek
	if week == "" {
		week = domain.FormatISOWeek(now)
	}
	year, weekNum, err := domain.ParseISOWeek(week)
	if err != nil {
		return err
	}

	db, err := database.NewTurso(cfg.Database.URL, cfg.Database.AuthToken)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	logs, err := turso.NewLogRepository(db).List(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to load logs: %w", err)
	}
	userCfg, err := turso.NewConfigRepository(db).Get(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	settings := domain.DefaultConfig()
	if userCfg != nil {
		settings = *userCfg
	}

	report := domain.BuildWeeklyReport(logs, settings, year, weekNum, now)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
