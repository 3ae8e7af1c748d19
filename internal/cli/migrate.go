package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/compass/internal/config"
	"github.com/emiliopalmerini/compass/internal/database"
	"github.com/emiliopalmerini/compass/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [version]",
	Short: "Run database migrations",
	Long: `Run database migrations.

Without arguments, runs all pending migrations (up).
With a version number, migrates to that specific version (up or down as needed).

Examples:
  compass migrate      # Run all pending migrations
  compass migrate 1    # Migrate to version 1
  compass migrate 0    # Rollback all migrations`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadServer()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.NewTurso(cfg.Database.URL, cfg.Database.AuthToken)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := migrate.EnsureMigrationsTable(ctx, db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	currentVersion, dirty, err := migrate.GetCurrentVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d, manual intervention required", currentVersion)
	}

	allMigrations, err := migrate.LoadMigrations()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	fmt.Printf("Current version: %d\n", currentVersion)

	if len(args) == 0 {
		if err := migrate.RunAll(ctx, db); err != nil {
			return err
		}
		newVersion, _, _ := migrate.GetCurrentVersion(ctx, db)
		if newVersion == currentVersion {
			fmt.Println("No migrations to run")
		} else {
			fmt.Printf("Migrated to version %d\n", newVersion)
		}
		return nil
	}

	targetVersion, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid version number: %s", args[0])
	}

	switch {
	case targetVersion > currentVersion:
		if err := migrate.MigrateUpTo(ctx, db, allMigrations, currentVersion, targetVersion); err != nil {
			return err
		}
		fmt.Printf("Migrated to version %d\n", targetVersion)
	case targetVersion < currentVersion:
		if err := migrate.MigrateDownTo(ctx, db, allMigrations, currentVersion, targetVersion); err != nil {
			return err
		}
		fmt.Printf("Migrated to version %d\n", targetVersion)
	default:
		fmt.Println("Already at target version")
	}

	return nil
}
