package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/ogurasousui/codex-employee-list/internal/platform/config"
	"github.com/ogurasousui/codex-employee-list/internal/platform/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	log := logger.Must(logger.New(config.Default().Log))
	defer func() { _ = log.Sync() }()

	if err := newRootCommand(log).Execute(); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
}

func newRootCommand(log *zap.Logger) *cobra.Command {
	var (
		configPath    string
		migrationsDir string
	)

	cmd := &cobra.Command{
		Use:           "migrate [up|down|drop|version]",
		Short:         "Apply storage_slots migrations to PostgreSQL",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			action := "up"
			if len(args) > 0 {
				action = args[0]
			}

			// database セクションの検証を有効にする
			if err := os.Setenv("EMPLIST_STORAGE_DRIVER", config.DriverPostgres); err != nil {
				return err
			}
			cfg, err := config.Load(effectiveConfigPath(configPath))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			if err := runMigration(log, action, migrationsDir, cfg.Database.DSN()); err != nil {
				return fmt.Errorf("%s: %w", action, err)
			}

			log.Info("migration completed", zap.String("action", action))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
	cmd.Flags().StringVar(&migrationsDir, "dir", "assets/migrations", "directory containing migration files")

	return cmd
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}

func runMigration(log *zap.Logger, action, dir, dsn string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve path for %s: %w", dir, err)
	}
	absDir = filepath.ToSlash(absDir)

	m, err := migrate.New(fmt.Sprintf("file://%s", absDir), dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	switch action {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "drop":
		return m.Drop()
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			if errors.Is(err, migrate.ErrNilVersion) {
				log.Info("no migration applied")
				return nil
			}
			return err
		}
		log.Info("current version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		return nil
	default:
		return fmt.Errorf("unsupported action %q", action)
	}
}
