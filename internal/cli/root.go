// Package cli implements mslctl, the operator command line for bulk
// imports, schema migrations, access tokens and admin bootstrap.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aidenliw/msl-mohawk/internal/adapter/postgres"
	"github.com/aidenliw/msl-mohawk/internal/app"
	"github.com/aidenliw/msl-mohawk/internal/config"
	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/service/ingestion"
	"github.com/aidenliw/msl-mohawk/migrations"
)

type importer interface {
	Import(ctx context.Context, kind domain.UploadKind, in ingestion.Input) (*ingestion.Report, error)
}

type promoter interface {
	Promote(ctx context.Context, email string) (*domain.Account, error)
}

type migrator interface {
	Up(ctx context.Context) error
	Down(ctx context.Context) error
	Status(ctx context.Context) ([]migrations.Status, error)
	Close() error
}

// backend resolves what a command needs. Tests swap in fakes.
type backend struct {
	loadConfig func(path string) (*config.Config, error)
	connect    func(ctx context.Context, cfg *config.Config, log *slog.Logger) (importer, promoter, func(), error)
	migrator   func(cfg *config.Config, log *slog.Logger) (migrator, error)
}

func defaultBackend() backend {
	return backend{
		loadConfig: config.LoadPath,
		connect: func(ctx context.Context, cfg *config.Config, log *slog.Logger) (importer, promoter, func(), error) {
			pool, err := postgres.NewPool(ctx, cfg.Database)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("connect database: %w", err)
			}
			svcs := app.NewServices(cfg, log, pool)
			return svcs.Ingestion, svcs.Account, pool.Close, nil
		},
		migrator: func(cfg *config.Config, log *slog.Logger) (migrator, error) {
			return migrations.NewMigrator(cfg.Database.DSN, log)
		},
	}
}

// NewRootCmd creates the root mslctl command.
func NewRootCmd(ver string) *cobra.Command {
	return newRootCmd(ver, defaultBackend())
}

func newRootCmd(ver string, b backend) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mslctl",
		Short:         "Mohawk student licensing operator tool",
		Long:          "mslctl imports rosters, products and license keys, migrates the schema and mints access tokens.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (defaults to $CONFIG_PATH, then ./config.yaml)")
	cmd.AddCommand(
		newIngestCmd(b),
		newMigrateCmd(b),
		newTokenCmd(b),
		newAccountCmd(b),
	)

	return cmd
}

const rootCmdExample = `  # Import a roster, reporting without storing
  mslctl ingest students roster.txt --dry-run

  # Import license keys separated by pipes
  mslctl ingest keys keys.txt --delimiter '|'

  # Apply pending migrations
  mslctl migrate up

  # Make an existing account an administrator
  mslctl account promote --email jane.doe@mohawkcollege.ca

  # Mint an admin token for API testing
  mslctl token issue --role Admin`

// setup loads configuration and builds the command logger.
func setup(cmd *cobra.Command, b backend) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := b.loadConfig(path)
	if err != nil {
		return nil, nil, err
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Log.Level = "debug"
	}
	return cfg, app.NewLogger(cfg.Log), nil
}
