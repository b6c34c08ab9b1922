package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/phrazzld/holocron-api/internal/config"
	"github.com/phrazzld/holocron-api/internal/platform/logger"
	"github.com/phrazzld/holocron-api/internal/platform/postgres"
	"github.com/phrazzld/holocron-api/internal/seed"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configFile string
	envFile    string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "holocron-api",
		Short:        "Star Wars catalog and favorites API",
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file path (default ./config.yaml if present)")
	flags.StringVar(&opts.envFile, "env-file", "", "dotenv file path (default ./.env if present)")

	cmd.AddCommand(
		serveCommand(opts),
		migrateCommand(opts),
		seedCommand(opts),
		hashPasswordCommand(),
	)
	return cmd
}

// bootstrap loads the configuration and sets up the process logger.
func (o *rootOptions) bootstrap() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadWithOptions(config.Options{ConfigFile: o.configFile, EnvFile: o.envFile})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("log_format", cfg.Server.LogFormat))
	return cfg, l, nil
}

func serveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, l, err := opts.bootstrap()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			db, err := openDatabase(ctx, cfg.Database, l)
			if err != nil {
				return err
			}

			app, err := newApplication(cfg, l, db)
			if err != nil {
				_ = db.Close()
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return app.Run(ctx)
		},
	}
}

func migrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate " + strings.Join(postgres.MigrationCommands, "|"),
		Short:     "Apply or inspect database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: postgres.MigrationCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := opts.bootstrap()
			if err != nil {
				return err
			}

			db, err := openDatabase(cmd.Context(), cfg.Database, l)
			if err != nil {
				return err
			}
			defer closeDatabase(db, l)

			return postgres.Migrate(cmd.Context(), db, args[0], l)
		},
	}
}

func seedCommand(opts *rootOptions) *cobra.Command {
	var (
		file string
		cost int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load users and catalog entries from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := seed.ParseFile(file)
			if err != nil {
				return err
			}

			cfg, l, err := opts.bootstrap()
			if err != nil {
				return err
			}

			db, err := openDatabase(cmd.Context(), cfg.Database, l)
			if err != nil {
				return err
			}
			defer closeDatabase(db, l)

			loader, err := seed.NewLoader(db,
				postgres.NewPostgresUserStore(db, l),
				postgres.NewPostgresCatalogStore(db, l),
				cost, l)
			if err != nil {
				return err
			}

			sum, err := loader.Load(cmd.Context(), data)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"seeded %d users, %d characters, %d planets, %d vehicles\n",
				sum.Users, sum.Characters, sum.Planets, sum.Vehicles)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "seed.yaml", "seed file path")
	cmd.Flags().IntVar(&cost, "bcrypt-cost", bcrypt.DefaultCost, "bcrypt cost for plaintext passwords")
	return cmd
}

// hashPasswordCommand prints bcrypt hashes for use as password_hash in seed files.
func hashPasswordCommand() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password PASSWORD...",
		Short: "Print bcrypt hashes for seed files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, password := range args {
				hash, err := seed.HashPassword(password, cost)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), hash); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	return cmd
}

func closeDatabase(db interface{ Close() error }, l *slog.Logger) {
	if err := db.Close(); err != nil {
		l.Error("Error closing database connection", slog.String("error", err.Error()))
	}
}
