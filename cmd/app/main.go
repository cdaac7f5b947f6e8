package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"clean/cmd/fx/account_fx"
	"clean/cmd/fx/care_plan_fx"
	"clean/cmd/fx/config_fx"
	"clean/cmd/fx/controllers_fx"
	"clean/cmd/fx/cosmetic_fx"
	"clean/cmd/fx/db_fx"
	"clean/cmd/fx/embedding_fx"
	"clean/cmd/fx/ingredient_fx"
	"clean/cmd/fx/memcache_fx"
	"clean/cmd/fx/review_fx"
	"clean/cmd/fx/survey_fx"
	"clean/internal/config"
	"clean/internal/cosing"
	"clean/internal/infra"
	"clean/internal/models/request_models"
	"clean/internal/services"
)

const startStopTimeout = 30 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:          "clean",
		Short:        "Clean. cosmetics backend",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file")

	loadConfig := func() (config.Config, error) {
		return config.Load(envFile)
	}

	root.AddCommand(
		newServeCmd(loadConfig),
		newMigrateCmd(loadConfig),
		newImportCosingCmd(loadConfig),
		newCreateAdminCmd(loadConfig),
	)
	return root
}

func fxLogger(log *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: log}
}

// baseOptions wires configuration, logging and the database.
func baseOptions(cfg config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		config_fx.Module,
		db_fx.Module,
		fx.WithLogger(fxLogger),
	)
}

func newServeCmd(loadConfig func() (config.Config, error)) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			opts := []fx.Option{
				baseOptions(cfg),
				memcache_fx.Module,
				embedding_fx.Module,
				account_fx.Module,
				survey_fx.Module,
				cosmetic_fx.Module,
				ingredient_fx.Module,
				review_fx.Module,
				care_plan_fx.Module,
				controllers_fx.Module,

				fx.Provide(ProvideRouter),
				fx.Invoke(StartServer),
			}
			if migrate {
				opts = append(opts, fx.Invoke(infra.Migrate))
			}

			app := fx.New(opts...)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "run database migrations before serving")
	return cmd
}

func newMigrateCmd(loadConfig func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.PostgresURL == "" {
				return errors.New("POSTGRES_URL is required")
			}
			var db *gorm.DB
			return runOnce(cmd.Context(), func(ctx context.Context) error {
				return infra.Migrate(db.WithContext(ctx))
			}, baseOptions(cfg), fx.Populate(&db))
		},
	}
}

func newImportCosingCmd(loadConfig func() (config.Config, error)) *cobra.Command {
	var utf8 bool

	cmd := &cobra.Command{
		Use:   "import-cosing <file>",
		Short: "Load the COSING ingredient inventory from a CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.PostgresURL == "" {
				return errors.New("POSTGRES_URL is required")
			}

			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			var importService services.ImportServiceInterface
			return runOnce(cmd.Context(), func(ctx context.Context) error {
				result, err := importService.ImportCosing(ctx, file, cosing.Options{Latin1: !utf8})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d ingredients, skipped %d rows\n", result.Imported, result.Skipped)
				return nil
			}, baseOptions(cfg), ingredient_fx.Module, fx.Populate(&importService))
		},
	}
	cmd.Flags().BoolVar(&utf8, "utf8", false, "treat the file as UTF-8 instead of ISO-8859-1")
	return cmd
}

func newCreateAdminCmd(loadConfig func() (config.Config, error)) *cobra.Command {
	var req request_models.SignUpRequest

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Email == "" || len(req.Password) < 6 {
				return errors.New("--email and a --password of at least 6 characters are required")
			}
			if req.Username == "" {
				req.Username = req.Email
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var accountService services.AccountServiceInterface
			return runOnce(cmd.Context(), func(ctx context.Context) error {
				account, err := accountService.CreateAdmin(ctx, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", account.Email, account.ID)
				return nil
			}, baseOptions(cfg), memcache_fx.Module, account_fx.Module, fx.Populate(&accountService))
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&req.Username, "username", "", "display name (defaults to email)")
	cmd.Flags().StringVar(&req.Password, "password", "", "admin password")
	return cmd
}

// runOnce starts the app, calls run and stops the app again. Interrupts
// cancel the context passed to run.
func runOnce(ctx context.Context, run func(ctx context.Context) error, opts ...fx.Option) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := fx.New(opts...)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, startStopTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancelStop := context.WithTimeout(context.Background(), startStopTimeout)
		defer cancelStop()
		if err := app.Stop(stopCtx); err != nil {
			zap.L().Warn("shutdown", zap.Error(err))
		}
	}()

	return run(ctx)
}
