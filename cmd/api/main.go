package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/limbo/cragbook/internal/api"
	"github.com/limbo/cragbook/internal/repository"
	"github.com/limbo/cragbook/internal/service"
	"github.com/limbo/cragbook/pkg/cleanup"
	"github.com/limbo/cragbook/pkg/config"
	jwtservice "github.com/limbo/cragbook/pkg/jwt_service"
	"github.com/limbo/cragbook/pkg/logging"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var envFile string

func init() {
	service.InitValidator()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cragbook",
		Short: "Bouldering climb log backend",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadDotEnv(envFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
		SilenceUsage: true,
	}
	setupFlags(rootCmd)
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServer(cmd.Context())
			},
		},
		&cobra.Command{
			Use:       "migrate [up|down|status|version]",
			Short:     "Apply database migrations",
			Args:      cobra.MaximumNArgs(1),
			ValidArgs: []string{"up", "down", "status", "version"},
			RunE: func(cmd *cobra.Command, args []string) error {
				command := "up"
				if len(args) == 1 {
					command = args[0]
				}
				return runMigrations(cmd.Context(), command)
			},
		},
	)
	return rootCmd
}

func setupFlags(cmd *cobra.Command) {
	config.ApplyDefaults(viper.GetViper())
	defaults := config.NewViper()
	cmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultDotEnvPath, "Path to .env file")
	cmd.PersistentFlags().String("http-address", defaults.GetString("http.address"), "HTTP listen address")
	cmd.PersistentFlags().String("log-level", defaults.GetString("log.level"), "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("timezone", defaults.GetString("timezone"), "IANA zone calendar dates are read in")
	cmd.PersistentFlags().String("migrations-dir", defaults.GetString("migrations.dir"), "Directory with goose migrations")

	bindFlag(cmd, "http.address", "http-address")
	bindFlag(cmd, "log.level", "log-level")
	bindFlag(cmd, "timezone", "timezone")
	bindFlag(cmd, "migrations.dir", "migrations-dir")
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func pgConfig(pg config.PostgresConfig) *repository.PGCfg {
	return &repository.PGCfg{
		Address:  pg.Address,
		Username: pg.Username,
		Password: pg.Password,
		DB:       pg.DB,
	}
}

func runMigrations(ctx context.Context, command string) error {
	logger, err := logging.NewLogger(viper.GetString("log.level"))
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	defer cleanup.CleanUp(logger)

	pg, dir, err := config.LoadDatabase(viper.GetViper())
	if err != nil {
		return err
	}
	pool, err := repository.NewPool(ctx, pgConfig(pg))
	if err != nil {
		return err
	}
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	logger.Info("running migrations", zap.String("command", command), zap.String("dir", dir))
	if err = goose.Run(command, db, dir); err != nil {
		logger.Error("migrations failed", zap.Error(err))
		return err
	}
	return nil
}

func runServer(ctx context.Context) error {
	appConfig, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	logger, err := logging.NewLogger(appConfig.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	defer cleanup.CleanUp(logger)

	pool, err := repository.NewPool(ctx, pgConfig(appConfig.Postgres))
	if err != nil {
		logger.Error("connecting to postgres failed", zap.Error(err))
		return err
	}

	txManager := repository.NewTxManager(pool)
	gradesService := service.NewGradesService(repository.NewGradesRepo(pool), logger)
	sessionsService := service.NewSessionsService(repository.NewSessionsRepo(pool), txManager, appConfig.Location, logger)
	climbsService := service.NewClimbsService(
		repository.NewClimbsRepo(pool),
		gradesService,
		sessionsService,
		txManager,
		appConfig.Location,
		logger,
	)
	serv := api.New(&api.ServicesList{
		ClimbsService: climbsService,
		GradesService: gradesService,
		StatsService:  service.NewStatsService(repository.NewStatsRepo(pool)),
		JwtService:    jwtservice.New(appConfig.JWTSecret, appConfig.TokenTTL),
		Logger:        logger,
		Location:      appConfig.Location,
	})
	httpServer := serv.HTTPServer(appConfig.HTTPAddress)

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("address", appConfig.HTTPAddress))
		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-signalCtx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", zap.Error(err))
		}
		return err
	}
}
