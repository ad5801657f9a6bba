package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gkevents/server/internal/api"
	"github.com/gkevents/server/internal/auth"
	"github.com/gkevents/server/internal/config"
	"github.com/gkevents/server/internal/metrics"
	"github.com/gkevents/server/internal/storage/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gkevents HTTP server",
	Long: `Start the HTTP server and begin accepting API requests.

The server will:
- Load configuration from environment variables (a local .env is honored)
- Bootstrap an admin user if ADMIN_EMAIL/ADMIN_PASSWORD are set
- Serve the JSON API and /metrics
- Handle graceful shutdown on SIGINT/SIGTERM`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host address (default: 0.0.0.0)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (default: 8080)")
}

func runServer() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	logger := config.NewLogger(cfg.Logging)
	logger.Info().Msg("starting gkevents server")

	metrics.Init(Version, GitCommit, BuildDate)

	poolCfg, err := poolConfig(cfg)
	if err != nil {
		return err
	}
	poolCtx, poolCancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := pgxpool.NewWithConfig(poolCtx, poolCfg)
	poolCancel()
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer pool.Close()

	bootstrapCtx, bootstrapCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := bootstrapAdminUser(bootstrapCtx, cfg, pool, logger); err != nil {
		logger.Error().Err(err).Msg("admin bootstrap failed")
	}
	bootstrapCancel()

	handler, err := api.NewRouter(cfg, logger, pool)
	if err != nil {
		return fmt.Errorf("router init failed: %w", err)
	}

	// Expired session rows are invisible to lookups; this just keeps the
	// table from growing without bound.
	purgeCtx, purgeCancel := context.WithCancel(context.Background())
	defer purgeCancel()
	go purgeSessions(purgeCtx, pool, logger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	return gracefulShutdown(server, logger)
}

func poolConfig(cfg config.Config) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if cfg.Database.MaxConnections > 0 {
		poolCfg.MaxConns = int32(cfg.Database.MaxConnections)
	}
	return poolCfg, nil
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	return cfg, nil
}

// bootstrapAdminUser creates the configured admin account if it does not
// exist yet. No route mutates roles, so this is how the first admin comes
// to be.
func bootstrapAdminUser(ctx context.Context, cfg config.Config, pool *pgxpool.Pool, logger zerolog.Logger) error {
	bootstrap := cfg.AdminBootstrap
	if bootstrap.Email == "" || bootstrap.Password == "" {
		logger.Debug().Msg("admin bootstrap env vars not set; skipping")
		return nil
	}

	const checkQuery = `SELECT id FROM users WHERE email = $1 LIMIT 1`
	var existingID int64
	if err := pool.QueryRow(ctx, checkQuery, bootstrap.Email).Scan(&existingID); err == nil {
		return nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check admin user: %w", err)
	}

	var name *string
	if bootstrap.Name != "" {
		name = &bootstrap.Name
	}

	const insertQuery = `
INSERT INTO users (name, email, password_hash, role)
VALUES ($1, $2, $3, 'admin')`
	if _, err := pool.Exec(ctx, insertQuery, name, bootstrap.Email, auth.HashPassword(bootstrap.Password)); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	if cfg.Environment == "production" {
		logger.Info().Msg("bootstrapped admin user")
	} else {
		logger.Info().Str("email", bootstrap.Email).Msg("bootstrapped admin user")
	}
	return nil
}

func purgeSessions(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) {
	repo, err := postgres.NewRepository(pool)
	if err != nil {
		return
	}
	store := repo.Sessions()

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := store.PurgeExpired(ctx)
			if err != nil {
				logger.Error().Err(err).Msg("session purge failed")
				continue
			}
			if purged > 0 {
				logger.Debug().Int64("purged", purged).Msg("expired sessions removed")
			}
		}
	}
}

func gracefulShutdown(server *http.Server, logger zerolog.Logger) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
		return err
	}

	logger.Info().Msg("server stopped")
	return nil
}
