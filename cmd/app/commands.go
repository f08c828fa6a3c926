package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitclass/internal/auth"
	"fitclass/internal/db"
	"fitclass/internal/gym"
	"fitclass/internal/logger"
	"fitclass/internal/server"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var seedOnStart bool

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE:  runServe,
	}
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Info("Starting FitClass", "version", version, "port", cfg.Port, "database", cfg.DBPath)

	database, err := openDatabase(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	if seedOnStart {
		if _, err := seed(cmd.Context(), database); err != nil {
			return err
		}
	}

	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET is empty, class changes are not authenticated")
	}

	srv := server.New(database, cfg)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		serverErrChan <- srv.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
	return nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			database, err := openDatabase(cfg.DBPath)
			if err != nil {
				return err
			}
			defer database.Close()

			schemaVersion, dirty, err := db.MigrationVersion(database)
			if err != nil {
				return fmt.Errorf("failed to read schema version: %w", err)
			}
			logger.Info("Schema is up to date", "version", schemaVersion, "dirty", dirty)
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default instructors and locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			database, err := openDatabase(cfg.DBPath)
			if err != nil {
				return err
			}
			defer database.Close()

			inserted, err := seed(cmd.Context(), database)
			if err != nil {
				return err
			}
			if !inserted {
				fmt.Fprintln(cmd.OutOrStdout(), "Default data already present")
			}
			return nil
		},
	}
}

func tokenCmd() *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for class changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			token, err := auth.GenerateToken(subject, role, cfg.JWTSecret, ttl)
			if err != nil {
				return fmt.Errorf("failed to generate token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "front-desk", "Operator name stored in the token")
	cmd.Flags().StringVarP(&role, "role", "r", auth.RoleStaff, "Role claim")
	cmd.Flags().DurationVar(&ttl, "ttl", auth.DefaultTokenTTL, "Token lifetime")
	return cmd
}

func openDatabase(path string) (*sqlx.DB, error) {
	database, err := db.Connect(path)
	if err != nil {
		return nil, err
	}

	if err := db.RunMigrations(database); err != nil {
		database.Close()
		return nil, err
	}
	logger.Info("Migrations completed")

	return database, nil
}

func seed(ctx context.Context, database *sqlx.DB) (bool, error) {
	inserted, err := gym.NewService(gym.NewRepository(database)).Seed(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to seed defaults: %w", err)
	}
	if inserted {
		logger.Info("Default instructors and locations inserted")
	}
	return inserted, nil
}
