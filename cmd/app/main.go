package main

import (
	"fmt"
	"os"

	"fitclass/internal/config"
	"fitclass/internal/logger"
	"fitclass/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// CLI flags override the matching environment variables.
var (
	dbPath string
	port   string
)

// @title FitClass API
// @version 1.0
// @description Fitness class scheduling for a small gym.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fitclass",
		Short:         "FitClass - fitness class scheduling",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "SQLite database path (or set DB_PATH env var)")
	rootCmd.PersistentFlags().StringVarP(&port, "port", "p", "", "HTTP server port (or set PORT env var)")
	rootCmd.PersistentFlags().BoolVar(&seedOnStart, "seed", true, "Insert default instructors and locations when missing")

	rootCmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		seedCmd(),
		tokenCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Show version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "fitclass %s (commit: %s)\n", version, commit)
			},
		},
	)

	return rootCmd
}

// loadConfig reads the environment, applies flag overrides and sets up
// logging, validation and gin mode.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if port != "" {
		cfg.Port = port
	}

	logger.Setup(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	validation.Setup()
	gin.SetMode(cfg.GinMode)

	return cfg, nil
}
