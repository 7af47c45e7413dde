package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"expense_tracker/internal/adapters/metrics"
	"expense_tracker/internal/adapters/restapi"
	"expense_tracker/internal/adapters/storage/memory/transaction"
	"expense_tracker/internal/adapters/view"
	"expense_tracker/internal/config"
	"expense_tracker/internal/core/application"
	"expense_tracker/internal/core/domain"
	"expense_tracker/internal/logger"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

// configEnvVar names the environment variable consulted when --config is not given.
const configEnvVar = "LEDGER_CONFIG"

const shutdownTimeout = 15 * time.Second

var configFile string

// main is entry point of application.
func main() {
	// Load .env for local development; a missing file is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Record and filter bounded expense transactions",
	Long: `Ledger keeps an ordered list of expense transactions, each with an amount
and a category, and highlights the ones matching an amount or category filter.`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ledger HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context(), resolveConfigPath(configFile))
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the accepted transaction categories",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(domain.Categories(), "\n"))
	},
}

func init() {
	serveCmd.Flags().StringVar(&configFile, "config", "",
		"Path to YAML configuration file (default: $"+configEnvVar+" or "+config.DefaultConfigFilePath+")")
	rootCmd.AddCommand(serveCmd, categoriesCmd)
}

func resolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(configEnvVar)
}

func serve(parent context.Context, configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.NewAppLogger(cfg.Logger)
	if err != nil {
		return err
	}

	if configPath != "" {
		appLogger.Info("Configuration loaded successfully", "configFile", configPath)
	} else {
		appLogger.Info("Configuration loaded successfully", "configFile", config.DefaultConfigFilePath+" (default)")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	store := transaction.NewInMemoryTransactionStore()
	tableView := view.NewTableView(appLogger)
	ledgerMetrics := metrics.NewLedgerMetrics(registry)
	store.Register(ledgerMetrics)

	ledgerService, err := application.NewLedgerService(store, tableView, appLogger)
	if err != nil {
		appLogger.Error("Failed to create ledger service", logger.FieldError, err)
		return err
	}

	apiServer, err := restapi.NewServer(restapi.Dependencies{
		Service:  ledgerService,
		View:     tableView,
		Observer: ledgerMetrics,
		Gatherer: registry,
		Logger:   appLogger,
	}, cfg)
	if err != nil {
		appLogger.Error("Failed to create API server", logger.FieldError, err)
		return err
	}

	if parent == nil {
		parent = context.Background()
	}
	runUntilShutdown(parent, appLogger, apiServer)

	appLogger.Info("Application shut down gracefully.")
	return nil
}

// runUntilShutdown serves the API until a signal arrives or the server fails.
func runUntilShutdown(parent context.Context, appLogger logger.AppLogger, apiServer *restapi.Server) {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		if errServ := apiServer.Start(); errServ != nil && !errors.Is(errServ, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", errServ)
		}
	}()

	select {
	case err := <-errChan:
		appLogger.Error("Shutting down due to error", logger.FieldError, err)
	case <-ctx.Done():
		appLogger.Info("Shutting down due to OS signal...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP server shutdown error", logger.FieldError, err)
	}
}
