package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gin-gonic/gin"
	_ "github.com/nalin-pixel/job-aggregator/docs"
	"github.com/nalin-pixel/job-aggregator/internal/config"
	"github.com/nalin-pixel/job-aggregator/internal/database"
	"github.com/nalin-pixel/job-aggregator/internal/handlers"
	"github.com/nalin-pixel/job-aggregator/internal/services"
	"github.com/rs/zerolog"
)

// CLI flags override the matching environment variables.
type CLI struct {
	EnvFile string `help:"Path to a .env file." default:".env"`
	Port    int    `help:"Listen port (overrides PORT)."`
	GinMode string `help:"Gin mode: debug, release or test (overrides GIN_MODE)."`
	Verbose bool   `help:"Enable debug logging."`
}

// @title        Job Aggregator API
// @version      1.0
// @description  Job search proxy for RapidAPI job providers.
// @BasePath     /
func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("job-aggregator"),
		kong.Description("Job search proxy for RapidAPI job providers."),
	)

	// 1. Load Environment Variables
	if err := config.LoadEnvFile(cli.EnvFile); err != nil {
		log.Fatal("Error loading env file: ", err)
	}
	cfg := config.Load()
	if cli.Port != 0 {
		cfg.Port = cli.Port
	}
	if cli.GinMode != "" {
		cfg.GinMode = cli.GinMode
	}

	// 2. Logging
	logger := newLogger(cfg, cli.Verbose)
	gin.SetMode(cfg.GinMode)

	// 3. Optional database for the /test diagnostic
	var inspector database.Inspector
	if cfg.DatabaseURL != "" {
		pg, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			logger.Warn().Err(err).Msg("⚠️  Database unavailable, /test will report it")
		} else {
			defer pg.Close()
			inspector = pg
			logger.Info().Str("database", pg.Name()).Msg("✅ Database connection established")
		}
	}

	// 4. Services and handlers
	if cfg.APIKey == "" {
		logger.Warn().Msg("⚠️  FANTASTIC_RAPIDAPI_KEY is empty, searches return an empty list until a key is supplied")
	}
	searchService := services.NewSearchService(cfg, services.NewJobsClient(services.DefaultTimeout), logger)
	searchHandler := handlers.NewSearchHandler(searchService, logger)
	diagnosticHandler := handlers.NewDiagnosticHandler(inspector, cfg)

	// 5. Router & server
	router := handlers.NewRouter(logger, searchHandler, diagnosticHandler)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr()).Str("api_host", cfg.APIHost).Msg("🚀 Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		logger.Info().Msg("Shutting down server...")
	case err := <-serverErr:
		logger.Error().Err(err).Msg("Server failed to start")
	}

	// In-flight upstream calls may take up to the client timeout.
	ctx, cancel := context.WithTimeout(context.Background(), services.DefaultTimeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	logger.Info().Msg("Server exited")
}

func newLogger(cfg config.Config, verbose bool) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.GinMode == gin.DebugMode {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
