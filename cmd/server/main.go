package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/KirPavMos/advanced-algorithm-05/config"
	"github.com/KirPavMos/advanced-algorithm-05/database"
	"github.com/KirPavMos/advanced-algorithm-05/logging"
	"github.com/KirPavMos/advanced-algorithm-05/web"
)

func main() {
	// Command line flags
	var (
		migrate = flag.Bool("migrate", false, "Create missing tables on startup")
		seed    = flag.Bool("seed", false, "Insert sample data on startup")
		help    = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Apply(cfg.App.LogLevel)

	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	err = serve(database.GetDB(), cfg.App.Port, *migrate, *seed)
	if cerr := database.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("Failed to close database")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

func serve(conn *database.Connection, port string, migrate, seed bool) error {
	if err := conn.CheckConnection(); err != nil {
		return fmt.Errorf("database connection check failed: %w", err)
	}

	if migrate {
		if err := conn.CreateTables(); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}

	if seed {
		if err := conn.Session(func(tx *gorm.DB) error {
			_, err := database.SeedDemo(tx)
			return err
		}); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	server := web.NewServer()

	errs := make(chan error, 1)
	go func() {
		errs <- server.Start(port)
	}()

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errs:
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}

	log.Info().Msg("Shutting down server...")
	if err := server.Shutdown(); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

func showHelp() {
	fmt.Println(`
Order management JSON API

Usage:
  go run ./cmd/server [options]

Options:
  -migrate  Create missing tables on startup
  -seed     Insert sample supplier, products and a new order
  -help     Show this help message

Environment:
  DATABASE_URL  postgres or sqlite:// connection string
  APP_PORT      listen port (default 8080)
  LOG_LEVEL     trace, debug, info, warn or error`)
}
