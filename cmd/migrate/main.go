package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/KirPavMos/advanced-algorithm-05/config"
	"github.com/KirPavMos/advanced-algorithm-05/database"
	"github.com/KirPavMos/advanced-algorithm-05/logging"
)

func main() {
	// Command line flags
	var (
		drop      = flag.Bool("drop", false, "Drop all tables before migration")
		provision = flag.Bool("provision", true, "Create the database when it is missing")
		help      = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Apply(cfg.App.LogLevel)

	fmt.Println("🚀 Starting Database Migration Tool")
	fmt.Printf("📊 Database: %s\n", cfg.Database.Describe())

	if *provision {
		database.ProvisionDatabase(&cfg.Database)
	}

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	err = migrate(database.GetDB(), *drop)
	if cerr := database.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("Failed to close database")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}

func migrate(conn *database.Connection, drop bool) error {
	if err := conn.CheckConnection(); err != nil {
		log.Warn().Err(err).Msg("Connection check failed")
	}

	// Drop tables if requested
	if drop {
		fmt.Println("⚠️  Dropping all tables...")
		if err := conn.DropTables(); err != nil {
			return fmt.Errorf("failed to drop tables: %w", err)
		}
		fmt.Println("✅ All tables dropped")
	}

	fmt.Println("🔄 Creating missing tables...")
	if err := conn.CreateTables(); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	fmt.Println("✅ Migration completed successfully!")

	counts, err := conn.TableCounts()
	if err != nil {
		log.Warn().Err(err).Msg("Could not count rows")
		return nil
	}

	tables := make([]string, 0, len(counts))
	for table := range counts {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	fmt.Printf("📊 Total tables: %d\n", len(tables))
	for _, table := range tables {
		fmt.Printf("  %-10s %d rows\n", table, counts[table])
	}
	return nil
}

func showHelp() {
	fmt.Println(`
Database Migration Tool for the order management store

Usage:
  go run ./cmd/migrate [options]

Options:
  -drop       Drop all tables before migration (WARNING: Data loss!)
  -provision  Create the database when it is missing (default true)
  -help       Show this help message

Examples:
  # Create missing tables
  go run ./cmd/migrate

  # Drop all tables and recreate
  go run ./cmd/migrate -drop

Environment:
  Requires .env file or environment variables for database configuration:
  - DATABASE_URL
  - DB_ADMIN_DATABASE
  - DB_QUERY_LOG`)
}
