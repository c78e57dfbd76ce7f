package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/KirPavMos/advanced-algorithm-05/config"
	"github.com/KirPavMos/advanced-algorithm-05/database"
	"github.com/KirPavMos/advanced-algorithm-05/logging"
)

func main() {
	// Define flags
	force := flag.Bool("force", false, "Clear existing data before seeding")
	help := flag.Bool("help", false, "Show help message")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	fmt.Println("🌱 Starting Database Seeding Tool")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Apply(cfg.App.LogLevel)
	fmt.Printf("📊 Database: %s\n\n", cfg.Database.Describe())

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	err = seed(database.GetDB(), *force)
	if cerr := database.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("Failed to close database")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	fmt.Println("\n✨ Seeding completed successfully!")
}

func seed(conn *database.Connection, force bool) error {
	if err := conn.CheckConnection(); err != nil {
		return fmt.Errorf("database connection check failed: %w", err)
	}
	if err := conn.CreateTables(); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if force {
		fmt.Println("⚠️  Force flag enabled. Clearing existing data...")
		if err := conn.Session(database.ClearTables); err != nil {
			return fmt.Errorf("failed to clear tables: %w", err)
		}
	}

	var orderID uint
	if err := conn.Session(func(tx *gorm.DB) error {
		order, err := database.SeedDemo(tx)
		if err != nil {
			return err
		}
		orderID = order.ID
		return nil
	}); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	fmt.Printf("🧾 Inserted order #%d\n", orderID)

	// Show statistics
	fmt.Println("\n📊 Database Statistics:")
	showTableStats(conn)
	return nil
}

func showHelp() {
	fmt.Println("Database Seeding Tool")
	fmt.Println("====================")
	fmt.Println("\nUsage:")
	fmt.Println("  go run ./cmd/seed [flags]")
	fmt.Println("\nFlags:")
	fmt.Println("  -force    Clear every table before inserting sample data")
	fmt.Println("  -help     Show this help message")
	fmt.Println("\nThe sample supplier and products are reused when present;")
	fmt.Println("each run inserts one new order.")
}

func showTableStats(conn *database.Connection) {
	counts, err := conn.TableCounts()
	if err != nil {
		log.Warn().Err(err).Msg("Could not count rows")
		return
	}

	tables := make([]string, 0, len(counts))
	for table := range counts {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	for _, table := range tables {
		fmt.Printf("  %-10s: %d rows\n", table, counts[table])
	}
}
