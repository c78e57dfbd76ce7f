package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/KirPavMos/advanced-algorithm-05/config"
	"github.com/KirPavMos/advanced-algorithm-05/database"
	"github.com/KirPavMos/advanced-algorithm-05/dto"
	"github.com/KirPavMos/advanced-algorithm-05/logging"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Apply(cfg.App.LogLevel)

	// Best-effort: creates the database when it is missing
	database.ProvisionDatabase(&cfg.Database)

	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	err = run(database.GetDB())
	if cerr := database.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("Failed to close database")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Demo failed")
	}
}

func run(conn *database.Connection) error {
	if err := conn.CreateTables(); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if err := conn.Session(func(tx *gorm.DB) error {
		_, err := database.SeedDemo(tx)
		return err
	}); err != nil {
		return fmt.Errorf("failed to insert sample data: %w", err)
	}

	if err := conn.Session(printOrders); err != nil {
		return fmt.Errorf("failed to list orders: %w", err)
	}

	if err := conn.Session(printFirstOrder); err != nil {
		return fmt.Errorf("failed to convert order: %w", err)
	}
	return nil
}

func printOrders(tx *gorm.DB) error {
	orders, err := database.ListOrders(tx)
	if err != nil {
		return err
	}

	fmt.Println("\nAll orders in the database:")
	if len(orders) == 0 {
		fmt.Println("No orders in the database")
		return nil
	}

	for _, order := range orders {
		fmt.Printf("\nOrder #%d:\n", order.ID)
		fmt.Printf("Customer: %s\n", order.CustomerName)
		fmt.Printf("Phone: %s\n", orEmpty(order.CustomerPhone))
		fmt.Printf("Email: %s\n", orEmpty(order.CustomerEmail))
		fmt.Printf("Status: %s\n", order.Status)
		fmt.Printf("Amount: %.2f\n", order.TotalAmount)
		fmt.Println("Items:")
		for _, item := range order.Items {
			fmt.Printf("  - %s (%d x %.2f)\n", orEmpty(item.ProductName()), item.Quantity, item.Price)
		}
	}
	return nil
}

func printFirstOrder(tx *gorm.DB) error {
	order, err := database.FirstOrder(tx)
	if database.IsNotFound(err) {
		fmt.Println("No orders to convert")
		return nil
	}
	if err != nil {
		return err
	}

	record, err := dto.OrderFromModel(order)
	if err != nil {
		return err
	}

	text, err := record.ToJSON()
	if err != nil {
		return err
	}

	fmt.Println("\nOrder transfer record:")
	fmt.Println(text)
	return nil
}

func orEmpty(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
