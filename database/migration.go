package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/KirPavMos/advanced-algorithm-05/models"
)

// CreateTables creates every model's table, with its constraints and
// indexes, when it does not exist yet. Existing tables are left alone.
func (c *Connection) CreateTables() error {
	log.Info().Msg("Creating tables...")
	migrator := c.db.Migrator()

	for _, model := range models.AllModels() {
		if migrator.HasTable(model) {
			log.Debug().Str("table", model.TableName()).Msg("Table already exists")
			continue
		}
		if err := migrator.CreateTable(model); err != nil {
			return fmt.Errorf("failed to create table %s: %w", model.TableName(), err)
		}
		log.Info().Str("table", model.TableName()).Msg("Created table")
	}

	return nil
}

// DropTables drops every model's table, children first
func (c *Connection) DropTables() error {
	all := models.AllModels()
	migrator := c.db.Migrator()

	for i := len(all) - 1; i >= 0; i-- {
		if err := migrator.DropTable(all[i]); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", all[i].TableName(), err)
		}
		log.Info().Str("table", all[i].TableName()).Msg("Dropped table")
	}

	return nil
}

// CheckConnection verifies the database is reachable
func (c *Connection) CheckConnection() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

// TableCounts returns the row count of every model's table
func (c *Connection) TableCounts() (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, model := range models.AllModels() {
		var count int64
		if err := c.db.Model(model).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", model.TableName(), err)
		}
		counts[model.TableName()] = count
	}
	return counts, nil
}

// ClearTables deletes every row, children first, inside tx
func ClearTables(tx *gorm.DB) error {
	all := models.AllModels()
	global := tx.Session(&gorm.Session{AllowGlobalUpdate: true})

	for i := len(all) - 1; i >= 0; i-- {
		if err := global.Delete(all[i]).Error; err != nil {
			return fmt.Errorf("failed to clear table %s: %w", all[i].TableName(), err)
		}
		log.Debug().Str("table", all[i].TableName()).Msg("Cleared table")
	}

	return nil
}
