package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KirPavMos/advanced-algorithm-05/config"
)

// Connection owns the database handle and hands out sessions.
type Connection struct {
	db  *gorm.DB
	cfg config.DatabaseConfig
}

// DB is the process-wide connection set by Initialize
var DB *Connection

// Initialize opens the process-wide connection
func Initialize(cfg *config.DatabaseConfig) error {
	conn, err := New(cfg)
	if err != nil {
		return err
	}
	DB = conn
	return nil
}

// GetDB returns the process-wide connection
func GetDB() *Connection {
	return DB
}

// Close closes the process-wide connection
func Close() error {
	if DB == nil {
		return nil
	}
	return DB.Close()
}

// New opens a connection for cfg. postgres URLs and key=value DSNs use the
// postgres driver; sqlite:// and file: URLs use the embedded sqlite driver.
func New(cfg *config.DatabaseConfig) (*Connection, error) {
	gormConfig := &gorm.Config{
		Logger: NewGormLogger(cfg.QueryLog, SQLLogger),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	}

	db, err := gorm.Open(dialector(cfg), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	if cfg.IsSQLite() {
		// sqlite serializes writers; one connection avoids SQLITE_BUSY between sessions
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	log.Info().Bool("sqlite", cfg.IsSQLite()).Msg("Database connection established successfully")
	return &Connection{db: db, cfg: *cfg}, nil
}

func dialector(cfg *config.DatabaseConfig) gorm.Dialector {
	if cfg.IsSQLite() {
		return sqlite.Open(sqliteDSN(cfg.SQLitePath()))
	}
	return postgres.Open(cfg.GetDSN())
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Gorm exposes the handle for schema work outside a session
func (c *Connection) Gorm() *gorm.DB {
	return c.db
}

// Config returns the configuration the connection was opened with
func (c *Connection) Config() config.DatabaseConfig {
	return c.cfg
}

// Close closes the underlying pool
func (c *Connection) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
