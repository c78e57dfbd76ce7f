package database

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/KirPavMos/advanced-algorithm-05/config"
)

// ProvisionDatabase creates the target database through an administrative
// connection when it does not exist. It is best-effort: failures are
// logged and swallowed so the caller can go on and fail at connect time.
func ProvisionDatabase(cfg *config.DatabaseConfig) {
	if cfg.IsSQLite() {
		log.Debug().Msg("sqlite database, skipping provisioning")
		return
	}

	name, err := cfg.DatabaseName()
	if err != nil {
		log.Warn().Err(err).Msg("Skipping database provisioning")
		return
	}

	adminURL, err := cfg.AdminURL()
	if err != nil {
		log.Warn().Err(err).Msg("Skipping database provisioning")
		return
	}

	admin, err := sql.Open("postgres", adminURL)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open administrative connection")
		return
	}
	defer admin.Close()

	created, err := ensureDatabase(admin, name)
	if err != nil {
		log.Error().Err(err).Str("database", name).Msg("Failed to provision database")
		return
	}

	if created {
		log.Info().Str("database", name).Msg("Database created")
	} else {
		log.Info().Str("database", name).Msg("Database already exists")
	}
}

func ensureDatabase(admin *sql.DB, name string) (bool, error) {
	var exists bool
	err := admin.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check database: %w", err)
	}
	if exists {
		return false, nil
	}

	// CREATE DATABASE takes no bind parameters
	if _, err := admin.Exec("CREATE DATABASE " + pq.QuoteIdentifier(name)); err != nil {
		return false, fmt.Errorf("failed to create database: %w", err)
	}
	return true, nil
}
