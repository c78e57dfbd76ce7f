package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Session runs fn as a single unit of work. The transaction is committed
// when fn returns nil and rolled back when fn returns an error or panics;
// the error is returned and the panic re-raised. The tx handed to fn must
// not be used after fn returns or shared between goroutines.
func (c *Connection) Session(fn func(tx *gorm.DB) error) error {
	tx := c.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin session: %w", tx.Error)
	}

	done := false
	defer func() {
		if done {
			return
		}
		rollback(tx)
		if r := recover(); r != nil {
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		done = true
		rollback(tx)
		return err
	}

	done = true
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}
	return nil
}

func rollback(tx *gorm.DB) {
	if err := tx.Rollback().Error; err != nil {
		log.Error().Err(err).Msg("Failed to rollback session")
	}
}
