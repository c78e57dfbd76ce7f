package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorClassification(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsForeignKeyViolation(nil))

	assert.True(t, IsUniqueViolation(fmt.Errorf("wrap: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_supplier_name" (SQLSTATE 23505)`)))
	assert.True(t, IsUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: supplier.name (2067)")))

	assert.True(t, IsForeignKeyViolation(fmt.Errorf("wrap: %w", gorm.ErrForeignKeyViolated)))
	assert.True(t, IsForeignKeyViolation(errors.New(`ERROR: update or delete on table "product" violates foreign key constraint "fk_product_order_items" (SQLSTATE 23503)`)))
	assert.False(t, IsForeignKeyViolation(errors.New("connection refused")))

	assert.True(t, IsNotFound(fmt.Errorf("wrap: %w", gorm.ErrRecordNotFound)))
}
