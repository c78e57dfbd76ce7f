package models

import (
	"time"
)

// BaseModel contains the identity and timestamp columns shared by all models.
// gorm sets CreatedAt on insert and refreshes UpdatedAt on every write.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Entity is implemented by every persisted model.
type Entity interface {
	TableName() string
	// ToMap returns a plain key-value view including denormalized fields
	// taken from loaded relationships.
	ToMap() map[string]any
}

func (b BaseModel) baseMap() map[string]any {
	return map[string]any{
		"id":         b.ID,
		"created_at": formatTime(b.CreatedAt),
		"updated_at": formatTime(b.UpdatedAt),
	}
}

func formatTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339Nano)
}

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
