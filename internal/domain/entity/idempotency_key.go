package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdempotencyKey caches the response of a completed write request so a
// retried submission with the same key replays it instead of writing twice.
type IdempotencyKey struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Key          string    `gorm:"size:255;not null;uniqueIndex:idx_idempotency_user_key" json:"key"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_idempotency_user_key" json:"user_id"`
	Endpoint     string    `gorm:"size:255;not null" json:"endpoint"`
	ResponseCode int       `gorm:"not null" json:"response_code"`
	ResponseBody string    `gorm:"type:text" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `gorm:"not null;index" json:"expires_at"`
}

// BeforeCreate generates a UUID before creating a new idempotency key
func (k *IdempotencyKey) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the IdempotencyKey model
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsExpired reports whether the cached response is past its TTL.
func (k *IdempotencyKey) IsExpired() bool {
	return time.Now().After(k.ExpiresAt)
}
