package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ContactMessage is an inquiry submitted from the public contact or
// product-order forms.
type ContactMessage struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Name        string           `gorm:"size:255;not null" json:"name"`
	Email       string           `gorm:"size:255;not null" json:"email"`
	Phone       string           `gorm:"size:50" json:"phone"`
	Town        string           `gorm:"size:100" json:"town"`
	ServiceType enum.ServiceType `gorm:"size:50" json:"service_type"`
	Message     string           `gorm:"type:text" json:"message"`
	IsRead      bool             `gorm:"default:false" json:"is_read"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new message
func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ContactMessage model
func (ContactMessage) TableName() string {
	return "contact_messages"
}
