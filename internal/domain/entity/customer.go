package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Customer is a person or business that sales are recorded against.
type Customer struct {
	ID        uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Name      string              `gorm:"size:255;not null;index" json:"name"`
	Email     string              `gorm:"size:255;index" json:"email"`
	Phone     string              `gorm:"size:50" json:"phone"`
	Street    string              `gorm:"size:255" json:"street"`
	City      string              `gorm:"size:100" json:"city"`
	State     string              `gorm:"size:50" json:"state"`
	Zip       string              `gorm:"size:20" json:"zip"`
	Notes     string              `gorm:"type:text" json:"notes"`
	Status    enum.CustomerStatus `gorm:"size:20;default:'active'" json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	DeletedAt gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Sales []Sale `gorm:"foreignKey:CustomerID" json:"sales,omitempty"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
