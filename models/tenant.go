package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tenant is the isolation boundary: one Shopify store's data set.
// Deleting a tenant removes every owned row (see repository.TenantRepo).
type Tenant struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	ShopifyStore string    `json:"shopifyStore"`
	APIKey       string    `json:"-"`
	APISecret    string    `json:"-"`

	Users     []User     `gorm:"foreignKey:TenantID" json:"-"`
	Customers []Customer `gorm:"foreignKey:TenantID" json:"-"`
	Orders    []Order    `gorm:"foreignKey:TenantID" json:"-"`
	Products  []Product  `gorm:"foreignKey:TenantID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *Tenant) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
