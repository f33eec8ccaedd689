package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer mirrors a Shopify customer for one tenant. TotalSpent is a
// cached sum over the customer's orders, recomputed wholesale at the end
// of every sync pass; the order ledger stays authoritative.
type Customer struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_customer_shopify_tenant,priority:2" json:"tenantId"`
	ShopifyCustomerID string    `gorm:"not null;uniqueIndex:idx_customer_shopify_tenant,priority:1" json:"shopifyCustomerId"`

	FirstName  string  `gorm:"default:''" json:"firstName"`
	LastName   string  `gorm:"default:''" json:"lastName"`
	Email      string  `json:"email"`
	TotalSpent float64 `gorm:"type:decimal(12,2);default:0.0" json:"totalSpent"`

	Orders []Order `gorm:"foreignKey:CustomerID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
