package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is insert-only: re-ingesting a known shopify_order_id is a no-op.
// CustomerID is nullable so an order survives its customer's deletion.
type Order struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	TenantID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_order_shopify_tenant,priority:2" json:"tenantId"`
	ShopifyOrderID string     `gorm:"not null;uniqueIndex:idx_order_shopify_tenant,priority:1" json:"shopifyOrderId"`
	CustomerID     *uuid.UUID `gorm:"type:uuid;index" json:"customerId"`
	TotalPrice     float64    `gorm:"type:decimal(12,2);not null" json:"totalPrice"`

	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"-"`

	// CreatedAt holds Shopify's order creation time, not ingestion time.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}
