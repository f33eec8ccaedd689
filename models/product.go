package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product holds the title and first-variant price as of the last sync.
type Product struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_shopify_tenant,priority:2" json:"tenantId"`
	ShopifyProductID string    `gorm:"not null;uniqueIndex:idx_product_shopify_tenant,priority:1" json:"shopifyProductId"`

	Title string  `gorm:"not null" json:"title"`
	Price float64 `gorm:"type:decimal(12,2);default:0.0" json:"price"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
