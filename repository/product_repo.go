package repository

import (
	"errors"

	"github.com/Kashishghuliani/xeno-fde/models"
	"gorm.io/gorm"
)

type ProductRepo interface {
	// UpsertByShopifyID inserts the product, or if one already exists for
	// (shopify_product_id, tenant_id) overwrites its title and price.
	UpsertByShopifyID(p *models.Product) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepo {
	return &productRepo{db: db}
}

func (r *productRepo) UpsertByShopifyID(p *models.Product) error {
	var existing models.Product
	err := r.db.First(&existing, "tenant_id = ? AND shopify_product_id = ?",
		p.TenantID, p.ShopifyProductID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(p).Error
	}
	if err != nil {
		return err
	}

	existing.Title = p.Title
	existing.Price = p.Price
	if err := r.db.Model(&existing).
		Select("title", "price").
		Updates(&existing).Error; err != nil {
		return err
	}
	*p = existing
	return nil
}
