package repository

import (
	"errors"

	"github.com/Kashishghuliani/xeno-fde/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepo interface {
	// UpsertByShopifyID inserts the customer, or if one already exists for
	// (shopify_customer_id, tenant_id) overwrites its name and email. The
	// incoming record is updated in place with the stored row's identity.
	UpsertByShopifyID(c *models.Customer) error
	// FindByShopifyID returns (nil, nil) when no customer matches.
	FindByShopifyID(tenantID uuid.UUID, shopifyCustomerID string) (*models.Customer, error)
	ResetTotalSpent(tenantID uuid.UUID) error
	SetTotalSpent(customerID uuid.UUID, total float64) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepo {
	return &customerRepo{db: db}
}

func (r *customerRepo) UpsertByShopifyID(c *models.Customer) error {
	var existing models.Customer
	err := r.db.First(&existing, "tenant_id = ? AND shopify_customer_id = ?",
		c.TenantID, c.ShopifyCustomerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(c).Error
	}
	if err != nil {
		return err
	}

	// Update wins on every synced field; the cached TotalSpent is untouched.
	existing.FirstName = c.FirstName
	existing.LastName = c.LastName
	existing.Email = c.Email
	if err := r.db.Model(&existing).
		Select("first_name", "last_name", "email").
		Updates(&existing).Error; err != nil {
		return err
	}
	*c = existing
	return nil
}

func (r *customerRepo) FindByShopifyID(tenantID uuid.UUID, shopifyCustomerID string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, "tenant_id = ? AND shopify_customer_id = ?",
		tenantID, shopifyCustomerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) ResetTotalSpent(tenantID uuid.UUID) error {
	return r.db.Model(&models.Customer{}).
		Where("tenant_id = ?", tenantID).
		Update("total_spent", 0).Error
}

func (r *customerRepo) SetTotalSpent(customerID uuid.UUID, total float64) error {
	return r.db.Model(&models.Customer{}).
		Where("id = ?", customerID).
		Update("total_spent", total).Error
}
