package repository

import (
	"errors"

	"github.com/Kashishghuliani/xeno-fde/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TenantRepo interface {
	Create(t *models.Tenant) error
	// FindByID returns (nil, nil) when no tenant matches.
	FindByID(id uuid.UUID) (*models.Tenant, error)
	FindAll() ([]models.Tenant, error)
	UpdateShopifyCredentials(id uuid.UUID, store, apiKey, apiSecret string) error
	// DeleteCascade removes the tenant and every row it owns in one
	// transaction: orders, products, customers, users, then the tenant.
	DeleteCascade(id uuid.UUID) error
}

type tenantRepo struct {
	db *gorm.DB
}

func NewTenantRepo(db *gorm.DB) TenantRepo {
	return &tenantRepo{db: db}
}

func (r *tenantRepo) Create(t *models.Tenant) error {
	return r.db.Create(t).Error
}

func (r *tenantRepo) FindByID(id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *tenantRepo) FindAll() ([]models.Tenant, error) {
	var tenants []models.Tenant
	err := r.db.Order("created_at ASC").Find(&tenants).Error
	return tenants, err
}

func (r *tenantRepo) UpdateShopifyCredentials(id uuid.UUID, store, apiKey, apiSecret string) error {
	return r.db.Model(&models.Tenant{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"shopify_store": store,
			"api_key":       apiKey,
			"api_secret":    apiSecret,
		}).Error
}

func (r *tenantRepo) DeleteCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, owned := range []interface{}{
			&models.Order{},
			&models.Product{},
			&models.Customer{},
			&models.User{},
		} {
			if err := tx.Where("tenant_id = ?", id).Delete(owned).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Tenant{}, "id = ?", id).Error
	})
}
