package repository

import (
	"github.com/Kashishghuliani/xeno-fde/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepo interface {
	Create(o *models.Order) error
	// ExistingShopifyIDs returns the set of shopify_order_ids already
	// ingested for the tenant, used to keep order ingestion insert-only.
	ExistingShopifyIDs(tenantID uuid.UUID) (map[string]struct{}, error)
	// TotalsByCustomer sums total_price per referenced customer. Orders
	// whose customer reference was nulled out are excluded.
	TotalsByCustomer(tenantID uuid.UUID) (map[uuid.UUID]float64, error)
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepo {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(o *models.Order) error {
	return r.db.Create(o).Error
}

func (r *orderRepo) ExistingShopifyIDs(tenantID uuid.UUID) (map[string]struct{}, error) {
	var ids []string
	err := r.db.Model(&models.Order{}).
		Where("tenant_id = ?", tenantID).
		Pluck("shopify_order_id", &ids).Error
	if err != nil {
		return nil, err
	}

	known := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}
	return known, nil
}

func (r *orderRepo) TotalsByCustomer(tenantID uuid.UUID) (map[uuid.UUID]float64, error) {
	type row struct {
		CustomerID uuid.UUID
		Total      float64
	}
	var rows []row
	err := r.db.Model(&models.Order{}).
		Select("customer_id, SUM(total_price) AS total").
		Where("tenant_id = ? AND customer_id IS NOT NULL", tenantID).
		Group("customer_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[uuid.UUID]float64, len(rows))
	for _, r := range rows {
		totals[r.CustomerID] = r.Total
	}
	return totals, nil
}
