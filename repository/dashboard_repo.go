package repository

import (
	"sort"
	"time"

	"github.com/Kashishghuliani/xeno-fde/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Metrics struct {
	TotalCustomers int64
	TotalOrders    int64
	Revenue        float64
}

type OrderDateBucket struct {
	Date    string
	Orders  int64
	Revenue float64
}

type CustomerDateBucket struct {
	Date      string
	Customers int64
}

type TopCustomer struct {
	FirstName  string
	LastName   string
	Email      string
	TotalSpent float64
}

type RecentOrder struct {
	ID             uuid.UUID
	ShopifyOrderID string
	CustomerName   string
	TotalPrice     float64
	CreatedAt      time.Time
}

// DashboardRepo serves the read-only, tenant-scoped aggregates behind the
// dashboard endpoints. Nothing here mutates state.
type DashboardRepo interface {
	Metrics(tenantID uuid.UUID) (*Metrics, error)
	OrdersByDate(tenantID uuid.UUID, from, to time.Time) ([]OrderDateBucket, error)
	CustomersByDate(tenantID uuid.UUID, from, to time.Time) ([]CustomerDateBucket, error)
	TopCustomers(tenantID uuid.UUID, limit int) ([]TopCustomer, error)
	TopProducts(tenantID uuid.UUID, limit int) ([]models.Product, error)
	RecentOrders(tenantID uuid.UUID, limit int) ([]RecentOrder, error)
}

type dashboardRepo struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) DashboardRepo {
	return &dashboardRepo{db: db}
}

func (r *dashboardRepo) Metrics(tenantID uuid.UUID) (*Metrics, error) {
	var m Metrics

	// Only customers with at least one order count toward the headline.
	err := r.db.Model(&models.Customer{}).
		Joins("JOIN orders ON orders.customer_id = customers.id").
		Where("customers.tenant_id = ?", tenantID).
		Distinct("customers.id").
		Count(&m.TotalCustomers).Error
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Order{}).
		Where("tenant_id = ?", tenantID).
		Count(&m.TotalOrders).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Order{}).
		Where("tenant_id = ?", tenantID).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&m.Revenue).Error; err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *dashboardRepo) OrdersByDate(tenantID uuid.UUID, from, to time.Time) ([]OrderDateBucket, error) {
	var orders []models.Order
	err := r.db.Where("tenant_id = ? AND created_at BETWEEN ? AND ?", tenantID, from, to).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	// Bucket by calendar date in Go; a sync pass never holds more than one
	// page per resource, so the window stays small.
	byDate := make(map[string]*OrderDateBucket)
	for _, o := range orders {
		key := o.CreatedAt.Format("2006-01-02")
		b, ok := byDate[key]
		if !ok {
			b = &OrderDateBucket{Date: key}
			byDate[key] = b
		}
		b.Orders++
		b.Revenue += o.TotalPrice
	}

	buckets := make([]OrderDateBucket, 0, len(byDate))
	for _, b := range byDate {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Date < buckets[j].Date })
	return buckets, nil
}

func (r *dashboardRepo) CustomersByDate(tenantID uuid.UUID, from, to time.Time) ([]CustomerDateBucket, error) {
	var customers []models.Customer
	err := r.db.Where("tenant_id = ? AND created_at BETWEEN ? AND ?", tenantID, from, to).
		Find(&customers).Error
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]int64)
	for _, c := range customers {
		byDate[c.CreatedAt.Format("2006-01-02")]++
	}

	buckets := make([]CustomerDateBucket, 0, len(byDate))
	for date, count := range byDate {
		buckets = append(buckets, CustomerDateBucket{Date: date, Customers: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Date < buckets[j].Date })
	return buckets, nil
}

func (r *dashboardRepo) TopCustomers(tenantID uuid.UUID, limit int) ([]TopCustomer, error) {
	var customers []TopCustomer
	err := r.db.Table("customers").
		Select("customers.first_name, customers.last_name, customers.email, SUM(orders.total_price) AS total_spent").
		Joins("JOIN orders ON orders.customer_id = customers.id").
		Where("customers.tenant_id = ?", tenantID).
		Group("customers.id, customers.first_name, customers.last_name, customers.email").
		Order("total_spent DESC").
		Limit(limit).
		Scan(&customers).Error
	return customers, err
}

// TopProducts carries no ranking criterion beyond insertion order; the
// source system never sorted its "top products" either.
func (r *dashboardRepo) TopProducts(tenantID uuid.UUID, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("tenant_id = ?", tenantID).
		Order("created_at ASC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *dashboardRepo) RecentOrders(tenantID uuid.UUID, limit int) ([]RecentOrder, error) {
	type row struct {
		ID             uuid.UUID
		ShopifyOrderID string
		TotalPrice     float64
		CreatedAt      time.Time
		FirstName      *string
		LastName       *string
	}
	var rows []row
	err := r.db.Table("orders").
		Select("orders.id, orders.shopify_order_id, orders.total_price, orders.created_at, customers.first_name, customers.last_name").
		Joins("LEFT JOIN customers ON customers.id = orders.customer_id").
		Where("orders.tenant_id = ?", tenantID).
		Order("orders.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	recent := make([]RecentOrder, 0, len(rows))
	for _, r := range rows {
		name := displayName(r.FirstName, r.LastName)
		recent = append(recent, RecentOrder{
			ID:             r.ID,
			ShopifyOrderID: r.ShopifyOrderID,
			CustomerName:   name,
			TotalPrice:     r.TotalPrice,
			CreatedAt:      r.CreatedAt,
		})
	}
	return recent, nil
}

func displayName(first, last *string) string {
	name := ""
	if first != nil {
		name = *first
	}
	if last != nil && *last != "" {
		if name != "" {
			name += " "
		}
		name += *last
	}
	if name == "" {
		return "Unknown customer"
	}
	return name
}
