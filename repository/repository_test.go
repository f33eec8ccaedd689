package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/Kashishghuliani/xeno-fde/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Tenant{},
		&models.User{},
		&models.Customer{},
		&models.Order{},
		&models.Product{},
	))
	return db
}

func seedTenant(t *testing.T, db *gorm.DB) *models.Tenant {
	t.Helper()
	tenant := models.Tenant{Name: "Acme Outfitters", APIKey: "shpat_test"}
	require.NoError(t, db.Create(&tenant).Error)
	return &tenant
}

func TestTenantDeleteCascade(t *testing.T) {
	db := newTestDB(t)
	repos := New(db)
	tenant := seedTenant(t, db)

	user := models.User{Email: "owner@example.com", PasswordHash: "x", TenantID: tenant.ID}
	require.NoError(t, db.Create(&user).Error)
	customer := models.Customer{TenantID: tenant.ID, ShopifyCustomerID: "101", Email: "ada@example.com"}
	require.NoError(t, db.Create(&customer).Error)
	order := models.Order{TenantID: tenant.ID, ShopifyOrderID: "1001", CustomerID: &customer.ID, TotalPrice: 10}
	require.NoError(t, db.Create(&order).Error)
	product := models.Product{TenantID: tenant.ID, ShopifyProductID: "2001", Title: "Scarf"}
	require.NoError(t, db.Create(&product).Error)

	require.NoError(t, repos.Tenants.DeleteCascade(tenant.ID))

	for name, model := range map[string]interface{}{
		"tenants":   &models.Tenant{},
		"users":     &models.User{},
		"customers": &models.Customer{},
		"orders":    &models.Order{},
		"products":  &models.Product{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count, "expected no rows left in %s", name)
	}
}

func TestCustomerUpsertByShopifyID(t *testing.T) {
	db := newTestDB(t)
	repos := New(db)
	tenant := seedTenant(t, db)

	first := models.Customer{
		TenantID:          tenant.ID,
		ShopifyCustomerID: "101",
		FirstName:         "Ada",
		Email:             "ada@example.com",
	}
	require.NoError(t, repos.Customers.UpsertByShopifyID(&first))

	// Simulate a spend recompute between syncs; the upsert must not
	// clobber the cached value.
	require.NoError(t, repos.Customers.SetTotalSpent(first.ID, 150))

	second := models.Customer{
		TenantID:          tenant.ID,
		ShopifyCustomerID: "101",
		FirstName:         "Adaline",
		LastName:          "Byron",
		Email:             "adaline@example.com",
	}
	require.NoError(t, repos.Customers.UpsertByShopifyID(&second))
	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&models.Customer{}).Count(&count)
	assert.Equal(t, int64(1), count)

	var stored models.Customer
	require.NoError(t, db.First(&stored, "id = ?", first.ID).Error)
	assert.Equal(t, "Adaline", stored.FirstName)
	assert.Equal(t, "adaline@example.com", stored.Email)
	assert.Equal(t, 150.0, stored.TotalSpent)
}

func TestOrderExistingShopifyIDsAndTotals(t *testing.T) {
	db := newTestDB(t)
	repos := New(db)
	tenant := seedTenant(t, db)
	other := models.Tenant{Name: "Other Store", APIKey: "shpat_other"}
	require.NoError(t, db.Create(&other).Error)

	customer := models.Customer{TenantID: tenant.ID, ShopifyCustomerID: "101", Email: "ada@example.com"}
	require.NoError(t, db.Create(&customer).Error)

	for i, price := range []float64{50, 75, 25} {
		order := models.Order{
			TenantID:       tenant.ID,
			ShopifyOrderID: fmt.Sprintf("100%d", i),
			CustomerID:     &customer.ID,
			TotalPrice:     price,
		}
		require.NoError(t, repos.Orders.Create(&order))
	}
	// A row in another tenant must never leak into this tenant's view.
	foreign := models.Order{TenantID: other.ID, ShopifyOrderID: "9999", TotalPrice: 500}
	require.NoError(t, repos.Orders.Create(&foreign))

	known, err := repos.Orders.ExistingShopifyIDs(tenant.ID)
	require.NoError(t, err)
	assert.Len(t, known, 3)
	assert.Contains(t, known, "1000")
	assert.NotContains(t, known, "9999")

	totals, err := repos.Orders.TotalsByCustomer(tenant.ID)
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, 150.0, totals[customer.ID])
}

func TestDashboardTopCustomersOrderAndLimit(t *testing.T) {
	db := newTestDB(t)
	repos := New(db)
	tenant := seedTenant(t, db)

	for i := 0; i < 12; i++ {
		customer := models.Customer{
			TenantID:          tenant.ID,
			ShopifyCustomerID: fmt.Sprintf("c%d", i),
			FirstName:         fmt.Sprintf("Customer%d", i),
			Email:             fmt.Sprintf("c%d@example.com", i),
		}
		require.NoError(t, db.Create(&customer).Error)
		order := models.Order{
			TenantID:       tenant.ID,
			ShopifyOrderID: fmt.Sprintf("o%d", i),
			CustomerID:     &customer.ID,
			TotalPrice:     float64(10 * (i + 1)),
		}
		require.NoError(t, db.Create(&order).Error)
	}

	top, err := repos.Dashboard.TopCustomers(tenant.ID, 10)
	require.NoError(t, err)
	require.Len(t, top, 10)
	assert.Equal(t, 120.0, top[0].TotalSpent)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].TotalSpent, top[i].TotalSpent)
	}
}

func TestDashboardRecentOrdersPlaceholderName(t *testing.T) {
	db := newTestDB(t)
	repos := New(db)
	tenant := seedTenant(t, db)

	customer := models.Customer{
		TenantID:          tenant.ID,
		ShopifyCustomerID: "101",
		FirstName:         "Ada",
		LastName:          "Lovelace",
		Email:             "ada@example.com",
	}
	require.NoError(t, db.Create(&customer).Error)

	withCustomer := models.Order{
		TenantID:       tenant.ID,
		ShopifyOrderID: "1001",
		CustomerID:     &customer.ID,
		TotalPrice:     10,
		CreatedAt:      time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&withCustomer).Error)
	orphaned := models.Order{
		TenantID:       tenant.ID,
		ShopifyOrderID: "1002",
		TotalPrice:     20,
		CreatedAt:      time.Now(),
	}
	require.NoError(t, db.Create(&orphaned).Error)

	recent, err := repos.Dashboard.RecentOrders(tenant.ID, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	// Newest first.
	assert.Equal(t, "1002", recent[0].ShopifyOrderID)
	assert.Equal(t, "Unknown customer", recent[0].CustomerName)
	assert.Equal(t, "Ada Lovelace", recent[1].CustomerName)
}

func TestUserFindByEmailMissing(t *testing.T) {
	db := newTestDB(t)
	repos := New(db)

	user, err := repos.Users.FindByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}
