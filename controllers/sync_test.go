package controllers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Kashishghuliani/xeno-fde/models"
	"github.com/Kashishghuliani/xeno-fde/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// failingFetcher simulates an unreachable Shopify store.
type failingFetcher struct{}

func (failingFetcher) FetchCustomers() ([]services.ShopifyCustomer, error) {
	return nil, errors.New("connection refused")
}
func (failingFetcher) FetchOrders() ([]services.ShopifyOrder, error) {
	return nil, errors.New("connection refused")
}
func (failingFetcher) FetchProducts() ([]services.ShopifyProduct, error) {
	return nil, errors.New("connection refused")
}

func seedSyncTenant(t *testing.T, db *gorm.DB) *models.Tenant {
	t.Helper()
	tenant := models.Tenant{
		Name:         "Acme Outfitters",
		ShopifyStore: "acme.myshopify.com",
		APIKey:       "shpat_test",
	}
	require.NoError(t, db.Create(&tenant).Error)
	return &tenant
}

func TestTriggerShopifySync(t *testing.T) {
	db := newTestDB(t)
	fetcher := &fakeFetcher{
		customers: []services.ShopifyCustomer{
			{ID: 101, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
		},
		orders: []services.ShopifyOrder{
			{
				ID:         1001,
				Customer:   &services.ShopifyOrderCustomer{ID: 101},
				TotalPrice: "49.99",
				CreatedAt:  time.Now().Format(time.RFC3339),
			},
		},
		products: []services.ShopifyProduct{
			{ID: 9001, Title: "Trail Boot", Variants: []services.ShopifyVariant{{Price: "120.00"}}},
		},
	}
	r, _ := newRouter(t, db, fetcher)
	tenant := seedSyncTenant(t, db)
	token := authToken(t, uuid.NewString(), tenant.ID.String())

	w := doRequest(t, r, http.MethodPost, "/api/sync/shopify", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	decodeBody(t, w, &resp)
	assert.Equal(t, "Shopify sync completed successfully", resp["message"])

	var customer models.Customer
	require.NoError(t, db.Where("tenant_id = ?", tenant.ID).First(&customer).Error)
	assert.Equal(t, "ada@example.com", customer.Email)
	assert.Equal(t, 49.99, customer.TotalSpent)

	var orderCount, productCount int64
	require.NoError(t, db.Model(&models.Order{}).Where("tenant_id = ?", tenant.ID).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.Product{}).Where("tenant_id = ?", tenant.ID).Count(&productCount).Error)
	assert.Equal(t, int64(1), orderCount)
	assert.Equal(t, int64(1), productCount)
}

func TestTriggerShopifySyncWithoutCredentials(t *testing.T) {
	db := newTestDB(t)
	r, _ := newRouter(t, db, &fakeFetcher{})
	tenant := models.Tenant{Name: "Unconfigured Store"}
	require.NoError(t, db.Create(&tenant).Error)
	token := authToken(t, uuid.NewString(), tenant.ID.String())

	w := doRequest(t, r, http.MethodPost, "/api/sync/shopify", token, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]string
	decodeBody(t, w, &resp)
	assert.Equal(t, "Shopify credentials missing", resp["error"])
}

func TestTriggerShopifySyncUpstreamFailure(t *testing.T) {
	db := newTestDB(t)
	r, _ := newRouter(t, db, failingFetcher{})
	tenant := seedSyncTenant(t, db)
	token := authToken(t, uuid.NewString(), tenant.ID.String())

	w := doRequest(t, r, http.MethodPost, "/api/sync/shopify", token, nil)
	require.Equal(t, http.StatusBadGateway, w.Code)

	var resp map[string]string
	decodeBody(t, w, &resp)
	assert.Equal(t, "Failed to fetch data from Shopify", resp["error"])
}

func TestUpdateShopifyCredentialsThenSync(t *testing.T) {
	db := newTestDB(t)
	r, _ := newRouter(t, db, &fakeFetcher{})
	tenant := models.Tenant{Name: "Unconfigured Store"}
	require.NoError(t, db.Create(&tenant).Error)
	token := authToken(t, uuid.NewString(), tenant.ID.String())

	w := doRequest(t, r, http.MethodPut, "/api/tenants/me/shopify", token, gin.H{
		"shopifyStore": "acme.myshopify.com",
		"apiKey":       "shpat_new",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// The pass that previously failed with 422 now runs.
	w = doRequest(t, r, http.MethodPost, "/api/sync/shopify", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Tenant
	require.NoError(t, db.First(&stored, "id = ?", tenant.ID).Error)
	assert.Equal(t, "acme.myshopify.com", stored.ShopifyStore)
	assert.Equal(t, "shpat_new", stored.APIKey)
}

func TestUpdateShopifyCredentialsValidation(t *testing.T) {
	db := newTestDB(t)
	r, _ := newRouter(t, db, &fakeFetcher{})
	tenant := seedSyncTenant(t, db)
	token := authToken(t, uuid.NewString(), tenant.ID.String())

	w := doRequest(t, r, http.MethodPut, "/api/tenants/me/shopify", token, gin.H{
		"shopifyStore": "acme.myshopify.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
