package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/Kashishghuliani/xeno-fde/models"
	"github.com/Kashishghuliani/xeno-fde/repository"
	"github.com/Kashishghuliani/xeno-fde/routes"
	"github.com/Kashishghuliani/xeno-fde/services"
	"github.com/Kashishghuliani/xeno-fde/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeFetcher struct {
	customers []services.ShopifyCustomer
	orders    []services.ShopifyOrder
	products  []services.ShopifyProduct
}

func (f *fakeFetcher) FetchCustomers() ([]services.ShopifyCustomer, error) { return f.customers, nil }
func (f *fakeFetcher) FetchOrders() ([]services.ShopifyOrder, error)      { return f.orders, nil }
func (f *fakeFetcher) FetchProducts() ([]services.ShopifyProduct, error)  { return f.products, nil }

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

func newRouter(t *testing.T, db *gorm.DB, fetcher services.ShopifyFetcher) (*gin.Engine, *repository.Repositories) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	repos := repository.New(db)
	syncService := services.NewSyncService(repos, func(*models.Tenant) services.ShopifyFetcher {
		return fetcher
	})
	return routes.SetupRouter(repos, syncService), repos
}

func authToken(t *testing.T, userID, tenantID string) string {
	t.Helper()
	token, err := utils.GenerateToken(userID, tenantID)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
