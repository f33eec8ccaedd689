package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Kashishghuliani/xeno-fde/models"
)

const (
	shopifyAPIVersion = "2023-10"
	shopifyPageLimit  = 50
)

// ShopifyCustomer mirrors the fields of Shopify's customer resource that
// the sync pass consumes.
type ShopifyCustomer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type ShopifyOrderCustomer struct {
	ID int64 `json:"id"`
}

type ShopifyOrder struct {
	ID         int64                 `json:"id"`
	Customer   *ShopifyOrderCustomer `json:"customer"`
	TotalPrice string                `json:"total_price"`
	CreatedAt  string                `json:"created_at"`
}

type ShopifyVariant struct {
	Price string `json:"price"`
}

type ShopifyProduct struct {
	ID       int64            `json:"id"`
	Title    string           `json:"title"`
	Variants []ShopifyVariant `json:"variants"`
}

// ShopifyFetcher is the sync engine's view of the Shopify Admin API: one
// bounded page per resource, no pagination, no retries.
type ShopifyFetcher interface {
	FetchCustomers() ([]ShopifyCustomer, error)
	FetchOrders() ([]ShopifyOrder, error)
	FetchProducts() ([]ShopifyProduct, error)
}

// ShopifyFetcherFactory builds a fetcher for one tenant's store.
type ShopifyFetcherFactory func(tenant *models.Tenant) ShopifyFetcher

func DefaultFetcherFactory(tenant *models.Tenant) ShopifyFetcher {
	return NewShopifyClient(tenant.ShopifyStore, tenant.APIKey)
}

type ShopifyClient struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

func NewShopifyClient(storeDomain, accessToken string) *ShopifyClient {
	return &ShopifyClient{
		baseURL:     fmt.Sprintf("https://%s/admin/api/%s", storeDomain, shopifyAPIVersion),
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *ShopifyClient) FetchCustomers() ([]ShopifyCustomer, error) {
	var resp struct {
		Customers []ShopifyCustomer `json:"customers"`
	}
	query := url.Values{"limit": {strconv.Itoa(shopifyPageLimit)}}
	if err := c.get("/customers.json", query, &resp); err != nil {
		return nil, err
	}
	return resp.Customers, nil
}

func (c *ShopifyClient) FetchOrders() ([]ShopifyOrder, error) {
	var resp struct {
		Orders []ShopifyOrder `json:"orders"`
	}
	query := url.Values{
		"status": {"any"},
		"limit":  {strconv.Itoa(shopifyPageLimit)},
	}
	if err := c.get("/orders.json", query, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (c *ShopifyClient) FetchProducts() ([]ShopifyProduct, error) {
	var resp struct {
		Products []ShopifyProduct `json:"products"`
	}
	query := url.Values{"limit": {strconv.Itoa(shopifyPageLimit)}}
	if err := c.get("/products.json", query, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *ShopifyClient) get(path string, query url.Values, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Shopify-Access-Token", c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.URL.RawQuery = query.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API request failed: %d - %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
