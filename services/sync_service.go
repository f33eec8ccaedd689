package services

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/Kashishghuliani/xeno-fde/models"
	"github.com/Kashishghuliani/xeno-fde/repository"
	"github.com/google/uuid"
)

var (
	// ErrCredentialsMissing aborts a sync pass for a tenant that has no
	// Shopify API key configured.
	ErrCredentialsMissing = errors.New("shopify credentials missing")
	// ErrUpstreamFetch wraps any transport or HTTP failure from Shopify.
	// The whole pass aborts; re-running the sync is the recovery path.
	ErrUpstreamFetch = errors.New("shopify fetch failed")
)

// SyncService pulls one page of customers, orders and products from a
// tenant's Shopify store into the local tables and recomputes each
// customer's cached total spend. Every step is individually idempotent;
// there is no transaction across steps, so a mid-pass failure leaves
// partial state that the next pass converges.
//
// SyncTenant is safe to call concurrently for different tenants. Two
// passes over the same tenant (a manual trigger racing the scheduler)
// can interleave writes; no lock is taken.
type SyncService struct {
	tenants    repository.TenantRepo
	customers  repository.CustomerRepo
	orders     repository.OrderRepo
	products   repository.ProductRepo
	fetcherFor ShopifyFetcherFactory
}

func NewSyncService(repos *repository.Repositories, factory ShopifyFetcherFactory) *SyncService {
	return &SyncService{
		tenants:    repos.Tenants,
		customers:  repos.Customers,
		orders:     repos.Orders,
		products:   repos.Products,
		fetcherFor: factory,
	}
}

func (s *SyncService) SyncTenant(tenantID uuid.UUID) error {
	tenant, err := s.tenants.FindByID(tenantID)
	if err != nil {
		return fmt.Errorf("load tenant %s: %w", tenantID, err)
	}
	if tenant == nil || tenant.APIKey == "" {
		return ErrCredentialsMissing
	}
	fetcher := s.fetcherFor(tenant)

	customersUpserted, err := s.syncCustomers(tenantID, fetcher)
	if err != nil {
		return err
	}

	ordersInserted, err := s.syncOrders(tenantID, fetcher)
	if err != nil {
		return err
	}

	if err := s.recomputeTotalSpent(tenantID); err != nil {
		return err
	}

	productsUpserted, err := s.syncProducts(tenantID, fetcher)
	if err != nil {
		return err
	}

	log.Printf("[SYNC] tenant %s: %d customers upserted, %d orders inserted, %d products upserted",
		tenantID, customersUpserted, ordersInserted, productsUpserted)
	return nil
}

func (s *SyncService) syncCustomers(tenantID uuid.UUID, fetcher ShopifyFetcher) (int, error) {
	fetched, err := fetcher.FetchCustomers()
	if err != nil {
		return 0, fmt.Errorf("%w: customers: %v", ErrUpstreamFetch, err)
	}

	upserted := 0
	for _, sc := range fetched {
		if sc.ID == 0 || sc.Email == "" {
			continue
		}
		customer := models.Customer{
			TenantID:          tenantID,
			ShopifyCustomerID: strconv.FormatInt(sc.ID, 10),
			FirstName:         sc.FirstName,
			LastName:          sc.LastName,
			Email:             sc.Email,
		}
		if err := s.customers.UpsertByShopifyID(&customer); err != nil {
			return upserted, fmt.Errorf("upsert customer %d: %w", sc.ID, err)
		}
		upserted++
	}
	return upserted, nil
}

func (s *SyncService) syncOrders(tenantID uuid.UUID, fetcher ShopifyFetcher) (int, error) {
	fetched, err := fetcher.FetchOrders()
	if err != nil {
		return 0, fmt.Errorf("%w: orders: %v", ErrUpstreamFetch, err)
	}

	known, err := s.orders.ExistingShopifyIDs(tenantID)
	if err != nil {
		return 0, fmt.Errorf("load known order ids: %w", err)
	}

	inserted := 0
	for _, so := range fetched {
		if so.ID == 0 || so.Customer == nil || so.Customer.ID == 0 {
			continue
		}

		customer, err := s.customers.FindByShopifyID(tenantID, strconv.FormatInt(so.Customer.ID, 10))
		if err != nil {
			return inserted, fmt.Errorf("resolve customer for order %d: %w", so.ID, err)
		}
		if customer == nil {
			// Order for a customer we never ingested: dropped, not queued.
			continue
		}

		externalID := strconv.FormatInt(so.ID, 10)
		if _, ok := known[externalID]; ok {
			continue
		}

		order := models.Order{
			TenantID:       tenantID,
			ShopifyOrderID: externalID,
			CustomerID:     &customer.ID,
			TotalPrice:     parsePrice(so.TotalPrice),
			CreatedAt:      parseShopifyTime(so.CreatedAt),
		}
		if err := s.orders.Create(&order); err != nil {
			return inserted, fmt.Errorf("insert order %s: %w", externalID, err)
		}
		known[externalID] = struct{}{}
		inserted++
	}
	return inserted, nil
}

// recomputeTotalSpent overwrites every customer's cached spend with the
// summed order ledger. A full rewrite converges regardless of prior
// state, which is the whole point of caching this way.
func (s *SyncService) recomputeTotalSpent(tenantID uuid.UUID) error {
	totals, err := s.orders.TotalsByCustomer(tenantID)
	if err != nil {
		return fmt.Errorf("sum order totals: %w", err)
	}

	if err := s.customers.ResetTotalSpent(tenantID); err != nil {
		return fmt.Errorf("reset total spent: %w", err)
	}
	for customerID, total := range totals {
		if err := s.customers.SetTotalSpent(customerID, total); err != nil {
			return fmt.Errorf("set total spent for customer %s: %w", customerID, err)
		}
	}
	return nil
}

func (s *SyncService) syncProducts(tenantID uuid.UUID, fetcher ShopifyFetcher) (int, error) {
	fetched, err := fetcher.FetchProducts()
	if err != nil {
		return 0, fmt.Errorf("%w: products: %v", ErrUpstreamFetch, err)
	}

	upserted := 0
	for _, sp := range fetched {
		if sp.ID == 0 {
			continue
		}

		title := sp.Title
		if title == "" {
			title = "Untitled Product"
		}
		price := 0.0
		if len(sp.Variants) > 0 {
			price = parsePrice(sp.Variants[0].Price)
		}

		product := models.Product{
			TenantID:         tenantID,
			ShopifyProductID: strconv.FormatInt(sp.ID, 10),
			Title:            title,
			Price:            price,
		}
		if err := s.products.UpsertByShopifyID(&product); err != nil {
			return upserted, fmt.Errorf("upsert product %d: %w", sp.ID, err)
		}
		upserted++
	}
	return upserted, nil
}

func parsePrice(raw string) float64 {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return price
}

func parseShopifyTime(raw string) time.Time {
	if raw == "" {
		return time.Now()
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Now()
	}
	return t
}
