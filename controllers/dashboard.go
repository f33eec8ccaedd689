package controllers

import (
	"math"
	"net/http"

	"github.com/Kashishghuliani/xeno-fde/repository"
	"github.com/Kashishghuliani/xeno-fde/utils"
	"github.com/gin-gonic/gin"
)

const topListLimit = 10

type DashboardController struct {
	dash repository.DashboardRepo
}

func NewDashboardController(dash repository.DashboardRepo) *DashboardController {
	return &DashboardController{dash: dash}
}

// GetMetrics returns the headline counts and total revenue. Customers
// without a single order are not counted.
func (dc *DashboardController) GetMetrics(c *gin.Context) {
	tenantID, ok := requireTenantID(c)
	if !ok {
		return
	}

	metrics, err := dc.dash.Metrics(tenantID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load metrics")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalCustomers": metrics.TotalCustomers,
		"totalOrders":    metrics.TotalOrders,
		"revenue":        round2(metrics.Revenue),
	})
}

func (dc *DashboardController) GetOrdersByDate(c *gin.Context) {
	tenantID, ok := requireTenantID(c)
	if !ok {
		return
	}

	from, to := utils.DateWindow(c.Query("from"), c.Query("to"))
	buckets, err := dc.dash.OrdersByDate(tenantID, from, to)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load order series")
		return
	}

	series := make([]gin.H, 0, len(buckets))
	for _, b := range buckets {
		series = append(series, gin.H{
			"date":    b.Date,
			"orders":  b.Orders,
			"revenue": round2(b.Revenue),
		})
	}
	c.JSON(http.StatusOK, series)
}

func (dc *DashboardController) GetCustomersByDate(c *gin.Context) {
	tenantID, ok := requireTenantID(c)
	if !ok {
		return
	}

	from, to := utils.DateWindow(c.Query("from"), c.Query("to"))
	buckets, err := dc.dash.CustomersByDate(tenantID, from, to)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load customer series")
		return
	}

	series := make([]gin.H, 0, len(buckets))
	for _, b := range buckets {
		series = append(series, gin.H{
			"date":      b.Date,
			"customers": b.Customers,
		})
	}
	c.JSON(http.StatusOK, series)
}

func (dc *DashboardController) GetTopCustomers(c *gin.Context) {
	tenantID, ok := requireTenantID(c)
	if !ok {
		return
	}

	customers, err := dc.dash.TopCustomers(tenantID, topListLimit)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load top customers")
		return
	}

	result := make([]gin.H, 0, len(customers))
	for _, tc := range customers {
		result = append(result, gin.H{
			"firstName":  tc.FirstName,
			"lastName":   tc.LastName,
			"email":      tc.Email,
			"totalSpent": round2(tc.TotalSpent),
		})
	}
	c.JSON(http.StatusOK, result)
}

func (dc *DashboardController) GetTopProducts(c *gin.Context) {
	tenantID, ok := requireTenantID(c)
	if !ok {
		return
	}

	products, err := dc.dash.TopProducts(tenantID, topListLimit)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load top products")
		return
	}

	result := make([]gin.H, 0, len(products))
	for _, p := range products {
		result = append(result, gin.H{
			"id":    p.ID,
			"title": p.Title,
			"price": round2(p.Price),
		})
	}
	c.JSON(http.StatusOK, result)
}

func (dc *DashboardController) GetRecentOrders(c *gin.Context) {
	tenantID, ok := requireTenantID(c)
	if !ok {
		return
	}

	orders, err := dc.dash.RecentOrders(tenantID, topListLimit)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load recent orders")
		return
	}

	result := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		result = append(result, gin.H{
			"id":           o.ID,
			"orderId":      o.ShopifyOrderID,
			"customerName": o.CustomerName,
			"totalPrice":   round2(o.TotalPrice),
			"createdAt":    o.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, result)
}

// Monetary values round to two decimals at the API boundary only.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
