package controllers

import (
	"net/http"

	"github.com/Kashishghuliani/xeno-fde/repository"
	"github.com/Kashishghuliani/xeno-fde/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShopifyCredentialsInput struct {
	ShopifyStore string `json:"shopifyStore" binding:"required"`
	APIKey       string `json:"apiKey" binding:"required"`
	APISecret    string `json:"apiSecret"`
}

type TenantController struct {
	tenants repository.TenantRepo
}

func NewTenantController(tenants repository.TenantRepo) *TenantController {
	return &TenantController{tenants: tenants}
}

// List is an admin/debugging endpoint; credentials never serialize.
func (tc *TenantController) List(c *gin.Context) {
	tenants, err := tc.tenants.FindAll()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to list tenants")
		return
	}
	c.JSON(http.StatusOK, tenants)
}

func (tc *TenantController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid tenant ID format")
		return
	}

	tenant, err := tc.tenants.FindByID(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if tenant == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Tenant not found")
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// UpdateShopifyCredentials sets the caller tenant's store domain and API
// key so the sync engine can reach its Shopify store.
func (tc *TenantController) UpdateShopifyCredentials(c *gin.Context) {
	tenantID, ok := requireTenantID(c)
	if !ok {
		return
	}

	var input ShopifyCredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := tc.tenants.UpdateShopifyCredentials(tenantID, input.ShopifyStore, input.APIKey, input.APISecret); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shopify credentials updated"})
}
