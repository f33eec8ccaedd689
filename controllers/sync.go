package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Kashishghuliani/xeno-fde/services"
	"github.com/Kashishghuliani/xeno-fde/utils"
	"github.com/gin-gonic/gin"
)

type SyncController struct {
	sync *services.SyncService
}

func NewSyncController(sync *services.SyncService) *SyncController {
	return &SyncController{sync: sync}
}

// TriggerShopifySync runs a sync pass for the caller's tenant and waits
// for it to finish. It may race a scheduler tick for the same tenant;
// both passes are idempotent so the data converges either way.
func (sc *SyncController) TriggerShopifySync(c *gin.Context) {
	tenantID, ok := requireTenantID(c)
	if !ok {
		return
	}

	if err := sc.sync.SyncTenant(tenantID); err != nil {
		log.Printf("[SYNC] manual sync for tenant %s failed: %v", tenantID, err)
		switch {
		case errors.Is(err, services.ErrCredentialsMissing):
			utils.RespondWithError(c, http.StatusUnprocessableEntity, "Shopify credentials missing")
		case errors.Is(err, services.ErrUpstreamFetch):
			utils.RespondWithError(c, http.StatusBadGateway, "Failed to fetch data from Shopify")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to sync Shopify data")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shopify sync completed successfully"})
}
