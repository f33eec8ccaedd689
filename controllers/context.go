package controllers

import (
	"net/http"

	"github.com/Kashishghuliani/xeno-fde/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requireTenantID pulls the tenant id set by the middleware chain. It
// writes the error response itself; callers just bail out on false.
func requireTenantID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("tenantId")
	if !exists {
		utils.RespondWithError(c, http.StatusBadRequest, "Tenant not provided")
		return uuid.Nil, false
	}

	raw, ok := value.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Tenant not provided")
		return uuid.Nil, false
	}

	tenantID, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid tenant ID format")
		return uuid.Nil, false
	}
	return tenantID, true
}
