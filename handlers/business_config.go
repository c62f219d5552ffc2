package handlers

import (
	"net/http"

	"invoicely/models"
	"invoicely/services/business"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	Service business.BusinessService
}

func NewConfigHandler(svc business.BusinessService) *ConfigHandler {
	return &ConfigHandler{Service: svc}
}

// GetConfigHandler handles GET /api/config. The first read persists an empty profile.
func (h *ConfigHandler) GetConfigHandler(c *gin.Context) {
	cfg, err := h.Service.GetConfig(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Failed to fetch business configuration")
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// SaveConfigHandler handles POST /api/config; absent fields keep their value.
func (h *ConfigHandler) SaveConfigHandler(c *gin.Context) {
	var patch models.BusinessConfigPatch
	if !bindJSON(c, &patch, true) {
		return
	}
	cfg, err := h.Service.SaveConfig(c.Request.Context(), patch)
	if err != nil {
		respondError(c, err, "", "Failed to save business configuration")
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// LineItemTypesHandler handles GET /api/line-item-types.
func LineItemTypesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.LineItemTypes)
}
