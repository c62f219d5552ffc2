package handlers

import (
	"fmt"
	"net/http"

	"invoicely/services/diagnostics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the store write/read checks.
type AdminHandler struct {
	Service diagnostics.DiagnosticsService
}

func NewAdminHandler(svc diagnostics.DiagnosticsService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// StoreTestRecordHandler handles GET /admin.
func (ah *AdminHandler) StoreTestRecordHandler(c *gin.Context) {
	rec, err := ah.Service.Store(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to store test record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error storing test data",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Test data stored successfully",
		"data":    rec,
	})
}

// PullTestRecordsHandler handles GET /admin-pull.
func (ah *AdminHandler) PullTestRecordsHandler(c *gin.Context) {
	records, err := ah.Service.Pull(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to pull test records", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error retrieving test data",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Retrieved %d entries", len(records)),
		"data":    records,
	})
}
