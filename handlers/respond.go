package handlers

import (
	"errors"
	"io"
	"net/http"

	"invoicely/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a service error onto the response. Not-found ids get
// notFoundMsg with 404; everything else is logged and answered with a 500
// carrying only failMsg.
func respondError(c *gin.Context, err error, notFoundMsg, failMsg string) {
	logger := getLogger(c)
	if models.IsNotFound(err) && notFoundMsg != "" {
		logger.Info(notFoundMsg, zap.String("id", c.Param("id")))
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}
	logger.Error(failMsg, zap.String("id", c.Param("id")), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
}

// bindJSON decodes the request body into dst. An empty body is accepted when
// optional is set.
func bindJSON(c *gin.Context, dst any, optional bool) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}
	getLogger(c).Warn("invalid request body", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
	return false
}
