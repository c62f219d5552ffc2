package handlers

import (
	"net/http"

	"invoicely/services/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Service auth.AuthService
}

func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// VerifyPasswordHandler handles POST /api/verify-password.
func (h *AuthHandler) VerifyPasswordHandler(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if !bindJSON(c, &req, true) {
		return
	}
	if !h.Service.VerifyPassword(req.Password) {
		getLogger(c).Warn("Rejected password attempt")
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
