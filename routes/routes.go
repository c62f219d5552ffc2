package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"invoicely/handlers"
	"invoicely/middleware"
	"invoicely/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Options carries the route-level settings taken from config.
type Options struct {
	AdminToken string
	StaticDir  string
	Metrics    *middleware.HTTPMetrics
}

// RegisterInvoiceRoutes registers invoice endpoints.
func RegisterInvoiceRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	invoices := api.Group("/invoices")
	{
		invoices.GET("", hb.ListInvoicesHandler)
		invoices.POST("", hb.CreateInvoiceHandler)
		invoices.GET("/:id", hb.GetInvoiceHandler)
		invoices.PUT("/:id", hb.UpdateInvoiceHandler)
		invoices.DELETE("/:id", hb.DeleteInvoiceHandler)
		invoices.PUT("/:id/status", hb.UpdateInvoiceStatusHandler)
		invoices.GET("/:id/pdf", hb.InvoiceDocumentHandler)
	}
}

// RegisterQuoteRoutes registers quote endpoints, including conversion.
func RegisterQuoteRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	quotes := api.Group("/quotes")
	{
		quotes.GET("", hb.ListQuotesHandler)
		quotes.POST("", hb.CreateQuoteHandler)
		quotes.GET("/:id", hb.GetQuoteHandler)
		quotes.PUT("/:id", hb.UpdateQuoteHandler)
		quotes.DELETE("/:id", hb.DeleteQuoteHandler)
		quotes.PUT("/:id/status", hb.UpdateQuoteStatusHandler)
		quotes.GET("/:id/pdf", hb.QuoteDocumentHandler)
		quotes.POST("/:id/convert", hb.ConvertQuoteHandler)
	}
}

// RegisterAPIRoutes registers everything under /api.
func RegisterAPIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	RegisterInvoiceRoutes(api, hb)
	RegisterQuoteRoutes(api, hb)

	api.GET("/dashboard", hb.DashboardHandler)
	api.GET("/config", hb.GetConfigHandler)
	api.POST("/config", hb.SaveConfigHandler)
	api.GET("/line-item-types", hb.LineItemTypesHandler)
	api.POST("/verify-password", hb.VerifyPasswordHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterAdminRoutes sets up the diagnostic store checks.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle, token string) {
	admin := r.Group("")
	{
		admin.Use(middleware.AdminTokenMiddleware(token))
		admin.GET("/admin", hb.AdminHandler.StoreTestRecordHandler)
		admin.GET("/admin-pull", hb.AdminHandler.PullTestRecordsHandler)
	}
}

// RegisterStaticRoutes serves the browser UI from dir when it exists.
func RegisterStaticRoutes(r *gin.Engine, dir string) {
	if dir == "" {
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		utils.GetLogger().Warn("static directory not found, UI disabled")
		return
	}
	r.StaticFile("/", filepath.Join(dir, "index.html"))
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		file := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts Options) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	RegisterAPIRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterAdminRoutes(r, hb, opts.AdminToken)
	RegisterStaticRoutes(r, opts.StaticDir)
}
