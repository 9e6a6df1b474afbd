package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "kts-backend/internal/config"
	h "kts-backend/internal/http/handlers"
	"kts-backend/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     env.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Accept", "Origin", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		trips := api.Group("/trips")
		trips.GET("", h.GetTrips)
		trips.POST("", h.CreateTrip)
		trips.PUT("/:id", h.UpdateTrip)
		trips.DELETE("/:id", h.DeleteTrip)
		trips.POST("/derive", h.DeriveTrip)

		vehicleExpenses := api.Group("/vehicle-expenses")
		vehicleExpenses.GET("", h.GetVehicleExpenses)
		vehicleExpenses.POST("", h.CreateVehicleExpense)
		vehicleExpenses.PUT("/:id", h.UpdateVehicleExpense)
		vehicleExpenses.DELETE("/:id", h.DeleteVehicleExpense)

		officeExpenses := api.Group("/office-expenses")
		officeExpenses.GET("", h.GetOfficeExpenses)
		officeExpenses.POST("", h.CreateOfficeExpense)
		officeExpenses.PUT("/:id", h.UpdateOfficeExpense)
		officeExpenses.DELETE("/:id", h.DeleteOfficeExpense)

		registry := api.Group("/registry")
		registry.GET("", h.GetRegistry)
		registry.GET("/expiring", h.GetExpiringDocuments)
		registry.GET("/:vehicleNo", h.GetRegistryEntry)
		registry.POST("", h.SaveRegistryEntry)
		registry.DELETE("/:id", h.DeleteRegistryEntry)

		api.GET("/summary/business", h.GetBusinessSummary)

		exports := api.Group("/exports")
		exports.GET("/trips", h.GetTripExportRows)
		exports.GET("/trips/pdf", h.GetTripLedgerPDF)
		exports.GET("/trips/csv", h.GetTripLedgerCSV)
		exports.GET("/trips/:id/voucher", h.GetTripVoucherPDF)
		exports.GET("/vehicle-expenses", h.GetVehicleExpenseExportRows)
		exports.GET("/office-expenses", h.GetOfficeExpenseExportRows)
	}

	return r
}
