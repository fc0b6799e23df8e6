package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotelops-backend/controllers"
	"hotelops-backend/middleware"
	"hotelops-backend/utils"
)

func parseCorsOrigins() []string {
	raw := utils.EnvOrDefault("CORS_ORIGINS", "*")

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controller instances into the route table.
func SetupRouter(
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	oc *controllers.OrderController,
	ic *controllers.InvoiceController,
	sc *controllers.SettlementController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.List)
			rooms.POST("", rc.Create)
			rooms.GET("/:roomNumber", rc.Get)
			rooms.PUT("/:roomNumber", rc.Update)
		}
		api.GET("/room-types", rc.RoomTypes)
		api.GET("/menu", rc.Menu)

		accounts := api.Group("/accounts")
		{
			accounts.GET("", bc.ListAccounts)

			// fixed segments before /:roomNumber
			accounts.GET("/availability", bc.CheckAvailability)
			accounts.POST("/check-in", bc.CheckIn)

			accounts.GET("/:roomNumber", bc.GetAccount)
			accounts.POST("/:roomNumber/check-out", bc.CheckOut)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", oc.List)
			orders.POST("", oc.Create)
			orders.GET("/:orderNumber", oc.Get)
			orders.PATCH("/:orderNumber/status", oc.UpdateStatus)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("", ic.List)
			invoices.POST("", ic.Create)
			invoices.GET("/:kind/:invoiceNo", ic.Get)
		}

		settlements := api.Group("/settlements")
		{
			settlements.POST("/orders", sc.SettleOrders)
			settlements.POST("/invoices", sc.SettleInvoice)
		}
	}

	return r
}
