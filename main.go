package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotelops-backend/config"
	"hotelops-backend/controllers"
	"hotelops-backend/routes"
	"hotelops-backend/services"
	"hotelops-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Initialize services
	catalogService := services.NewCatalogService(db)
	bookingService := services.NewBookingService(db)
	ledgerService := services.NewLedgerService(db)
	invoiceService := services.NewInvoiceService(db, ledgerService)
	orderService := services.NewOrderService(db, ledgerService)

	// Initialize controllers
	roomController := controllers.NewRoomController(catalogService)
	bookingController := controllers.NewBookingController(bookingService, ledgerService)
	orderController := controllers.NewOrderController(orderService)
	invoiceController := controllers.NewInvoiceController(invoiceService)
	settlementController := controllers.NewSettlementController(ledgerService)

	// Build router
	router := routes.SetupRouter(
		roomController,
		bookingController,
		orderController,
		invoiceController,
		settlementController,
	)

	addr := ":" + utils.EnvOrDefault("PORT", "8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
