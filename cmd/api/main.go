package main

import (
	"log"
	"os"
	"time"

	"touchpos/internal/catalog"
	"touchpos/internal/db"
	"touchpos/internal/order"
	"touchpos/internal/params"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"ORDER_API_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── REPOS ─────────────────────────
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	paramsRepo := params.NewPostgresRepository(pgDB)

	// the cart lives in memory; submitted orders belong to the backend
	cartRepo := order.NewInMemoryRepository()

	// ───────────────────────── SERVICES ─────────────────────────
	paramsService := params.NewService(paramsRepo)
	backend := order.NewClient(os.Getenv("ORDER_API_URL"))

	orderService := order.NewService(
		catalogRepo,
		paramsService,
		cartRepo,
		backend,
	)

	// ───────────────────────── HANDLERS ─────────────────────────
	catalogHandler := catalog.NewHandler(catalogRepo)
	orderHandler := order.NewHandler(orderService)

	// ───────────────────────── CATALOG ROUTES ─────────────────────────
	r.GET("/items/:id/groups", catalogHandler.GetItemGroups)

	// ───────────────────────── ORDER ROUTES ─────────────────────────
	orders := r.Group("/orders")
	{
		orders.POST("/quote", orderHandler.Quote)
		orders.POST("/cart", orderHandler.AddToCart)
		orders.GET("/cart/:table", orderHandler.GetCart)
		orders.POST("/submit", orderHandler.Submit)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 POS ordering API running at http://localhost:8000")
	r.Run(":8000")
}
