package main

import (
	"fmt"
	"log"

	"masalacafe/configs"
	"masalacafe/middlewares"
	"masalacafe/pkg/clientstore"
	"masalacafe/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// client storage (ตะกร้าต่อ user)
	store, err := clientstore.NewFileStore(cfg.ClientStoreDir)
	if err != nil {
		log.Fatalf("client store failed: %v", err)
	}

	// HTTP
	r := gin.Default()

	// ✅ Enable CORS
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))

	// ✅ Register API routes
	routes.RegisterRoutes(r, cfg, store)

	// ✅ Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
