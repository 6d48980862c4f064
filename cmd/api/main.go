package main

import (
	"log"
	"os"
	"time"

	"github.com/retailops/auditoria-api/internal/infrastructure/database"
	"github.com/retailops/auditoria-api/internal/infrastructure/storage"
	"github.com/retailops/auditoria-api/internal/interfaces/http/middleware"
	"github.com/retailops/auditoria-api/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	// Initialize database
	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}

	// Cliente do bucket de documentos digitalizados
	bucket := os.Getenv("STORAGE_BUCKET")
	if bucket == "" {
		bucket = "documents"
	}
	uploader := storage.New(os.Getenv("SUPABASE_URL"), os.Getenv("SUPABASE_SERVICE_KEY"), bucket)
	log.Printf("📦 Bucket de documentos: %s", bucket)

	// Configure Fiber for better performance
	app := fiber.New(fiber.Config{
		Concurrency: 256 * 1024,
		// Desabilitado modo Prefork pois causa instabilidade no container
		Prefork: false,
		// Páginas digitalizadas chegam em multipart
		BodyLimit:    25 * 1024 * 1024, // 25MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes
	routes.SetupRoutes(app, db, uploader)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server is running on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
