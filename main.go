package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/CloyRodrigues12/VVM-Internship-Project/app/config"
	"github.com/CloyRodrigues12/VVM-Internship-Project/app/database"
	"github.com/CloyRodrigues12/VVM-Internship-Project/app/routes/uploads"
)

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024, // exports can run large
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup upload pipeline routes
	uploads.SetupUploadRoutes(app)

	// Start server
	log.Println("Server starting on :8000")
	log.Fatal(app.Listen(":8000"))
}
