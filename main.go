package main

import (
	"ecolearner/config"
	"ecolearner/database"
	authRoutes "ecolearner/routers/authRoutes"
	classRoutes "ecolearner/routers/classRoutes"
	paymentRoutes "ecolearner/routers/paymentRoutes"
	selectionRoutes "ecolearner/routers/selectionRoutes"
	userRoutes "ecolearner/routers/userRoutes"
	"ecolearner/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.LoadConfig()

	store, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	gateway := utils.NewStripeGateway(cfg)

	scheduler := utils.StartSelectionScheduler(store, cfg)
	defer scheduler.Stop()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Eco Learner is running")
	})

	authRoutes.SetupAuthRoutes(app, cfg)
	userRoutes.SetupUserRoutes(app, store, cfg)
	classRoutes.SetupClassRoutes(app, store, cfg)
	selectionRoutes.SetupSelectionRoutes(app, store, cfg)
	paymentRoutes.SetupPaymentRoutes(app, store, cfg, gateway)

	log.Printf("Eco Learner is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
