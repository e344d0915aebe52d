package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sareeta/internal/handlers"
	"sareeta/internal/middleware"
	"sareeta/internal/models"
	"sareeta/internal/repositories"
	"sareeta/internal/services"
	"sareeta/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("JWT_SECRET", "change-me")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	databaseDSN := viper.GetString("DATABASE_DSN")
	jwtSecret := viper.GetString("JWT_SECRET")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Repositories ---
	// PostgreSQL when a DSN is configured, in-memory stores otherwise so the
	// service can run standalone for local development.
	var (
		userRepo  repositories.UserRepository
		itemRepo  repositories.ItemRepository
		cartRepo  repositories.CartRepository
		orderRepo repositories.OrderRepository
	)
	if databaseDSN != "" {
		db, err := gorm.Open(postgres.Open(databaseDSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(
			&models.User{},
			&models.Item{},
			&models.Cart{},
			&models.CartItem{},
			&models.Order{},
			&models.OrderItem{},
		); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		userRepo = repositories.NewGORMUserRepository(db)
		itemRepo = repositories.NewGORMItemRepository(db)
		cartRepo = repositories.NewGORMCartRepository(db)
		orderRepo = repositories.NewGORMOrderRepository(db)
	} else {
		log.Println("DATABASE_DSN not set, using in-memory repositories")
		userRepo = repositories.NewMockUserRepository()
		itemRepo = repositories.NewMockItemRepository()
		cartRepo = repositories.NewMockCartRepository()
		orderRepo = repositories.NewMockOrderRepository()
	}

	seedItems(itemRepo)

	// --- RabbitMQ ---
	// Optional: order events are best-effort, so a missing or unreachable
	// broker downgrades to running without eventing.
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		var err error
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, order events disabled: %v", err)
			mqClient = nil
		} else {
			defer mqClient.Close()
		}
	}

	// --- Services ---
	userService := services.NewUserService(userRepo, cartRepo)
	authService := services.NewAuthService(userRepo, jwtSecret)
	itemService := services.NewItemService(itemRepo)
	cartService := services.NewCartService(userRepo, itemRepo, cartRepo)
	orderService := services.NewOrderService(orderRepo, userRepo, cartRepo, mqClient)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, authService)
	itemHandler := handlers.NewItemHandler(itemService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	api := app.Group("/api")

	// Public routes: registration, login, lookups and the catalog.
	userHandler.RegisterRoutes(api)
	itemHandler.RegisterRoutes(api)

	// Cart and order routes require a valid token.
	protected := api.Group("", middleware.AuthRequired(authService))
	cartHandler.RegisterRoutes(protected)
	orderHandler.RegisterRoutes(protected)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Order event consumer ---
	if mqClient != nil {
		log.Println("Starting RabbitMQ consumer for order events...")
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received order event (tag %d, type %s): %s", msg.DeliveryTag, msg.Type, string(msg.Body))
			return nil
		}
		if err := mqClient.ConsumeOrderEvents(messageHandler); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// seedItems populates the catalog with the default widgets when the store
// is empty. Items are read-only at runtime, so this is the only write path.
func seedItems(repo repositories.ItemRepository) {
	existing, err := repo.GetAll()
	if err != nil {
		log.Printf("Error checking catalog before seeding: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	items := []models.Item{
		{Name: "Round Widget", Description: "A widget that is round", Price: 2.99},
		{Name: "Square Widget", Description: "A widget that is square", Price: 1.99},
	}
	for i := range items {
		if err := repo.Create(&items[i]); err != nil {
			log.Printf("Error seeding item %s: %v", items[i].Name, err)
		} else {
			log.Printf("Seeded item: %s (ID: %s)", items[i].Name, items[i].ID)
		}
	}
}
