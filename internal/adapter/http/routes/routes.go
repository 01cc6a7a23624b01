package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "github.com/rezaesmaeili3562-spec/login.b/docs" // This will be auto-generated
	"github.com/rezaesmaeili3562-spec/login.b/internal/adapter/http/handlers"
	"github.com/rezaesmaeili3562-spec/login.b/internal/adapter/http/middlewares"
	repository2 "github.com/rezaesmaeili3562-spec/login.b/internal/adapter/persistence/repository"
	"github.com/rezaesmaeili3562-spec/login.b/internal/infrastructure/database"
	"github.com/rezaesmaeili3562-spec/login.b/internal/infrastructure/storage"
	"github.com/rezaesmaeili3562-spec/login.b/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", middlewares.MetricsHandler())

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// buildStore selects the key/value backend from STORE_BACKEND: file
// (default), memory, redis or dynamodb.
func buildStore() storage.Store {
	switch os.Getenv("STORE_BACKEND") {
	case "memory":
		return storage.NewMemoryStore()
	case "redis":
		db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
		store, err := storage.ConnectRedis(storage.RedisConfig{
			Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       db,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		return store
	case "dynamodb":
		return storage.NewDynamoStore(database.ConnectDynamoDB(), os.Getenv("STORE_TABLE"))
	default:
		store, err := storage.NewFileStore(getenvDefault("STORE_FILE", "coffeenet.json"))
		if err != nil {
			log.Fatalf("Failed to open the file store: %v", err)
		}
		return store
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getRoutes() {
	store := buildStore()
	if err := repository2.InitializeSampleData(context.Background(), store); err != nil {
		log.Fatalf("Failed to seed the catalog: %v", err)
	}

	userRepo := repository2.NewUserStoreRepository(store)
	serviceRepo := repository2.NewServiceStoreRepository(store)
	categoryRepo := repository2.NewCategoryStoreRepository(store)
	orderRepo := repository2.NewOrderStoreRepository(store)
	sessionStore := repository2.NewSessionStore(store)
	draftStore := repository2.NewDraftStore(store)

	authUseCase := usecase.NewAuthUseCase(userRepo, sessionStore)
	catalogUseCase := usecase.NewCatalogUseCase(serviceRepo, categoryRepo)
	draftUseCase := usecase.NewOrderDraftUseCase(draftStore, serviceRepo, orderRepo)
	ordersUseCase := usecase.NewOrdersUseCase(orderRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(orderRepo)
	usersUseCase := usecase.NewUsersUseCase(userRepo)

	authHandler := handlers.NewAuthHandler(authUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	cartHandler := handlers.NewCartHandler(draftUseCase, authUseCase)
	ordersHandler := handlers.NewOrdersHandler(ordersUseCase, invoiceUseCase, authUseCase)
	adminHandler := handlers.NewAdminHandler(ordersUseCase, usersUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, authHandler, catalogHandler, cartHandler, ordersHandler)
	addAdminRoutes(v1, adminHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middlewares.Monitoring())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
