package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "freightdesk/docs" // generated swagger metadata
	"freightdesk/internal/adapter/http/handlers"
	repository2 "freightdesk/internal/adapter/persistence/repository"
	"freightdesk/internal/infrastructure/database"
	"freightdesk/internal/infrastructure/freightapi"
	"freightdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	gateway := freightapi.NewGatewayFromEnv()
	ddb := database.ConnectDynamoDB()
	sessionRepo := repository2.NewSessionDynamoRepository(ddb)

	sessionUseCase := usecase.NewSessionUseCase(sessionRepo, gateway)
	rfqUseCase := usecase.NewRFQUseCase(gateway, sessionRepo)
	bidUseCase := usecase.NewBidUseCase(gateway, sessionRepo, awardRefreshGrace())
	dashboardUseCase := usecase.NewDashboardUseCase(gateway, sessionRepo)
	chatUseCase := usecase.NewChatUseCase(gateway, sessionRepo)

	h := portalHandlers{
		auth:      handlers.NewAuthHandler(sessionUseCase),
		rfq:       handlers.NewRFQHandler(rfqUseCase, gateway.BaseHost()),
		bid:       handlers.NewBidHandler(bidUseCase, gateway.BaseHost()),
		dashboard: handlers.NewDashboardHandler(dashboardUseCase),
		chat:      handlers.NewChatHandler(chatUseCase),
	}

	addPingRoutes(router.Group(""))

	portal := router.Group("/portal")
	addPortalRoutes(portal, h, sessionUseCase)
}

// awardRefreshGrace reads the post-award wait before the board refetch.
// Negative or unset falls back to the use case default.
func awardRefreshGrace() time.Duration {
	raw := os.Getenv("AWARD_REFRESH_GRACE_SECONDS")
	if raw == "" {
		return -1
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("[routes] invalid AWARD_REFRESH_GRACE_SECONDS=%q, using default", raw)
		return -1
	}
	return time.Duration(seconds) * time.Second
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
