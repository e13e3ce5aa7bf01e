package routes

import (
	"time"

	"github.com/Ebesoh-Adrian/ADForexPre/client"
	"github.com/Ebesoh-Adrian/ADForexPre/config"
	"github.com/Ebesoh-Adrian/ADForexPre/controller"
	"github.com/Ebesoh-Adrian/ADForexPre/middleware"
	"github.com/Ebesoh-Adrian/ADForexPre/model"
	"github.com/Ebesoh-Adrian/ADForexPre/repository"
	"github.com/Ebesoh-Adrian/ADForexPre/service"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRouter(db *mongo.Database, cfg *config.SystemConfigs, feed *service.MarketFeed) *gin.Engine {
	isProduction := cfg.Config.Environment == "production"

	frontendUrl := cfg.Config.FrontendUrl
	if frontendUrl == "" {
		frontendUrl = "http://localhost:3000"
	}

	cfgManager := config.NewConfigManager(&model.AppSettings{
		FrontendUrl: frontendUrl,
		BrevoEmail:  cfg.Config.BrevoEmail,
		BrevoApiKey: cfg.Config.BrevoApiKey,
		RateLimiter: cfg.Config.RateLimiter,
	})

	r := gin.New()
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.RateLimiter(cfgManager))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendUrl},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// --- 1. Clients ---
	brevoClient := client.NewBrevoClient()

	// --- 2. Repositories ---
	userRepo := repository.NewUserRepository(db)
	setupRepo := repository.NewTradeSetupRepository(db)

	// --- 3. Services (Dependency Injection) ---
	emailSvc := service.NewEmailService(brevoClient, cfg.Config.BrevoApiKey)
	otpSvc := service.NewOtpService(emailSvc, cfgManager)
	userSvc := service.NewUserService(userRepo)
	marketSvc := service.NewMarketDataService(feed)
	tradeSvc := service.NewTradeService(setupRepo, marketSvc)

	// --- 4. Gin Routes & Controllers ---
	api := r.Group("/api")
	{
		controller.NewHealthController().RegisterRoutes(api)
		controller.NewAuthController(userSvc, otpSvc, isProduction).RegisterRoutes(api)
	}

	// --- 5. Huma API (typed operations + OpenAPI) ---
	humaApi := humagin.New(r, huma.DefaultConfig("ADForexPre API", "1.0.0"))

	controller.NewMarketController(marketSvc).RegisterRoutes(humaApi)
	controller.NewTradeController(tradeSvc, isProduction).RegisterRoutes(humaApi)
	controller.NewUserController(userSvc, isProduction).RegisterRoutes(humaApi)

	return r
}
