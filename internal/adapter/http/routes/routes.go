package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "movequote/docs" // This will be auto-generated
	"movequote/internal/adapter/http/handlers"
	"movequote/internal/adapter/http/middleware"
	repository2 "movequote/internal/adapter/persistence/repository"
	"movequote/internal/domain/entities"
	"movequote/internal/infrastructure/database"
	"movequote/internal/infrastructure/storage"
	"movequote/internal/infrastructure/vision"
	"movequote/internal/platform/logger"
	"movequote/internal/usecase"
	"movequote/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	appLog, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err.Error())
	}
	defer appLog.Sync()

	setMiddlewares(appLog)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(appLog)

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(appLog *logger.Logger) {
	ddb := database.ConnectDynamoDB()

	tenantRepo := repository2.NewTenantDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	ruleRepo := repository2.NewPricingRuleDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	jobRepo := repository2.NewDetectionJobDynamoRepository(ddb)
	counterRepo := repository2.NewCounterDynamoRepository(ddb)
	sessionRepo := repository2.NewSessionDynamoRepository(ddb)

	localStore, err := storage.NewLocalStore()
	if err != nil {
		log.Fatalf("Failed to create local media store: %v", err.Error())
	}
	var blobs interfaces.IBlobStore = localStore
	if s3Store, serr := storage.NewS3Store(context.Background()); serr != nil {
		appLog.Warn("S3 store not configured, storing uploads locally", "error", serr)
	} else {
		// Per-upload fallback: a failed S3 put lands on local disk instead of
		// dropping the file.
		blobs = storage.NewFallbackStore(s3Store, localStore, appLog)
	}

	visionClient := vision.NewYOLOEClient(appLog)

	numbers := usecase.NewQuoteNumberGenerator(counterRepo)
	limiter := usecase.NewRateLimiter(counterRepo, appLog)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, tenantRepo, userRepo, ruleRepo, catalogRepo, numbers, limiter, blobs, appLog)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	ruleUseCase := usecase.NewPricingRuleUseCase(ruleRepo)
	detectionUseCase := usecase.NewDetectionUseCase(jobRepo, quoteRepo, catalogRepo, ruleRepo, visionClient, appLog)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	publicHandler := handlers.NewPublicQuoteHandler(quoteUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	ruleHandler := handlers.NewPricingRuleHandler(ruleUseCase)
	detectionHandler := handlers.NewDetectionHandler(detectionUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1, publicHandler)

	// Staff routes require a tenant, a live session and a staff role.
	staff := v1.Group("",
		middleware.Tenant(tenantRepo),
		middleware.Auth(sessionRepo, userRepo),
		middleware.RequireRoles(entities.UserRoleAdmin, entities.UserRoleStaff),
	)
	addQuoteRoutes(staff, quoteHandler)
	addCatalogRoutes(staff, catalogHandler)
	addPricingRuleRoutes(staff, ruleHandler)
	addDetectionRoutes(staff, detectionHandler)

	startRateWindowPurge(limiter, appLog)
}

// startRateWindowPurge reaps expired rate-limit counters hourly so the
// counters table does not grow unbounded.
func startRateWindowPurge(limiter *usecase.RateLimiter, appLog *logger.Logger) {
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			deleted, err := limiter.PurgeExpired(context.Background(), time.Now())
			if err != nil {
				appLog.Warn("rate window purge failed", "error", err)
				continue
			}
			if deleted > 0 {
				appLog.Info("purged expired rate windows", "deleted", deleted)
			}
		}
	}()
}

func setMiddlewares(appLog *logger.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		appLog.Error("recovered from panic", "panic", recovered)
		c.AbortWithStatus(500)
	}))
}
